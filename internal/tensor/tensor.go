package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor is a dense multi-dimensional array over a contiguous byte buffer.
//
// The buffer carries runtime type information (dtype), the compute device,
// and the two per-buffer flags the annotation layer introspects: whether
// gradients are tracked for this tensor and whether its memory is pinned.
type Tensor struct {
	data         []byte
	shape        Shape
	stride       []int
	dtype        DataType
	device       Device
	backend      Backend
	requiresGrad bool
	pinned       bool
}

// New creates a zero-initialized tensor with the given shape and type.
func New(shape Shape, dtype DataType, b Backend) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()
	return &Tensor{
		data:    make([]byte, byteSize),
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
		dtype:   dtype,
		device:  b.Device(),
		backend: b,
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// Device returns the tensor's compute device.
func (t *Tensor) Device() Device {
	return t.device
}

// Backend returns the computation backend.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (t *Tensor) ByteSize() int {
	return t.NumElements() * t.dtype.Size()
}

// Data returns the raw byte slice backing the tensor.
// WARNING: Direct access to underlying memory. Use with caution.
func (t *Tensor) Data() []byte {
	return t.data
}

// DataPtr returns the address of the tensor's storage. Two tensors share
// storage iff their DataPtr values are equal.
func (t *Tensor) DataPtr() uintptr {
	if len(t.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&t.data[0]))
}

// RequiresGrad reports whether this tensor tracks gradients.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// SetRequiresGrad sets the gradient-tracking flag in place and returns the
// tensor for chaining.
func (t *Tensor) SetRequiresGrad(v bool) *Tensor {
	t.requiresGrad = v
	return t
}

// Pinned reports whether the tensor's memory is pinned.
func (t *Tensor) Pinned() bool {
	return t.pinned
}

// Unwrap returns the tensor itself. It makes *Tensor satisfy the
// tensor-like interfaces of higher layers.
func (t *Tensor) Unwrap() *Tensor {
	return t
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (t *Tensor) AsFloat32() []float32 {
	if t.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", t.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (t *Tensor) AsFloat64() []float64 {
	if t.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", t.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (t *Tensor) AsInt32() []int32 {
	if t.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", t.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (t *Tensor) AsInt64() []int64 {
	if t.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", t.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (t *Tensor) AsUint8() []uint8 {
	if t.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", t.dtype))
	}
	return t.data // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (t *Tensor) AsBool() []bool {
	if t.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", t.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// View returns a tensor over the same storage with a different shape.
// The new shape must describe the same number of elements. No data is
// copied; the returned tensor's DataPtr equals the receiver's.
func (t *Tensor) View(shape Shape) *Tensor {
	if shape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("cannot view tensor with %d elements as shape %v (%d elements)",
			t.NumElements(), shape, shape.NumElements()))
	}
	return &Tensor{
		data:         t.data,
		shape:        shape.Clone(),
		stride:       shape.ComputeStrides(),
		dtype:        t.dtype,
		device:       t.device,
		backend:      t.backend,
		requiresGrad: t.requiresGrad,
		pinned:       t.pinned,
	}
}

// Clone creates a deep copy of the tensor. The copy has its own storage
// and does not track gradients.
func (t *Tensor) Clone() *Tensor {
	data := make([]byte, len(t.data))
	copy(data, t.data)
	return &Tensor{
		data:    data,
		shape:   t.shape.Clone(),
		stride:  append([]int(nil), t.stride...),
		dtype:   t.dtype,
		device:  t.device,
		backend: t.backend,
	}
}

// Detach returns a tensor that shares the same storage but does not track
// gradients.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{
		data:    t.data, // Share data (zero-copy)
		shape:   t.shape.Clone(),
		stride:  append([]int(nil), t.stride...),
		dtype:   t.dtype,
		device:  t.device,
		backend: t.backend,
		pinned:  t.pinned,
	}
}

// PinMemory returns a copy of the tensor in pinned host memory.
func (t *Tensor) PinMemory() *Tensor {
	c := t.Clone()
	c.requiresGrad = t.requiresGrad
	c.pinned = true
	return c
}

// Item returns the value of a single-element tensor as float64.
// Panics if the tensor has more than one element.
func (t *Tensor) Item() float64 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.shape))
	}
	return t.FloatAt(0)
}

// FloatAt returns the element at flat index i converted to float64.
func (t *Tensor) FloatAt(i int) float64 {
	switch t.dtype {
	case Float32:
		return float64(t.AsFloat32()[i])
	case Float64:
		return t.AsFloat64()[i]
	case Int32:
		return float64(t.AsInt32()[i])
	case Int64:
		return float64(t.AsInt64()[i])
	case Uint8:
		return float64(t.AsUint8()[i])
	case Bool:
		if t.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.dtype))
	}
}

// SetFloatAt stores v at flat index i, converting to the tensor's dtype.
func (t *Tensor) SetFloatAt(i int, v float64) {
	switch t.dtype {
	case Float32:
		t.AsFloat32()[i] = float32(v)
	case Float64:
		t.AsFloat64()[i] = v
	case Int32:
		t.AsInt32()[i] = int32(v)
	case Int64:
		t.AsInt64()[i] = int64(v)
	case Uint8:
		t.AsUint8()[i] = uint8(v)
	case Bool:
		t.AsBool()[i] = v != 0
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.dtype))
	}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.dtype, t.shape, t.device)
}
