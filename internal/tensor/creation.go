package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType, b Backend) *Tensor {
	t, err := New(shape, dtype, b)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	// Data is already zero-initialized by make()
	return t
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, dtype DataType, b Backend) *Tensor {
	t := Zeros(shape, dtype, b)
	for i := 0; i < t.NumElements(); i++ {
		t.SetFloatAt(i, value)
	}
	return t
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType, b Backend) *Tensor {
	return Full(shape, 1, dtype, b)
}

// Rand creates a float tensor with values uniformly distributed in [0, 1).
// Only works with float types.
func Rand(shape Shape, dtype DataType, b Backend) *Tensor {
	if !dtype.IsFloatingPoint() {
		panic("Rand only supports float32 and float64 types")
	}
	t := Zeros(shape, dtype, b)
	for i := 0; i < t.NumElements(); i++ {
		t.SetFloatAt(i, rand.Float64()) //nolint:gosec // G404: math/rand intentionally, not security-sensitive
	}
	return t
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape, b Backend) (*Tensor, error) {
	var dummy T
	dtype := inferDataType(dummy)

	if shape.NumElements() != len(data) {
		return nil, errShapeMismatch(shape, len(data))
	}

	t, err := New(shape, dtype, b)
	if err != nil {
		return nil, err
	}
	copy(Values[T](t), data)
	return t, nil
}

// Values returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func Values[T DType](t *Tensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.AsFloat32()).([]T)
	case float64:
		return any(t.AsFloat64()).([]T)
	case int32:
		return any(t.AsInt32()).([]T)
	case int64:
		return any(t.AsInt64()).([]T)
	case uint8:
		return any(t.AsUint8()).([]T)
	case bool:
		return any(t.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}
