package tvtensors

import (
	"fmt"

	"github.com/govision-ml/govision/internal/tensor"
)

// TVTensor is a typed entity: a tensor of a semantic kind. The wrapper
// shares the input tensor's storage (construction never copies data) and
// kind-specific metadata lives in the metadata store, keyed by the
// wrapper's identity.
type TVTensor struct {
	data *tensor.Tensor
	kind Kind
}

// options holds the optional construction parameters. requiresGrad is
// tri-state: nil inherits the input tensor's flag unchanged, non-nil
// forces it.
type options struct {
	requiresGrad *bool
	clampingMode *ClampingMode
}

// Option configures entity construction.
type Option func(*options)

// WithRequiresGrad forces the gradient-tracking flag of the wrapped
// tensor. Without this option the flag is inherited from the input.
func WithRequiresGrad(v bool) Option {
	return func(o *options) { o.requiresGrad = &v }
}

// WithClampingMode sets the clamping mode of a BoundingBoxes entity.
// The default is ClampingModeSoft.
func WithClampingMode(m ClampingMode) Option {
	return func(o *options) { o.clampingMode = &m }
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// newEntity wraps data without copying, applies the requires-grad
// override, and attaches metadata (if any) to the store.
func newEntity(kind Kind, data *tensor.Tensor, meta *Metadata, o *options) *TVTensor {
	if o.requiresGrad != nil {
		data.SetRequiresGrad(*o.requiresGrad)
	}
	tv := &TVTensor{data: data, kind: kind}
	store.attach(tv, meta)
	return tv
}

// NewImage wraps a 3D channel-first tensor as an Image entity.
func NewImage(data *tensor.Tensor, opts ...Option) (*TVTensor, error) {
	if ndim := len(data.Shape()); ndim != 3 {
		return nil, fmt.Errorf("%w: expected a 3D channel-first tensor, got %dD", ErrInvalidArgument, ndim)
	}
	return newEntity(KindImage, data, nil, applyOptions(opts)), nil
}

// NewMask wraps a tensor as a segmentation or detection Mask entity.
// A 2D input gains a leading channel dimension of size 1 (as a zero-copy
// view); the result is always 3D.
func NewMask(data *tensor.Tensor, opts ...Option) (*TVTensor, error) {
	if len(data.Shape()) == 2 {
		data = data.View(append(tensor.Shape{1}, data.Shape()...))
	}
	if ndim := len(data.Shape()); ndim != 3 {
		return nil, fmt.Errorf("%w: expected a 2D or 3D tensor, got %dD", ErrInvalidArgument, ndim)
	}
	return newEntity(KindMask, data, nil, applyOptions(opts)), nil
}

// NewVideo wraps a tensor of at least 4 dimensions as a Video entity.
func NewVideo(data *tensor.Tensor, opts ...Option) (*TVTensor, error) {
	if ndim := len(data.Shape()); ndim < 4 {
		return nil, fmt.Errorf("%w: expected a tensor of at least 4 dimensions, got %dD", ErrInvalidArgument, ndim)
	}
	return newEntity(KindVideo, data, nil, applyOptions(opts)), nil
}

// NewBoundingBoxes wraps a tensor as a BoundingBoxes entity.
//
// The input must be 1D (a single box, viewed as 2D without copying) or 2D
// with one box per row. The trailing width must match the format's
// coordinate count, and rotated formats require a floating-point dtype.
func NewBoundingBoxes(data *tensor.Tensor, format BoundingBoxFormat, canvasSize CanvasSize, opts ...Option) (*TVTensor, error) {
	o := applyOptions(opts)

	switch ndim := len(data.Shape()); ndim {
	case 1:
		data = data.View(tensor.Shape{1, data.Shape()[0]})
	case 2:
		// one box per row
	default:
		return nil, fmt.Errorf("%w: expected a 1D or 2D tensor, got %dD", ErrInvalidArgument, ndim)
	}

	if want, got := format.CoordinatesPerBox(), data.Shape()[1]; got != want {
		return nil, fmt.Errorf("%w: expected last dimension %d for format %s, got %d",
			ErrInvalidArgument, want, format, got)
	}

	if IsRotatedBoundingFormat(format) && !data.DType().IsFloatingPoint() {
		return nil, fmt.Errorf("%w: rotated bounding boxes should be floating point tensors, got %s",
			ErrInvalidArgument, data.DType())
	}

	clamping := ClampingModeSoft
	if o.clampingMode != nil {
		clamping = *o.clampingMode
	}
	if !clamping.valid() {
		return nil, fmt.Errorf("%w: clamping_mode must be soft, hard or none, got %d", ErrInvalidArgument, int(clamping))
	}

	meta := &Metadata{Format: format, CanvasSize: canvasSize, ClampingMode: clamping}
	return newEntity(KindBoundingBoxes, data, meta, o), nil
}

// NewKeyPoints wraps a tensor as a KeyPoints entity. The trailing
// dimension must be exactly 2 (x, y); a single 1D pair is viewed as 2D.
func NewKeyPoints(data *tensor.Tensor, canvasSize CanvasSize, opts ...Option) (*TVTensor, error) {
	shape := data.Shape()
	if len(shape) == 1 && shape[0] == 2 {
		data = data.View(tensor.Shape{1, 2})
		shape = data.Shape()
	}
	if len(shape) == 0 || shape[len(shape)-1] != 2 {
		return nil, fmt.Errorf("%w: expected a tensor of shape (..., 2), got %v", ErrInvalidArgument, shape)
	}

	meta := &Metadata{CanvasSize: canvasSize}
	return newEntity(KindKeyPoints, data, meta, applyOptions(opts)), nil
}

// Kind returns the entity's semantic kind.
func (tv *TVTensor) Kind() Kind {
	return tv.kind
}

// Unwrap returns the underlying tensor. The entity and the returned
// tensor share storage.
func (tv *TVTensor) Unwrap() *tensor.Tensor {
	return tv.data
}

// Shape returns the underlying tensor's shape.
func (tv *TVTensor) Shape() tensor.Shape {
	return tv.data.Shape()
}

// DType returns the underlying tensor's data type.
func (tv *TVTensor) DType() tensor.DataType {
	return tv.data.DType()
}

// Device returns the underlying tensor's compute device.
func (tv *TVTensor) Device() tensor.Device {
	return tv.data.Device()
}

// DataPtr returns the address of the underlying storage.
func (tv *TVTensor) DataPtr() uintptr {
	return tv.data.DataPtr()
}

// RequiresGrad reports whether the underlying tensor tracks gradients.
func (tv *TVTensor) RequiresGrad() bool {
	return tv.data.RequiresGrad()
}

// Metadata returns the entity's metadata record, or nil for kinds that
// carry none. The returned record is the live one; use Clone before
// mutating.
func (tv *TVTensor) Metadata() *Metadata {
	return store.lookup(tv)
}

// Format returns the bounding-box format. Zero-valued for kinds other
// than BoundingBoxes.
func (tv *TVTensor) Format() BoundingBoxFormat {
	if m := store.lookup(tv); m != nil {
		return m.Format
	}
	return 0
}

// CanvasSize returns the canvas size for BoundingBoxes and KeyPoints
// entities. Zero-valued for other kinds.
func (tv *TVTensor) CanvasSize() CanvasSize {
	if m := store.lookup(tv); m != nil {
		return m.CanvasSize
	}
	return CanvasSize{}
}

// ClampingMode returns the clamping mode of a BoundingBoxes entity.
// Zero-valued for other kinds.
func (tv *TVTensor) ClampingMode() ClampingMode {
	if m := store.lookup(tv); m != nil {
		return m.ClampingMode
	}
	return 0
}

// String returns a human-readable representation of the entity.
func (tv *TVTensor) String() string {
	if m := store.lookup(tv); m != nil && tv.kind == KindBoundingBoxes {
		return fmt.Sprintf("%s[%s]%v format=%s canvas=(%d,%d)",
			tv.kind, tv.data.DType(), tv.data.Shape(), m.Format, m.CanvasSize.Height, m.CanvasSize.Width)
	}
	return fmt.Sprintf("%s[%s]%v", tv.kind, tv.data.DType(), tv.data.Shape())
}
