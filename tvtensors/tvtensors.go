// Copyright 2025 GoVision ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tvtensors

import (
	"image"

	"github.com/govision-ml/govision/internal/tvtensors"
	"github.com/govision-ml/govision/tensor"
)

// Type aliases for public API

// TVTensor is a typed entity: a tensor of a semantic kind plus metadata.
type TVTensor = tvtensors.TVTensor

// TensorLike is the result type of intercepted operations: either a plain
// *tensor.Tensor or a *TVTensor.
type TensorLike = tvtensors.TensorLike

// Kind discriminates the semantic kind of an entity.
type Kind = tvtensors.Kind

// Entity kinds.
const (
	KindImage         Kind = tvtensors.KindImage
	KindMask          Kind = tvtensors.KindMask
	KindBoundingBoxes Kind = tvtensors.KindBoundingBoxes
	KindKeyPoints     Kind = tvtensors.KindKeyPoints
	KindVideo         Kind = tvtensors.KindVideo
)

// BoundingBoxFormat is the coordinate format of a bounding box.
type BoundingBoxFormat = tvtensors.BoundingBoxFormat

// Bounding box formats.
const (
	XYXY     BoundingBoxFormat = tvtensors.XYXY
	XYWH     BoundingBoxFormat = tvtensors.XYWH
	CXCYWH   BoundingBoxFormat = tvtensors.CXCYWH
	XYXYXYXY BoundingBoxFormat = tvtensors.XYXYXYXY
	XYWHR    BoundingBoxFormat = tvtensors.XYWHR
	CXCYWHR  BoundingBoxFormat = tvtensors.CXCYWHR
)

// ClampingMode is the policy for constraining out-of-canvas coordinates.
type ClampingMode = tvtensors.ClampingMode

// Clamping modes.
const (
	ClampingModeSoft ClampingMode = tvtensors.ClampingModeSoft
	ClampingModeHard ClampingMode = tvtensors.ClampingModeHard
	ClampingModeNone ClampingMode = tvtensors.ClampingModeNone
)

// ReturnType controls the result type of allow-list operations.
type ReturnType = tvtensors.ReturnType

// Return types.
const (
	ReturnTypeTensor   ReturnType = tvtensors.ReturnTypeTensor
	ReturnTypeTVTensor ReturnType = tvtensors.ReturnTypeTVTensor
)

// CanvasSize is the (height, width) of the reference image space.
type CanvasSize = tvtensors.CanvasSize

// Metadata is the kind-specific record attached to an entity.
type Metadata = tvtensors.Metadata

// Option configures entity construction.
type Option = tvtensors.Option

// Sentinel errors.
var (
	ErrInvalidArgument    = tvtensors.ErrInvalidArgument
	ErrUnsupportedOperand = tvtensors.ErrUnsupportedOperand
)

// WithRequiresGrad forces the gradient-tracking flag of the wrapped
// tensor; without it the flag is inherited from the input.
func WithRequiresGrad(v bool) Option { return tvtensors.WithRequiresGrad(v) }

// WithClampingMode sets the clamping mode of a BoundingBoxes entity.
func WithClampingMode(m ClampingMode) Option { return tvtensors.WithClampingMode(m) }

// NewImage wraps a 3D channel-first tensor as an Image entity.
func NewImage(data *tensor.Tensor, opts ...Option) (*TVTensor, error) {
	return tvtensors.NewImage(data, opts...)
}

// NewImageFromImage converts a decoded host image into a channel-first
// uint8 tensor and wraps it as an Image entity.
func NewImageFromImage(img image.Image, b tensor.Backend, opts ...Option) (*TVTensor, error) {
	return tvtensors.NewImageFromImage(img, b, opts...)
}

// NewMask wraps a 2D or 3D tensor as a Mask entity.
func NewMask(data *tensor.Tensor, opts ...Option) (*TVTensor, error) {
	return tvtensors.NewMask(data, opts...)
}

// NewVideo wraps a tensor of at least 4 dimensions as a Video entity.
func NewVideo(data *tensor.Tensor, opts ...Option) (*TVTensor, error) {
	return tvtensors.NewVideo(data, opts...)
}

// NewBoundingBoxes wraps a 1D or 2D tensor as a BoundingBoxes entity.
func NewBoundingBoxes(data *tensor.Tensor, format BoundingBoxFormat, canvasSize CanvasSize, opts ...Option) (*TVTensor, error) {
	return tvtensors.NewBoundingBoxes(data, format, canvasSize, opts...)
}

// NewKeyPoints wraps a tensor with trailing dimension 2 as a KeyPoints
// entity.
func NewKeyPoints(data *tensor.Tensor, canvasSize CanvasSize, opts ...Option) (*TVTensor, error) {
	return tvtensors.NewKeyPoints(data, canvasSize, opts...)
}

// Wrap returns an entity of like's kind over t's storage (zero-copy) with
// a copy of like's metadata.
func Wrap(t TensorLike, like *TVTensor) *TVTensor {
	return tvtensors.Wrap(t, like)
}

// SetReturnType sets the process-wide return type from a case-insensitive
// alias ("tensor" or "tvtensor") and returns a restore function capturing
// the value live at the call. Defer the restore for scoped use, or drop
// it to mutate globally.
func SetReturnType(value string) (restore func(), err error) {
	return tvtensors.SetReturnType(value)
}

// CurrentReturnType returns the active return type.
func CurrentReturnType() ReturnType {
	return tvtensors.CurrentReturnType()
}

// IsRotatedBoundingFormat reports whether the format encodes rotated
// boxes.
func IsRotatedBoundingFormat(f BoundingBoxFormat) bool {
	return tvtensors.IsRotatedBoundingFormat(f)
}

// ParseBoundingBoxFormat parses a case-insensitive format alias.
func ParseBoundingBoxFormat(s string) (BoundingBoxFormat, error) {
	return tvtensors.ParseBoundingBoxFormat(s)
}

// ParseClampingMode parses a case-insensitive clamping mode alias.
func ParseClampingMode(s string) (ClampingMode, error) {
	return tvtensors.ParseClampingMode(s)
}

// PreservingOps returns the configured allow-list of metadata-preserving
// operations, sorted.
func PreservingOps() []string {
	return tvtensors.PreservingOps()
}
