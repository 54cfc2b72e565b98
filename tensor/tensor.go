// Copyright 2025 GoVision ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/govision-ml/govision/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense multi-dimensional array over a contiguous byte
// buffer, carrying dtype, device, gradient-tracking and pinned flags.
type Tensor = tensor.Tensor

// Backend is the interface compute backends implement.
type Backend = tensor.Backend

// New creates a zero-initialized tensor with the given shape and type.
func New(shape Shape, dtype DataType, b Backend) (*Tensor, error) {
	return tensor.New(shape, dtype, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType, b Backend) *Tensor {
	return tensor.Zeros(shape, dtype, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType, b Backend) *Tensor {
	return tensor.Ones(shape, dtype, b)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, dtype DataType, b Backend) *Tensor {
	return tensor.Full(shape, value, dtype, b)
}

// Rand creates a float tensor with values uniformly distributed in [0, 1).
func Rand(shape Shape, dtype DataType, b Backend) *Tensor {
	return tensor.Rand(shape, dtype, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T DType](data []T, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// Values returns a typed slice view of the tensor's data (zero-copy).
func Values[T DType](t *Tensor) []T {
	return tensor.Values[T](t)
}

// BroadcastShapes implements NumPy-style broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
