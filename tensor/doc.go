// Copyright 2025 GoVision ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense tensor operations in
// the GoVision framework.
//
// # Overview
//
// Tensors are contiguous multi-dimensional arrays with runtime dtype and
// device information. This package provides:
//   - The Tensor type with zero-copy views, typed slice access and
//     storage-identity introspection (DataPtr)
//   - NumPy-style broadcasting for element-wise arithmetic
//   - A Backend interface for device-specific kernels
//
// # Basic Usage
//
//	import (
//	    "github.com/govision-ml/govision/backend/cpu"
//	    "github.com/govision-ml/govision/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32, backend)
//	    y := tensor.Ones(tensor.Shape{2, 3}, tensor.Float32, backend)
//
//	    z := x.Add(y)
//	    _ = z.MulScalar(2)
//	}
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
package tensor
