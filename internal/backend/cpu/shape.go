package cpu

import (
	"fmt"

	"github.com/govision-ml/govision/internal/tensor"
)

// Reshape changes the tensor shape. The result has its own storage.
func (c *CPUBackend) Reshape(x *tensor.Tensor, newShape tensor.Shape) *tensor.Tensor {
	if err := newShape.Validate(); err != nil {
		panic(err)
	}
	if x.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape tensor with %d elements to shape %v (%d elements)",
			x.NumElements(), newShape, newShape.NumElements()))
	}

	out := tensor.Zeros(newShape, x.DType(), c)
	copy(out.Data(), x.Data())
	return out
}

// Transpose permutes tensor dimensions. With no axes, all dimensions are
// reversed.
func (c *CPUBackend) Transpose(x *tensor.Tensor, axes ...int) *tensor.Tensor {
	shape := x.Shape()

	if len(axes) == 0 {
		axes = make([]int, len(shape))
		for i := range axes {
			axes[i] = len(shape) - 1 - i
		}
	}

	if len(axes) != len(shape) {
		panic(fmt.Sprintf("axes length %d doesn't match tensor dimensions %d", len(axes), len(shape)))
	}

	newShape := make(tensor.Shape, len(shape))
	for i, axis := range axes {
		if axis < 0 || axis >= len(shape) {
			panic(fmt.Sprintf("axis %d out of bounds for tensor with %d dimensions", axis, len(shape)))
		}
		newShape[i] = shape[axis]
	}

	out := tensor.Zeros(newShape, x.DType(), c)

	oldStrides := shape.ComputeStrides()
	newStrides := newShape.ComputeStrides()

	for i := 0; i < x.NumElements(); i++ {
		indices := make([]int, len(shape))
		temp := i
		for j := 0; j < len(shape); j++ {
			indices[j] = temp / oldStrides[j]
			temp %= oldStrides[j]
		}

		newIdx := 0
		for j, axis := range axes {
			newIdx += indices[axis] * newStrides[j]
		}

		out.SetFloatAt(newIdx, x.FloatAt(i))
	}

	return out
}

// Chunk splits the tensor into n equal parts along dim. The dimension
// size must be divisible by n. Each chunk has its own storage.
func (c *CPUBackend) Chunk(x *tensor.Tensor, n, dim int) []*tensor.Tensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("chunk dim %d out of bounds for %dD tensor", dim, len(shape)))
	}
	if shape[dim]%n != 0 {
		panic(fmt.Sprintf("dimension %d of size %d is not divisible into %d chunks", dim, shape[dim], n))
	}

	chunkDim := shape[dim] / n
	outer := 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	inner := 1
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}

	elemSize := x.DType().Size()
	rowBytes := inner * elemSize
	src := x.Data()

	chunks := make([]*tensor.Tensor, n)
	for k := 0; k < n; k++ {
		outShape := shape.Clone()
		outShape[dim] = chunkDim
		out := tensor.Zeros(outShape, x.DType(), c)
		dst := out.Data()

		for o := 0; o < outer; o++ {
			srcOff := (o*shape[dim] + k*chunkDim) * rowBytes
			dstOff := o * chunkDim * rowBytes
			copy(dst[dstOff:dstOff+chunkDim*rowBytes], src[srcOff:srcOff+chunkDim*rowBytes])
		}
		chunks[k] = out
	}
	return chunks
}
