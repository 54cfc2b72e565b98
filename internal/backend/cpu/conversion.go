package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/govision-ml/govision/internal/tensor"
)

// Cast converts the tensor to a different data type. The result always has
// its own storage.
func (c *CPUBackend) Cast(x *tensor.Tensor, dtype tensor.DataType) *tensor.Tensor {
	out := tensor.Zeros(x.Shape(), dtype, c)
	if x.DType() == dtype {
		copy(out.Data(), x.Data())
		return out
	}
	for i := 0; i < x.NumElements(); i++ {
		out.SetFloatAt(i, x.FloatAt(i))
	}
	return out
}

// Sum returns the total sum of all elements as a scalar tensor.
// Boolean tensors sum to an int64 count of true elements.
func (c *CPUBackend) Sum(x *tensor.Tensor) *tensor.Tensor {
	dtype := x.DType()
	if dtype == tensor.Bool {
		dtype = tensor.Int64
	}
	out := tensor.Zeros(tensor.Shape{}, dtype, c)

	var sum float64
	if x.DType() == tensor.Float64 {
		sum = floats.Sum(x.AsFloat64())
	} else {
		for i := 0; i < x.NumElements(); i++ {
			sum += x.FloatAt(i)
		}
	}
	out.SetFloatAt(0, sum)
	return out
}
