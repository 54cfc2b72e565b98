package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/govision-ml/govision/internal/parallel"
	"github.com/govision-ml/govision/internal/tensor"
)

// Add performs element-wise addition with broadcasting.
func (c *CPUBackend) Add(a, b *tensor.Tensor) *tensor.Tensor {
	if out, ok := c.fastFloat64(a, b, floats.AddTo); ok {
		return out
	}
	return c.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.Tensor) *tensor.Tensor {
	if out, ok := c.fastFloat64(a, b, floats.SubTo); ok {
		return out
	}
	return c.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.Tensor) *tensor.Tensor {
	if out, ok := c.fastFloat64(a, b, floats.MulTo); ok {
		return out
	}
	return c.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (c *CPUBackend) Div(a, b *tensor.Tensor) *tensor.Tensor {
	if out, ok := c.fastFloat64(a, b, floats.DivTo); ok {
		return out
	}
	return c.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// fastFloat64 dispatches to a gonum kernel when both operands are float64
// tensors of identical shape.
func (c *CPUBackend) fastFloat64(a, b *tensor.Tensor, op func(dst, s, t []float64) []float64) (*tensor.Tensor, bool) {
	if a.DType() != tensor.Float64 || b.DType() != tensor.Float64 || !a.Shape().Equal(b.Shape()) {
		return nil, false
	}
	out := tensor.Zeros(a.Shape(), tensor.Float64, c)
	op(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	return out, true
}

// elementWise performs a dtype-generic element-wise operation with
// broadcasting, staging values through float64.
func (c *CPUBackend) elementWise(a, b *tensor.Tensor, op func(float64, float64) float64) *tensor.Tensor {
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	out := tensor.Zeros(outShape, a.DType(), c)

	aData := toFloat64Slice(a)
	bData := toFloat64Slice(b)
	res := make([]float64, outShape.NumElements())

	parallel.For(len(res), func(i int) {
		aIdx := broadcastIndex(i, outShape, a.Shape())
		bIdx := broadcastIndex(i, outShape, b.Shape())
		res[i] = op(aData[aIdx], bData[bIdx])
	}, c.par)

	fromFloat64Slice(res, out)
	return out
}

// AddScalar adds a scalar to every element.
func (c *CPUBackend) AddScalar(x *tensor.Tensor, scalar float64) *tensor.Tensor {
	if x.DType() == tensor.Float64 {
		out := tensor.Zeros(x.Shape(), tensor.Float64, c)
		copy(out.AsFloat64(), x.AsFloat64())
		floats.AddConst(scalar, out.AsFloat64())
		return out
	}
	return c.scalarWise(x, func(v float64) float64 { return v + scalar })
}

// SubScalar subtracts a scalar from every element.
func (c *CPUBackend) SubScalar(x *tensor.Tensor, scalar float64) *tensor.Tensor {
	return c.AddScalar(x, -scalar)
}

// MulScalar multiplies every element by a scalar.
func (c *CPUBackend) MulScalar(x *tensor.Tensor, scalar float64) *tensor.Tensor {
	if x.DType() == tensor.Float64 {
		out := tensor.Zeros(x.Shape(), tensor.Float64, c)
		floats.ScaleTo(out.AsFloat64(), scalar, x.AsFloat64())
		return out
	}
	return c.scalarWise(x, func(v float64) float64 { return v * scalar })
}

// DivScalar divides every element by a scalar.
func (c *CPUBackend) DivScalar(x *tensor.Tensor, scalar float64) *tensor.Tensor {
	return c.scalarWise(x, func(v float64) float64 { return v / scalar })
}

func (c *CPUBackend) scalarWise(x *tensor.Tensor, op func(float64) float64) *tensor.Tensor {
	out := tensor.Zeros(x.Shape(), x.DType(), c)
	n := x.NumElements()
	parallel.For(n, func(i int) {
		out.SetFloatAt(i, op(x.FloatAt(i)))
	}, c.par)
	return out
}

// Helper functions

func toFloat64Slice(t *tensor.Tensor) []float64 {
	if t.DType() == tensor.Float64 {
		return t.AsFloat64()
	}
	dst := make([]float64, t.NumElements())
	for i := range dst {
		dst[i] = t.FloatAt(i)
	}
	return dst
}

func fromFloat64Slice(src []float64, t *tensor.Tensor) {
	if t.DType() == tensor.Float64 {
		copy(t.AsFloat64(), src)
		return
	}
	for i, v := range src {
		t.SetFloatAt(i, v)
	}
}

// broadcastIndex maps a flat index in the output shape to the flat index
// of the (possibly broadcast) input shape.
func broadcastIndex(flatIdx int, outShape, inShape tensor.Shape) int {
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	inStrides := inShape.ComputeStrides()
	inIdx := 0

	offset := len(outShape) - len(inShape)
	for i := 0; i < len(inShape); i++ {
		outDimIdx := indices[offset+i]
		if inShape[i] == 1 {
			outDimIdx = 0 // broadcast dimension always reads index 0
		}
		inIdx += outDimIdx * inStrides[i]
	}

	return inIdx
}
