package tensor

import "fmt"

func errShapeMismatch(shape Shape, n int) error {
	return fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), n)
}

// Add performs element-wise addition with broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.backend.Add(t, other)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.backend.Sub(t, other)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return t.backend.Mul(t, other)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return t.backend.Div(t, other)
}

// AddScalar adds a scalar to every element.
func (t *Tensor) AddScalar(s float64) *Tensor {
	return t.backend.AddScalar(t, s)
}

// SubScalar subtracts a scalar from every element.
func (t *Tensor) SubScalar(s float64) *Tensor {
	return t.backend.SubScalar(t, s)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor) MulScalar(s float64) *Tensor {
	return t.backend.MulScalar(t, s)
}

// DivScalar divides every element by a scalar.
func (t *Tensor) DivScalar(s float64) *Tensor {
	return t.backend.DivScalar(t, s)
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
func (t *Tensor) Reshape(dims ...int) *Tensor {
	return t.backend.Reshape(t, Shape(dims))
}

// Transpose permutes the tensor's dimensions. With no axes, all
// dimensions are reversed (standard transpose for 2D).
func (t *Tensor) Transpose(axes ...int) *Tensor {
	return t.backend.Transpose(t, axes...)
}

// Sum returns the total sum of all elements as a single-element tensor.
func (t *Tensor) Sum() *Tensor {
	return t.backend.Sum(t)
}

// Chunk splits the tensor into n parts along dim. Each part has its own
// storage.
func (t *Tensor) Chunk(n, dim int) []*Tensor {
	return t.backend.Chunk(t, n, dim)
}

// Cast converts the tensor to a different data type.
func (t *Tensor) Cast(dtype DataType) *Tensor {
	return t.backend.Cast(t, dtype)
}
