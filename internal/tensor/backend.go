package tensor

// Backend defines the interface compute backends must implement.
// Backends own the actual numeric kernels; the Tensor methods in ops.go
// are thin wrappers over a backend.
//
// Implementations:
//   - CPU: pure Go kernels (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *Tensor) *Tensor
	Sub(a, b *Tensor) *Tensor
	Mul(a, b *Tensor) *Tensor
	Div(a, b *Tensor) *Tensor

	// Scalar operations (element-wise with a scalar operand).
	AddScalar(x *Tensor, scalar float64) *Tensor
	SubScalar(x *Tensor, scalar float64) *Tensor
	MulScalar(x *Tensor, scalar float64) *Tensor
	DivScalar(x *Tensor, scalar float64) *Tensor

	// Shape operations.
	Reshape(x *Tensor, newShape Shape) *Tensor
	Transpose(x *Tensor, axes ...int) *Tensor

	// Reduction operations.
	Sum(x *Tensor) *Tensor // total sum (single-element result)

	// Manipulation operations.
	Chunk(x *Tensor, n, dim int) []*Tensor // split into n parts along dim

	// Type conversion.
	Cast(x *Tensor, dtype DataType) *Tensor

	// Metadata.
	Name() string
	Device() Device
}
