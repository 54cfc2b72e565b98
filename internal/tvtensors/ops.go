package tvtensors

import (
	"fmt"

	"github.com/govision-ml/govision/internal/tensor"
)

// Binary arithmetic. These are not metadata-preserving, so the result is
// always a plain tensor (see dispatch); the error path fires only on
// cross-kind operands.

// Add performs element-wise addition with broadcasting.
func (tv *TVTensor) Add(other TensorLike) (TensorLike, error) {
	raw, err := tv.unwrapOperand(other)
	if err != nil {
		return nil, err
	}
	return tv.dispatch(OpAdd, tv.data.Add(raw)), nil
}

// Sub performs element-wise subtraction with broadcasting.
func (tv *TVTensor) Sub(other TensorLike) (TensorLike, error) {
	raw, err := tv.unwrapOperand(other)
	if err != nil {
		return nil, err
	}
	return tv.dispatch(OpSub, tv.data.Sub(raw)), nil
}

// Mul performs element-wise multiplication with broadcasting.
func (tv *TVTensor) Mul(other TensorLike) (TensorLike, error) {
	raw, err := tv.unwrapOperand(other)
	if err != nil {
		return nil, err
	}
	return tv.dispatch(OpMul, tv.data.Mul(raw)), nil
}

// Div performs element-wise division with broadcasting.
func (tv *TVTensor) Div(other TensorLike) (TensorLike, error) {
	raw, err := tv.unwrapOperand(other)
	if err != nil {
		return nil, err
	}
	return tv.dispatch(OpDiv, tv.data.Div(raw)), nil
}

// AddScalar adds a scalar to every element.
func (tv *TVTensor) AddScalar(s float64) TensorLike {
	return tv.dispatch(OpAddScalar, tv.data.AddScalar(s))
}

// SubScalar subtracts a scalar from every element.
func (tv *TVTensor) SubScalar(s float64) TensorLike {
	return tv.dispatch(OpSubScalar, tv.data.SubScalar(s))
}

// MulScalar multiplies every element by a scalar.
func (tv *TVTensor) MulScalar(s float64) TensorLike {
	return tv.dispatch(OpMulScalar, tv.data.MulScalar(s))
}

// DivScalar divides every element by a scalar.
func (tv *TVTensor) DivScalar(s float64) TensorLike {
	return tv.dispatch(OpDivScalar, tv.data.DivScalar(s))
}

// Reshape returns the data under a different shape.
func (tv *TVTensor) Reshape(dims ...int) TensorLike {
	return tv.dispatch(OpReshape, tv.data.Reshape(dims...))
}

// Transpose permutes the data's dimensions.
func (tv *TVTensor) Transpose(axes ...int) TensorLike {
	return tv.dispatch(OpTranspose, tv.data.Transpose(axes...))
}

// Sum returns the total sum as a scalar tensor.
func (tv *TVTensor) Sum() TensorLike {
	return tv.dispatch(OpSum, tv.data.Sum())
}

// Item returns the value of a single-element entity. The result is a
// plain number, never a wrapped value.
func (tv *TVTensor) Item() (float64, error) {
	if n := tv.data.NumElements(); n != 1 {
		return 0, fmt.Errorf("%w: Item requires a single-element tensor, got %d elements", ErrInvalidArgument, n)
	}
	return tv.data.Item(), nil
}

// Chunk splits the entity's data into n parts along dim. Multi-value
// results are never wrapped, irrespective of the allow-list or the
// return-type switch.
func (tv *TVTensor) Chunk(n, dim int) []*tensor.Tensor {
	return tv.data.Chunk(n, dim)
}

// Metadata-preserving operations. Under the TVTensor return type these
// re-wrap as the receiver's kind with a copy of its metadata; under the
// Tensor return type they return the plain tensor.

// Clone returns a copy with distinct storage and equal contents.
func (tv *TVTensor) Clone() TensorLike {
	return tv.dispatch(OpClone, tv.data.Clone())
}

// To converts the data to a different dtype, preserving the
// gradient-tracking flag.
func (tv *TVTensor) To(dtype tensor.DataType) TensorLike {
	out := tv.data.Cast(dtype)
	out.SetRequiresGrad(tv.data.RequiresGrad())
	return tv.dispatch(OpTo, out)
}

// Detach returns a value sharing storage with gradient tracking disabled.
func (tv *TVTensor) Detach() TensorLike {
	return tv.dispatch(OpDetach, tv.data.Detach())
}

// SetRequiresGrad sets the gradient-tracking flag in place.
func (tv *TVTensor) SetRequiresGrad(v bool) TensorLike {
	tv.data.SetRequiresGrad(v)
	return tv.dispatchSelf(OpSetRequiresGrad)
}

// PinMemory returns a copy in pinned host memory.
func (tv *TVTensor) PinMemory() TensorLike {
	return tv.dispatch(OpPinMemory, tv.data.PinMemory())
}

// In-place arithmetic. The receiver's storage is mutated; the returned
// value reports the receiver itself when the result is typed.

// AddInPlace adds other into the receiver's storage.
func (tv *TVTensor) AddInPlace(other TensorLike) (TensorLike, error) {
	return tv.inPlace(OpAddInPlace, other, (*tensor.Tensor).Add)
}

// SubInPlace subtracts other from the receiver's storage.
func (tv *TVTensor) SubInPlace(other TensorLike) (TensorLike, error) {
	return tv.inPlace(OpSubInPlace, other, (*tensor.Tensor).Sub)
}

// MulInPlace multiplies the receiver's storage by other.
func (tv *TVTensor) MulInPlace(other TensorLike) (TensorLike, error) {
	return tv.inPlace(OpMulInPlace, other, (*tensor.Tensor).Mul)
}

// DivInPlace divides the receiver's storage by other.
func (tv *TVTensor) DivInPlace(other TensorLike) (TensorLike, error) {
	return tv.inPlace(OpDivInPlace, other, (*tensor.Tensor).Div)
}

func (tv *TVTensor) inPlace(op string, other TensorLike, apply func(*tensor.Tensor, *tensor.Tensor) *tensor.Tensor) (TensorLike, error) {
	raw, err := tv.unwrapOperand(other)
	if err != nil {
		return nil, err
	}
	res := apply(tv.data, raw)
	if !res.Shape().Equal(tv.data.Shape()) || res.DType() != tv.data.DType() {
		return nil, fmt.Errorf("%w: in-place result %s%v does not match receiver %s%v",
			ErrInvalidArgument, res.DType(), res.Shape(), tv.data.DType(), tv.data.Shape())
	}
	copy(tv.data.Data(), res.Data())
	return tv.dispatchSelf(op), nil
}

// DeepCopy returns a fully independent entity: distinct storage, equal
// contents, same kind and metadata, and the same gradient-tracking flag.
// Unlike Clone it is always typed.
func (tv *TVTensor) DeepCopy() *TVTensor {
	data := tv.data.Clone()
	data.SetRequiresGrad(tv.data.RequiresGrad())
	out := &TVTensor{data: data, kind: tv.kind}
	store.attach(out, store.lookup(tv).Clone())
	return out
}
