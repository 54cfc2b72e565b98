package tvtensors

import (
	"fmt"
	"sort"

	"github.com/govision-ml/govision/internal/tensor"
)

// TensorLike is a value backed by dense tensor storage: either a plain
// *tensor.Tensor or a typed *TVTensor. It is the result type of every
// intercepted operation.
type TensorLike interface {
	Unwrap() *tensor.Tensor
}

// Operation names used by the interception table.
const (
	OpAdd             = "Add"
	OpSub             = "Sub"
	OpMul             = "Mul"
	OpDiv             = "Div"
	OpAddScalar       = "AddScalar"
	OpSubScalar       = "SubScalar"
	OpMulScalar       = "MulScalar"
	OpDivScalar       = "DivScalar"
	OpReshape         = "Reshape"
	OpTranspose       = "Transpose"
	OpSum             = "Sum"
	OpClone           = "Clone"
	OpTo              = "To"
	OpDetach          = "Detach"
	OpSetRequiresGrad = "SetRequiresGrad"
	OpPinMemory       = "PinMemory"
	OpAddInPlace      = "AddInPlace"
	OpSubInPlace      = "SubInPlace"
	OpMulInPlace      = "MulInPlace"
	OpDivInPlace      = "DivInPlace"
)

// DefaultPreservingOps is the allow-list of operations that preserve the
// typed entity class when the return type is TVTensor. Membership is a
// configuration input defined by the runtime, not derived here: these are
// the operations with metadata significance, plus the in-place arithmetic
// forms, which must report the typed class rather than a degraded tensor.
var DefaultPreservingOps = []string{
	OpClone,
	OpTo,
	OpDetach,
	OpSetRequiresGrad,
	OpPinMemory,
	OpAddInPlace,
	OpSubInPlace,
	OpMulInPlace,
	OpDivInPlace,
}

var preservingOps = func() map[string]struct{} {
	m := make(map[string]struct{}, len(DefaultPreservingOps))
	for _, op := range DefaultPreservingOps {
		m[op] = struct{}{}
	}
	return m
}()

// PreservingOps returns the configured allow-list, sorted.
func PreservingOps() []string {
	ops := make([]string, 0, len(preservingOps))
	for op := range preservingOps {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func isPreservingOp(op string) bool {
	_, ok := preservingOps[op]
	return ok
}

// dispatch is the single choke point deciding the result type of an
// intercepted operation that produced raw. Operations outside the
// allow-list always degrade to the plain tensor, regardless of the
// return-type switch; allow-list operations re-wrap under the TVTensor
// return type, attaching a copy of the receiver's metadata.
func (tv *TVTensor) dispatch(op string, raw *tensor.Tensor) TensorLike {
	if !isPreservingOp(op) {
		return raw
	}
	if CurrentReturnType() != ReturnTypeTVTensor {
		return raw
	}
	return Wrap(raw, tv)
}

// dispatchSelf is the in-place variant of dispatch: the receiver mutated
// its own storage, so the typed result is the receiver itself rather than
// a fresh wrapper.
func (tv *TVTensor) dispatchSelf(op string) TensorLike {
	if !isPreservingOp(op) || CurrentReturnType() != ReturnTypeTVTensor {
		return tv.data
	}
	return tv
}

// unwrapOperand unwraps a binary operand, rejecting cross-kind arithmetic:
// two different entity kinds cannot be combined, while same-kind and
// entity-with-plain-tensor operands are fine.
func (tv *TVTensor) unwrapOperand(other TensorLike) (*tensor.Tensor, error) {
	if o, ok := other.(*TVTensor); ok && o.kind != tv.kind {
		return nil, fmt.Errorf("%w: %s and %s", ErrUnsupportedOperand, tv.kind, o.kind)
	}
	return other.Unwrap(), nil
}
