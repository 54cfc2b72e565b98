package tvtensors

// Wrap returns a typed entity of like's kind over t's storage. No data is
// copied: the result's DataPtr equals t's. The metadata attached to the
// result is a copy of like's record, so later mutation of either entity's
// record never leaks into the other.
//
// Wrap is used internally by the interceptor and exposed for callers
// producing results outside the interception path:
//
//	out, _ := boxes.Mul(scale) // plain tensor: Mul is not preserving
//	boxes2 := tvtensors.Wrap(out, boxes)
func Wrap(t TensorLike, like *TVTensor) *TVTensor {
	tv := &TVTensor{data: t.Unwrap(), kind: like.kind}
	store.attach(tv, store.lookup(like).Clone())
	return tv
}
