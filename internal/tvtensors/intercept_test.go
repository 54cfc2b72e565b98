package tvtensors

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govision-ml/govision/internal/tensor"
)

// withReturnType runs f with the return type set to alias, restoring the
// previous value afterwards.
func withReturnType(t *testing.T, alias string, f func()) {
	t.Helper()
	restore, err := SetReturnType(alias)
	require.NoError(t, err)
	defer restore()
	f()
}

func TestPreservingOpsSorted(t *testing.T) {
	ops := PreservingOps()
	require.NotEmpty(t, ops)
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1], ops[i], "PreservingOps must be sorted")
	}
	assert.Contains(t, ops, OpClone)
	assert.Contains(t, ops, OpTo)
	assert.Contains(t, ops, OpDetach)
	assert.Contains(t, ops, OpSetRequiresGrad)
	assert.Contains(t, ops, OpPinMemory)
	assert.Contains(t, ops, OpAddInPlace)
	assert.NotContains(t, ops, OpAdd)
	assert.NotContains(t, ops, OpMulScalar)
	assert.NotContains(t, ops, OpReshape)
}

func TestNonPreservingOpsAlwaysDegrade(t *testing.T) {
	// Even under the TVTensor return type, operations outside the
	// allow-list produce plain tensors.
	withReturnType(t, "TVTensor", func() {
		for _, m := range makers {
			tv := m.make(t)

			out := tv.MulScalar(2)
			_, isPlain := out.(*tensor.Tensor)
			assert.True(t, isPlain, "%s.MulScalar must degrade", m.kind)

			sum := tv.Sum()
			_, isPlain = sum.(*tensor.Tensor)
			assert.True(t, isPlain, "%s.Sum must degrade", m.kind)

			added, err := tv.Add(tv.Unwrap())
			require.NoError(t, err)
			_, isPlain = added.(*tensor.Tensor)
			assert.True(t, isPlain, "%s.Add must degrade", m.kind)
		}
	})
}

func TestPreservingOpsUnderTensorReturnType(t *testing.T) {
	// The default return type degrades even allow-list operations.
	withReturnType(t, "Tensor", func() {
		for _, m := range makers {
			tv := m.make(t)
			out := tv.Clone()
			_, isPlain := out.(*tensor.Tensor)
			assert.True(t, isPlain, "%s.Clone must degrade under Tensor return type", m.kind)
		}
	})
}

func TestPreservingOpsUnderTVTensorReturnType(t *testing.T) {
	withReturnType(t, "TVTensor", func() {
		for _, m := range makers {
			tv := m.make(t)

			out := tv.Clone()
			typed, ok := out.(*TVTensor)
			require.True(t, ok, "%s.Clone must stay typed", m.kind)
			assert.Equal(t, m.kind, typed.Kind())
			assert.NotEqual(t, tv.DataPtr(), typed.DataPtr(), "Clone must copy storage")

			det := tv.Detach()
			typed, ok = det.(*TVTensor)
			require.True(t, ok, "%s.Detach must stay typed", m.kind)
			assert.Equal(t, tv.DataPtr(), typed.DataPtr(), "Detach must share storage")
			assert.False(t, typed.RequiresGrad())

			conv := tv.To(tensor.Float64)
			typed, ok = conv.(*TVTensor)
			require.True(t, ok, "%s.To must stay typed", m.kind)
			assert.Equal(t, tensor.Float64, typed.DType())

			pinned := tv.PinMemory()
			typed, ok = pinned.(*TVTensor)
			require.True(t, ok, "%s.PinMemory must stay typed", m.kind)
			assert.True(t, typed.Unwrap().Pinned())
		}
	})
}

func TestCloneMetadataCopiedNotAliased(t *testing.T) {
	withReturnType(t, "TVTensor", func() {
		boxes := makeBoundingBoxes(t)

		out := boxes.Clone().(*TVTensor)
		src, dst := boxes.Metadata(), out.Metadata()
		require.NotNil(t, dst)

		if diff := cmp.Diff(src, dst); diff != "" {
			t.Errorf("cloned metadata differs (-src +dst):\n%s", diff)
		}
		assert.NotSame(t, src, dst, "metadata record must be copied, not aliased")

		// Mutating the derived record must not leak into the source.
		dst.ClampingMode = ClampingModeNone
		assert.Equal(t, ClampingModeSoft, boxes.ClampingMode())
	})
}

func TestSetRequiresGradReportsReceiver(t *testing.T) {
	withReturnType(t, "TVTensor", func() {
		boxes := makeBoundingBoxes(t)
		out := boxes.SetRequiresGrad(true)
		typed, ok := out.(*TVTensor)
		require.True(t, ok)
		assert.Same(t, boxes, typed, "in-place op must report the receiver itself")
		assert.True(t, boxes.RequiresGrad())
	})

	withReturnType(t, "Tensor", func() {
		img := makeImage(t)
		out := img.SetRequiresGrad(true)
		raw, ok := out.(*tensor.Tensor)
		require.True(t, ok)
		assert.Same(t, img.Unwrap(), raw)
		assert.True(t, img.RequiresGrad(), "mutation happens regardless of the return type")
	})
}

func TestInPlaceArithmetic(t *testing.T) {
	withReturnType(t, "TVTensor", func() {
		boxes := makeBoundingBoxes(t)
		ptr := boxes.DataPtr()

		two := tensor.Full(boxes.Shape(), 2, tensor.Float32, testBackend)
		out, err := boxes.MulInPlace(two)
		require.NoError(t, err)

		typed, ok := out.(*TVTensor)
		require.True(t, ok, "in-place arithmetic is allow-listed")
		assert.Same(t, boxes, typed)
		assert.Equal(t, ptr, boxes.DataPtr(), "storage identity must survive the mutation")

		vals := tensor.Values[float32](boxes.Unwrap())
		assert.Equal(t, []float32{2, 2, 10, 10, 4, 4, 12, 12}, vals)
	})

	withReturnType(t, "Tensor", func() {
		boxes := makeBoundingBoxes(t)
		one := tensor.Ones(boxes.Shape(), tensor.Float32, testBackend)
		out, err := boxes.AddInPlace(one)
		require.NoError(t, err)

		raw, ok := out.(*tensor.Tensor)
		require.True(t, ok)
		assert.Same(t, boxes.Unwrap(), raw)
		vals := tensor.Values[float32](boxes.Unwrap())
		assert.Equal(t, []float32{2, 2, 6, 6, 3, 3, 7, 7}, vals)
	})
}

func TestInPlaceRejectsShapeChange(t *testing.T) {
	boxes := makeBoundingBoxes(t)
	// Broadcasting against a wider operand would grow the result.
	wide := tensor.Ones(tensor.Shape{3, 2, 4}, tensor.Float32, testBackend)
	_, err := boxes.AddInPlace(wide)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCrossKindArithmeticRejected(t *testing.T) {
	img := makeImage(t)
	mask := makeMask(t)

	for _, op := range []func(TensorLike) (TensorLike, error){img.Add, img.Sub, img.Mul, img.Div, img.AddInPlace} {
		_, err := op(mask)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedOperand)
		assert.Contains(t, err.Error(), "Image")
		assert.Contains(t, err.Error(), "Mask")
	}
}

func TestSameKindAndPlainOperandsAllowed(t *testing.T) {
	kp := makeKeyPoints(t)

	// Same kind.
	out, err := kp.Add(makeKeyPoints(t))
	require.NoError(t, err)
	got := tensor.Values[float32](out.Unwrap())
	assert.Equal(t, []float32{2, 4, 6, 8, 10, 12}, got)

	// Plain tensor operand.
	ones := tensor.Ones(kp.Shape(), tensor.Float32, testBackend)
	out, err = kp.Add(ones)
	require.NoError(t, err)
	got = tensor.Values[float32](out.Unwrap())
	assert.Equal(t, []float32{2, 3, 4, 5, 6, 7}, got)
}

func TestChunkNeverWrapped(t *testing.T) {
	withReturnType(t, "TVTensor", func() {
		boxes := makeBoundingBoxes(t)
		parts := boxes.Chunk(2, 0)
		require.Len(t, parts, 2)
		for i, p := range parts {
			assert.Equal(t, tensor.Shape{1, 4}, p.Shape(), "chunk %d", i)
		}
	})
}

func TestReshapeAndTransposeDegrade(t *testing.T) {
	withReturnType(t, "TVTensor", func() {
		boxes := makeBoundingBoxes(t)

		r := boxes.Reshape(4, 2)
		_, isPlain := r.(*tensor.Tensor)
		assert.True(t, isPlain, "Reshape is not metadata-preserving")

		tr := boxes.Transpose()
		_, isPlain = tr.(*tensor.Tensor)
		assert.True(t, isPlain, "Transpose is not metadata-preserving")
		assert.Equal(t, tensor.Shape{4, 2}, tr.Unwrap().Shape())
	})
}

func TestToPreservesRequiresGrad(t *testing.T) {
	withReturnType(t, "TVTensor", func() {
		img := makeImage(t)
		img.SetRequiresGrad(true)

		out := img.To(tensor.Float64).(*TVTensor)
		assert.True(t, out.RequiresGrad(), "To must carry the gradient flag")
		assert.Equal(t, tensor.Float64, out.DType())
	})
}
