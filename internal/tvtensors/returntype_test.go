package tvtensors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetReturnTypeParsing(t *testing.T) {
	t.Cleanup(func() { returnType = ReturnTypeTensor })

	// Aliases are case-insensitive.
	for _, alias := range []string{"TVTensor", "tvtensor", "TVTENSOR", "TvTensor"} {
		restore, err := SetReturnType(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.Equal(t, ReturnTypeTVTensor, CurrentReturnType())
		restore()
	}
	for _, alias := range []string{"Tensor", "tensor", "TENSOR"} {
		restore, err := SetReturnType(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.Equal(t, ReturnTypeTensor, CurrentReturnType())
		restore()
	}

	_, err := SetReturnType("ndarray")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), `return_type must be "Tensor" or "TVTensor", got "ndarray"`)
	assert.Equal(t, ReturnTypeTensor, CurrentReturnType(), "a failed set must not change the state")
}

func TestReturnTypeDefaultIsTensor(t *testing.T) {
	assert.Equal(t, ReturnTypeTensor, CurrentReturnType())
}

func TestReturnTypeNestedScopes(t *testing.T) {
	t.Cleanup(func() { returnType = ReturnTypeTensor })

	restore1, err := SetReturnType("TVTensor")
	require.NoError(t, err)
	assert.Equal(t, ReturnTypeTVTensor, CurrentReturnType())

	restore2, err := SetReturnType("Tensor")
	require.NoError(t, err)
	assert.Equal(t, ReturnTypeTensor, CurrentReturnType())

	restore2()
	assert.Equal(t, ReturnTypeTVTensor, CurrentReturnType(), "inner restore must reinstate the outer scope")

	restore1()
	assert.Equal(t, ReturnTypeTensor, CurrentReturnType(), "outer restore must reinstate the default")
}

func TestReturnTypeRestoreSurvivesDirectSet(t *testing.T) {
	t.Cleanup(func() { returnType = ReturnTypeTensor })

	restore, err := SetReturnType("TVTensor")
	require.NoError(t, err)

	// Direct sets inside the scope, with their restores dropped.
	_, err = SetReturnType("Tensor")
	require.NoError(t, err)
	_, err = SetReturnType("TVTensor")
	require.NoError(t, err)
	assert.Equal(t, ReturnTypeTVTensor, CurrentReturnType())

	// The outer restore reconstructs what was live when it was created,
	// not what the intervening sets left behind.
	restore()
	assert.Equal(t, ReturnTypeTensor, CurrentReturnType())
}

func TestReturnTypeRestoreRunsOnPanic(t *testing.T) {
	t.Cleanup(func() { returnType = ReturnTypeTensor })

	func() {
		defer func() { _ = recover() }()

		restore, err := SetReturnType("TVTensor")
		require.NoError(t, err)
		defer restore()

		panic("boom")
	}()

	assert.Equal(t, ReturnTypeTensor, CurrentReturnType(), "deferred restore must run on panic exit")
}

func TestReturnTypeString(t *testing.T) {
	assert.Equal(t, "Tensor", ReturnTypeTensor.String())
	assert.Equal(t, "TVTensor", ReturnTypeTVTensor.String())
}
