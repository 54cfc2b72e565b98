package tvtensors

import (
	"fmt"
	"strings"
)

// ReturnType controls whether intercepted allow-list operations return
// typed entities or plain tensors.
type ReturnType int

// Return type values. The process-wide default is ReturnTypeTensor.
const (
	ReturnTypeTensor ReturnType = iota
	ReturnTypeTVTensor
)

// String returns the canonical name of the return type.
func (rt ReturnType) String() string {
	switch rt {
	case ReturnTypeTensor:
		return "Tensor"
	case ReturnTypeTVTensor:
		return "TVTensor"
	default:
		return "Unknown"
	}
}

// returnType is ordinary process-wide mutable state with no cross-thread
// synchronization, matching the "current context" globals it models.
// Mutating it concurrently from multiple goroutines is undefined; callers
// own the single-threaded cooperative discipline.
var returnType = ReturnTypeTensor

// CurrentReturnType returns the active return type.
func CurrentReturnType() ReturnType {
	return returnType
}

// SetReturnType sets the process-wide return type from a case-insensitive
// alias ("tensor" or "tvtensor") and returns a restore function capturing
// the value that was live at the call.
//
// Used scoped, the restore function reconstructs the prior state exactly:
// nested scopes and direct unrestored sets inside the scope do not affect
// what exit restores, and a deferred call runs on panic exit paths too.
//
//	restore, err := tvtensors.SetReturnType("TVTensor")
//	if err != nil { ... }
//	defer restore()
//
// Used as a direct global mutator, simply drop the restore function; the
// caller is then responsible for resetting the value.
func SetReturnType(value string) (restore func(), err error) {
	var rt ReturnType
	switch strings.ToLower(value) {
	case "tensor":
		rt = ReturnTypeTensor
	case "tvtensor":
		rt = ReturnTypeTVTensor
	default:
		return nil, fmt.Errorf("%w: return_type must be %q or %q, got %q",
			ErrInvalidArgument, "Tensor", "TVTensor", value)
	}

	prev := returnType
	returnType = rt
	return func() { returnType = prev }, nil
}
