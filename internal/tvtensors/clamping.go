package tvtensors

import (
	"fmt"
	"strings"
)

// ClampingMode is the policy governing how out-of-canvas box coordinates
// are constrained by downstream transforms. It is validated here but not
// computed here.
type ClampingMode int

// Supported clamping modes. Soft is the construction default; None turns
// clamping off entirely.
const (
	ClampingModeSoft ClampingMode = iota
	ClampingModeHard
	ClampingModeNone
)

// String returns the canonical mode name.
func (m ClampingMode) String() string {
	switch m {
	case ClampingModeSoft:
		return "soft"
	case ClampingModeHard:
		return "hard"
	case ClampingModeNone:
		return "none"
	default:
		return "unknown"
	}
}

// valid reports whether m is a member of the closed enum.
func (m ClampingMode) valid() bool {
	return m == ClampingModeSoft || m == ClampingModeHard || m == ClampingModeNone
}

// ParseClampingMode parses a case-insensitive clamping mode alias.
func ParseClampingMode(s string) (ClampingMode, error) {
	switch strings.ToLower(s) {
	case "soft":
		return ClampingModeSoft, nil
	case "hard":
		return ClampingModeHard, nil
	case "none":
		return ClampingModeNone, nil
	default:
		return 0, fmt.Errorf("%w: clamping_mode must be soft, hard or none, got %q", ErrInvalidArgument, s)
	}
}
