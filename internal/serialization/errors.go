package serialization

import "errors"

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrOutOfBounds        = errors.New("entity extends beyond data section")
	ErrUnknownKind        = errors.New("unknown entity kind")
	ErrUnknownDType       = errors.New("unknown data type")
)
