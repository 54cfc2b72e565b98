// Package serialization stores typed entities with their metadata in a
// binary container: magic bytes, a JSON header describing each entity, a
// SHA-256 checksum, and an optionally zstd-compressed data section holding
// the raw tensor storage.
package serialization

import (
	"time"

	"github.com/govision-ml/govision/internal/tensor"
	"github.com/govision-ml/govision/internal/tvtensors"
)

// Format constants.
const (
	MagicBytes    = "GVTS"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256
)

// Flags for the container.
const (
	FlagZstd uint32 = 1 << 0 // bit 0: data section is zstd-compressed
)

// Header is the JSON header of a container file.
type Header struct {
	FormatVersion  int          `json:"format_version"`
	LibraryVersion string       `json:"library_version"`
	CreatedAt      time.Time    `json:"created_at"`
	Entities       []EntityMeta `json:"entities"`
}

// EntityMeta describes one stored entity.
type EntityMeta struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	DType        string `json:"dtype"`
	Shape        []int  `json:"shape"`
	RequiresGrad bool   `json:"requires_grad"`
	Format       string `json:"format,omitempty"`
	CanvasHeight int    `json:"canvas_height,omitempty"`
	CanvasWidth  int    `json:"canvas_width,omitempty"`
	ClampingMode string `json:"clamping_mode,omitempty"`
	Offset       int64  `json:"offset"` // offset in the uncompressed data section
	Size         int64  `json:"size"`   // size in bytes
}

// dtypeToString converts tensor.DataType to its serialized name.
func dtypeToString(dt tensor.DataType) string {
	return dt.String()
}

// stringToDtype converts a serialized name back to tensor.DataType.
func stringToDtype(s string) (tensor.DataType, bool) {
	switch s {
	case "float32":
		return tensor.Float32, true
	case "float64":
		return tensor.Float64, true
	case "int32":
		return tensor.Int32, true
	case "int64":
		return tensor.Int64, true
	case "uint8":
		return tensor.Uint8, true
	case "bool":
		return tensor.Bool, true
	default:
		return 0, false
	}
}

// stringToKind converts a serialized kind name back to tvtensors.Kind.
func stringToKind(s string) (tvtensors.Kind, bool) {
	switch s {
	case "Image":
		return tvtensors.KindImage, true
	case "Mask":
		return tvtensors.KindMask, true
	case "BoundingBoxes":
		return tvtensors.KindBoundingBoxes, true
	case "KeyPoints":
		return tvtensors.KindKeyPoints, true
	case "Video":
		return tvtensors.KindVideo, true
	default:
		return 0, false
	}
}
