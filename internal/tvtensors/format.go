package tvtensors

import (
	"fmt"
	"strings"
)

// BoundingBoxFormat is the coordinate format of a bounding box.
//
// Axis-aligned formats:
//   - XYXY: left, top, right, bottom
//   - XYWH: left, top, width, height
//   - CXCYWH: center x, center y, width, height
//
// Rotated formats:
//   - XYXYXYXY: the four corner points, clockwise
//   - XYWHR: left, top, width, height, rotation angle
//   - CXCYWHR: center x, center y, width, height, rotation angle
type BoundingBoxFormat int

// Supported bounding box formats.
const (
	XYXY BoundingBoxFormat = iota
	XYWH
	CXCYWH
	XYXYXYXY
	XYWHR
	CXCYWHR
)

// String returns the canonical format name.
func (f BoundingBoxFormat) String() string {
	switch f {
	case XYXY:
		return "XYXY"
	case XYWH:
		return "XYWH"
	case CXCYWH:
		return "CXCYWH"
	case XYXYXYXY:
		return "XYXYXYXY"
	case XYWHR:
		return "XYWHR"
	case CXCYWHR:
		return "CXCYWHR"
	default:
		return "Unknown"
	}
}

// CoordinatesPerBox returns the trailing-dimension width a box tensor must
// have in this format: 4 for axis-aligned, 5 for rotated-with-angle, 8 for
// quad corners.
func (f BoundingBoxFormat) CoordinatesPerBox() int {
	switch f {
	case XYXYXYXY:
		return 8
	case XYWHR, CXCYWHR:
		return 5
	default:
		return 4
	}
}

// ParseBoundingBoxFormat parses a case-insensitive format alias.
func ParseBoundingBoxFormat(s string) (BoundingBoxFormat, error) {
	switch strings.ToUpper(s) {
	case "XYXY":
		return XYXY, nil
	case "XYWH":
		return XYWH, nil
	case "CXCYWH":
		return CXCYWH, nil
	case "XYXYXYXY":
		return XYXYXYXY, nil
	case "XYWHR":
		return XYWHR, nil
	case "CXCYWHR":
		return CXCYWHR, nil
	default:
		return 0, fmt.Errorf("%w: format must be one of XYXY, XYWH, CXCYWH, XYXYXYXY, XYWHR, CXCYWHR, got %q",
			ErrInvalidArgument, s)
	}
}

// IsRotatedBoundingFormat reports whether the format encodes rotated
// boxes. It is a pure branch over the closed enum and is safe to call
// from ahead-of-time compiled or traced code paths.
func IsRotatedBoundingFormat(f BoundingBoxFormat) bool {
	switch f {
	case XYXYXYXY, XYWHR, CXCYWHR:
		return true
	default:
		return false
	}
}
