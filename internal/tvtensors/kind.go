package tvtensors

// Kind discriminates the semantic kind of a typed entity.
type Kind int

// Supported entity kinds.
const (
	KindImage Kind = iota
	KindMask
	KindBoundingBoxes
	KindKeyPoints
	KindVideo
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "Image"
	case KindMask:
		return "Mask"
	case KindBoundingBoxes:
		return "BoundingBoxes"
	case KindKeyPoints:
		return "KeyPoints"
	case KindVideo:
		return "Video"
	default:
		return "Unknown"
	}
}
