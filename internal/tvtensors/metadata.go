package tvtensors

// CanvasSize is the (height, width) of the image space a set of boxes or
// keypoints is defined against.
type CanvasSize struct {
	Height int
	Width  int
}

// Metadata is the kind-specific record attached to an entity. Image, Mask
// and Video entities carry no metadata; BoundingBoxes use all fields and
// KeyPoints use CanvasSize only.
type Metadata struct {
	Format       BoundingBoxFormat
	CanvasSize   CanvasSize
	ClampingMode ClampingMode
}

// Clone returns a copy of the record. Re-wrapping always stores a clone so
// that a derived entity never shares the mutable record with its source.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
