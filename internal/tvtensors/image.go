package tvtensors

import (
	"image"

	"github.com/govision-ml/govision/internal/tensor"
)

// FromImage converts a decoded host image into a channel-first uint8
// tensor of shape (3, H, W). Pixel values are truncated to 8 bits per
// channel; the alpha channel is dropped.
func FromImage(img image.Image, b tensor.Backend) *tensor.Tensor {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()

	t := tensor.Zeros(tensor.Shape{3, h, w}, tensor.Uint8, b)
	data := t.AsUint8()
	plane := h * w

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*w + x
			data[i] = uint8(r >> 8)
			data[plane+i] = uint8(g >> 8)
			data[2*plane+i] = uint8(bl >> 8)
		}
	}
	return t
}

// NewImageFromImage decodes a host image into a fresh channel-first uint8
// tensor and wraps it as an Image entity.
func NewImageFromImage(img image.Image, b tensor.Backend, opts ...Option) (*TVTensor, error) {
	return NewImage(FromImage(img, b), opts...)
}
