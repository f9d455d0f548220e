package renderer

import (
	"image"
	"image/color"
)

// PixelBuffer is the rendered image, stored row-major
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []color.RGBA
}

// NewPixelBuffer creates a black, fully transparent buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]color.RGBA, width*height),
	}
}

// At returns the pixel at (x, y)
func (b *PixelBuffer) At(x, y int) color.RGBA {
	return b.Pix[y*b.Width+x]
}

// Set stores the pixel at (x, y)
func (b *PixelBuffer) Set(x, y int, c color.RGBA) {
	b.Pix[y*b.Width+x] = c
}

// Image copies the buffer into an image.RGBA for encoding
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, b.At(x, y))
		}
	}
	return img
}

// AverageLuminance returns the mean Rec. 709 luminance of the buffer in [0, 1]
func (b *PixelBuffer) AverageLuminance() float64 {
	if len(b.Pix) == 0 {
		return 0
	}

	total := 0.0
	for _, c := range b.Pix {
		r := float64(c.R) / 255
		g := float64(c.G) / 255
		bl := float64(c.B) / 255
		total += 0.2126*r + 0.7152*g + 0.0722*bl
	}
	return total / float64(len(b.Pix))
}
