package core

import (
	"image/color"
	"math"
)

// Background colors
var (
	Black = Vec3{0, 0, 0}
	White = Vec3{1, 1, 1}
)

// ToRGBA converts a linear color to 8-bit RGBA. Channels are clamped to [0, 1]
// before scaling, alpha is always opaque.
func (v Vec3) ToRGBA() color.RGBA {
	return color.RGBA{
		R: channelToByte(v.X),
		G: channelToByte(v.Y),
		B: channelToByte(v.Z),
		A: 255,
	}
}

func channelToByte(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(255 * max(0, min(1, c)))
}
