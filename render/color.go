package render

import (
	"github.com/lixenwraith/maze3d/vmath"
)

// RGB is a terminal-independent 24-bit color; display converts it at draw time
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Grey returns a neutral color at brightness b, saturating outside [0,1]
func Grey(b float64) RGB {
	v := channel(255 * b)
	return RGB{v, v, v}
}

// Scale darkens c by factor, values outside [0,1] saturate
func (c RGB) Scale(factor float64) RGB {
	f := vmath.Clamp(factor, 0, 1)
	return RGB{
		R: channel(float64(c.R) * f),
		G: channel(float64(c.G) * f),
		B: channel(float64(c.B) * f),
	}
}

func channel(v float64) uint8 {
	return uint8(vmath.Clamp(v, 0, 255))
}
