package render

import (
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
	"github.com/lixenwraith/maze3d/world"
)

var wallColors = [world.WallTypeCount]RGB{
	world.Empty:  RGBBlack,
	world.Red:    {220, 60, 60},
	world.Green:  {70, 200, 90},
	world.Blue:   {70, 110, 230},
	world.White:  {225, 225, 225},
	world.Yellow: {230, 200, 70},
}

// wallColor scales the material color by light, or returns grey in monochrome
func wallColor(t world.WallType, light float64, mono bool) RGB {
	if mono {
		return Grey(vmath.Clamp(light, parameter.MonochromeMinBrightness, 1))
	}
	base := RGBWhite
	if int(t) < len(wallColors) {
		base = wallColors[t]
	}
	return base.Scale(vmath.Clamp(light, parameter.ColorMinBrightness, 1))
}

// wallGlyph picks from the 5-level ramp, overlaying brick mortar and the
// double-line cap at the top and bottom of the slice
func wallGlyph(light, wallX, yRatio float64) rune {
	brickX := int(wallX*parameter.BrickColumns) % parameter.BrickColumns
	brickY := int(yRatio*parameter.BrickRows) % parameter.BrickRows

	mortarH := brickY == 0 || brickY == parameter.BrickRows/2
	mortarV := brickX == 0
	edge := yRatio < parameter.BrickEdge || yRatio > 1-parameter.BrickEdge

	switch {
	case light > 0.75:
		if edge {
			return '═'
		}
		if mortarH || mortarV {
			return '░'
		}
		return '█'
	case light > 0.55:
		if mortarH || mortarV {
			return '░'
		}
		return '▓'
	case light > 0.35:
		if mortarH {
			return '·'
		}
		return '▒'
	case light > 0.20:
		return '░'
	default:
		return '·'
	}
}

// ceilingGlyph maps a 0..CeilingLevels-1 level onto the 4-step ramp
func ceilingGlyph(level int) rune {
	switch {
	case level <= 5:
		return ' '
	case level <= 10:
		return '·'
	case level <= 15:
		return '░'
	default:
		return '▒'
	}
}

// paintBackground fills the ceiling gradient (top third), the checkered floor
// (bottom third) and blanks the middle. Walls are drawn over it.
func (r *Renderer) paintBackground() {
	w, h := r.buf.Width(), r.buf.Height()
	ceilingRows := h / 3
	floorStart := h * 2 / 3

	for y := 0; y < h; y++ {
		switch {
		case y < ceilingRows:
			depth := float64(y) / (float64(h) / 3)
			level := int(depth * parameter.CeilingLevels)
			ch := ceilingGlyph(level)
			l := uint8(level)
			fg := RGB{20 + l, 20 + l, 40 + 2*l}
			for x := 0; x < w; x++ {
				r.buf.Set(x, y, ch, fg)
			}

		case y >= floorStart:
			floorY := y - floorStart
			depth := float64(h/3) / (float64(floorY) + 1)
			light := vmath.Clamp(1/(1+depth*parameter.FloorFalloff), 0, 1)
			fg := RGB{uint8(70 * light), uint8(55 * light), uint8(35 * light)}
			for x := 0; x < w; x++ {
				r.buf.Set(x, y, floorGlyph(light, x, floorY), fg)
			}

		default:
			for x := 0; x < w; x++ {
				r.buf.Set(x, y, ' ', RGBBlack)
			}
		}
	}
}

func floorGlyph(light float64, x, floorY int) rune {
	switch {
	case light < 0.2:
		return ' '
	case light < 0.4:
		return '·'
	case light < 0.6:
		return '░'
	}
	if (x/2+floorY/2)%2 == 0 {
		return '▓'
	}
	return '▒'
}
