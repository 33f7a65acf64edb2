package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/lixenwraith/maze3d/camera"
	"github.com/lixenwraith/maze3d/entity"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
)

var itemColors = map[entity.ItemType]RGB{
	entity.ItemCoin:   {255, 210, 60},
	entity.ItemKey:    {90, 220, 230},
	entity.ItemHealth: {240, 70, 110},
	entity.ItemExit:   {120, 255, 140},
}

var npcColors = map[entity.NPCType]RGB{
	entity.NPCWanderer: {255, 170, 60},
	entity.NPCGuard:    {200, 120, 255},
}

// sprite is a billboard queued for the current frame
type sprite struct {
	pos    vmath.Vec2
	glyph  rune
	color  RGB
	scale  float64
	phase  float64
	bobs   bool
	distSq float64
}

// collectSprites gathers uncollected items and all NPCs into the scratch list
func (r *Renderer) collectSprites(cam *camera.Camera, ents *entity.Set) {
	r.sprites = r.sprites[:0]
	for i := range ents.Items {
		it := &ents.Items[i]
		if it.Collected {
			continue
		}
		r.sprites = append(r.sprites, sprite{
			pos:    it.Position,
			glyph:  it.Type.Icon(),
			color:  itemColors[it.Type],
			scale:  parameter.SpriteItemScale,
			distSq: it.Position.Sub(cam.Position).MagnitudeSq(),
		})
	}
	for _, n := range ents.NPCs {
		r.sprites = append(r.sprites, sprite{
			pos:    n.Position,
			glyph:  n.Type.Icon(),
			color:  npcColors[n.Type],
			scale:  parameter.SpriteNPCScale,
			phase:  n.AnimationPhase,
			bobs:   true,
			distSq: n.Position.Sub(cam.Position).MagnitudeSq(),
		})
	}
	// Far to near, nearer sprites overwrite
	slices.SortStableFunc(r.sprites, func(a, b sprite) int {
		return cmp.Compare(b.distSq, a.distSq)
	})
}

// drawSprites projects sprites through the inverse camera matrix and draws each
// visible column that is nearer than the wall in that column
func (r *Renderer) drawSprites(cam *camera.Camera, ents *entity.Set, horizon int, mono bool) {
	r.collectSprites(cam, ents)

	w, h := r.buf.Width(), r.buf.Height()
	dir, plane := cam.Direction, cam.Plane
	invDet := 1.0 / (plane.X*dir.Y - dir.X*plane.Y)

	for _, s := range r.sprites {
		rel := s.pos.Sub(cam.Position)
		tX := invDet * (dir.Y*rel.X - dir.X*rel.Y)
		tY := invDet * (-plane.Y*rel.X + plane.X*rel.Y)
		// Behind, grazing or too far
		if tY < parameter.RayMinDistance || tY > parameter.SpriteMaxDistance {
			continue
		}

		screenX := int(float64(w) / 2 * (1 + tX/tY))
		lineHeight := min(int(float64(h)/tY), h*parameter.WallMaxHeightFactor)
		spriteH := max(int(float64(lineHeight)*s.scale), 1)
		spriteW := max(int(float64(w)/2*s.scale/(plane.Magnitude()*tY)), 1)

		// Sprites stand on the floor line of their depth
		bottom := h/2 + lineHeight/2 + horizon
		if s.bobs {
			bottom -= int(math.Round(math.Sin(s.phase) * parameter.SpriteBobRows / tY))
		}
		top := bottom - spriteH

		fg := spriteColor(s.color, falloff(tY, parameter.WallFalloff), mono)

		left := screenX - spriteW/2
		for x := max(left, 0); x < min(left+spriteW, w); x++ {
			if tY >= r.depth[x] {
				continue
			}
			for y := max(top, 0); y < min(bottom, h); y++ {
				r.buf.Set(x, y, s.glyph, fg)
			}
		}
	}
}

func spriteColor(base RGB, light float64, mono bool) RGB {
	if mono {
		return Grey(vmath.Clamp(light, parameter.MonochromeMinBrightness, 1))
	}
	return base.Scale(vmath.Clamp(light, parameter.ColorMinBrightness, 1))
}
