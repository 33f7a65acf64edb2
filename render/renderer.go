// Package render casts one ray per output column into a character+color raster.
package render

import (
	"math"

	"github.com/lixenwraith/maze3d/camera"
	"github.com/lixenwraith/maze3d/entity"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
	"github.com/lixenwraith/maze3d/world"
)

// Options are the per-frame display toggles
type Options struct {
	Monochrome bool
	Sprites    bool
}

// Ray is the DDA result for one column
type Ray struct {
	Dir vmath.Vec2
	Hit bool

	MapX, MapY int
	Wall       world.WallType

	// SideY is true when a horizontal grid line (Y axis) was crossed last
	SideY bool

	// Distance is the perpendicular wall distance, clamped to RayMinDistance
	Distance float64

	// WallX is the fractional hit coordinate along the wall face, in [0,1)
	WallX float64
	Steps int
}

// Renderer owns only scratch state: the output buffer, the per-column depth
// buffer and the sprite list. It never mutates the camera, world or entities.
type Renderer struct {
	buf     *Buffer
	depth   []float64
	sprites []sprite
}

func New() *Renderer {
	return &Renderer{buf: NewBuffer(0, 0)}
}

// Buffer returns the last rendered frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Depth returns the perpendicular wall distance per column of the last frame,
// +Inf for columns whose ray hit nothing within the step cap
func (r *Renderer) Depth() []float64 {
	return r.depth
}

// Render draws a width×height frame. A zero-size area is a no-op.
// ents may be nil.
func (r *Renderer) Render(width, height int, cam *camera.Camera, w *world.World, ents *entity.Set, opts Options) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.buf.Width() != width || r.buf.Height() != height {
		r.buf.Resize(width, height)
	}
	if cap(r.depth) < width {
		r.depth = make([]float64, width)
	}
	r.depth = r.depth[:width]

	r.paintBackground()

	horizon := cam.HorizonOffset()
	for x := 0; x < width; x++ {
		cameraX := 2*float64(x)/float64(width) - 1
		ray := r.CastRay(cam, w, cameraX)
		if !ray.Hit {
			r.depth[x] = math.Inf(1)
			continue
		}
		r.depth[x] = ray.Distance
		r.drawColumn(x, ray, horizon, opts.Monochrome)
	}

	if opts.Sprites && ents != nil {
		r.drawSprites(cam, ents, horizon, opts.Monochrome)
	}
}

// CastRay traces the ray at cameraX ∈ [-1,1] across the view plane until it
// enters a wall or RayMaxSteps cells have been stepped
func (r *Renderer) CastRay(cam *camera.Camera, w *world.World, cameraX float64) Ray {
	dir := cam.Direction.Add(cam.Plane.Scale(cameraX))
	t := vmath.NewRayTraverser(cam.Position, dir)

	ray := Ray{Dir: dir}
	for t.Steps < parameter.RayMaxSteps {
		t.Next()
		if w.IsWall(t.MapX, t.MapY) {
			ray.Hit = true
			break
		}
	}

	ray.MapX, ray.MapY = t.Pos()
	ray.SideY = t.SideY
	ray.Steps = t.Steps
	if !ray.Hit {
		return ray
	}

	ray.Wall = w.Get(ray.MapX, ray.MapY)
	ray.Distance = max(t.PerpDistance(), parameter.RayMinDistance)

	var wallX float64
	if ray.SideY {
		wallX = cam.Position.X + ray.Distance*dir.X
	} else {
		wallX = cam.Position.Y + ray.Distance*dir.Y
	}
	ray.WallX = wallX - math.Floor(wallX)
	return ray
}

// drawColumn paints one wall slice. The slice is laid out unclamped so the
// texture ratio stays stable when it overflows the screen, then clipped.
func (r *Renderer) drawColumn(x int, ray Ray, horizon int, mono bool) {
	h := r.buf.Height()

	lineHeight := min(int(float64(h)/ray.Distance), h*parameter.WallMaxHeightFactor)
	start := h/2 - lineHeight/2 + horizon
	end := h/2 + lineHeight/2 + horizon
	span := float64(max(end-start, 1))

	glyphLight := falloff(ray.Distance, parameter.GlyphFalloff)
	colorLight := falloff(ray.Distance, parameter.WallFalloff)
	if ray.SideY {
		glyphLight *= parameter.SideShadeGlyph
		colorLight *= parameter.SideShadeColor
	}
	fg := wallColor(ray.Wall, colorLight, mono)

	for y := max(start, 0); y < min(end, h); y++ {
		yRatio := float64(y-start) / span
		r.buf.Set(x, y, wallGlyph(glyphLight, ray.WallX, yRatio), fg)
	}
}

// falloff is 1/(1+k·d²)
func falloff(d, k float64) float64 {
	return 1 / (1 + d*d*k)
}
