package parameter

// Raycaster limits
const (
	// RayMaxSteps caps the DDA loop per column
	RayMaxSteps = 100

	// RayMinDistance clamps perpendicular distance to avoid division blow-up
	RayMinDistance = 0.01

	// WallMaxHeightFactor caps projected slice height at N × output height
	WallMaxHeightFactor = 4
)

// Shading coefficients
const (
	// WallFalloff is k in 1/(1+k·d²) for wall color brightness
	WallFalloff = 0.03
	// GlyphFalloff is k in 1/(1+k·d²) for glyph ramp selection
	GlyphFalloff = 0.025

	// SideShadeColor darkens Y-side hits for color
	SideShadeColor = 0.65
	// SideShadeGlyph darkens Y-side hits for glyph selection
	SideShadeGlyph = 0.7

	// MonochromeMinBrightness is the floor for greyscale walls
	MonochromeMinBrightness = 0.2
	// ColorMinBrightness is the floor for colored walls
	ColorMinBrightness = 0.15

	// FloorFalloff is k in 1/(1+k·depth) for floor rows
	FloorFalloff = 0.2

	// CeilingLevels is the brightness range (0..N-1) of the ceiling ramp
	CeilingLevels = 20
)

// Brick texture
const (
	BrickColumns = 4
	BrickRows    = 6
	BrickEdge    = 0.05
)

// Sprites
const (
	// SpriteItemScale and SpriteNPCScale size billboards relative to a wall slice
	SpriteItemScale = 0.35
	SpriteNPCScale  = 0.7

	// SpriteMaxDistance culls far sprites
	SpriteMaxDistance = 16.0

	// SpriteBobRows is the NPC bob amplitude in rows at distance 1
	SpriteBobRows = 1.5
)
