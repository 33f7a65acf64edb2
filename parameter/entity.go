package parameter

// NPC motion, values are per reference tick
const (
	NPCWandererSpeed = 0.02
	NPCGuardSpeed    = 0.01

	// NPCTurnChance is the per-tick percent chance of picking a new random heading
	NPCTurnChance = 2

	// NPCAnimationRate advances animation phase per second
	NPCAnimationRate = 3.0
)

// Default spawn counts
const (
	DefaultCoins     = 8
	DefaultKeys      = 2
	DefaultHealth    = 2
	DefaultWanderers = 1
	DefaultGuards    = 1
)
