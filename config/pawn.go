package config

// PawnConfig tunes the demo pawn driven by the default profile
type PawnConfig struct {
	Size         float64 // Square side, px
	Speed        float64 // px/s at full deflection
	Acceleration float64 // px/s² toward the target velocity
	DashSpeed    float64 // Speed multiplier at the start of a dash
	DashTime     float64 // Seconds for the dash to ease back to 1
	AimLength    float64 // Length of the aim marker, px

	// Arena
	WallThickness float64
	CellSize      int // resolv space cell size
}

var Pawn PawnConfig

func init() {
	Pawn = PawnConfig{
		Size:          16,
		Speed:         180,
		Acceleration:  1200,
		DashSpeed:     3,
		DashTime:      0.25,
		AimLength:     24,
		WallThickness: 8,
		CellSize:      16,
	}
}
