package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PawnData is the state of the demo pawn moved by the move, aim, dash,
// fire and charge actions.
type PawnData struct {
	Velocity Vector       // px/s
	Facing   Vector       // Last non-zero aim
	Dash     *gween.Tween // Speed multiplier while dashing, nil otherwise

	Charged      bool // Charge completed and not yet fired
	Shots        int
	ChargedShots int
}

var Pawn = donburi.NewComponentType[PawnData]()
