package systems

import (
	"image/color"
	"math"

	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor    = color.RGBA{64, 64, 64, 255}
	pawnColor    = color.RGBA{255, 255, 255, 255}
	chargedColor = color.RGBA{255, 255, 0, 255}
	dashColor    = color.RGBA{0, 255, 255, 255}
)

// DrawArena renders the walls and the pawn with its aim marker.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), wallColor, false)
	})

	tags.Pawn.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		pawn := components.Pawn.Get(e)

		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), pawnFill(pawn), false)

		// Aim marker from the center, flipped to screen y
		fx, fy := pawn.Facing.X, -pawn.Facing.Y
		if l := math.Hypot(fx, fy); l > 0 {
			fx, fy = fx/l, fy/l
		}
		cx, cy := o.X+o.W/2, o.Y+o.H/2
		n := cfg.Pawn.AimLength
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+fx*n), float32(cy+fy*n), 1, pawnColor, false)
	})
}

func pawnFill(pawn *components.PawnData) color.RGBA {
	switch {
	case pawn.Dash != nil:
		return dashColor
	case pawn.Charged:
		return chargedColor
	}
	return pawnColor
}
