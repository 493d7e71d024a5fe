package factory

import (
	"github.com/automoto/actionmap/archetypes"
	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePawn spawns the pawn centered on (x, y).
func CreatePawn(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	pawn := archetypes.Pawn.Spawn(ecs)

	size := cfg.Pawn.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPawn)
	obj.Data = pawn
	components.Object.SetValue(pawn, components.ObjectData{Object: obj})
	components.Pawn.SetValue(pawn, components.PawnData{
		Facing: components.Vector{X: 1, Y: 0},
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return pawn
}
