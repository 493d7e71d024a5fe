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

// CreateArena creates the collision space and walls the pawn moves inside.
func CreateArena(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	// Round up to whole cells so the far walls land inside the space
	cell := cfg.Pawn.CellSize
	spaceData := resolv.NewSpace((width+cell-1)/cell*cell, (height+cell-1)/cell*cell, cell, cell)
	components.Space.Set(space, spaceData)

	w, h := float64(width), float64(height)
	t := cfg.Pawn.WallThickness
	CreateWall(ecs, 0, 0, w, t)   // Top
	CreateWall(ecs, 0, h-t, w, t) // Bottom
	CreateWall(ecs, 0, 0, t, h)   // Left
	CreateWall(ecs, w-t, 0, t, h) // Right

	return space
}

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
