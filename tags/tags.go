package tags

import "github.com/yohamta/donburi"

var (
	Input = donburi.NewTag().SetName("Input")
	Pawn  = donburi.NewTag().SetName("Pawn")
	Wall  = donburi.NewTag().SetName("Wall")
)

// resolv object tags
const (
	ResolvSolid = "solid"
	ResolvPawn  = "pawn"
)
