package systems

import (
	"math"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/devices"
	"github.com/automoto/actionmap/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePawn moves the pawn from this frame's actions. Must run after
// UpdateInput.
func UpdatePawn(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	tags.Pawn.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePawn(input, components.Pawn.Get(e), components.Object.Get(e).Object)
	})
}

func updateSinglePawn(input *components.InputData, pawn *components.PawnData, obj *resolv.Object) {
	dt := FrameTime(input)

	handlePawnInput(input, pawn, obj)

	// Ease the dash multiplier back to 1
	speed := 1.0
	if pawn.Dash != nil {
		m, done := pawn.Dash.Update(float32(dt))
		speed = float64(m)
		if done {
			pawn.Dash = nil
		}
	}

	// Screen y grows downward, action y grows upward
	hitX, hitY := movePawn(obj, pawn.Velocity.X*speed*dt, -pawn.Velocity.Y*speed*dt)
	if hitX {
		pawn.Velocity.X = 0
	}
	if hitY {
		pawn.Velocity.Y = 0
	}
}

func handlePawnInput(input *components.InputData, pawn *components.PawnData, obj *resolv.Object) {
	dt := FrameTime(input)
	move := actionAxis(input, "move")
	aim := actionAxis(input, "aim")

	// A pointer aims at a spot, a stick aims in a direction
	if aim != [2]float64{} && aimedByPointer(input) {
		px := (aim[0] + 1) / 2 * float64(cfg.C.Width)
		py := (aim[1] + 1) / 2 * float64(cfg.C.Height)
		aim = [2]float64{px - (obj.X + obj.W/2), (obj.Y + obj.H/2) - py}
	}

	target := components.Vector{X: move[0] * cfg.Pawn.Speed, Y: move[1] * cfg.Pawn.Speed}
	step := cfg.Pawn.Acceleration * dt
	pawn.Velocity.X = approach(pawn.Velocity.X, target.X, step)
	pawn.Velocity.Y = approach(pawn.Velocity.Y, target.Y, step)

	if aim != [2]float64{} {
		pawn.Facing = components.Vector{X: aim[0], Y: aim[1]}
	}

	if GetAction(input, "dash").JustPressed {
		pawn.Dash = gween.New(float32(cfg.Pawn.DashSpeed), 1, float32(cfg.Pawn.DashTime), ease.OutQuad)
	}

	// Charge completes once per hold and arms the next shot
	if GetAction(input, "charge").State == actions.StateCompleted {
		pawn.Charged = true
	}
	if GetAction(input, "fire").JustPressed {
		if pawn.Charged {
			pawn.Charged = false
			pawn.ChargedShots++
		} else {
			pawn.Shots++
		}
	}
}

func aimedByPointer(input *components.InputData) bool {
	i, ok := input.Manager.IndexOf("aim")
	if !ok {
		return false
	}
	_, pointer := input.Manager.Device(i).(*devices.Mouse)
	return pointer
}

func actionAxis(input *components.InputData, id string) [2]float64 {
	a := input.Actions[id]
	if a == nil || a.Kind() != actions.KindAxis2d {
		return [2]float64{}
	}
	return a.Axis()
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if math.Abs(target-v) <= step {
		return target
	}
	if target > v {
		return v + step
	}
	return v - step
}

// movePawn moves obj by (dx, dy) in steps no longer than a space cell,
// one axis at a time, stopping at the first solid in the way. It reports
// which axes were blocked.
func movePawn(obj *resolv.Object, dx, dy float64) (hitX, hitY bool) {
	n := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / float64(cfg.Pawn.CellSize))
	if n < 1 {
		n = 1
	}
	sx, sy := dx/n, dy/n
	for i := 0; i < int(n); i++ {
		if !hitX && sx != 0 {
			hitX = stepX(obj, sx)
		}
		if !hitY && sy != 0 {
			hitY = stepY(obj, sy)
		}
	}
	obj.Update()
	return hitX, hitY
}

func stepX(obj *resolv.Object, dx float64) (hit bool) {
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsY(obj, solid) {
				continue
			}
			if c := check.ContactWithObject(solid).X(); c*dx >= 0 && math.Abs(c) < math.Abs(dx) {
				dx = c
				hit = true
			}
		}
	}
	obj.X += dx
	return hit
}

func stepY(obj *resolv.Object, dy float64) (hit bool) {
	if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsX(obj, solid) {
				continue
			}
			if c := check.ContactWithObject(solid).Y(); c*dy >= 0 && math.Abs(c) < math.Abs(dy) {
				dy = c
				hit = true
			}
		}
	}
	obj.Y += dy
	return hit
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W
}
