package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 16

// DrawInputDebug lists every action with its state and value, and marks
// running actions.
func DrawInputDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	if input.Manager == nil {
		return
	}

	for i := 0; i < input.Manager.Len(); i++ {
		a := input.Manager.Action(i)
		y := 8 + i*debugLineHeight
		if a.Running() || a.State() == actions.StateCompleted {
			vector.DrawFilledRect(screen, 2, float32(y+4), 4, 4, stateColor(a.State()), false)
		}
		ebitenutil.DebugPrintAt(screen, DescribeAction(a), 10, y)
	}
}

// DescribeAction formats an action as "id state value".
func DescribeAction(a *actions.Action) string {
	if a.Kind() == actions.KindAxis2d {
		v := a.Axis()
		return fmt.Sprintf("%-8s %-9s (%+.2f, %+.2f)", a.ID(), a.State(), v[0], v[1])
	}
	return fmt.Sprintf("%-8s %-9s %v", a.ID(), a.State(), a.Bool())
}

func stateColor(s actions.TriggerState) color.RGBA {
	switch s {
	case actions.StateCompleted:
		return color.RGBA{0, 255, 0, 255} // Green
	case actions.StateStarted:
		return color.RGBA{255, 255, 0, 255} // Yellow
	}
	return color.RGBA{0, 255, 255, 255} // Cyan
}
