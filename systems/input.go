package systems

import (
	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/components"
	"github.com/automoto/actionmap/devices"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the collectors and XR devices, then runs the action
// manager. Must run BEFORE any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	StepInput(components.Input.Get(entry))
}

// StepInput advances input by one frame of input.FrameTime seconds.
func StepInput(input *components.InputData) {
	if input.Manager == nil {
		return
	}
	dt := FrameTime(input)

	for _, c := range input.Collectors {
		c.Collect(dt)
	}
	for _, xr := range input.XR {
		xr.Update()
	}
	input.Manager.Update(dt)

	// Swap buffers: current becomes previous, then refill current
	n := input.Manager.Len()
	if len(input.Current) < n {
		input.Current = append(input.Current, make([]bool, n-len(input.Current))...)
		input.Previous = append(input.Previous, make([]bool, n-len(input.Previous))...)
	}
	input.Previous, input.Current = input.Current, input.Previous
	for i := 0; i < n; i++ {
		input.Current[i] = actuated(input.Manager.Action(i))
	}
}

// FrameTime returns the fixed dt of input, falling back to
// actions.DefaultFrameTime.
func FrameTime(input *components.InputData) float64 {
	if input.FrameTime <= 0 {
		return actions.DefaultFrameTime
	}
	return input.FrameTime
}

func actuated(a *actions.Action) bool {
	if a.Kind() == actions.KindAxis2d {
		return devices.AxisNonZero(a.Axis())
	}
	return a.Bool()
}

// GetAction returns the full ActionState for an action id.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id string) components.ActionState {
	if input.Manager == nil {
		return components.ActionState{}
	}
	i, ok := input.Manager.IndexOf(id)
	if !ok || i >= len(input.Current) {
		return components.ActionState{}
	}
	curr := input.Current[i]
	prev := input.Previous[i]
	return components.ActionState{
		State:        input.Manager.Action(i).State(),
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
