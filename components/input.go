package components

import (
	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/devices"
	"github.com/yohamta/donburi"
)

// Collector copies raw host input into device snapshots. It runs once
// per frame before the manager updates.
type Collector interface {
	Collect(dt float64)
}

// ActionState is the per-frame view of one action
type ActionState struct {
	State        actions.TriggerState
	Pressed      bool // Value is actuated this frame
	JustPressed  bool // Actuated this frame but not the previous one
	JustReleased bool // Actuated the previous frame but not this one
}

// InputData holds the action manager and everything that feeds it.
// Current/Previous are indexed like Manager.Action and are used to derive
// JustPressed/JustReleased.
type InputData struct {
	Manager    *actions.Manager
	Collectors []Collector
	XR         []*devices.XR // Polled before the manager updates
	Actions    map[string]*actions.Action
	FrameTime  float64 // Fixed dt, seconds

	Current  []bool // Current frame's Pressed state
	Previous []bool // Previous frame's Pressed state
}

var Input = donburi.NewComponentType[InputData]()
