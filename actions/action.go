// Package actions decouples application-level actions from the devices
// that drive them.
//
// An Action carries a typed value and a lifecycle TriggerState. A Manager
// binds each action to an ordered list of mappings, picks the winning
// mapping every frame, runs its trigger and fires the action's events.
package actions

import "fmt"

// Kind is the shape of an action's value.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindAxis2d
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindAxis2d:
		return "axis2d"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// TriggerState is the lifecycle phase of an action for the current frame.
type TriggerState uint8

const (
	// StateNone means no interaction is in progress.
	StateNone TriggerState = iota
	// StateStarted means an interaction began this frame.
	StateStarted
	// StateOngoing means an interaction is in progress but not done.
	StateOngoing
	// StateCanceled means a started interaction was abandoned.
	StateCanceled
	// StateCompleted means the interaction succeeded.
	StateCompleted
)

var stateNames = [...]string{
	StateNone:      "None",
	StateStarted:   "Started",
	StateOngoing:   "Ongoing",
	StateCanceled:  "Canceled",
	StateCompleted: "Completed",
}

func (s TriggerState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("TriggerState(%d)", uint8(s))
}

type value struct {
	boolean bool
	axis    [2]float64
}

// Action is an application-level input concept such as Jump or Move.
//
// Actions are created by the caller and registered with exactly one
// Manager, which mutates the value and state every frame.
type Action struct {
	id    string
	kind  Kind
	value value
	state TriggerState

	started   Emitter
	ongoing   Emitter
	canceled  Emitter
	completed Emitter
}

// NewBoolean creates an on/off action, e.g. Jump.
func NewBoolean(id string) *Action {
	return &Action{id: id, kind: KindBoolean}
}

// NewAxis2d creates an action holding a 2D axis, e.g. Move.
func NewAxis2d(id string) *Action {
	return &Action{id: id, kind: KindAxis2d}
}

// ID must be unique per Manager.
func (a *Action) ID() string       { return a.id }
func (a *Action) Kind() Kind       { return a.kind }
func (a *Action) Bool() bool       { return a.value.boolean }
func (a *Action) Axis() [2]float64 { return a.value.axis }

// State returns the state computed by the last Manager update.
func (a *Action) State() TriggerState { return a.state }

// Running reports whether the action is Started or Ongoing.
func (a *Action) Running() bool {
	return a.state == StateStarted || a.state == StateOngoing
}

// SetBool writes a boolean value. Mappings call it during an update.
func (a *Action) SetBool(v bool) {
	a.value.boolean = v
}

// SetAxis writes an axis value. Mappings call it during an update.
func (a *Action) SetAxis(x, y float64) {
	a.value.axis = [2]float64{x, y}
}

// MagnitudeSq is the squared magnitude of the value, compared against a
// trigger's squared actuation threshold.
func (a *Action) MagnitudeSq() float64 {
	if a.kind == KindAxis2d {
		x, y := a.value.axis[0], a.value.axis[1]
		return x*x + y*y
	}
	if a.value.boolean {
		return 1.0
	}
	return 0.0
}

// Reset clears the transient value. The state is left untouched.
func (a *Action) Reset() {
	a.value = value{}
}

// Started fires when the action goes from idle to started.
func (a *Action) Started() *Emitter { return &a.started }

// Ongoing fires every frame an interaction is in progress.
func (a *Action) Ongoing() *Emitter { return &a.ongoing }

// Canceled fires when a started interaction is abandoned.
func (a *Action) Canceled() *Emitter { return &a.canceled }

// Completed fires when an interaction succeeds.
func (a *Action) Completed() *Emitter { return &a.completed }
