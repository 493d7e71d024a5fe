// Package triggers provides the built-in actions.Trigger variants.
//
// Every trigger is actuated through actions.Action.MagnitudeSq, so the same
// trigger works for boolean and axis actions:
//
//	// Completes when the stick is pushed past 75% of its range.
//	t := triggers.NewPress().SetActuation(0.75)
package triggers

import "github.com/automoto/actionmap/actions"

// DefaultActuationSq is the squared actuation threshold of new triggers.
const DefaultActuationSq = 0.5

// timerTolerance absorbs float drift when a countdown is consumed by
// fixed steps, e.g. five steps of 0.2s against a 1s duration.
const timerTolerance = 1e-9

// Threshold holds the squared actuation threshold shared by all triggers.
type Threshold struct {
	ActuationSq float64
}

func (t Threshold) actuated(a *actions.Action) bool {
	return a.MagnitudeSq() >= t.ActuationSq
}

// Down completes on every actuated frame.
type Down struct {
	Threshold
}

func NewDown() *Down {
	return &Down{Threshold: Threshold{ActuationSq: DefaultActuationSq}}
}

// SetActuation sets the linear actuation threshold.
func (t *Down) SetActuation(linear float64) *Down {
	t.ActuationSq = linear * linear
	return t
}

func (t *Down) Update(a *actions.Action, dt float64) actions.TriggerState {
	if t.actuated(a) {
		return actions.StateCompleted
	}
	return actions.StateNone
}

func (t *Down) Reset() {}

// Press completes once per press, on the rising edge.
type Press struct {
	Threshold
	wasPressed bool
}

func NewPress() *Press {
	return &Press{Threshold: Threshold{ActuationSq: DefaultActuationSq}}
}

func (t *Press) SetActuation(linear float64) *Press {
	t.ActuationSq = linear * linear
	return t
}

func (t *Press) Update(a *actions.Action, dt float64) actions.TriggerState {
	actuated := t.actuated(a)
	if actuated && !t.wasPressed {
		t.wasPressed = true
		return actions.StateCompleted
	}
	t.wasPressed = actuated
	return actions.StateNone
}

func (t *Press) Reset() {
	t.wasPressed = false
}

// Release is ongoing while held and completes once when let go.
type Release struct {
	Threshold
	held bool
}

func NewRelease() *Release {
	return &Release{Threshold: Threshold{ActuationSq: DefaultActuationSq}}
}

func (t *Release) SetActuation(linear float64) *Release {
	t.ActuationSq = linear * linear
	return t
}

func (t *Release) Update(a *actions.Action, dt float64) actions.TriggerState {
	if t.actuated(a) {
		t.held = true
		return actions.StateOngoing
	}
	if t.held {
		t.held = false
		return actions.StateCompleted
	}
	return actions.StateNone
}

func (t *Release) Reset() {
	t.held = false
}
