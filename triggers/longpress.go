package triggers

import "github.com/automoto/actionmap/actions"

type longPressPhase uint8

const (
	phaseIdle longPressPhase = iota
	phaseHolding
	phaseDone
)

// LongPress completes once the actuation has been held for Duration
// seconds. Releasing early cancels. Holding past completion reports None
// until the actuation is released and pressed again.
type LongPress struct {
	Threshold

	// Duration is the hold time, in seconds.
	Duration float64

	phase       longPressPhase
	remaining   float64
	wasActuated bool
}

// NewLongPress creates a trigger completing after duration seconds.
func NewLongPress(duration float64) *LongPress {
	return &LongPress{
		Threshold: Threshold{ActuationSq: DefaultActuationSq},
		Duration:  duration,
	}
}

func (t *LongPress) SetActuation(linear float64) *LongPress {
	t.ActuationSq = linear * linear
	return t
}

// Remaining returns the time left before completion while holding.
func (t *LongPress) Remaining() float64 {
	if t.phase != phaseHolding {
		return 0
	}
	return t.remaining
}

func (t *LongPress) Update(a *actions.Action, dt float64) actions.TriggerState {
	actuated := t.actuated(a)
	rising := actuated && !t.wasActuated
	t.wasActuated = actuated

	switch {
	case !actuated:
		holding := t.phase == phaseHolding
		t.phase = phaseIdle
		if holding {
			return actions.StateCanceled
		}
		return actions.StateNone
	case rising:
		t.phase = phaseHolding
		t.remaining = t.Duration
		return actions.StateStarted
	case t.phase == phaseHolding:
		t.remaining -= dt
		if t.remaining > timerTolerance {
			return actions.StateOngoing
		}
		t.phase = phaseDone
		return actions.StateCompleted
	}
	return actions.StateNone
}

func (t *LongPress) Reset() {
	t.phase = phaseIdle
	t.remaining = 0
	t.wasActuated = false
}
