package actions

import "github.com/automoto/actionmap/devices"

// Trigger turns an action's actuation history into a TriggerState.
//
// Implementations must be comparable (pointer types in practice): the
// Manager compares the active trigger against the winning mapping's to
// detect displacement.
type Trigger interface {
	// Update computes the next state. dt is the elapsed time since the
	// previous call, in seconds.
	Update(a *Action, dt float64) TriggerState

	// Reset clears timers and edge memory. The Manager calls it whenever
	// the trigger loses the action.
	Reset()
}

// Mapping binds a device binding to an action.
type Mapping interface {
	// Update writes the action's value from the device and reports
	// whether the binding currently matches.
	Update(a *Action) bool

	// Validate checks the mapping against the action once at bind time.
	Validate(a *Action) error

	Device() devices.Device
	Trigger() Trigger
	SetTrigger(t Trigger)
}
