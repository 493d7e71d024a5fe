package actions

import "github.com/automoto/actionmap/devices"

// DefaultFrameTime is a 60 Hz frame, in seconds.
const DefaultFrameTime = 1.0 / 60.0

// binding is the manager-side record of what last drove an action.
type binding struct {
	mapping Mapping
	trigger Trigger
	device  devices.Device
}

// Manager links actions to prioritized mappings and computes their value
// and state once per frame.
//
//	fire := actions.NewBoolean("fire")
//	m := actions.NewManager()
//	m.Add(fire, []actions.Mapping{
//		mappings.NewBoolean(mouse, devices.MousePrimary),
//		mappings.NewBoolean(keyboard, devices.Enter),
//	}, triggers.NewPress())
//
//	// every frame, after the devices are refreshed
//	m.Update(dt)
//
// A Manager is not safe for concurrent use.
type Manager struct {
	// Validate checks mappings and duplicate ids when they are bound.
	// Disabling it skips mapping validation only; misconfigured
	// mappings then behave in unspecified ways.
	Validate bool

	actions  []*Action
	mappings [][]Mapping
	active   []binding
}

// NewManager returns a manager with validation enabled.
func NewManager() *Manager {
	return &Manager{Validate: true}
}

// Len returns the number of registered actions.
func (m *Manager) Len() int { return len(m.actions) }

// Action returns the action at index, or nil.
func (m *Manager) Action(index int) *Action {
	if index < 0 || index >= len(m.actions) {
		return nil
	}
	return m.actions[index]
}

// Add registers a with its mappings in priority order and returns its
// index. defaultTrigger, if non-nil, is assigned to every mapping that has
// no trigger yet.
func (m *Manager) Add(a *Action, mappings []Mapping, defaultTrigger Trigger) (int, error) {
	if _, ok := m.IndexOf(a.ID()); ok {
		return -1, &ConfigError{Op: "add", Action: a.ID(), Mapping: -1, Err: ErrDuplicateAction}
	}
	if err := m.check("add", a, mappings); err != nil {
		return -1, err
	}

	m.actions = append(m.actions, a)
	m.mappings = append(m.mappings, nil)
	m.active = append(m.active, binding{})

	index := len(m.actions) - 1
	m.assign(index, mappings, defaultTrigger)
	return index, nil
}

// SetMapping replaces the mappings of the action at index. A trigger that
// loses the action is retired on the next Update.
func (m *Manager) SetMapping(index int, mappings []Mapping, defaultTrigger Trigger) error {
	a := m.Action(index)
	if a == nil {
		return &ConfigError{Op: "set mapping", Mapping: -1, Err: ErrUnknownAction}
	}
	if err := m.check("set mapping", a, mappings); err != nil {
		return err
	}
	m.assign(index, mappings, defaultTrigger)
	return nil
}

// SetMappingByID is SetMapping for the action registered under id.
func (m *Manager) SetMappingByID(id string, mappings []Mapping, defaultTrigger Trigger) error {
	index, ok := m.IndexOf(id)
	if !ok {
		return &ConfigError{Op: "set mapping", Action: id, Mapping: -1, Err: ErrUnknownAction}
	}
	return m.SetMapping(index, mappings, defaultTrigger)
}

// Mappings returns the mapping list last set for the action at index.
func (m *Manager) Mappings(index int) ([]Mapping, error) {
	if m.Action(index) == nil {
		return nil, &ConfigError{Op: "mappings", Mapping: -1, Err: ErrUnknownAction}
	}
	return m.mappings[index], nil
}

// Index finds a by id.
func (m *Manager) Index(a *Action) (int, bool) {
	return m.IndexOf(a.ID())
}

// IndexOf finds the action registered under id.
func (m *Manager) IndexOf(id string) (int, bool) {
	for i, a := range m.actions {
		if a.ID() == id {
			return i, true
		}
	}
	return -1, false
}

// Winner returns the mapping that matched the action at index during the
// last Update, or nil.
func (m *Manager) Winner(index int) Mapping {
	if m.Action(index) == nil {
		return nil
	}
	return m.active[index].mapping
}

// ActiveTrigger returns the trigger that last drove the action at index,
// or nil.
func (m *Manager) ActiveTrigger(index int) Trigger {
	if m.Action(index) == nil {
		return nil
	}
	return m.active[index].trigger
}

// Device returns the device that last activated the action at index, or
// nil.
func (m *Manager) Device(index int) devices.Device {
	if m.Action(index) == nil {
		return nil
	}
	return m.active[index].device
}

func (m *Manager) check(op string, a *Action, mappings []Mapping) error {
	if !m.Validate {
		return nil
	}
	for i, mapping := range mappings {
		if err := mapping.Validate(a); err != nil {
			return &ConfigError{Op: op, Action: a.ID(), Mapping: i, Err: err}
		}
	}
	return nil
}

func (m *Manager) assign(index int, mappings []Mapping, defaultTrigger Trigger) {
	if defaultTrigger != nil {
		for _, mapping := range mappings {
			if mapping.Trigger() == nil {
				mapping.SetTrigger(defaultTrigger)
			}
		}
	}
	m.mappings[index] = append([]Mapping(nil), mappings...)
}

// Update recomputes every action's value and state, in registration
// order, and fires their events. dt is in seconds.
func (m *Manager) Update(dt float64) {
	for i, a := range m.actions {
		a.Reset()

		var winner Mapping
		for _, mapping := range m.mappings[i] {
			if mapping.Update(a) {
				winner = mapping
				break
			}
		}

		var next Trigger
		var device devices.Device
		if winner != nil {
			next = winner.Trigger()
			device = winner.Device()
		} else {
			a.Reset()
		}

		state := StateNone
		if prev := m.active[i].trigger; prev != nil && prev != next {
			final := retire(a, prev, dt)
			if next == nil {
				state = final
			} else if final == StateCanceled || final == StateCompleted {
				m.notify(a, final)
			}
		}
		if next != nil {
			state = next.Update(a, dt)
		}

		m.active[i] = binding{mapping: winner, trigger: next, device: device}
		m.notify(a, state)
	}
}

// retire runs a displaced trigger one last time against a released value
// so it reports its final Canceled or Completed, then resets it.
func retire(a *Action, t Trigger, dt float64) TriggerState {
	saved := a.value
	a.Reset()
	state := t.Update(a, dt)
	a.value = saved
	t.Reset()
	return state
}

// notify stores next as the action's state and fires the events for the
// transition from the previous state.
func (m *Manager) notify(a *Action, next TriggerState) {
	prev := a.state
	a.state = next

	switch next {
	case StateNone:
		if prev == StateStarted || prev == StateOngoing {
			a.canceled.notify(a)
		}
	case StateStarted:
		a.started.notify(a)
	case StateOngoing:
		if prev == StateNone {
			a.started.notify(a)
		}
		a.ongoing.notify(a)
	case StateCanceled:
		a.canceled.notify(a)
	case StateCompleted:
		if prev == StateNone {
			a.started.notify(a)
		}
		a.completed.notify(a)
	}
}
