package actions_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/devices"
	"github.com/automoto/actionmap/mappings"
	"github.com/automoto/actionmap/triggers"
)

const dt = 0.2

// recorder logs every event fired on an action, in order.
type recorder struct {
	events []string
}

func record(a *actions.Action) *recorder {
	r := &recorder{}
	a.Started().Add(func(*actions.Action) { r.events = append(r.events, "started") })
	a.Ongoing().Add(func(*actions.Action) { r.events = append(r.events, "ongoing") })
	a.Canceled().Add(func(*actions.Action) { r.events = append(r.events, "canceled") })
	a.Completed().Add(func(*actions.Action) { r.events = append(r.events, "completed") })
	return r
}

func (r *recorder) take() string {
	s := strings.Join(r.events, ",")
	r.events = nil
	return s
}

func newManager(t *testing.T, a *actions.Action, ms []actions.Mapping, def actions.Trigger) *actions.Manager {
	t.Helper()
	m := actions.NewManager()
	if _, err := m.Add(a, ms, def); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return m
}

func TestManagerPriority(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	mouse := devices.NewMouse("mouse")
	fire := actions.NewBoolean("fire")

	first := mappings.NewBoolean(mouse, devices.MousePrimary)
	second := mappings.NewBoolean(kb, devices.Enter)
	m := newManager(t, fire, []actions.Mapping{first, second}, triggers.NewDown())

	m.Update(dt)
	if m.Winner(0) != nil || fire.State() != actions.StateNone {
		t.Fatalf("Expected no winner while idle, got %v %s", m.Winner(0), fire.State())
	}

	kb.Press(devices.Enter)
	m.Update(dt)
	if m.Winner(0) != actions.Mapping(second) {
		t.Error("Expected keyboard mapping to win")
	}
	if m.Device(0) != devices.Device(kb) {
		t.Error("Expected keyboard to be the active device")
	}

	mouse.Press(devices.MousePrimary)
	m.Update(dt)
	if m.Winner(0) != actions.Mapping(first) {
		t.Error("Expected the first mapping to take precedence")
	}
	if !fire.Bool() || fire.State() != actions.StateCompleted {
		t.Errorf("Expected completed fire, got %v %s", fire.Bool(), fire.State())
	}

	// Falls back to the keyboard while Enter is still held.
	mouse.Release(devices.MousePrimary)
	m.Update(dt)
	if m.Winner(0) != actions.Mapping(second) {
		t.Error("Expected the keyboard mapping to win again")
	}
	if m.Device(0) != devices.Device(kb) {
		t.Error("Expected keyboard to be the active device again")
	}
	if !fire.Bool() {
		t.Error("Expected fire to stay held")
	}
}

func TestManagerTriggers(t *testing.T) {
	tests := []struct {
		name    string
		trigger func() actions.Trigger
		seq     []bool
		want    []actions.TriggerState
		events  []string
	}{
		{
			name:    "Down",
			trigger: func() actions.Trigger { return triggers.NewDown() },
			seq:     []bool{true, true, false},
			want:    []actions.TriggerState{actions.StateCompleted, actions.StateCompleted, actions.StateNone},
			events:  []string{"started,completed", "completed", ""},
		},
		{
			name:    "Press",
			trigger: func() actions.Trigger { return triggers.NewPress() },
			seq:     []bool{true, true, false, true},
			want:    []actions.TriggerState{actions.StateCompleted, actions.StateNone, actions.StateNone, actions.StateCompleted},
			events:  []string{"started,completed", "", "", "started,completed"},
		},
		{
			name:    "Release",
			trigger: func() actions.Trigger { return triggers.NewRelease() },
			seq:     []bool{true, true, false, false},
			want:    []actions.TriggerState{actions.StateOngoing, actions.StateOngoing, actions.StateCompleted, actions.StateNone},
			events:  []string{"started,ongoing", "ongoing", "completed", ""},
		},
		{
			name:    "LongPress completes",
			trigger: func() actions.Trigger { return triggers.NewLongPress(0.4) },
			seq:     []bool{true, true, true, true},
			want: []actions.TriggerState{
				actions.StateStarted, actions.StateOngoing, actions.StateCompleted, actions.StateNone,
			},
			events: []string{"started", "ongoing", "completed", ""},
		},
		{
			name:    "LongPress canceled",
			trigger: func() actions.Trigger { return triggers.NewLongPress(1) },
			seq:     []bool{true, true, false, false},
			want: []actions.TriggerState{
				actions.StateStarted, actions.StateOngoing, actions.StateCanceled, actions.StateNone,
			},
			events: []string{"started", "ongoing", "canceled", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := devices.NewKeyboard("keyboard")
			a := actions.NewBoolean("a")
			m := newManager(t, a, []actions.Mapping{mappings.NewBoolean(kb, devices.Space)}, tt.trigger())
			r := record(a)

			for i, on := range tt.seq {
				if on {
					kb.Press(devices.Space)
				} else {
					kb.Release(devices.Space)
				}
				m.Update(dt)
				if a.State() != tt.want[i] {
					t.Errorf("Frame %d: expected state %s, got %s", i, tt.want[i], a.State())
				}
				if got := r.take(); got != tt.events[i] {
					t.Errorf("Frame %d: expected events %q, got %q", i, tt.events[i], got)
				}
			}
		})
	}
}

func TestManagerHandOff(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	charge := actions.NewBoolean("charge")

	// Both mappings share the same kind of trigger but not the instance.
	m := newManager(t, charge, []actions.Mapping{
		mappings.NewBoolean(kb, devices.KeyE).WithTrigger(triggers.NewLongPress(1)),
		mappings.NewBoolean(kb, devices.KeyQ).WithTrigger(triggers.NewLongPress(1)),
	}, nil)
	r := record(charge)

	kb.Press(devices.KeyQ)
	m.Update(dt)
	m.Update(dt)
	if got := r.take(); got != "started,ongoing" {
		t.Fatalf("Expected started,ongoing, got %q", got)
	}

	// The higher priority mapping takes over: the old trigger cancels and
	// the new one starts in the same frame.
	kb.Press(devices.KeyE)
	m.Update(dt)
	if got := r.take(); got != "canceled,started" {
		t.Errorf("Expected canceled,started, got %q", got)
	}
	if charge.State() != actions.StateStarted {
		t.Errorf("Expected Started after hand-off, got %s", charge.State())
	}
}

func TestManagerHandOffHeld(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	mouse := devices.NewMouse("mouse")
	fire := actions.NewBoolean("fire")
	m := newManager(t, fire, []actions.Mapping{
		mappings.NewBoolean(mouse, devices.MousePrimary).WithTrigger(triggers.NewDown()),
		mappings.NewBoolean(kb, devices.Enter).WithTrigger(triggers.NewDown()),
	}, nil)
	r := record(fire)

	kb.Press(devices.Enter)
	m.Update(dt)
	if got := r.take(); got != "started,completed" {
		t.Fatalf("Expected started,completed, got %q", got)
	}

	// Switching between held mappings keeps the action completed.
	mouse.Press(devices.MousePrimary)
	m.Update(dt)
	if got := r.take(); got != "completed" {
		t.Errorf("Expected completed when the mouse takes over, got %q", got)
	}

	mouse.Release(devices.MousePrimary)
	m.Update(dt)
	if got := r.take(); got != "completed" {
		t.Errorf("Expected completed when the keyboard takes back, got %q", got)
	}
	if fire.State() != actions.StateCompleted || m.Device(0) != devices.Device(kb) {
		t.Errorf("Expected keyboard completing, got %s", fire.State())
	}
}

func TestManagerWinnerLost(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	menu := actions.NewBoolean("menu")
	m := newManager(t, menu, []actions.Mapping{mappings.NewBoolean(kb, devices.Escape)}, triggers.NewRelease())

	kb.Press(devices.Escape)
	m.Update(dt)
	kb.Release(devices.Escape)
	m.Update(dt)
	if menu.State() != actions.StateCompleted {
		t.Errorf("Expected Completed on release, got %s", menu.State())
	}
	if m.ActiveTrigger(0) != nil {
		t.Error("Expected no active trigger once nothing matches")
	}
	m.Update(dt)
	if menu.State() != actions.StateNone {
		t.Errorf("Expected None after release frame, got %s", menu.State())
	}
}

func TestManagerAxis(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	mouse := devices.NewMouse("mouse")
	move := actions.NewAxis2d("move")
	m := newManager(t, move, []actions.Mapping{
		mappings.NewEmulatedAxis2d(kb, mappings.EmulatedButtons{
			MinX: devices.KeyA, MaxX: devices.KeyD,
			MinY: devices.KeyS, MaxY: devices.KeyW,
		}),
		mappings.NewAxis2d(mouse, devices.MouseNormalizedPosition),
	}, triggers.NewDown())

	kb.Press(devices.KeyD)
	mouse.Move(0, 0, 100, 100)
	m.Update(dt)
	if got := move.Axis(); got != [2]float64{1, 0} {
		t.Errorf("Expected keyboard axis (1, 0), got %v", got)
	}

	kb.ReleaseAll()
	m.Update(dt)
	if got := move.Axis(); got != [2]float64{-1, -1} {
		t.Errorf("Expected pointer axis (-1, -1), got %v", got)
	}

	mouse.Move(50, 50, 100, 100)
	m.Update(dt)
	if got := move.Axis(); got != [2]float64{} || move.State() != actions.StateNone {
		t.Errorf("Expected zero axis and None, got %v %s", got, move.State())
	}
}

func TestManagerDefaultTrigger(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	own := triggers.NewLongPress(1)
	withOwn := mappings.NewBoolean(kb, devices.KeyA).WithTrigger(own)
	plain := mappings.NewBoolean(kb, devices.KeyB)

	def := triggers.NewPress()
	newManager(t, actions.NewBoolean("a"), []actions.Mapping{withOwn, plain}, def)

	if withOwn.Trigger() != actions.Trigger(own) {
		t.Error("Expected explicit trigger to be kept")
	}
	if plain.Trigger() != actions.Trigger(def) {
		t.Error("Expected default trigger on mapping without one")
	}
}

func TestManagerSetMapping(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	jump := actions.NewBoolean("jump")
	m := newManager(t, jump, []actions.Mapping{mappings.NewBoolean(kb, devices.Space)}, triggers.NewDown())

	enter := mappings.NewBoolean(kb, devices.Enter)
	if err := m.SetMappingByID("jump", []actions.Mapping{enter}, triggers.NewDown()); err != nil {
		t.Fatalf("SetMappingByID failed: %v", err)
	}

	got, err := m.Mappings(0)
	if err != nil {
		t.Fatalf("Mappings failed: %v", err)
	}
	if len(got) != 1 || got[0] != actions.Mapping(enter) {
		t.Fatalf("Expected the new mapping list back, got %v", got)
	}

	kb.Press(devices.Space)
	m.Update(dt)
	if jump.Bool() {
		t.Error("Expected old mapping to be unbound")
	}
	kb.Press(devices.Enter)
	m.Update(dt)
	if !jump.Bool() {
		t.Error("Expected new mapping to drive the action")
	}
}

func TestManagerSetMappingRetiresTrigger(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	charge := actions.NewBoolean("charge")
	m := newManager(t, charge, []actions.Mapping{mappings.NewBoolean(kb, devices.KeyE)}, triggers.NewLongPress(1))
	r := record(charge)

	kb.Press(devices.KeyE)
	m.Update(dt)
	r.take()

	if err := m.SetMapping(0, []actions.Mapping{mappings.NewBoolean(kb, devices.KeyF)}, triggers.NewLongPress(1)); err != nil {
		t.Fatal(err)
	}
	m.Update(dt)
	if got := r.take(); got != "canceled" {
		t.Errorf("Expected the displaced trigger to cancel, got %q", got)
	}
	if charge.State() != actions.StateCanceled {
		t.Errorf("Expected Canceled, got %s", charge.State())
	}
}

func TestManagerErrors(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	m := actions.NewManager()
	if _, err := m.Add(actions.NewBoolean("fire"), nil, nil); err != nil {
		t.Fatal(err)
	}

	t.Run("Duplicate id", func(t *testing.T) {
		_, err := m.Add(actions.NewBoolean("fire"), nil, nil)
		if !errors.Is(err, actions.ErrDuplicateAction) {
			t.Errorf("Expected duplicate error, got %v", err)
		}
	})

	t.Run("Shape mismatch", func(t *testing.T) {
		_, err := m.Add(actions.NewAxis2d("aim"), []actions.Mapping{
			mappings.NewAxis2d(devices.NewMouse("mouse"), devices.MouseNormalizedPosition),
			mappings.NewBoolean(kb, devices.Space),
		}, nil)
		var cerr *actions.ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("Expected ConfigError, got %v", err)
		}
		if cerr.Action != "aim" || cerr.Mapping != 1 {
			t.Errorf("Expected aim mapping 1, got %q %d", cerr.Action, cerr.Mapping)
		}
		if !errors.Is(err, actions.ErrShapeMismatch) {
			t.Errorf("Expected shape mismatch, got %v", err)
		}
		if _, ok := m.IndexOf("aim"); ok {
			t.Error("Expected failed action not to be registered")
		}
	})

	t.Run("Unknown index", func(t *testing.T) {
		if err := m.SetMapping(7, nil, nil); !errors.Is(err, actions.ErrUnknownAction) {
			t.Errorf("Expected unknown action, got %v", err)
		}
		if err := m.SetMappingByID("nope", nil, nil); !errors.Is(err, actions.ErrUnknownAction) {
			t.Errorf("Expected unknown action, got %v", err)
		}
		if _, err := m.Mappings(-1); !errors.Is(err, actions.ErrUnknownAction) {
			t.Errorf("Expected unknown action, got %v", err)
		}
	})
}

func TestManagerValidateDisabled(t *testing.T) {
	m := actions.NewManager()
	m.Validate = false

	bad := mappings.NewBoolean(devices.NewKeyboard("keyboard"))
	if _, err := m.Add(actions.NewBoolean("a"), []actions.Mapping{bad}, nil); err != nil {
		t.Errorf("Expected invalid mapping to be accepted, got %v", err)
	}
	if _, err := m.Add(actions.NewBoolean("a"), nil, nil); !errors.Is(err, actions.ErrDuplicateAction) {
		t.Errorf("Expected duplicate ids to be rejected regardless, got %v", err)
	}
}

func TestManagerIndex(t *testing.T) {
	m := actions.NewManager()
	a := actions.NewBoolean("a")
	b := actions.NewAxis2d("b")
	m.Add(a, nil, nil)
	m.Add(b, nil, nil)

	if i, ok := m.Index(b); !ok || i != 1 {
		t.Errorf("Expected index 1, got %d %v", i, ok)
	}
	if m.Len() != 2 || m.Action(0) != a {
		t.Error("Expected registration order to be kept")
	}
	if m.Action(2) != nil {
		t.Error("Expected nil for out of range index")
	}
}

func TestSubscriptionCancel(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	a := actions.NewBoolean("a")
	m := newManager(t, a, []actions.Mapping{mappings.NewBoolean(kb, devices.Space)}, triggers.NewDown())

	calls := 0
	var sub actions.Subscription
	sub = a.Completed().Add(func(*actions.Action) {
		calls++
		sub.Cancel()
	})
	other := 0
	a.Completed().Add(func(*actions.Action) { other++ })

	kb.Press(devices.Space)
	m.Update(dt)
	m.Update(dt)

	if calls != 1 {
		t.Errorf("Expected self-canceling listener to run once, got %d", calls)
	}
	if other != 2 {
		t.Errorf("Expected remaining listener to run every frame, got %d", other)
	}
	if sub.Cancel() {
		t.Error("Expected second Cancel to report false")
	}
	if a.Completed().Len() != 1 {
		t.Errorf("Expected one listener left, got %d", a.Completed().Len())
	}
}

func TestSubscriptionCancelLater(t *testing.T) {
	kb := devices.NewKeyboard("keyboard")
	a := actions.NewBoolean("a")
	m := newManager(t, a, []actions.Mapping{mappings.NewBoolean(kb, devices.Space)}, triggers.NewDown())

	var later actions.Subscription
	a.Completed().Add(func(*actions.Action) { later.Cancel() })
	calls := 0
	later = a.Completed().Add(func(*actions.Action) { calls++ })

	kb.Press(devices.Space)
	m.Update(dt)

	if calls != 0 {
		t.Errorf("Expected listener canceled mid dispatch to be skipped, got %d calls", calls)
	}
	if a.Completed().Len() != 1 {
		t.Errorf("Expected one listener left, got %d", a.Completed().Len())
	}
}
