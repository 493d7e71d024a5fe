// Package mappings binds device buttons and axes to actions.
//
//	manager.Add(fire, []actions.Mapping{
//		mappings.NewBoolean(mouse, devices.MousePrimary),
//		mappings.NewBoolean(keyboard, devices.Enter).WithTrigger(triggers.NewLongPress(1)),
//	}, triggers.NewPress())
package mappings

import (
	"fmt"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/devices"
)

// MaxButtons is the number of button slots of a mapping.
const MaxButtons = 4

type base struct {
	device  devices.Device
	trigger actions.Trigger
}

func (b *base) Device() devices.Device       { return b.device }
func (b *base) Trigger() actions.Trigger     { return b.trigger }
func (b *base) SetTrigger(t actions.Trigger) { b.trigger = t }

func checkKind(a *actions.Action, want actions.Kind, name string) error {
	if a.Kind() != want {
		return fmt.Errorf("%w: %s mapping needs a %s action, %q is %s",
			actions.ErrShapeMismatch, name, want, a.ID(), a.Kind())
	}
	return nil
}

// validateButtons requires at least one non-zero slot and every non-zero
// slot to exist on the device.
func validateButtons(d devices.Device, name string, buttons []devices.Button) error {
	found := false
	for _, b := range buttons {
		if b == 0 {
			continue
		}
		if err := d.ValidateButton(b); err != nil {
			return err
		}
		found = true
	}
	if !found {
		return fmt.Errorf("%s mapping: %w", name, actions.ErrNoButtons)
	}
	return nil
}

// Boolean matches while every configured button is held.
type Boolean struct {
	base
	buttons  [MaxButtons]devices.Button
	overflow int
}

// NewBoolean maps the chord of up to MaxButtons buttons on d.
func NewBoolean(d devices.Device, buttons ...devices.Button) *Boolean {
	m := &Boolean{base: base{device: d}}
	return m.SetButtons(buttons...)
}

// SetButtons replaces the chord. Unused slots are zeroed; buttons beyond
// MaxButtons are dropped and reported by Validate.
func (m *Boolean) SetButtons(buttons ...devices.Button) *Boolean {
	m.buttons = [MaxButtons]devices.Button{}
	copy(m.buttons[:], buttons)
	m.overflow = max(len(buttons)-MaxButtons, 0)
	return m
}

func (m *Boolean) Buttons() [MaxButtons]devices.Button { return m.buttons }

func (m *Boolean) WithTrigger(t actions.Trigger) *Boolean {
	m.trigger = t
	return m
}

func (m *Boolean) Update(a *actions.Action) bool {
	pressed := m.device.GroupPressed(m.buttons[:])
	a.SetBool(pressed)
	return pressed
}

func (m *Boolean) Validate(a *actions.Action) error {
	if err := checkKind(a, actions.KindBoolean, "boolean"); err != nil {
		return err
	}
	if m.overflow > 0 {
		return fmt.Errorf("boolean mapping: %w: %d beyond %d", actions.ErrTooManyButtons, m.overflow, MaxButtons)
	}
	return validateButtons(m.device, "boolean", m.buttons[:])
}

// Axis2d copies a device axis into an axis action.
type Axis2d struct {
	base
	axis devices.Axis
}

func NewAxis2d(d devices.Device, axis devices.Axis) *Axis2d {
	return &Axis2d{base: base{device: d}, axis: axis}
}

func (m *Axis2d) Axis() devices.Axis { return m.axis }

func (m *Axis2d) SetAxis(axis devices.Axis) *Axis2d {
	m.axis = axis
	return m
}

func (m *Axis2d) WithTrigger(t actions.Trigger) *Axis2d {
	m.trigger = t
	return m
}

func (m *Axis2d) Update(a *actions.Action) bool {
	var v [2]float64
	ok := m.device.Axis2d(&v, m.axis)
	a.SetAxis(v[0], v[1])
	return ok
}

func (m *Axis2d) Validate(a *actions.Action) error {
	if err := checkKind(a, actions.KindAxis2d, "axis2d"); err != nil {
		return err
	}
	if m.axis == 0 {
		return fmt.Errorf("axis2d mapping: %w", actions.ErrNoButtons)
	}
	return m.device.ValidateAxis(m.axis)
}

// EmulatedButtons names the four buttons of an emulated axis.
type EmulatedButtons struct {
	MinX, MaxX, MinY, MaxY devices.Button
}

// EmulatedAxis2d turns four buttons into an axis in [-1, 1]. Each slot is
// read through Device.Value, so analog buttons give analog axes.
//
//	mappings.NewEmulatedAxis2d(keyboard, mappings.EmulatedButtons{
//		MinX: devices.KeyA, MaxX: devices.KeyD,
//		MinY: devices.KeyS, MaxY: devices.KeyW,
//	})
type EmulatedAxis2d struct {
	base
	buttons [4]devices.Button // -x, +x, -y, +y
}

func NewEmulatedAxis2d(d devices.Device, buttons EmulatedButtons) *EmulatedAxis2d {
	m := &EmulatedAxis2d{base: base{device: d}}
	return m.SetButtons(buttons)
}

func (m *EmulatedAxis2d) SetButtons(b EmulatedButtons) *EmulatedAxis2d {
	m.buttons = [4]devices.Button{b.MinX, b.MaxX, b.MinY, b.MaxY}
	return m
}

func (m *EmulatedAxis2d) Buttons() EmulatedButtons {
	return EmulatedButtons{
		MinX: m.buttons[0], MaxX: m.buttons[1],
		MinY: m.buttons[2], MaxY: m.buttons[3],
	}
}

func (m *EmulatedAxis2d) WithTrigger(t actions.Trigger) *EmulatedAxis2d {
	m.trigger = t
	return m
}

func (m *EmulatedAxis2d) Update(a *actions.Action) bool {
	d := m.device
	v := [2]float64{
		-d.Value(m.buttons[0]) + d.Value(m.buttons[1]),
		-d.Value(m.buttons[2]) + d.Value(m.buttons[3]),
	}
	a.SetAxis(v[0], v[1])
	return devices.AxisNonZero(v)
}

func (m *EmulatedAxis2d) Validate(a *actions.Action) error {
	if err := checkKind(a, actions.KindAxis2d, "emulated axis2d"); err != nil {
		return err
	}
	return validateButtons(m.device, "emulated axis2d", m.buttons[:])
}
