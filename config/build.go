package config

import (
	"errors"
	"fmt"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/devices"
	"github.com/automoto/actionmap/mappings"
	"github.com/automoto/actionmap/triggers"
)

// Devices are the device instances a profile binds against. Nil entries
// make every mapping naming them fail to build.
type Devices struct {
	Keyboard *devices.Keyboard
	Mouse    *devices.Mouse
	Left     *devices.XR
	Right    *devices.XR
}

// Lookup resolves a profile device name.
func (d Devices) Lookup(name string) (devices.Device, error) {
	switch name {
	case DeviceKeyboard:
		if d.Keyboard != nil {
			return d.Keyboard, nil
		}
	case DeviceMouse:
		if d.Mouse != nil {
			return d.Mouse, nil
		}
	case DeviceXRLeft:
		if d.Left != nil {
			return d.Left, nil
		}
	case DeviceXRRight:
		if d.Right != nil {
			return d.Right, nil
		}
	default:
		return nil, fmt.Errorf("unknown device %q", name)
	}
	return nil, fmt.Errorf("device %q is not available", name)
}

func buttonByName(device, name string) (devices.Button, error) {
	if name == "" {
		return 0, nil
	}
	var b devices.Button
	var ok bool
	switch device {
	case DeviceKeyboard:
		b, ok = devices.KeyByName(name)
	case DeviceMouse:
		b, ok = devices.MouseButtonByName(name)
	case DeviceXRLeft, DeviceXRRight:
		b, ok = devices.XRButtonByName(name)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s has no button %q", devices.ErrInvalidBinding, device, name)
	}
	return b, nil
}

func axisByName(device, name string) (devices.Axis, error) {
	var a devices.Axis
	var ok bool
	switch device {
	case DeviceMouse:
		a, ok = devices.MouseAxisByName(name)
	case DeviceXRLeft, DeviceXRRight:
		a, ok = devices.XRAxisByName(name)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s has no axis %q", devices.ErrInvalidBinding, device, name)
	}
	return a, nil
}

// Build creates the trigger described by t.
func (t TriggerConfig) Build() (actions.Trigger, error) {
	actuation := t.Actuation
	if actuation < 0 || actuation > 1 {
		return nil, fmt.Errorf("actuation %v out of [0, 1]", actuation)
	}

	switch t.Kind {
	case "", TriggerDown:
		tr := triggers.NewDown()
		if actuation > 0 {
			tr.SetActuation(actuation)
		}
		return tr, nil
	case TriggerPress:
		tr := triggers.NewPress()
		if actuation > 0 {
			tr.SetActuation(actuation)
		}
		return tr, nil
	case TriggerRelease:
		tr := triggers.NewRelease()
		if actuation > 0 {
			tr.SetActuation(actuation)
		}
		return tr, nil
	case TriggerLongPress:
		duration := t.Duration
		if duration <= 0 {
			duration = 1.0
		}
		tr := triggers.NewLongPress(duration)
		if actuation > 0 {
			tr.SetActuation(actuation)
		}
		return tr, nil
	}
	return nil, fmt.Errorf("unknown trigger %q", t.Kind)
}

// Build creates the mapping described by m against devs.
func (m MappingConfig) Build(devs Devices) (actions.Mapping, error) {
	dev, err := devs.Lookup(m.Device)
	if err != nil {
		return nil, err
	}

	var trigger actions.Trigger
	if m.Trigger != nil {
		if trigger, err = m.Trigger.Build(); err != nil {
			return nil, err
		}
	}

	switch m.Kind {
	case MappingBoolean:
		buttons := make([]devices.Button, 0, len(m.Buttons))
		for _, name := range m.Buttons {
			b, err := buttonByName(m.Device, name)
			if err != nil {
				return nil, err
			}
			buttons = append(buttons, b)
		}
		return mappings.NewBoolean(dev, buttons...).WithTrigger(trigger), nil

	case MappingAxis2d:
		axis, err := axisByName(m.Device, m.Axis)
		if err != nil {
			return nil, err
		}
		return mappings.NewAxis2d(dev, axis).WithTrigger(trigger), nil

	case MappingEmulatedAxis2d:
		if len(m.Buttons) > 4 {
			return nil, fmt.Errorf("%w: emulated axis takes -x, +x, -y, +y", actions.ErrTooManyButtons)
		}
		var slots [4]devices.Button
		for i, name := range m.Buttons {
			if slots[i], err = buttonByName(m.Device, name); err != nil {
				return nil, err
			}
		}
		return mappings.NewEmulatedAxis2d(dev, mappings.EmulatedButtons{
			MinX: slots[0], MaxX: slots[1],
			MinY: slots[2], MaxY: slots[3],
		}).WithTrigger(trigger), nil
	}
	return nil, fmt.Errorf("unknown mapping kind %q", m.Kind)
}

type plan struct {
	action   *actions.Action
	mappings []actions.Mapping
	trigger  actions.Trigger
}

func (a ActionConfig) plan(devs Devices) (plan, error) {
	var action *actions.Action
	switch a.Kind {
	case actions.KindBoolean.String():
		action = actions.NewBoolean(a.ID)
	case actions.KindAxis2d.String():
		action = actions.NewAxis2d(a.ID)
	default:
		return plan{}, &actions.ConfigError{Op: "build", Action: a.ID, Mapping: -1, Err: fmt.Errorf("unknown action kind %q", a.Kind)}
	}

	trigger, err := a.Trigger.Build()
	if err != nil {
		return plan{}, &actions.ConfigError{Op: "build", Action: a.ID, Mapping: -1, Err: err}
	}

	p := plan{action: action, trigger: trigger}
	for i, mc := range a.Mappings {
		m, err := mc.Build(devs)
		if err != nil {
			return plan{}, &actions.ConfigError{Op: "build", Action: a.ID, Mapping: i, Err: err}
		}
		p.mappings = append(p.mappings, m)
	}
	return p, nil
}

// Build resolves every action of the profile and registers them on
// manager in profile order. Name resolution fails before anything is
// registered.
func (c InputConfig) Build(manager *actions.Manager, devs Devices) (map[string]*actions.Action, error) {
	plans := make([]plan, 0, len(c.Actions))
	seen := make(map[string]bool, len(c.Actions))
	for _, a := range c.Actions {
		if a.ID == "" {
			return nil, &actions.ConfigError{Op: "build", Mapping: -1, Err: errors.New("action without id")}
		}
		if seen[a.ID] {
			return nil, &actions.ConfigError{Op: "build", Action: a.ID, Mapping: -1, Err: actions.ErrDuplicateAction}
		}
		seen[a.ID] = true

		p, err := a.plan(devs)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	manager.Validate = c.Validate
	table := make(map[string]*actions.Action, len(plans))
	for _, p := range plans {
		if _, err := manager.Add(p.action, p.mappings, p.trigger); err != nil {
			return nil, err
		}
		table[p.action.ID()] = p.action
	}
	return table, nil
}
