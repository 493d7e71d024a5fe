package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/actionmap/actions"
	"github.com/automoto/actionmap/devices"
	"github.com/automoto/actionmap/triggers"
)

func allDevices() Devices {
	return Devices{
		Keyboard: devices.NewKeyboard("keyboard"),
		Mouse:    devices.NewMouse("mouse"),
		Left:     devices.NewXR("left", devices.Left),
		Right:    devices.NewXR("right", devices.Right),
	}
}

func writeProfile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildDefaultProfile(t *testing.T) {
	devs := allDevices()
	m := actions.NewManager()
	table, err := Input.Build(m, devs)
	if err != nil {
		t.Fatalf("Default profile failed to build: %v", err)
	}
	if len(table) != len(Input.Actions) || m.Len() != len(Input.Actions) {
		t.Fatalf("Expected %d actions, got %d (manager %d)", len(Input.Actions), len(table), m.Len())
	}

	devs.Keyboard.Press(devices.Space)
	m.Update(Input.FrameTime)

	if got := table["jump"].State(); got != actions.StateCompleted {
		t.Errorf("Expected jump Completed, got %s", got)
	}
	if got := table["dash"].State(); got != actions.StateNone {
		t.Errorf("Expected dash to need its full chord, got %s", got)
	}

	devs.Keyboard.Press(devices.KeyD)
	m.Update(Input.FrameTime)
	if got := table["move"].Axis(); got != [2]float64{1, 0} {
		t.Errorf("Expected move (1, 0), got %v", got)
	}
}

func TestBuildErrors(t *testing.T) {
	boolean := func(m ...MappingConfig) ActionConfig {
		return ActionConfig{ID: "a", Kind: "boolean", Mappings: m}
	}

	tests := []struct {
		name    string
		devs    Devices
		actions []ActionConfig
		wantErr error
		mapping int
	}{
		{
			name:    "Unknown key",
			devs:    allDevices(),
			actions: []ActionConfig{boolean(MappingConfig{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"Hyper"}})},
			wantErr: devices.ErrInvalidBinding,
			mapping: 0,
		},
		{
			name: "Keyboard axis",
			devs: allDevices(),
			actions: []ActionConfig{{ID: "a", Kind: "axis2d", Mappings: []MappingConfig{
				{Device: DeviceMouse, Kind: MappingAxis2d, Axis: "NormalizedPosition"},
				{Device: DeviceKeyboard, Kind: MappingAxis2d, Axis: "Joystick"},
			}}},
			wantErr: devices.ErrInvalidBinding,
			mapping: 1,
		},
		{
			name:    "Missing device",
			devs:    Devices{Keyboard: devices.NewKeyboard("keyboard")},
			actions: []ActionConfig{boolean(MappingConfig{Device: DeviceXRLeft, Kind: MappingBoolean, Buttons: []string{"Grip"}})},
			mapping: 0,
		},
		{
			name:    "Shape mismatch",
			devs:    allDevices(),
			actions: []ActionConfig{boolean(MappingConfig{Device: DeviceMouse, Kind: MappingAxis2d, Axis: "NormalizedPosition"})},
			wantErr: actions.ErrShapeMismatch,
			mapping: 0,
		},
		{
			name: "Duplicate id",
			devs: allDevices(),
			actions: []ActionConfig{
				boolean(MappingConfig{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"Space"}}),
				boolean(MappingConfig{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"Enter"}}),
			},
			wantErr: actions.ErrDuplicateAction,
			mapping: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := actions.NewManager()
			_, err := InputConfig{Validate: true, Actions: tt.actions}.Build(m, tt.devs)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			var cerr *actions.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Expected ConfigError, got %T", err)
			}
			if cerr.Mapping != tt.mapping {
				t.Errorf("Expected mapping %d, got %d", tt.mapping, cerr.Mapping)
			}
		})
	}
}

func TestBuildResolvesBeforeRegistering(t *testing.T) {
	m := actions.NewManager()
	profile := InputConfig{Validate: true, Actions: []ActionConfig{
		{ID: "ok", Kind: "boolean", Mappings: []MappingConfig{
			{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"Space"}},
		}},
		{ID: "broken", Kind: "boolean", Mappings: []MappingConfig{
			{Device: DeviceKeyboard, Kind: "chord"},
		}},
	}}
	if _, err := profile.Build(m, allDevices()); err == nil {
		t.Fatal("Expected unknown mapping kind to fail")
	}
	if m.Len() != 0 {
		t.Errorf("Expected nothing registered, got %d actions", m.Len())
	}
}

func TestTriggerConfigBuild(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TriggerConfig
		check   func(t *testing.T, tr actions.Trigger)
		wantErr bool
	}{
		{
			name: "Empty is down",
			cfg:  TriggerConfig{},
			check: func(t *testing.T, tr actions.Trigger) {
				if _, ok := tr.(*triggers.Down); !ok {
					t.Errorf("Expected *triggers.Down, got %T", tr)
				}
			},
		},
		{
			name: "Longpress default duration",
			cfg:  TriggerConfig{Kind: TriggerLongPress},
			check: func(t *testing.T, tr actions.Trigger) {
				lp, ok := tr.(*triggers.LongPress)
				if !ok || lp.Duration != 1.0 {
					t.Errorf("Expected 1s long press, got %#v", tr)
				}
			},
		},
		{
			name: "Actuation is squared",
			cfg:  TriggerConfig{Kind: TriggerPress, Actuation: 0.5},
			check: func(t *testing.T, tr actions.Trigger) {
				p, ok := tr.(*triggers.Press)
				if !ok || p.ActuationSq != 0.25 {
					t.Errorf("Expected squared threshold 0.25, got %#v", tr)
				}
			},
		},
		{name: "Unknown kind", cfg: TriggerConfig{Kind: "tap"}, wantErr: true},
		{name: "Actuation out of range", cfg: TriggerConfig{Kind: TriggerDown, Actuation: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.cfg.Build()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, tr)
		})
	}
}

const profileYAML = `
validate: false
actions:
  - id: fire
    kind: boolean
    trigger:
      kind: press
    mappings:
      - device: keyboard
        kind: boolean
        buttons: [Space]
      - device: mouse
        kind: boolean
        buttons: [Primary]
        trigger:
          kind: longpress
          duration: 0.5
`

func TestLoad(t *testing.T) {
	path := writeProfile(t, "input.yaml", profileYAML)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Validate {
		t.Error("Expected validate false from file")
	}
	if c.FrameTime != Input.FrameTime {
		t.Errorf("Expected default frame time, got %v", c.FrameTime)
	}
	if len(c.Actions) != 1 || len(c.Actions[0].Mappings) != 2 {
		t.Fatalf("Unexpected actions %+v", c.Actions)
	}
	if c.Actions[0].Trigger.Kind != TriggerPress {
		t.Errorf("Expected press trigger, got %q", c.Actions[0].Trigger.Kind)
	}
	override := c.Actions[0].Mappings[1].Trigger
	if override == nil || override.Kind != TriggerLongPress || override.Duration != 0.5 {
		t.Errorf("Expected longpress override, got %+v", override)
	}
	if c.Actions[0].Mappings[0].Trigger != nil {
		t.Error("Expected no override on first mapping")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ACTIONMAP_ANALOG_DEADZONE", "0.1")
	c, err := Load(writeProfile(t, "input.yaml", profileYAML))
	if err != nil {
		t.Fatal(err)
	}
	if c.AnalogDeadzone != 0.1 {
		t.Errorf("Expected deadzone 0.1 from env, got %v", c.AnalogDeadzone)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected missing file to fail")
	}
	if _, err := Load(writeProfile(t, "bad.yaml", "actions: [")); err == nil {
		t.Error("Expected malformed YAML to fail")
	}
}

func TestLoadWithoutActions(t *testing.T) {
	c, err := Load(writeProfile(t, "input.yaml", "frame_time: 0.02\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.FrameTime != 0.02 {
		t.Errorf("Expected frame time 0.02, got %v", c.FrameTime)
	}
	if len(c.Actions) != len(Input.Actions) {
		t.Errorf("Expected default actions, got %d", len(c.Actions))
	}
}

func TestDumpLoads(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, Input); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if !strings.Contains(buf.String(), "id: charge") {
		t.Errorf("Expected charge action in dump:\n%s", buf.String())
	}

	c, err := Load(writeProfile(t, "dump.yaml", buf.String()))
	if err != nil {
		t.Fatalf("Dumped profile failed to load: %v", err)
	}
	if len(c.Actions) != len(Input.Actions) {
		t.Fatalf("Expected %d actions, got %d", len(Input.Actions), len(c.Actions))
	}
	if _, err := c.Build(actions.NewManager(), allDevices()); err != nil {
		t.Errorf("Dumped profile failed to build: %v", err)
	}
}
