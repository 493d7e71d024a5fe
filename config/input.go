package config

import "github.com/automoto/actionmap/actions"

// Device names used in binding profiles
const (
	DeviceKeyboard = "keyboard"
	DeviceMouse    = "mouse"
	DeviceXRLeft   = "xr-left"
	DeviceXRRight  = "xr-right"
)

// Mapping kinds used in binding profiles
const (
	MappingBoolean        = "boolean"
	MappingAxis2d         = "axis2d"
	MappingEmulatedAxis2d = "emulated-axis2d"
)

// Trigger kinds used in binding profiles
const (
	TriggerDown      = "down"
	TriggerPress     = "press"
	TriggerRelease   = "release"
	TriggerLongPress = "longpress"
)

// TriggerConfig describes one trigger. An empty Kind means "down".
type TriggerConfig struct {
	Kind      string  `mapstructure:"kind" yaml:"kind,omitempty"`
	Duration  float64 `mapstructure:"duration" yaml:"duration,omitempty"`   // longpress only, seconds
	Actuation float64 `mapstructure:"actuation" yaml:"actuation,omitempty"` // linear threshold, 0 keeps the default
}

// MappingConfig binds device buttons or an axis to an action.
// Emulated axes list their buttons as -x, +x, -y, +y; "" leaves a slot
// unused.
type MappingConfig struct {
	Device  string         `mapstructure:"device" yaml:"device"`
	Kind    string         `mapstructure:"kind" yaml:"kind"`
	Buttons []string       `mapstructure:"buttons" yaml:"buttons,omitempty"`
	Axis    string         `mapstructure:"axis" yaml:"axis,omitempty"`
	Trigger *TriggerConfig `mapstructure:"trigger" yaml:"trigger,omitempty"` // overrides the action trigger
}

// ActionConfig declares one action and its mappings in priority order
type ActionConfig struct {
	ID       string          `mapstructure:"id" yaml:"id"`
	Kind     string          `mapstructure:"kind" yaml:"kind"`
	Trigger  TriggerConfig   `mapstructure:"trigger" yaml:"trigger,omitempty"`
	Mappings []MappingConfig `mapstructure:"mappings" yaml:"mappings"`
}

// InputConfig holds the binding profile
type InputConfig struct {
	Validate  bool    `mapstructure:"validate" yaml:"validate"`
	FrameTime float64 `mapstructure:"frame_time" yaml:"frame_time"` // Fixed dt of the input system, seconds
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64        `mapstructure:"analog_deadzone" yaml:"analog_deadzone"`
	Actions        []ActionConfig `mapstructure:"actions" yaml:"actions"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Validate:       true,
		FrameTime:      actions.DefaultFrameTime,
		AnalogDeadzone: 0.25,
		Actions: []ActionConfig{
			{
				ID:      "move",
				Kind:    actions.KindAxis2d.String(),
				Trigger: TriggerConfig{Kind: TriggerDown},
				Mappings: []MappingConfig{
					{
						Device:  DeviceKeyboard,
						Kind:    MappingEmulatedAxis2d,
						Buttons: []string{"KeyA", "KeyD", "KeyS", "KeyW"},
					},
					{
						Device:  DeviceKeyboard,
						Kind:    MappingEmulatedAxis2d,
						Buttons: []string{"ArrowLeft", "ArrowRight", "ArrowDown", "ArrowUp"},
					},
					// Left stick
					{Device: DeviceXRLeft, Kind: MappingAxis2d, Axis: "Joystick"},
				},
			},
			{
				ID:      "aim",
				Kind:    actions.KindAxis2d.String(),
				Trigger: TriggerConfig{Kind: TriggerDown},
				Mappings: []MappingConfig{
					// Right stick wins over the pointer while pushed
					{Device: DeviceXRRight, Kind: MappingAxis2d, Axis: "Joystick"},
					{Device: DeviceMouse, Kind: MappingAxis2d, Axis: "NormalizedPosition"},
				},
			},
			{
				ID:      "fire",
				Kind:    actions.KindBoolean.String(),
				Trigger: TriggerConfig{Kind: TriggerPress},
				Mappings: []MappingConfig{
					{Device: DeviceMouse, Kind: MappingBoolean, Buttons: []string{"Primary"}},
					{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"Enter"}},
					// RT, fires past half travel
					{
						Device:  DeviceXRRight,
						Kind:    MappingBoolean,
						Buttons: []string{"Trigger"},
						Trigger: &TriggerConfig{Kind: TriggerPress, Actuation: 0.5},
					},
				},
			},
			{
				ID:      "jump",
				Kind:    actions.KindBoolean.String(),
				Trigger: TriggerConfig{Kind: TriggerPress},
				Mappings: []MappingConfig{
					{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"Space"}},
					// A / Cross button
					{Device: DeviceXRRight, Kind: MappingBoolean, Buttons: []string{"PrimaryButton"}},
				},
			},
			{
				ID:      "charge",
				Kind:    actions.KindBoolean.String(),
				Trigger: TriggerConfig{Kind: TriggerLongPress, Duration: 1.0},
				Mappings: []MappingConfig{
					{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"KeyE"}},
					{Device: DeviceMouse, Kind: MappingBoolean, Buttons: []string{"Secondary"}},
					// LB
					{Device: DeviceXRLeft, Kind: MappingBoolean, Buttons: []string{"Grip"}},
				},
			},
			{
				ID:      "dash",
				Kind:    actions.KindBoolean.String(),
				Trigger: TriggerConfig{Kind: TriggerPress},
				Mappings: []MappingConfig{
					{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"ShiftLeft", "Space"}},
				},
			},
			{
				ID:      "menu",
				Kind:    actions.KindBoolean.String(),
				Trigger: TriggerConfig{Kind: TriggerRelease},
				Mappings: []MappingConfig{
					{Device: DeviceKeyboard, Kind: MappingBoolean, Buttons: []string{"Escape"}},
					// Select / Back button
					{Device: DeviceXRLeft, Kind: MappingBoolean, Buttons: []string{"SecondaryButton"}},
				},
			},
		},
	}
}
