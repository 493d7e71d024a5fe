// Package devices exposes per-frame snapshots of physical input devices.
//
// A device is refreshed by a raw input collector between frames and read
// by mappings during a manager update. Devices never reference actions or
// mappings.
package devices

import (
	"errors"
	"math"
)

// Button identifies a boolean or analog button in a device's binding
// enumeration. Zero is reserved and means "unused".
type Button uint8

// Axis identifies a 2D axis in a device's binding enumeration. Zero is
// reserved and means "unused".
type Axis uint8

// Epsilon is the smallest axis component treated as non-zero.
const Epsilon = 1e-4

// ErrInvalidBinding is wrapped by ValidateButton and ValidateAxis when an
// id is not part of the device's enumeration.
var ErrInvalidBinding = errors.New("invalid binding")

// Device is implemented by Keyboard, Mouse and XR.
type Device interface {
	ID() string

	// Pressed reports whether button is held.
	Pressed(button Button) bool

	// Value returns the actuation of button in [0, 1]. Devices without
	// analog buttons return exactly 1 or 0.
	Value(button Button) float64

	// Axis2d writes the axis into out and reports whether either
	// component exceeds Epsilon.
	Axis2d(out *[2]float64, axis Axis) bool

	// GroupPressed reports whether every non-zero button is pressed.
	GroupPressed(buttons []Button) bool

	ValidateButton(button Button) error
	ValidateAxis(axis Axis) error
}

// AxisNonZero reports whether either component of v exceeds Epsilon.
func AxisNonZero(v [2]float64) bool {
	return math.Abs(v[0]) > Epsilon || math.Abs(v[1]) > Epsilon
}

// groupPressed is the AND test shared by every device. Zero slots are
// skipped, so an empty or all-zero group is pressed.
func groupPressed(pressed func(Button) bool, buttons []Button) bool {
	for _, b := range buttons {
		if b == 0 {
			continue
		}
		if !pressed(b) {
			return false
		}
	}
	return true
}

func boolValue(pressed bool) float64 {
	if pressed {
		return 1.0
	}
	return 0.0
}
