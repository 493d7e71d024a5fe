package ebitensource

import (
	"math"

	"github.com/automoto/actionmap/devices"
	"github.com/hajimehoshi/ebiten/v2"
)

// noButton marks an XR slot with no gamepad counterpart.
const noButton = ebiten.StandardGamepadButton(-1)

// handLayout lists the gamepad buttons behind the XR slots trigger, grip,
// touchpad, joystick, primary and secondary, plus the stick axes.
type handLayout struct {
	buttons    [6]ebiten.StandardGamepadButton
	horizontal ebiten.StandardGamepadAxis
	vertical   ebiten.StandardGamepadAxis
}

var layouts = [...]handLayout{
	devices.Left: {
		buttons: [6]ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontBottomLeft, // LT
			ebiten.StandardGamepadButtonFrontTopLeft,    // LB
			noButton,
			ebiten.StandardGamepadButtonLeftStick,  // L3
			ebiten.StandardGamepadButtonLeftBottom, // D-pad down
			ebiten.StandardGamepadButtonCenterLeft, // Select / Back
		},
		horizontal: ebiten.StandardGamepadAxisLeftStickHorizontal,
		vertical:   ebiten.StandardGamepadAxisLeftStickVertical,
	},
	devices.Right: {
		buttons: [6]ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonFrontBottomRight, // RT
			ebiten.StandardGamepadButtonFrontTopRight,    // RB
			noButton,
			ebiten.StandardGamepadButtonRightStick,  // R3
			ebiten.StandardGamepadButtonRightBottom, // A / Cross
			ebiten.StandardGamepadButtonRightRight,  // B / Circle
		},
		horizontal: ebiten.StandardGamepadAxisRightStickHorizontal,
		vertical:   ebiten.StandardGamepadAxisRightStickVertical,
	},
}

// GamepadHand presents one half of a standard-layout gamepad as an XR
// controller: the left half (LT, LB, left stick, d-pad, select) or the
// right half (RT, RB, right stick, face buttons).
type GamepadHand struct {
	ID ebiten.GamepadID

	// Deadzone zeroes stick components below it (0.0 to 1.0)
	Deadzone float64

	poller  Poller
	hand    devices.Handedness
	buttons [6]devices.XRButtonState
	axes    [4]float64
}

func NewGamepadHand(p Poller, id ebiten.GamepadID, hand devices.Handedness) *GamepadHand {
	return &GamepadHand{ID: id, poller: p, hand: hand}
}

func (g *GamepadHand) Handedness() devices.Handedness { return g.hand }

func (g *GamepadHand) Connected() bool {
	return g.poller.IsStandardGamepadLayoutAvailable(g.ID)
}

func (g *GamepadHand) Buttons() []devices.XRButtonState {
	layout := layouts[g.hand]
	for i, b := range layout.buttons {
		if b == noButton {
			g.buttons[i] = devices.XRButtonState{}
			continue
		}
		pressed := g.poller.IsStandardGamepadButtonPressed(g.ID, b)
		value := g.poller.StandardGamepadButtonValue(g.ID, b)
		g.buttons[i] = devices.XRButtonState{
			Pressed: pressed,
			Touched: pressed || value > 0,
			Value:   value,
		}
	}
	return g.buttons[:]
}

// Axes reports no touchpad and the stick as the joystick, with up as +y
// like the default emulated WASD axis.
func (g *GamepadHand) Axes() []float64 {
	layout := layouts[g.hand]
	g.axes[2] = g.deadzone(g.poller.StandardGamepadAxisValue(g.ID, layout.horizontal))
	g.axes[3] = -g.deadzone(g.poller.StandardGamepadAxisValue(g.ID, layout.vertical))
	return g.axes[:]
}

func (g *GamepadHand) deadzone(v float64) float64 {
	if math.Abs(v) < g.Deadzone {
		return 0
	}
	return v
}
