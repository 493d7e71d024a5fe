// Package ebitensource feeds action devices from ebiten's input state.
//
// Call Collector.Collect at the start of Game.Update, before the action
// manager updates, and SetViewport from Game.Layout.
package ebitensource

import (
	"log"

	"github.com/automoto/actionmap/devices"
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller is the part of the ebiten input API the collector reads.
type Poller interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)

	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	StandardGamepadButtonValue(id ebiten.GamepadID, button ebiten.StandardGamepadButton) float64
	StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

type ebitenPoller struct{}

// Ebiten polls the running ebiten game.
var Ebiten Poller = ebitenPoller{}

func (ebitenPoller) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (ebitenPoller) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}
func (ebitenPoller) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenPoller) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}
func (ebitenPoller) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}
func (ebitenPoller) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}
func (ebitenPoller) StandardGamepadButtonValue(id ebiten.GamepadID, button ebiten.StandardGamepadButton) float64 {
	return ebiten.StandardGamepadButtonValue(id, button)
}
func (ebitenPoller) StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

// Collector copies ebiten input into a keyboard, a mouse and up to one
// XR device per hand. Nil devices are skipped.
type Collector struct {
	Keyboard *devices.Keyboard
	Mouse    *devices.Mouse
	Hands    []*devices.XR

	// Deadzone is applied to gamepad sticks attached as hands
	Deadzone float64

	poller     Poller
	width      int
	height     int
	gamepadIDs []ebiten.GamepadID
}

// New creates a collector reading from p.
func New(p Poller, keyboard *devices.Keyboard, mouse *devices.Mouse, hands ...*devices.XR) *Collector {
	return &Collector{
		Keyboard: keyboard,
		Mouse:    mouse,
		Hands:    hands,
		poller:   p,
	}
}

// SetViewport sets the logical screen size used to normalize the cursor.
func (c *Collector) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Collect refreshes every device for this frame.
func (c *Collector) Collect(dt float64) {
	if c.Keyboard != nil {
		c.Keyboard.ReleaseAll()
		for _, k := range keyTable {
			if c.poller.IsKeyPressed(k.key) {
				c.Keyboard.Press(k.button)
			}
		}
	}

	if c.Mouse != nil {
		var raw uint8
		for _, b := range mouseTable {
			if c.poller.IsMouseButtonPressed(b.button) {
				raw |= devices.RawMouseButton(b.binding)
			}
		}
		c.Mouse.SetButtons(raw)
		x, y := c.poller.CursorPosition()
		c.Mouse.Move(float64(x), float64(y), float64(c.width), float64(c.height))
	}

	if len(c.Hands) > 0 {
		c.updateHands()
	}
}

// updateHands detaches hands whose gamepad went away and attaches free
// hands to the first standard gamepad.
func (c *Collector) updateHands() {
	for _, hand := range c.Hands {
		if src := hand.Source(); src != nil && !src.Connected() {
			log.Printf("Warning: %s hand lost its gamepad", hand.Handedness())
			hand.Detach()
		}
	}

	c.gamepadIDs = c.poller.AppendGamepadIDs(c.gamepadIDs[:0])
	for _, id := range c.gamepadIDs {
		if !c.poller.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, hand := range c.Hands {
			if hand.Source() != nil {
				continue
			}
			pad := NewGamepadHand(c.poller, id, hand.Handedness())
			pad.Deadzone = c.Deadzone
			if err := hand.Attach(pad); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
		// One gamepad drives both hands
		break
	}
}
