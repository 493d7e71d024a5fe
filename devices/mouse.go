package devices

import "fmt"

// Mouse button bindings.
const (
	MousePrimary Button = iota + 1
	MouseSecondary
	MouseAuxiliary
	MouseFourth
	MouseFifth
)

// Mouse axis bindings.
const (
	// MouseNormalizedPosition is the pointer position in [-1, 1] relative
	// to the host viewport.
	MouseNormalizedPosition Axis = 1
)

var mouseButtonNames = map[string]Button{
	"Primary":   MousePrimary,
	"Secondary": MouseSecondary,
	"Auxiliary": MouseAuxiliary,
	"Fourth":    MouseFourth,
	"Fifth":     MouseFifth,
}

var mouseAxisNames = map[string]Axis{
	"NormalizedPosition": MouseNormalizedPosition,
}

// MouseButtonByName resolves "Primary", "Secondary", ...
func MouseButtonByName(name string) (Button, bool) {
	b, ok := mouseButtonNames[name]
	return b, ok
}

// MouseAxisByName resolves "NormalizedPosition".
func MouseAxisByName(name string) (Axis, bool) {
	a, ok := mouseAxisNames[name]
	return a, ok
}

// RawMouseButton converts a binding to its bit in the raw button mask.
func RawMouseButton(b Button) uint8 {
	return 1 << (b - 1)
}

// Mouse is a snapshot of pointer buttons and position.
type Mouse struct {
	id       string
	buttons  uint8
	absolute [2]float64
	ndc      [2]float64
}

// NewMouse creates a mouse with no button held, centered in the viewport.
func NewMouse(id string) *Mouse {
	return &Mouse{id: id}
}

func (m *Mouse) ID() string { return m.id }

func (m *Mouse) Pressed(button Button) bool {
	if button < MousePrimary || button > MouseFifth {
		return false
	}
	return m.buttons&RawMouseButton(button) != 0
}

func (m *Mouse) Value(button Button) float64 {
	return boolValue(m.Pressed(button))
}

func (m *Mouse) Axis2d(out *[2]float64, axis Axis) bool {
	switch axis {
	case MouseNormalizedPosition:
		*out = m.ndc
		return AxisNonZero(*out)
	}
	return false
}

func (m *Mouse) GroupPressed(buttons []Button) bool {
	return groupPressed(m.Pressed, buttons)
}

func (m *Mouse) ValidateButton(button Button) error {
	if button < MousePrimary || button > MouseFifth {
		return fmt.Errorf("%w: mouse %q has no button %d", ErrInvalidBinding, m.id, button)
	}
	return nil
}

func (m *Mouse) ValidateAxis(axis Axis) error {
	if axis != MouseNormalizedPosition {
		return fmt.Errorf("%w: mouse %q has no axis %d", ErrInvalidBinding, m.id, axis)
	}
	return nil
}

// SetButtons replaces the whole button mask, bit n-1 holding binding n.
func (m *Mouse) SetButtons(raw uint8) {
	m.buttons = raw
}

func (m *Mouse) Press(button Button) {
	if button < MousePrimary || button > MouseFifth {
		return
	}
	m.buttons |= RawMouseButton(button)
}

func (m *Mouse) Release(button Button) {
	if button < MousePrimary || button > MouseFifth {
		return
	}
	m.buttons &^= RawMouseButton(button)
}

// Move records the pointer at (x, y) inside a width x height viewport.
// A degenerate viewport leaves the normalized position untouched.
func (m *Mouse) Move(x, y, width, height float64) {
	m.absolute = [2]float64{x, y}
	if width <= 0 || height <= 0 {
		return
	}
	m.ndc[0] = (x/width)*2.0 - 1.0
	m.ndc[1] = (y/height)*2.0 - 1.0
}

// Absolute returns the last pointer position in host coordinates.
func (m *Mouse) Absolute() [2]float64 { return m.absolute }

// NDC returns the pointer position in [-1, 1].
func (m *Mouse) NDC() [2]float64 { return m.ndc }
