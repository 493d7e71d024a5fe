package devices

import "fmt"

// Handedness selects which controller an XR device reads.
type Handedness uint8

const (
	Left Handedness = iota
	Right
)

func (h Handedness) String() string {
	if h == Right {
		return "right"
	}
	return "left"
}

// XR button bindings, following the xr-standard gamepad layout.
const (
	XRTrigger Button = iota + 1
	XRGrip
	XRTouchpad
	XRJoystick
	XRPrimaryButton
	XRSecondaryButton

	xrButtonEnd
)

// XR axis bindings. Each axis reads two consecutive raw axes.
const (
	XRAxisTouchpad Axis = iota + 1
	XRAxisJoystick

	xrAxisEnd
)

const (
	xrButtonCount = int(xrButtonEnd - 1)
	xrAxisSlots   = 2 * int(xrAxisEnd-1)
)

var xrButtonNames = map[string]Button{
	"Trigger":         XRTrigger,
	"Grip":            XRGrip,
	"Touchpad":        XRTouchpad,
	"Joystick":        XRJoystick,
	"PrimaryButton":   XRPrimaryButton,
	"SecondaryButton": XRSecondaryButton,
}

var xrAxisNames = map[string]Axis{
	"Touchpad": XRAxisTouchpad,
	"Joystick": XRAxisJoystick,
}

// XRButtonByName resolves "Trigger", "Grip", ...
func XRButtonByName(name string) (Button, bool) {
	b, ok := xrButtonNames[name]
	return b, ok
}

// XRAxisByName resolves "Touchpad" or "Joystick".
func XRAxisByName(name string) (Axis, bool) {
	a, ok := xrAxisNames[name]
	return a, ok
}

// XRButtonState is one raw button as reported by an XR input source.
type XRButtonState struct {
	Pressed bool
	Touched bool
	Value   float64
}

// XRSource is the raw controller an XR device polls. Buttons are indexed
// by binding-1 and axes are laid out as pairs (touchpad x/y, joystick x/y).
type XRSource interface {
	Handedness() Handedness
	Connected() bool
	Buttons() []XRButtonState
	Axes() []float64
}

// XR is a snapshot of one hand controller. Update must run once per frame
// before the action manager updates.
type XR struct {
	id      string
	hand    Handedness
	source  XRSource
	pressed uint32
	touched uint32
	values  [xrButtonCount]float64
	axes    [xrAxisSlots]float64
}

// NewXR creates a detached controller device for hand.
func NewXR(id string, hand Handedness) *XR {
	return &XR{id: id, hand: hand}
}

func (x *XR) ID() string             { return x.id }
func (x *XR) Handedness() Handedness { return x.hand }

// Source returns the attached raw source, nil when detached.
func (x *XR) Source() XRSource { return x.source }

// Attach binds source to this device. The source must report the same
// hand.
func (x *XR) Attach(source XRSource) error {
	if source.Handedness() != x.hand {
		return fmt.Errorf("xr %q: cannot attach %s source to %s hand", x.id, source.Handedness(), x.hand)
	}
	x.source = source
	return nil
}

// Detach drops the source and clears the snapshot.
func (x *XR) Detach() {
	x.source = nil
	x.clear()
}

func (x *XR) clear() {
	x.pressed = 0
	x.touched = 0
	x.values = [xrButtonCount]float64{}
	x.axes = [xrAxisSlots]float64{}
}

// Update polls the attached source into the snapshot.
func (x *XR) Update() {
	x.clear()
	if x.source == nil || !x.source.Connected() {
		return
	}
	for i, b := range x.source.Buttons() {
		if i >= xrButtonCount {
			break
		}
		if b.Pressed {
			x.pressed |= 1 << i
		}
		if b.Touched {
			x.touched |= 1 << i
		}
		x.values[i] = clamp01(b.Value)
	}
	copy(x.axes[:], x.source.Axes())
}

func (x *XR) Pressed(button Button) bool {
	if button == 0 || button >= xrButtonEnd {
		return false
	}
	return x.pressed&(1<<(button-1)) != 0
}

// Touched reports whether the capacitive sensor of button is touched.
func (x *XR) Touched(button Button) bool {
	if button == 0 || button >= xrButtonEnd {
		return false
	}
	return x.touched&(1<<(button-1)) != 0
}

// Value returns the analog value of button. Digital buttons that report
// no analog value read 1 while pressed.
func (x *XR) Value(button Button) float64 {
	if button == 0 || button >= xrButtonEnd {
		return 0
	}
	v := x.values[button-1]
	if v == 0 && x.Pressed(button) {
		return 1.0
	}
	return v
}

func (x *XR) Axis2d(out *[2]float64, axis Axis) bool {
	if x.source == nil || axis == 0 || axis >= xrAxisEnd {
		return false
	}
	i := int(axis-1) * 2
	out[0] = x.axes[i]
	out[1] = x.axes[i+1]
	return AxisNonZero(*out)
}

func (x *XR) GroupPressed(buttons []Button) bool {
	return groupPressed(x.Pressed, buttons)
}

func (x *XR) ValidateButton(button Button) error {
	if button == 0 || button >= xrButtonEnd {
		return fmt.Errorf("%w: xr %q has no button %d", ErrInvalidBinding, x.id, button)
	}
	return nil
}

func (x *XR) ValidateAxis(axis Axis) error {
	if axis == 0 || axis >= xrAxisEnd {
		return fmt.Errorf("%w: xr %q has no axis %d", ErrInvalidBinding, x.id, axis)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
