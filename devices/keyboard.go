package devices

import "fmt"

// bitset128 stores one bit per keyboard binding code.
type bitset128 [2]uint64

func (b *bitset128) set(i uint8)      { b[i>>6] |= 1 << (i & 63) }
func (b *bitset128) clear(i uint8)    { b[i>>6] &^= 1 << (i & 63) }
func (b *bitset128) has(i uint8) bool { return b[i>>6]&(1<<(i&63)) != 0 }

// Keyboard is a snapshot of physical key state.
type Keyboard struct {
	id   string
	keys bitset128
}

// NewKeyboard creates a keyboard with every key released.
func NewKeyboard(id string) *Keyboard {
	return &Keyboard{id: id}
}

func (k *Keyboard) ID() string { return k.id }

func (k *Keyboard) Pressed(button Button) bool {
	if button == 0 || button >= keyCount {
		return false
	}
	return k.keys.has(uint8(button))
}

func (k *Keyboard) Value(button Button) float64 {
	return boolValue(k.Pressed(button))
}

// Axis2d always reports false, keyboards have no axes.
func (k *Keyboard) Axis2d(out *[2]float64, axis Axis) bool {
	return false
}

func (k *Keyboard) GroupPressed(buttons []Button) bool {
	return groupPressed(k.Pressed, buttons)
}

func (k *Keyboard) ValidateButton(button Button) error {
	if KeyName(button) == "" {
		return fmt.Errorf("%w: keyboard %q has no key %d", ErrInvalidBinding, k.id, button)
	}
	return nil
}

func (k *Keyboard) ValidateAxis(axis Axis) error {
	return fmt.Errorf("%w: keyboard %q has no axis %d", ErrInvalidBinding, k.id, axis)
}

// Press marks button as held. Unknown codes are ignored.
func (k *Keyboard) Press(button Button) {
	if button == 0 || button >= keyCount {
		return
	}
	k.keys.set(uint8(button))
}

// Release marks button as released.
func (k *Keyboard) Release(button Button) {
	if button == 0 || button >= keyCount {
		return
	}
	k.keys.clear(uint8(button))
}

// ReleaseAll clears every key, e.g. when the host window loses focus.
func (k *Keyboard) ReleaseAll() {
	k.keys = bitset128{}
}
