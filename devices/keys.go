package devices

// Keyboard bindings. Codes are stable and fit the 128-bit keyboard bitset.
const (
	KeyA Button = iota + 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Space
	Enter
	Escape
	Tab
	Backspace
	Delete
	Insert
	Home
	End
	PageUp
	PageDown
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	ShiftLeft
	ShiftRight
	ControlLeft
	ControlRight
	AltLeft
	AltRight
	MetaLeft
	MetaRight
	CapsLock
	ContextMenu
	Minus
	Equal
	BracketLeft
	BracketRight
	Backslash
	Semicolon
	Quote
	Backquote
	Comma
	Period
	Slash
	IntlBackslash
	NumLock
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadSubtract
	NumpadMultiply
	NumpadDivide
	NumpadDecimal
	NumpadEnter
	NumpadEqual
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20

	keyCount
)

var keyNames = [keyCount]string{
	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE",
	KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ",
	KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO",
	KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY",
	KeyZ: "KeyZ",

	Digit0: "Digit0", Digit1: "Digit1", Digit2: "Digit2", Digit3: "Digit3",
	Digit4: "Digit4", Digit5: "Digit5", Digit6: "Digit6", Digit7: "Digit7",
	Digit8: "Digit8", Digit9: "Digit9",

	Space: "Space", Enter: "Enter", Escape: "Escape", Tab: "Tab",
	Backspace: "Backspace", Delete: "Delete", Insert: "Insert",
	Home: "Home", End: "End", PageUp: "PageUp", PageDown: "PageDown",
	ArrowUp: "ArrowUp", ArrowDown: "ArrowDown", ArrowLeft: "ArrowLeft",
	ArrowRight: "ArrowRight",

	ShiftLeft: "ShiftLeft", ShiftRight: "ShiftRight",
	ControlLeft: "ControlLeft", ControlRight: "ControlRight",
	AltLeft: "AltLeft", AltRight: "AltRight",
	MetaLeft: "MetaLeft", MetaRight: "MetaRight",
	CapsLock: "CapsLock", ContextMenu: "ContextMenu",

	Minus: "Minus", Equal: "Equal", BracketLeft: "BracketLeft",
	BracketRight: "BracketRight", Backslash: "Backslash",
	Semicolon: "Semicolon", Quote: "Quote", Backquote: "Backquote",
	Comma: "Comma", Period: "Period", Slash: "Slash",
	IntlBackslash: "IntlBackslash",

	NumLock: "NumLock", Numpad0: "Numpad0", Numpad1: "Numpad1",
	Numpad2: "Numpad2", Numpad3: "Numpad3", Numpad4: "Numpad4",
	Numpad5: "Numpad5", Numpad6: "Numpad6", Numpad7: "Numpad7",
	Numpad8: "Numpad8", Numpad9: "Numpad9", NumpadAdd: "NumpadAdd",
	NumpadSubtract: "NumpadSubtract", NumpadMultiply: "NumpadMultiply",
	NumpadDivide: "NumpadDivide", NumpadDecimal: "NumpadDecimal",
	NumpadEnter: "NumpadEnter", NumpadEqual: "NumpadEqual",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6", F7: "F7",
	F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12", F13: "F13",
	F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18", F19: "F19",
	F20: "F20",
}

var keysByName = func() map[string]Button {
	m := make(map[string]Button, len(keyNames))
	for i, name := range keyNames {
		if name != "" {
			m[name] = Button(i)
		}
	}
	return m
}()

// KeyName returns the binding name of a keyboard key, or "" if the code
// is not a key.
func KeyName(b Button) string {
	if b >= keyCount {
		return ""
	}
	return keyNames[b]
}

// KeyByName resolves a key binding name such as "KeyW" or "Space".
func KeyByName(name string) (Button, bool) {
	b, ok := keysByName[name]
	return b, ok
}
