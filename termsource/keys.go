package termsource

import (
	"github.com/automoto/actionmap/devices"
	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]devices.Button{
	tcell.KeyEnter:      devices.Enter,
	tcell.KeyEscape:     devices.Escape,
	tcell.KeyTab:        devices.Tab,
	tcell.KeyBackspace:  devices.Backspace,
	tcell.KeyBackspace2: devices.Backspace,
	tcell.KeyDelete:     devices.Delete,
	tcell.KeyInsert:     devices.Insert,
	tcell.KeyHome:       devices.Home,
	tcell.KeyEnd:        devices.End,
	tcell.KeyPgUp:       devices.PageUp,
	tcell.KeyPgDn:       devices.PageDown,
	tcell.KeyUp:         devices.ArrowUp,
	tcell.KeyDown:       devices.ArrowDown,
	tcell.KeyLeft:       devices.ArrowLeft,
	tcell.KeyRight:      devices.ArrowRight,
}

// punctuation maps printable runes to the key that types them. Shifted
// runes also hold ShiftLeft.
var punctuation = map[rune]struct {
	key   devices.Button
	shift bool
}{
	' ': {devices.Space, false},
	'-': {devices.Minus, false}, '_': {devices.Minus, true},
	'=': {devices.Equal, false}, '+': {devices.Equal, true},
	'[': {devices.BracketLeft, false}, '{': {devices.BracketLeft, true},
	']': {devices.BracketRight, false}, '}': {devices.BracketRight, true},
	'\\': {devices.Backslash, false}, '|': {devices.Backslash, true},
	';': {devices.Semicolon, false}, ':': {devices.Semicolon, true},
	'\'': {devices.Quote, false}, '"': {devices.Quote, true},
	'`': {devices.Backquote, false}, '~': {devices.Backquote, true},
	',': {devices.Comma, false}, '<': {devices.Comma, true},
	'.': {devices.Period, false}, '>': {devices.Period, true},
	'/': {devices.Slash, false}, '?': {devices.Slash, true},
	'!': {devices.Digit1, true}, '@': {devices.Digit2, true},
	'#': {devices.Digit3, true}, '$': {devices.Digit4, true},
	'%': {devices.Digit5, true}, '^': {devices.Digit6, true},
	'&': {devices.Digit7, true}, '*': {devices.Digit8, true},
	'(': {devices.Digit9, true}, ')': {devices.Digit0, true},
}

// translateKey returns the keys held down to produce a terminal key
// event, modifiers first. Unknown keys yield nil.
func translateKey(key tcell.Key, r rune, mod tcell.ModMask) []devices.Button {
	var base devices.Button
	shift := mod&tcell.ModShift != 0
	ctrl := mod&tcell.ModCtrl != 0

	switch {
	case key == tcell.KeyRune:
		switch {
		case r >= 'a' && r <= 'z':
			base = devices.KeyA + devices.Button(r-'a')
		case r >= 'A' && r <= 'Z':
			base = devices.KeyA + devices.Button(r-'A')
			shift = true
		case r >= '0' && r <= '9':
			base = devices.Digit0 + devices.Button(r-'0')
		default:
			p, ok := punctuation[r]
			if !ok {
				return nil
			}
			base = p.key
			shift = shift || p.shift
		}
	case key == tcell.KeyBacktab:
		base = devices.Tab
		shift = true
	case key >= tcell.KeyF1 && key <= tcell.KeyF20:
		base = devices.F1 + devices.Button(key-tcell.KeyF1)
	default:
		if b, ok := specialKeys[key]; ok {
			base = b
			break
		}
		// Control codes that are not named keys above
		if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
			base = devices.KeyA + devices.Button(key-tcell.KeyCtrlA)
			ctrl = true
			break
		}
		return nil
	}

	keys := make([]devices.Button, 0, 3)
	if ctrl {
		keys = append(keys, devices.ControlLeft)
	}
	if shift {
		keys = append(keys, devices.ShiftLeft)
	}
	if mod&tcell.ModAlt != 0 {
		keys = append(keys, devices.AltLeft)
	}
	return append(keys, base)
}
