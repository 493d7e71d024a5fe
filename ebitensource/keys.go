package ebitensource

import (
	"github.com/automoto/actionmap/devices"
	"github.com/hajimehoshi/ebiten/v2"
)

type keyBinding struct {
	key    ebiten.Key
	button devices.Button
}

// keyTable maps ebiten keys to keyboard bindings. Both sides follow the
// physical key code names.
var keyTable = [...]keyBinding{
	{ebiten.KeyA, devices.KeyA},
	{ebiten.KeyB, devices.KeyB},
	{ebiten.KeyC, devices.KeyC},
	{ebiten.KeyD, devices.KeyD},
	{ebiten.KeyE, devices.KeyE},
	{ebiten.KeyF, devices.KeyF},
	{ebiten.KeyG, devices.KeyG},
	{ebiten.KeyH, devices.KeyH},
	{ebiten.KeyI, devices.KeyI},
	{ebiten.KeyJ, devices.KeyJ},
	{ebiten.KeyK, devices.KeyK},
	{ebiten.KeyL, devices.KeyL},
	{ebiten.KeyM, devices.KeyM},
	{ebiten.KeyN, devices.KeyN},
	{ebiten.KeyO, devices.KeyO},
	{ebiten.KeyP, devices.KeyP},
	{ebiten.KeyQ, devices.KeyQ},
	{ebiten.KeyR, devices.KeyR},
	{ebiten.KeyS, devices.KeyS},
	{ebiten.KeyT, devices.KeyT},
	{ebiten.KeyU, devices.KeyU},
	{ebiten.KeyV, devices.KeyV},
	{ebiten.KeyW, devices.KeyW},
	{ebiten.KeyX, devices.KeyX},
	{ebiten.KeyY, devices.KeyY},
	{ebiten.KeyZ, devices.KeyZ},
	{ebiten.KeyDigit0, devices.Digit0},
	{ebiten.KeyDigit1, devices.Digit1},
	{ebiten.KeyDigit2, devices.Digit2},
	{ebiten.KeyDigit3, devices.Digit3},
	{ebiten.KeyDigit4, devices.Digit4},
	{ebiten.KeyDigit5, devices.Digit5},
	{ebiten.KeyDigit6, devices.Digit6},
	{ebiten.KeyDigit7, devices.Digit7},
	{ebiten.KeyDigit8, devices.Digit8},
	{ebiten.KeyDigit9, devices.Digit9},
	{ebiten.KeySpace, devices.Space},
	{ebiten.KeyEnter, devices.Enter},
	{ebiten.KeyEscape, devices.Escape},
	{ebiten.KeyTab, devices.Tab},
	{ebiten.KeyBackspace, devices.Backspace},
	{ebiten.KeyDelete, devices.Delete},
	{ebiten.KeyInsert, devices.Insert},
	{ebiten.KeyHome, devices.Home},
	{ebiten.KeyEnd, devices.End},
	{ebiten.KeyPageUp, devices.PageUp},
	{ebiten.KeyPageDown, devices.PageDown},
	{ebiten.KeyArrowUp, devices.ArrowUp},
	{ebiten.KeyArrowDown, devices.ArrowDown},
	{ebiten.KeyArrowLeft, devices.ArrowLeft},
	{ebiten.KeyArrowRight, devices.ArrowRight},
	{ebiten.KeyShiftLeft, devices.ShiftLeft},
	{ebiten.KeyShiftRight, devices.ShiftRight},
	{ebiten.KeyControlLeft, devices.ControlLeft},
	{ebiten.KeyControlRight, devices.ControlRight},
	{ebiten.KeyAltLeft, devices.AltLeft},
	{ebiten.KeyAltRight, devices.AltRight},
	{ebiten.KeyMetaLeft, devices.MetaLeft},
	{ebiten.KeyMetaRight, devices.MetaRight},
	{ebiten.KeyCapsLock, devices.CapsLock},
	{ebiten.KeyContextMenu, devices.ContextMenu},
	{ebiten.KeyMinus, devices.Minus},
	{ebiten.KeyEqual, devices.Equal},
	{ebiten.KeyBracketLeft, devices.BracketLeft},
	{ebiten.KeyBracketRight, devices.BracketRight},
	{ebiten.KeyBackslash, devices.Backslash},
	{ebiten.KeySemicolon, devices.Semicolon},
	{ebiten.KeyQuote, devices.Quote},
	{ebiten.KeyBackquote, devices.Backquote},
	{ebiten.KeyComma, devices.Comma},
	{ebiten.KeyPeriod, devices.Period},
	{ebiten.KeySlash, devices.Slash},
	{ebiten.KeyIntlBackslash, devices.IntlBackslash},
	{ebiten.KeyNumLock, devices.NumLock},
	{ebiten.KeyNumpad0, devices.Numpad0},
	{ebiten.KeyNumpad1, devices.Numpad1},
	{ebiten.KeyNumpad2, devices.Numpad2},
	{ebiten.KeyNumpad3, devices.Numpad3},
	{ebiten.KeyNumpad4, devices.Numpad4},
	{ebiten.KeyNumpad5, devices.Numpad5},
	{ebiten.KeyNumpad6, devices.Numpad6},
	{ebiten.KeyNumpad7, devices.Numpad7},
	{ebiten.KeyNumpad8, devices.Numpad8},
	{ebiten.KeyNumpad9, devices.Numpad9},
	{ebiten.KeyNumpadAdd, devices.NumpadAdd},
	{ebiten.KeyNumpadSubtract, devices.NumpadSubtract},
	{ebiten.KeyNumpadMultiply, devices.NumpadMultiply},
	{ebiten.KeyNumpadDivide, devices.NumpadDivide},
	{ebiten.KeyNumpadDecimal, devices.NumpadDecimal},
	{ebiten.KeyNumpadEnter, devices.NumpadEnter},
	{ebiten.KeyNumpadEqual, devices.NumpadEqual},
	{ebiten.KeyF1, devices.F1},
	{ebiten.KeyF2, devices.F2},
	{ebiten.KeyF3, devices.F3},
	{ebiten.KeyF4, devices.F4},
	{ebiten.KeyF5, devices.F5},
	{ebiten.KeyF6, devices.F6},
	{ebiten.KeyF7, devices.F7},
	{ebiten.KeyF8, devices.F8},
	{ebiten.KeyF9, devices.F9},
	{ebiten.KeyF10, devices.F10},
	{ebiten.KeyF11, devices.F11},
	{ebiten.KeyF12, devices.F12},
	{ebiten.KeyF13, devices.F13},
	{ebiten.KeyF14, devices.F14},
	{ebiten.KeyF15, devices.F15},
	{ebiten.KeyF16, devices.F16},
	{ebiten.KeyF17, devices.F17},
	{ebiten.KeyF18, devices.F18},
	{ebiten.KeyF19, devices.F19},
	{ebiten.KeyF20, devices.F20},
}

type mouseBinding struct {
	button  ebiten.MouseButton
	binding devices.Button
}

var mouseTable = [...]mouseBinding{
	{ebiten.MouseButtonLeft, devices.MousePrimary},
	{ebiten.MouseButtonRight, devices.MouseSecondary},
	{ebiten.MouseButtonMiddle, devices.MouseAuxiliary},
	{ebiten.MouseButton3, devices.MouseFourth},
	{ebiten.MouseButton4, devices.MouseFifth},
}
