package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state toggled by the menu action
type PauseData struct {
	IsPaused bool
	Toggles  int
}

var Pause = donburi.NewComponentType[PauseData]()
