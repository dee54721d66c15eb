package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause overlay
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuQuitToMenu
	MenuExit
)

// PauseData stores the pause overlay's menu selection
type PauseData struct {
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
