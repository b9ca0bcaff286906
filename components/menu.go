package components

import "github.com/yohamta/donburi"

// MainMenuOption is an entry on the title screen.
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuCheckpoint
	MainMenuMusic
	MainMenuExit
)

// MenuData is the title screen state (singleton component)
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
}

var Menu = donburi.NewComponentType[MenuData]()
