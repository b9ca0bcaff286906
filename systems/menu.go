package systems

import (
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// MenuActions are the scene transitions the title screen can request.
type MenuActions struct {
	Start       func(fromCheckpoint bool)
	MusicToggle func(enabled bool)
	Exit        func()
}

// NewUpdateMenu creates the title screen system.
func NewUpdateMenu(actions MenuActions) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetMenu(e)
		input := GetInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}
		if input.JustPressed(cfg.ActionMoveUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMoveDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}
		if input.JustPressed(cfg.ActionToggleMusic) && actions.MusicToggle != nil {
			actions.MusicToggle(ToggleMusic(e))
		}

		if !input.JustPressed(cfg.ActionMenuSelect) && !input.JustPressed(cfg.ActionFire) {
			return
		}
		PlaySFX(e, cfg.SoundMenuSelect)

		switch menu.VisibleOptions[menu.SelectedIndex] {
		case components.MainMenuStart:
			if actions.Start != nil {
				actions.Start(false)
			}
		case components.MainMenuCheckpoint:
			if actions.Start != nil {
				actions.Start(true)
			}
		case components.MainMenuMusic:
			enabled := ToggleMusic(e)
			if actions.MusicToggle != nil {
				actions.MusicToggle(enabled)
			}
		case components.MainMenuExit:
			if actions.Exit != nil {
				actions.Exit()
			}
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), menuBackground, false)

	titleFont := fonts.Title.Get()
	title := "PUFSPACE"
	titleWidth := len(title) * 26 // Approximate width for title font
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(height*0.3), cfg.Cyan)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := height*0.5 + float64(i)*menuItemHeight

		textColor := cfg.White
		if i == menu.SelectedIndex {
			textColor = cfg.Yellow
		}

		label := menuLabel(option, GetAudio(e).MusicEnabled)
		textWidth := len(label) * 11
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, menuFont, x, int(y), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   M: Music"
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-16, cfg.White)
}

const menuItemHeight = 40

var menuBackground = cfg.BlackOverlay

func menuLabel(option components.MainMenuOption, musicOn bool) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuCheckpoint:
		return "Continue from level 2"
	case components.MainMenuMusic:
		if musicOn {
			return "Music: On"
		}
		return "Music: Off"
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}

// GetMenu returns the title screen singleton
func GetMenu(e *ecs.ECS) *components.MenuData {
	ent, ok := components.Menu.First(e.World)
	if !ok {
		panic("menu entity missing")
	}
	return components.Menu.Get(ent)
}
