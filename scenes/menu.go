package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	once         sync.Once
	done         bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, services *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: services}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// Done reports whether the player chose to exit.
func (ms *MenuScene) Done() bool {
	return ms.done
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	options := []components.MainMenuOption{components.MainMenuStart}
	if ms.services.CheckpointReached {
		options = append(options, components.MainMenuCheckpoint)
	}
	options = append(options, components.MainMenuMusic, components.MainMenuExit)

	entry := ms.ecs.World.Entry(ms.ecs.World.Create(components.Menu, components.Input, components.Audio))
	components.Menu.SetValue(entry, components.MenuData{VisibleOptions: options})
	components.Input.SetValue(entry, components.InputData{Source: ms.services.Input})
	components.Audio.SetValue(entry, components.AudioData{
		Backend:      ms.services.Audio,
		MusicEnabled: ms.services.MusicEnabled,
		Music:        cfg.MusicMenu,
		MusicVolume:  cfg.Audio.DefaultMusicVol,
		MusicFade:    cfg.Level.MusicCrossfade,
	})

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(systems.MenuActions{
		Start: func(fromCheckpoint bool) {
			ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.services, fromCheckpoint))
		},
		MusicToggle: ms.services.setMusic,
		Exit: func() {
			ms.done = true
		},
	}))
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
