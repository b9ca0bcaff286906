package scenes

import (
	"image/color"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs one play session at a time and rebuilds it on restart.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	overlay      *ui.Overlay

	restartRequested bool
	quitRequested    bool
}

// NewPlayScene starts a session right away. A checkpoint session begins
// with level 2 active.
func NewPlayScene(sc SceneChanger, services *Services, fromCheckpoint bool) *PlayScene {
	ps := &PlayScene{sceneChanger: sc, services: services}
	ps.build(fromCheckpoint)
	return ps
}

func (ps *PlayScene) build(fromCheckpoint bool) {
	world := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdatePause)
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateDebug))

	// Game systems wrapped with pause, tutorial and game over checks.
	// The clock goes first so due timers fire at the start of the tick.
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateBackground))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateBoss))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateShip))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateCleanup))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	world.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))

	// The game over cues still need their effects.
	world.AddSystem(systems.WithPauseCheck(systems.UpdateVFX))
	world.AddSystem(systems.UpdateSweep)
	world.AddSystem(systems.UpdateAudio)

	world.AddRenderer(cfg.Default, systems.DrawBackground)
	world.AddRenderer(cfg.Default, systems.DrawSprites)
	world.AddRenderer(cfg.Default, systems.DrawVFX)
	world.AddRenderer(cfg.Default, systems.DrawHUD)
	world.AddRenderer(cfg.Default, systems.DrawDebug)
	world.AddRenderer(cfg.Default, systems.DrawPause)
	world.AddRenderer(cfg.Default, systems.DrawGameOver)

	factory.CreateSession(world, factory.SessionOptions{
		Seed:           ps.services.nextSeed(),
		Input:          ps.services.Input,
		Audio:          ps.services.Audio,
		MusicEnabled:   ps.services.MusicEnabled,
		Tutorials:      ps.services.Tutorials,
		FromCheckpoint: fromCheckpoint,
	})
	systems.StartSpawners(world)

	ps.ecs = world
	ps.restartRequested = false
}

// Step advances the session by dt milliseconds and records preference
// changes.
func (ps *PlayScene) Step(dt float64) {
	if timers, ok := components.Timers.First(ps.ecs.World); ok {
		components.Timers.Get(timers).Dt = dt
	}
	ps.ecs.Update()

	session := systems.GetSession(ps.ecs)
	if session.Level2Active {
		ps.services.CheckpointReached = true
	}
	ps.services.setMusic(systems.GetAudio(ps.ecs).MusicEnabled)
	ps.services.noteTutorials()
}

func (ps *PlayScene) Update() {
	ps.Step(1000 / float64(cfg.C.TPS))

	if ps.overlay == nil {
		ps.overlay = ps.newOverlay()
	}
	ps.overlay.Sync(ps.overlayState())
	ps.overlay.Update()

	if ps.GameOver() && systems.GetInput(ps.ecs).JustPressed(cfg.ActionMenuSelect) {
		ps.restartRequested = true
	}

	switch {
	case ps.quitRequested:
		ps.quitRequested = false
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.services))
	case ps.restartRequested:
		ps.Restart()
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	ps.ecs.Draw(screen)
	if ps.overlay != nil {
		ps.overlay.Draw(screen)
	}
}

func (ps *PlayScene) newOverlay() *ui.Overlay {
	o := ui.NewOverlay(cfg.C.Width)
	o.OnResume = func() {
		if ps.Paused() {
			ps.TogglePause()
		}
	}
	o.OnRestart = func() { ps.restartRequested = true }
	o.OnDismiss = func() { ps.DismissTutorial() }
	o.OnToggleMusic = func() { ps.ToggleMusic() }
	o.OnQuit = func() { ps.quitRequested = true }
	return o
}

func (ps *PlayScene) overlayState() ui.OverlayState {
	state := ui.OverlayState{MusicEnabled: systems.GetAudio(ps.ecs).MusicEnabled}
	pause := systems.GetPause(ps.ecs)
	switch {
	case ps.GameOver():
		state.Mode = ui.ModeGameOver
	case len(pause.Tutorials) > 0:
		state.Mode = ui.ModeTutorial
		state.TutorialText = cfg.TutorialText[pause.Tutorials[0]]
	case pause.IsPaused:
		state.Mode = ui.ModePaused
	}
	return state
}

// Restart throws the session away and starts a new one, from the
// checkpoint when the old session had reached level 2.
func (ps *PlayScene) Restart() {
	ps.build(systems.GetSession(ps.ecs).Level2Active)
}

func (ps *PlayScene) TogglePause() bool {
	return systems.TogglePause(ps.ecs)
}

// DismissTutorial closes the tutorial on screen and applies its power-up.
func (ps *PlayScene) DismissTutorial() bool {
	ok := systems.DismissTutorial(ps.ecs)
	ps.services.noteTutorials()
	return ok
}

func (ps *PlayScene) ToggleMusic() bool {
	enabled := systems.ToggleMusic(ps.ecs)
	ps.services.setMusic(enabled)
	return enabled
}

func (ps *PlayScene) TriggerBoss() bool {
	return systems.SpawnBoss(ps.ecs)
}

func (ps *PlayScene) ToggleGodMode() bool {
	return systems.ToggleGodMode(ps.ecs)
}

func (ps *PlayScene) SetBossHealthToOne() bool {
	return systems.DebugSetBossHealth(ps.ecs)
}

func (ps *PlayScene) StartLevelTransition() bool {
	return systems.StartLevelTransition(ps.ecs)
}

// ECS exposes the live session world.
func (ps *PlayScene) ECS() *ecs.ECS {
	return ps.ecs
}

func (ps *PlayScene) Session() *components.SessionData {
	return systems.GetSession(ps.ecs)
}

func (ps *PlayScene) Score() int {
	return systems.GetSession(ps.ecs).Score
}

func (ps *PlayScene) GameOver() bool {
	return systems.GetSession(ps.ecs).GameOver
}

func (ps *PlayScene) Paused() bool {
	return systems.GetPause(ps.ecs).IsPaused
}

// Now is the session's game time in milliseconds.
func (ps *PlayScene) Now() float64 {
	return systems.Now(ps.ecs)
}
