package systems

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	input := GetInput(ecs)
	if len(GetPause(ecs).Tutorials) > 0 && input.JustPressed(cfg.ActionMenuSelect) {
		DismissTutorial(ecs)
		return
	}
	if input.JustPressed(cfg.ActionPause) {
		TogglePause(ecs)
	}
	if input.JustPressed(cfg.ActionToggleMusic) {
		ToggleMusic(ecs)
	}
}

// TogglePause flips the pause flag. Pausing is blocked after game over.
// It reports whether the session is paused afterwards.
func TogglePause(ecs *ecs.ECS) bool {
	pause := GetPause(ecs)
	if GetSession(ecs).GameOver {
		return pause.IsPaused
	}
	pause.IsPaused = !pause.IsPaused
	syncClock(ecs)
	return pause.IsPaused
}

// syncClock stops the game clock whenever the simulation is frozen so no
// timer fires and no remaining delay is lost.
func syncClock(ecs *ecs.ECS) {
	c := GetClock(ecs)
	if Frozen(ecs) {
		c.Pause()
		return
	}
	c.Resume()
}

// Frozen reports whether gameplay systems must skip this tick.
func Frozen(ecs *ecs.ECS) bool {
	return GetPause(ecs).Frozen() || GetSession(ecs).GameOver
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetPause(e).Frozen() {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused, while a
// tutorial is up, or after game over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if Frozen(e) {
			return
		}
		system(e)
	}
}
