package systems

import (
	"testing"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func TestTogglePause(t *testing.T) {
	e := newTestECS(t)
	c := GetClock(e)
	h := c.After(1000, func() {})
	advance(e, 400)

	if !TogglePause(e) {
		t.Fatal("TogglePause() = false, want paused")
	}
	advance(e, 5000)
	if got := Now(e); got != 400 {
		t.Errorf("Now() = %v while paused, want 400", got)
	}
	if got, _ := c.Remaining(h); got != 600 {
		t.Errorf("remaining = %v while paused, want 600", got)
	}

	if TogglePause(e) {
		t.Fatal("TogglePause() = true, want resumed")
	}
	advance(e, 599)
	if !c.Pending(h) {
		t.Error("timer fired early after resume")
	}
	advance(e, 1)
	if c.Pending(h) {
		t.Error("timer did not fire after resume")
	}
}

func TestPauseBlockedAfterGameOver(t *testing.T) {
	e := newTestECS(t)
	TriggerGameOver(e)

	if TogglePause(e) {
		t.Error("paused after game over")
	}
	if GetPause(e).IsPaused {
		t.Error("pause flag set after game over")
	}
}

func TestGameplayChecks(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(pause *components.PauseData, session *components.SessionData)
		wantRun bool
	}{
		{"running", func(*components.PauseData, *components.SessionData) {}, true},
		{"paused", func(p *components.PauseData, _ *components.SessionData) { p.IsPaused = true }, false},
		{"tutorial", func(p *components.PauseData, _ *components.SessionData) {
			p.Tutorials = []cfg.PowerUpKind{cfg.PowerUpHeal}
		}, false},
		{"game over", func(_ *components.PauseData, s *components.SessionData) { s.GameOver = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			tt.setup(GetPause(e), GetSession(e))

			ran := false
			WithGameplayChecks(func(*ecs.ECS) { ran = true })(e)
			if ran != tt.wantRun {
				t.Errorf("ran = %v, want %v", ran, tt.wantRun)
			}
		})
	}
}

func TestUpdatePauseDismissesTutorial(t *testing.T) {
	input := &scriptedInput{}
	e := newSessionECS(t, factory.SessionOptions{Seed: 1, Input: input})
	PickUp(e, cfg.PowerUpShield)

	// Select dismisses the overlay instead of pausing.
	input.hold(cfg.ActionMenuSelect, cfg.ActionPause)
	UpdateInput(e)
	UpdatePause(e)

	if len(GetPause(e).Tutorials) != 0 {
		t.Fatal("tutorial still up")
	}
	if GetPause(e).IsPaused {
		t.Error("dismissal also paused the session")
	}
	ship := shipEntry(t, e)
	if !components.TimedEffects.Get(ship).Active(cfg.EffectShield, Now(e)) {
		t.Error("shield not applied on dismissal")
	}
}
