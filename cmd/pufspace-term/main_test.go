package main

import (
	"strings"
	"testing"
	"time"

	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/scenes"
	"github.com/automoto/pufspace/systems"
	"github.com/gdamore/tcell/v2"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeySourceHoldWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	keys := &keySource{now: clock.now}

	if keys.Poll().Actions[cfg.ActionFire] {
		t.Fatal("fire held before any key")
	}

	keys.Handle(runeKey(' '))
	if !keys.Poll().Actions[cfg.ActionFire] {
		t.Fatal("fire not held right after the key")
	}

	clock.advance(holdWindow - time.Millisecond)
	if !keys.Poll().Actions[cfg.ActionFire] {
		t.Error("fire released inside the hold window")
	}

	// A repeat extends the hold.
	keys.Handle(runeKey('z'))
	clock.advance(holdWindow - time.Millisecond)
	if !keys.Poll().Actions[cfg.ActionFire] {
		t.Error("repeat did not extend the hold")
	}

	clock.advance(time.Millisecond)
	if keys.Poll().Actions[cfg.ActionFire] {
		t.Error("fire still held after the window")
	}
}

func TestKeySourceMapping(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   cfg.ActionID
		mapped bool
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), cfg.ActionMoveLeft, true},
		{"d", runeKey('d'), cfg.ActionMoveRight, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), cfg.ActionPause, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), cfg.ActionMenuSelect, true},
		{"m", runeKey('m'), cfg.ActionToggleMusic, true},
		{"unmapped rune", runeKey('x'), 0, false},
		{"unmapped key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(1000, 0)}
			keys := &keySource{now: clock.now}

			if got := keys.Handle(tt.ev); got != tt.mapped {
				t.Fatalf("Handle() = %v, want %v", got, tt.mapped)
			}
			snap := keys.Poll()
			held := 0
			for _, on := range snap.Actions {
				if on {
					held++
				}
			}
			if !tt.mapped {
				if held != 0 {
					t.Errorf("%d actions held for an unmapped key", held)
				}
				return
			}
			if held != 1 || !snap.Actions[tt.want] {
				t.Errorf("actions = %v, want only %v", snap.Actions, tt.want)
			}
		})
	}
}

func newTestHost(t *testing.T) *host {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(54, 40)

	keys := newKeySource()
	services := scenes.NewServices(systems.NewMemoryStore(), nil, keys, 1)
	h := &host{screen: screen, keys: keys}
	h.play = scenes.NewPlayScene(h, services, false)
	return h
}

func screenText(screen tcell.Screen) []string {
	cols, rows := screen.Size()
	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		lines[y] = b.String()
	}
	return lines
}

func TestDrawSession(t *testing.T) {
	h := newTestHost(t)
	h.play.Step(1000 / float64(cfg.C.TPS))
	draw(h.screen, h.play)

	lines := screenText(h.screen)
	if !strings.Contains(lines[0], "SCORE 0") || !strings.Contains(lines[0], "HP 5") {
		t.Errorf("HUD = %q", lines[0])
	}
	found := false
	for _, l := range lines[1:] {
		if strings.ContainsRune(l, 'A') {
			found = true
		}
	}
	if !found {
		t.Error("ship not drawn")
	}
}

func TestHostGameOverAndRestart(t *testing.T) {
	h := newTestHost(t)

	// Restart is ignored while the session runs.
	before := h.play.ECS()
	h.handle(runeKey('r'))
	if h.play.ECS() != before {
		t.Fatal("restarted a running session")
	}

	systems.TriggerGameOver(h.play.ECS())
	draw(h.screen, h.play)
	if text := strings.Join(screenText(h.screen), "\n"); !strings.Contains(text, "GAME OVER") {
		t.Error("game over banner missing")
	}

	h.handle(runeKey('r'))
	if h.play.ECS() == before || h.play.GameOver() {
		t.Error("r did not restart after game over")
	}

	h.handle(runeKey('q'))
	if !h.quit {
		t.Error("q did not quit")
	}
}

func TestHostPauseBanner(t *testing.T) {
	h := newTestHost(t)
	h.play.TogglePause()
	draw(h.screen, h.play)

	if text := strings.Join(screenText(h.screen), "\n"); !strings.Contains(text, "PAUSED") {
		t.Error("pause banner missing")
	}
}
