package main

import (
	"sync"
	"time"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/gdamore/tcell/v2"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals report presses and repeats but never releases.
const holdWindow = 120 * time.Millisecond

// keySource turns terminal key events into held actions.
type keySource struct {
	mu       sync.Mutex
	lastSeen [cfg.ActionCount]time.Time
	now      func() time.Time
}

func newKeySource() *keySource {
	return &keySource{now: time.Now}
}

var runeActions = map[rune]cfg.ActionID{
	'a': cfg.ActionMoveLeft,
	'd': cfg.ActionMoveRight,
	'w': cfg.ActionMoveUp,
	's': cfg.ActionMoveDown,
	' ': cfg.ActionFire,
	'z': cfg.ActionFire,
	'p': cfg.ActionPause,
	'm': cfg.ActionToggleMusic,
	'b': cfg.ActionDebugBoss,
	'g': cfg.ActionDebugGodMode,
	'h': cfg.ActionDebugBossHealth,
	't': cfg.ActionDebugTransition,
}

var keyActions = map[tcell.Key]cfg.ActionID{
	tcell.KeyLeft:   cfg.ActionMoveLeft,
	tcell.KeyRight:  cfg.ActionMoveRight,
	tcell.KeyUp:     cfg.ActionMoveUp,
	tcell.KeyDown:   cfg.ActionMoveDown,
	tcell.KeyEscape: cfg.ActionPause,
	tcell.KeyEnter:  cfg.ActionMenuSelect,
}

// Handle records a key event. It reports false for keys it ignores.
func (k *keySource) Handle(ev *tcell.EventKey) bool {
	action, ok := keyActions[ev.Key()]
	if ev.Key() == tcell.KeyRune {
		action, ok = runeActions[ev.Rune()]
	}
	if !ok {
		return false
	}
	k.mu.Lock()
	k.lastSeen[action] = k.now()
	k.mu.Unlock()
	return true
}

func (k *keySource) Poll() components.InputSnapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	var snap components.InputSnapshot
	now := k.now()
	for a := range k.lastSeen {
		if !k.lastSeen[a].IsZero() && now.Sub(k.lastSeen[a]) < holdWindow {
			snap.Actions[a] = true
		}
	}
	return snap
}
