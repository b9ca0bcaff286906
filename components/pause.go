package components

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

// PauseData stores the pause state and any tutorial gates waiting to be
// dismissed. The simulation is frozen while either is set.
type PauseData struct {
	IsPaused bool
	// Tutorials holds first-time pickups whose effect is deferred until the
	// player dismisses the overlay. The head is the one on screen.
	Tutorials []cfg.PowerUpKind
	// TutorialSeen persists for the process; the session copies it in.
	TutorialSeen *TutorialLog
}

// Frozen reports whether the simulation must not advance.
func (p *PauseData) Frozen() bool {
	return p.IsPaused || len(p.Tutorials) > 0
}

// TutorialLog records which power-up kinds have had their overlay shown.
type TutorialLog struct {
	Seen [cfg.PowerUpKindCount]bool
}

// All reports whether every kind has been seen.
func (l *TutorialLog) All() bool {
	for _, s := range l.Seen {
		if !s {
			return false
		}
	}
	return true
}

var Pause = donburi.NewComponentType[PauseData]()
