package components

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

// Cue is a fire-and-forget presentation request.
type Cue struct {
	Kind cfg.CueKind
	X, Y float64
}

// CuesData queues cues raised during a tick. Emitted counts every cue ever
// raised by kind.
type CuesData struct {
	Pending []Cue
	Emitted map[cfg.CueKind]int
}

var Cues = donburi.NewComponentType[CuesData]()
