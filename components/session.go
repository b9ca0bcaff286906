package components

import (
	"math/rand"

	"github.com/automoto/pufspace/clock"
	cfg "github.com/automoto/pufspace/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionData is the scene-wide state of one play session.
type SessionData struct {
	Score    int
	GameOver bool

	BossState    cfg.BossState
	BossDefeated bool

	// Level 2 becomes authoritative once the crossfade finishes.
	Level2Active        bool
	TransitionPending   bool
	Transitioning       bool
	TransitionTween     *gween.Tween
	TransitionProgress  float64
	StartedAtCheckpoint bool

	RainActive   bool
	ScrollOffset float64
}

var Session = donburi.NewComponentType[SessionData]()

// TimersData owns the session clock and the length of the current tick.
type TimersData struct {
	Clock *clock.Clock
	Dt    float64
}

var Timers = donburi.NewComponentType[TimersData]()

// RandomData is the session's random source.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// SpawnerData keeps the handles of every recurring schedule so they can be
// cancelled as a group.
type SpawnerData struct {
	BossAutoSpawn clock.Handle
	Lightning     clock.Handle
	BatWave       clock.Handle
	Ghost         clock.Handle
	DragonPoll    clock.Handle
	PowerUps      [cfg.PowerUpKindCount]clock.Handle
}

var Spawner = donburi.NewComponentType[SpawnerData]()
