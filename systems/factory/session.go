package factory

import (
	"math/rand"

	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/clock"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCell is the collision grid cell size in pixels.
const spaceCell = 32

// SessionOptions configures a new play session.
type SessionOptions struct {
	Seed           int64
	Input          components.InputSource
	Audio          components.AudioBackend
	MusicEnabled   bool
	Tutorials      *components.TutorialLog
	FromCheckpoint bool
}

// CreateSession creates the session singletons, the collision space and
// the ship. A checkpoint session starts with level 2 already active.
func CreateSession(ecs *ecs.ECS, opts SessionOptions) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		BossState:           cfg.BossHidden,
		Level2Active:        opts.FromCheckpoint,
		StartedAtCheckpoint: opts.FromCheckpoint,
	})
	if opts.FromCheckpoint {
		components.Session.Get(session).TransitionProgress = 1
	}
	components.Timers.SetValue(session, components.TimersData{
		Clock: clock.New(),
		Dt:    1000 / float64(cfg.C.TPS),
	})
	components.Random.SetValue(session, components.RandomData{
		Rand: rand.New(rand.NewSource(opts.Seed)),
	})

	tutorials := opts.Tutorials
	if tutorials == nil {
		tutorials = &components.TutorialLog{}
	}
	components.Pause.SetValue(session, components.PauseData{
		TutorialSeen: tutorials,
	})
	components.Input.SetValue(session, components.InputData{
		Source: opts.Input,
	})

	music := cfg.MusicLevel1
	volume := cfg.Audio.DefaultMusicVol
	if opts.FromCheckpoint {
		music = cfg.MusicLevel2
		volume = cfg.Level.Level2MusicVolume
	}
	components.Audio.SetValue(session, components.AudioData{
		Backend:      opts.Audio,
		MusicEnabled: opts.MusicEnabled,
		Music:        music,
		MusicVolume:  volume,
	})
	components.Cues.SetValue(session, components.CuesData{
		Emitted: make(map[cfg.CueKind]int),
	})

	CreateSpace(ecs, cfg.C.Width, cfg.C.Height, spaceCell, spaceCell)
	CreateShip(ecs)
	return session
}
