package systems

import (
	"math/rand"

	"github.com/automoto/pufspace/clock"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// sessionEntry returns the entity holding the session singletons.
func sessionEntry(ecs *ecs.ECS) *donburi.Entry {
	e, ok := components.Session.First(ecs.World)
	if !ok {
		panic("session entity missing")
	}
	return e
}

func GetSession(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(sessionEntry(ecs))
}

func GetPause(ecs *ecs.ECS) *components.PauseData {
	return components.Pause.Get(sessionEntry(ecs))
}

// GetInput returns the world's input singleton. Menus carry one without a
// session.
func GetInput(ecs *ecs.ECS) *components.InputData {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		panic("input entity missing")
	}
	return components.Input.Get(e)
}

func GetAudio(ecs *ecs.ECS) *components.AudioData {
	e, ok := components.Audio.First(ecs.World)
	if !ok {
		panic("audio entity missing")
	}
	return components.Audio.Get(e)
}

func GetSpawner(ecs *ecs.ECS) *components.SpawnerData {
	return components.Spawner.Get(sessionEntry(ecs))
}

func GetCues(ecs *ecs.ECS) *components.CuesData {
	return components.Cues.Get(sessionEntry(ecs))
}

func GetClock(ecs *ecs.ECS) *clock.Clock {
	return components.Timers.Get(sessionEntry(ecs)).Clock
}

// Now is the session's game time in milliseconds.
func Now(ecs *ecs.ECS) float64 {
	return GetClock(ecs).Now()
}

func frameDt(ecs *ecs.ECS) float64 {
	return components.Timers.Get(sessionEntry(ecs)).Dt
}

func random(ecs *ecs.ECS) *rand.Rand {
	return components.Random.Get(sessionEntry(ecs)).Rand
}

// randInt returns an integer in [min, max].
func randInt(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// randRange returns an integer-valued float in [min, max].
func randRange(r *rand.Rand, min, max float64) float64 {
	return float64(randInt(r, int(min), int(max)))
}

// Active reports whether e still takes part in the simulation. Destroyed
// entities stay in the world until the sweep but are never active.
func Active(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if e.HasComponent(components.Death) && components.Death.Get(e).Dead {
		return false
	}
	return true
}

// Destroy marks e for removal at the end of the tick. Destroying an entity
// that is already gone is a no-op and reports false.
func Destroy(e *donburi.Entry) bool {
	if !Active(e) || !e.HasComponent(components.Death) {
		return false
	}
	components.Death.Get(e).Dead = true
	return true
}

// PlayerShip returns the ship while it is alive.
func PlayerShip(ecs *ecs.ECS) (*donburi.Entry, bool) {
	e, ok := tags.Ship.First(ecs.World)
	if !ok || !Active(e) {
		return nil, false
	}
	return e, true
}

// ActiveBoss returns the boss while it exists.
func ActiveBoss(ecs *ecs.ECS) (*donburi.Entry, bool) {
	e, ok := tags.Boss.First(ecs.World)
	if !ok || !Active(e) {
		return nil, false
	}
	return e, true
}

// collect snapshots the active entities carrying c so callers can create or
// destroy entities while walking the result.
func collect(w donburi.World, c donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(c)).Each(w, func(e *donburi.Entry) {
		if Active(e) {
			out = append(out, e)
		}
	})
	return out
}

func AddScore(ecs *ecs.ECS, points int) {
	if points <= 0 {
		return
	}
	GetSession(ecs).Score += points
}

// QueueCue raises a presentation request for the vfx system and renderers.
func QueueCue(ecs *ecs.ECS, kind cfg.CueKind, x, y float64) {
	cues := GetCues(ecs)
	cues.Pending = append(cues.Pending, components.Cue{Kind: kind, X: x, Y: y})
	if cues.Emitted == nil {
		cues.Emitted = make(map[cfg.CueKind]int)
	}
	cues.Emitted[kind]++
}

// PlaySFX queues a sound effect to be played
func PlaySFX(ecs *ecs.ECS, sound cfg.SoundID) {
	audio := GetAudio(ecs)
	audio.PendingSFX = append(audio.PendingSFX, sound)
}

func flash(ecs *ecs.ECS, e *donburi.Entry, duration float64) {
	if !e.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(e, components.FlashData{
		Until: Now(ecs) + duration,
		Color: cfg.Red,
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
