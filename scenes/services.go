package scenes

import (
	"github.com/automoto/pufspace/components"
	"github.com/automoto/pufspace/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Services is what every scene of one process shares: devices, the
// preference store and state that survives restarts.
type Services struct {
	Store systems.Store
	Audio components.AudioBackend
	Input components.InputSource

	// Seed feeds the next session's random source and advances per session.
	Seed int64

	MusicEnabled bool
	Tutorials    *components.TutorialLog

	// CheckpointReached is set once any session reaches level 2.
	CheckpointReached bool

	tutorialSaved bool
}

// NewServices reads the stored preferences. Any device may be nil.
func NewServices(store systems.Store, audio components.AudioBackend, input components.InputSource, seed int64) *Services {
	prefs := systems.LoadPreferences(store)
	s := &Services{
		Store:        store,
		Audio:        audio,
		Input:        input,
		Seed:         seed,
		MusicEnabled: prefs.MusicEnabled,
		Tutorials:    &components.TutorialLog{},
	}
	if prefs.TutorialSeen {
		for i := range s.Tutorials.Seen {
			s.Tutorials.Seen[i] = true
		}
		s.tutorialSaved = true
	}
	return s
}

func (s *Services) nextSeed() int64 {
	seed := s.Seed
	s.Seed++
	return seed
}

// setMusic records a music preference change, writing it only when it
// differs from the stored value.
func (s *Services) setMusic(enabled bool) {
	if enabled == s.MusicEnabled {
		return
	}
	s.MusicEnabled = enabled
	systems.SavePreference(s.Store, systems.KeyMusicEnabled, enabled)
}

// noteTutorials writes the tutorial flag the first time every kind has
// been seen.
func (s *Services) noteTutorials() {
	if s.tutorialSaved || !s.Tutorials.All() {
		return
	}
	s.tutorialSaved = true
	systems.SavePreference(s.Store, systems.KeyTutorialSeen, true)
}
