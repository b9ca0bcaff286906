package components

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

// AudioBackend plays sounds. The simulation only ever sends requests to it.
type AudioBackend interface {
	PlaySFX(id cfg.SoundID)
	// PlayMusic switches to a looping track, crossfading over fadeMs.
	PlayMusic(id cfg.MusicID, volume float64, fadeMs float64)
	StopMusic()
}

// AudioData stores the session's audio requests (singleton component)
type AudioData struct {
	Backend      AudioBackend
	MusicEnabled bool
	// Music is the track the session wants; Playing is what the backend was last told.
	Music       cfg.MusicID
	MusicVolume float64
	MusicFade   float64
	Playing     cfg.MusicID
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
