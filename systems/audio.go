package systems

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio hands the tick's audio requests to the backend. Every request
// is gated by the music preference; with music off nothing plays and the
// queue is dropped. It runs even while frozen so a pause never replays a
// backlog of sounds.
func UpdateAudio(ecs *ecs.ECS) {
	audio := GetAudio(ecs)
	defer func() {
		audio.PendingSFX = audio.PendingSFX[:0]
	}()

	backend := audio.Backend
	if backend == nil {
		return
	}

	if !audio.MusicEnabled {
		if audio.Playing != cfg.MusicNone {
			backend.StopMusic()
			audio.Playing = cfg.MusicNone
		}
		return
	}

	if audio.Music != audio.Playing {
		if audio.Music == cfg.MusicNone {
			backend.StopMusic()
		} else {
			backend.PlayMusic(audio.Music, audio.MusicVolume, audio.MusicFade)
		}
		audio.Playing = audio.Music
	}

	for _, id := range audio.PendingSFX {
		backend.PlaySFX(id)
	}
}

// ToggleMusic flips the music preference and reports the new value.
func ToggleMusic(ecs *ecs.ECS) bool {
	audio := GetAudio(ecs)
	audio.MusicEnabled = !audio.MusicEnabled
	return audio.MusicEnabled
}

// SetMusic selects the track the session wants. The backend switches on
// the next audio pass.
func SetMusic(ecs *ecs.ECS, id cfg.MusicID, volume, fadeMs float64) {
	audio := GetAudio(ecs)
	audio.Music = id
	audio.MusicVolume = volume
	audio.MusicFade = fadeMs
}
