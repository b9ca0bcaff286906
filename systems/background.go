package systems

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBackground scrolls the backdrop and drives the level transition:
// a requested transition becomes a crossfade on the next tick, and level 2
// becomes authoritative once the crossfade completes.
func UpdateBackground(ecs *ecs.ECS) {
	session := GetSession(ecs)
	dt := frameDt(ecs)

	session.ScrollOffset += cfg.Level.ScrollSpeed * dt / 1000

	switch {
	case session.Transitioning:
		progress, done := session.TransitionTween.Update(float32(dt))
		session.TransitionProgress = float64(progress)
		if done {
			finishTransition(ecs)
		}
	case session.TransitionPending:
		startCrossfade(ecs)
	}
}

// StartLevelTransition requests the switch to the level 2 background. Level 1
// atmosphere stops at once. Repeated requests are ignored.
func StartLevelTransition(ecs *ecs.ECS) bool {
	session := GetSession(ecs)
	if session.Transitioning || session.TransitionPending || session.Level2Active {
		return false
	}
	session.TransitionPending = true

	spawner := GetSpawner(ecs)
	GetClock(ecs).Cancel(spawner.Lightning)
	spawner.Lightning = 0
	if session.RainActive {
		session.RainActive = false
		QueueCue(ecs, cfg.CueRainStop, 0, 0)
	}
	return true
}

func startCrossfade(ecs *ecs.ECS) {
	session := GetSession(ecs)
	session.TransitionPending = false

	if !cfg.HasTexture(cfg.TextureBackground2) {
		session.TransitionProgress = 1
		finishTransition(ecs)
		return
	}

	session.Transitioning = true
	session.TransitionProgress = 0
	session.TransitionTween = gween.New(0, 1, float32(cfg.Level.TransitionDuration), ease.Linear)

	audio := GetAudio(ecs)
	audio.Music = cfg.MusicLevel2
	audio.MusicVolume = cfg.Level.Level2MusicVolume
	audio.MusicFade = cfg.Level.MusicCrossfade
}

func finishTransition(ecs *ecs.ECS) {
	session := GetSession(ecs)
	session.Transitioning = false
	session.TransitionTween = nil
	session.TransitionProgress = 1
	session.Level2Active = true

	audio := GetAudio(ecs)
	if audio.Music != cfg.MusicLevel2 {
		audio.Music = cfg.MusicLevel2
		audio.MusicVolume = cfg.Level.Level2MusicVolume
		audio.MusicFade = 0
	}
}
