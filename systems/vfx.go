package systems

import (
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVFX turns the tick's cues into short-lived effect entities and
// expires old ones. Cues the renderer handles itself pass through.
func UpdateVFX(ecs *ecs.ECS) {
	now := Now(ecs)
	cues := GetCues(ecs)
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	for _, cue := range cues.Pending {
		switch cue.Kind {
		case cfg.CueExplosion:
			factory.SpawnVFX(ecs, cue.X, cue.Y, cue.Kind, cfg.Effects.ExplosionSize, cfg.Effects.ExplosionDuration)
		case cfg.CueCameraShake:
			shake := components.ScreenShake.Get(sessionEntry(ecs))
			shake.Intensity = cfg.Effects.ShakeIntensity
			shake.Until = now + cfg.Effects.ShakeDuration
		case cfg.CueLightning:
			factory.SpawnVFX(ecs, w/2, h/2, cue.Kind, h, cfg.Effects.LightningFlash)
		case cfg.CueBatBurst:
			factory.SpawnVFX(ecs, cue.X, cue.Y, cue.Kind, cfg.Effects.ExplosionSize*2, cfg.Effects.ExplosionDuration*2)
		}
	}
	cues.Pending = cues.Pending[:0]

	for _, e := range collect(ecs.World, tags.Effect) {
		if now >= components.VFX.Get(e).Until {
			Destroy(e)
		}
	}
}

// ShakeOffset returns the current screen shake intensity, zero when none.
func ShakeOffset(ecs *ecs.ECS) float64 {
	shake := components.ScreenShake.Get(sessionEntry(ecs))
	if Now(ecs) >= shake.Until {
		return 0
	}
	return shake.Intensity
}
