package systems

import (
	"math"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi/ecs"
)

// PickUp handles the ship collecting a power-up. The first pickup of a kind
// raises its tutorial and freezes the session; the effect waits for
// DismissTutorial.
func PickUp(ecs *ecs.ECS, kind cfg.PowerUpKind) {
	pause := GetPause(ecs)
	if seen := pause.TutorialSeen; seen != nil && !seen.Seen[kind] {
		seen.Seen[kind] = true
		pause.Tutorials = append(pause.Tutorials, kind)
		syncClock(ecs)
		return
	}
	ApplyPowerUp(ecs, kind)
}

// ApplyPowerUp grants kind's effect to the ship. Timed effects picked up
// while active restart at full duration.
func ApplyPowerUp(ecs *ecs.ECS, kind cfg.PowerUpKind) {
	ship, ok := PlayerShip(ecs)
	if !ok {
		return
	}
	now := Now(ecs)
	effects := components.TimedEffects.Get(ship)

	switch kind {
	case cfg.PowerUpBoost:
		effects.Grant(cfg.EffectBoost, cfg.PowerUps.BoostDuration, now)
		components.Ship.Get(ship).Stamina = cfg.Ship.MaxStamina
	case cfg.PowerUpTripleShot:
		effects.Grant(cfg.EffectTripleShot, cfg.PowerUps.TripleShotDuration, now)
	case cfg.PowerUpHeal:
		health := components.Health.Get(ship)
		health.Current += cfg.PowerUps.HealAmount
		if health.Current > health.Max {
			health.Current = health.Max
		}
	case cfg.PowerUpShield:
		effects.Grant(cfg.EffectShield, cfg.PowerUps.ShieldDuration, now)
	}
	PlaySFX(ecs, cfg.SoundPickup)
}

// DismissTutorial closes the tutorial on screen and applies its deferred
// effect. The session resumes once no tutorial is left.
func DismissTutorial(ecs *ecs.ECS) bool {
	pause := GetPause(ecs)
	if len(pause.Tutorials) == 0 {
		return false
	}
	kind := pause.Tutorials[0]
	pause.Tutorials = pause.Tutorials[1:]
	ApplyPowerUp(ecs, kind)
	syncClock(ecs)
	return true
}

// spawnPowerUp drops a power-up at a free x position. It gives up silently
// when the attempt budget runs out.
func spawnPowerUp(ecs *ecs.ECS, kind cfg.PowerUpKind) bool {
	x, ok := freePowerUpX(ecs)
	if !ok {
		return false
	}
	factory.CreatePowerUp(ecs, kind, x)
	return true
}

// freePowerUpX picks an x at least the padding away from every power-up
// still near the top of the screen.
func freePowerUpX(ecs *ecs.ECS) (float64, bool) {
	r := random(ecs)
	margin := int(cfg.PowerUps.MarginX)
	w := cfg.C.Width

	var near []float64
	for _, p := range collect(ecs.World, tags.PowerUp) {
		x, y := components.Object.Get(p).Center()
		if y < cfg.PowerUps.TopBand {
			near = append(near, x)
		}
	}

	for i := 0; i < cfg.PowerUps.MaxAttempts; i++ {
		x := float64(randInt(r, margin, w-margin))
		if clearOf(x, near, cfg.PowerUps.Padding) {
			return x, true
		}
	}
	return 0, false
}

func clearOf(x float64, others []float64, padding float64) bool {
	for _, o := range others {
		if math.Abs(x-o) < padding {
			return false
		}
	}
	return true
}
