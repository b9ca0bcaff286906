package systems

import (
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var godModeTint = cfg.Green

// UpdateEffects expires timed effects and hit flashes and reflects the
// ship's protective states in its sprite.
func UpdateEffects(ecs *ecs.ECS) {
	now := Now(ecs)
	updateTimedEffects(ecs, now)
	updateFlashEffects(ecs, now)
	updateShipVisuals(ecs, now)
}

func updateTimedEffects(ecs *ecs.ECS, now float64) {
	components.TimedEffects.Each(ecs.World, func(e *donburi.Entry) {
		effects := components.TimedEffects.Get(e)
		for kind := cfg.EffectKind(0); kind < cfg.EffectKindCount; kind++ {
			if effects.Expiry[kind] != 0 && now >= effects.Expiry[kind] {
				effects.Clear(kind)
			}
		}
	})
}

// updateFlashEffects removes expired flashes
func updateFlashEffects(ecs *ecs.ECS, now float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Until != 0 && now >= flash.Until {
			flash.Until = 0
		}
	})
}

func updateShipVisuals(ecs *ecs.ECS, now float64) {
	ship, ok := PlayerShip(ecs)
	if !ok {
		return
	}
	effects := components.TimedEffects.Get(ship)
	sprite := components.Sprite.Get(ship)

	sprite.Alpha = 1
	if effects.Active(cfg.EffectInvulnerable, now) {
		sprite.Alpha = cfg.Ship.InvulnAlpha
	}

	switch {
	case GetSession(ecs).GameOver:
		sprite.Tint = cfg.Red
	case components.Ship.Get(ship).GodMode:
		sprite.Tint = godModeTint
	default:
		sprite.Tint.A = 0
	}
}

// Flashing reports whether e is tinted by a hit flash at time now.
func Flashing(e *donburi.Entry, now float64) bool {
	if !e.HasComponent(components.Flash) {
		return false
	}
	return now < components.Flash.Get(e).Until
}
