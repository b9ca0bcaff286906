package systems

import (
	"math"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const ghostTurnLerp = 0.1

// UpdateEnemies runs the per-kind steering and the dragon attack cycle.
// Integration happens afterwards in UpdatePhysics.
func UpdateEnemies(ecs *ecs.ECS) {
	now := Now(ecs)

	for _, e := range collect(ecs.World, tags.Bat) {
		steerBat(e)
	}
	for _, e := range collect(ecs.World, tags.Ghost) {
		steerGhost(e, now)
	}
	for _, e := range collect(ecs.World, tags.Dragon) {
		updateDragonAttack(ecs, e, now)
	}
}

// steerBat keeps bats diving: they never climb and never drift sideways
// faster than the cap.
func steerBat(e *donburi.Entry) {
	physics := components.Physics.Get(e)
	if physics.SpeedY < 0 {
		physics.SpeedY = math.Max(cfg.Bat.MinDownSpeed, math.Abs(physics.SpeedY))
	}
	if math.Abs(physics.SpeedX) > cfg.Bat.MaxSpeedX {
		physics.SpeedX = math.Copysign(cfg.Bat.MaxSpeedX, physics.SpeedX)
	}
	components.Sprite.Get(e).Rotation = math.Pi
}

// steerGhost applies the sideways sway and turns the ghost back from the
// side walls.
func steerGhost(e *donburi.Entry, now float64) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	x, _ := components.Object.Get(e).Center()
	w := float64(cfg.C.Width)

	physics.AccelX = math.Sin(now*enemy.SwaySpeed) * enemy.SwayForce
	physics.Drag = cfg.Ghost.Drag

	switch {
	case x < cfg.Ghost.EdgeMargin:
		physics.AccelX = cfg.Ghost.TurnForce
		if physics.SpeedX < 0 {
			physics.Drag = cfg.Ghost.OutwardDrag
		}
	case x > w-cfg.Ghost.EdgeMargin:
		physics.AccelX = -cfg.Ghost.TurnForce
		if physics.SpeedX > 0 {
			physics.Drag = cfg.Ghost.OutwardDrag
		}
	}

	if physics.SpeedY < cfg.Ghost.MinFallSpeed {
		physics.SpeedY = enemy.FallSpeed
	}

	sprite := components.Sprite.Get(e)
	target := math.Atan2(physics.SpeedY, physics.SpeedX) - math.Pi/2
	sprite.Rotation += (target - sprite.Rotation) * ghostTurnLerp
}

// updateDragonAttack steps the dragon through idle, bursting and cooling.
// Each phase waits on a timestamp so the cycle stops with the clock.
func updateDragonAttack(ecs *ecs.ECS, e *donburi.Entry, now float64) {
	attack := components.DragonAttack.Get(e)
	sprite := components.Sprite.Get(e)

	switch attack.Phase {
	case cfg.DragonIdle:
		if now >= attack.NextAt {
			startDragonBurst(attack, sprite, now)
		}
	case cfg.DragonBursting:
		for attack.Phase == cfg.DragonBursting && now >= attack.NextAt {
			x, y := components.Object.Get(e).Center()
			factory.CreateFireball(ecs, x, y+cfg.Dragon.FireballOffsetY)
			attack.ShotsFired++
			if attack.ShotsFired >= cfg.Dragon.BurstShots {
				attack.Phase = cfg.DragonCooling
				attack.RevertAt = now + cfg.Dragon.FireTextureHold
				attack.NextAt = now + cfg.Dragon.Cooldown
				break
			}
			attack.NextAt += cfg.Dragon.ShotInterval
		}
	case cfg.DragonCooling:
		if attack.RevertAt != 0 && now >= attack.RevertAt {
			sprite.Texture = cfg.Dragon.Texture
			attack.RevertAt = 0
		}
		if now >= attack.NextAt {
			startDragonBurst(attack, sprite, now)
		}
	}
}

func startDragonBurst(attack *components.DragonAttackData, sprite *components.SpriteData, now float64) {
	attack.Phase = cfg.DragonBursting
	attack.ShotsFired = 0
	attack.NextAt = now
	attack.RevertAt = 0
	sprite.Texture = cfg.Dragon.FireTexture
}
