package factory

import (
	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func setupEnemy(ecs *ecs.ECS, e *donburi.Entry, ec cfg.EnemyConfig, kind cfg.EnemyKind, scale, x, y float64, kindTag string) {
	w, h := displaySize(ec.Texture, scale, scale)
	attachObject(ecs, e, x, y, w*ec.BodyRatio.X, h*ec.BodyRatio.Y, tags.ResolvEnemy, kindTag)

	components.Enemy.SetValue(e, components.EnemyData{
		Kind:   kind,
		Reward: ec.Reward,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: ec.Health,
		Max:     ec.Health,
	})
	components.Sprite.SetValue(e, components.SpriteData{
		Texture: ec.Texture,
		Width:   w,
		Height:  h,
		Alpha:   1,
		Depth:   5,
	})
}

// CreateBat spawns a bat. Bats bounce off the side walls.
func CreateBat(ecs *ecs.ECS, x, y, vx, vy, scale float64) *donburi.Entry {
	bat := archetypes.Bat.Spawn(ecs)
	setupEnemy(ecs, bat, cfg.Bat.EnemyConfig, cfg.EnemyBat, scale, x, y, tags.ResolvBat)
	components.Physics.SetValue(bat, components.PhysicsData{
		SpeedX:  vx,
		SpeedY:  vy,
		BounceX: cfg.Bat.Bounce,
	})
	return bat
}

// CreateVomitBat spawns a bat from the boss's mouth that self-destructs
// after its lifetime.
func CreateVomitBat(ecs *ecs.ECS, x, y, vx, vy float64) *donburi.Entry {
	bat := CreateBat(ecs, x, y, vx, vy, cfg.Boss.VomitBatScale)
	components.Enemy.Get(bat).ExpiresAt = now(ecs) + cfg.Boss.VomitBatLifetime
	return bat
}

func CreateGhost(ecs *ecs.ECS, x, y, fallSpeed, swaySpeed, swayForce float64) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(ecs)
	setupEnemy(ecs, ghost, cfg.Ghost.EnemyConfig, cfg.EnemyGhost, cfg.Ghost.Scale, x, y, tags.ResolvGhost)

	enemy := components.Enemy.Get(ghost)
	enemy.FallSpeed = fallSpeed
	enemy.SwaySpeed = swaySpeed
	enemy.SwayForce = swayForce

	components.Physics.SetValue(ghost, components.PhysicsData{
		SpeedY: fallSpeed,
		Drag:   cfg.Ghost.Drag,
	})
	return ghost
}

// CreateDragon spawns a dragon unless the dragon pool is full. Its first
// attack comes after the configured delay.
func CreateDragon(ecs *ecs.ECS, x, y, vy float64) (*donburi.Entry, bool) {
	dragon, ok := archetypes.Dragon.TrySpawn(ecs, cfg.Pools.Dragons)
	if !ok {
		return nil, false
	}
	setupEnemy(ecs, dragon, cfg.Dragon.EnemyConfig, cfg.EnemyDragon, cfg.Dragon.Scale, x, y, tags.ResolvDragon)
	components.Physics.SetValue(dragon, components.PhysicsData{
		SpeedY: vy,
	})
	components.DragonAttack.SetValue(dragon, components.DragonAttackData{
		Phase:  cfg.DragonIdle,
		NextAt: now(ecs) + cfg.Dragon.FirstAttackDelay,
	})
	return dragon, true
}
