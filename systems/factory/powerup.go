package factory

import (
	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePowerUp drops a pickup of kind from the top of the screen at x.
func CreatePowerUp(ecs *ecs.ECS, kind cfg.PowerUpKind, x float64) *donburi.Entry {
	p := archetypes.PowerUp.Spawn(ecs)

	size := cfg.PowerUps.DisplaySize
	attachObject(ecs, p, x, cfg.PowerUps.SpawnY, size, size, tags.ResolvPowerUp)

	components.PowerUp.SetValue(p, components.PowerUpData{Kind: kind})
	components.Physics.SetValue(p, components.PhysicsData{
		SpeedY: cfg.PowerUps.FallSpeed,
	})
	components.Sprite.SetValue(p, components.SpriteData{
		Texture: cfg.PowerUpTextures[kind],
		Width:   size,
		Height:  size,
		Alpha:   1,
		Depth:   8,
	})
	return p
}
