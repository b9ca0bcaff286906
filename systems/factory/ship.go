package factory

import (
	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShip places the player ship at its start position with full health
// and stamina.
func CreateShip(ecs *ecs.ECS) *donburi.Entry {
	ship := archetypes.Ship.Spawn(ecs)

	tw, _, _ := cfg.TextureSize(cfg.TextureShip)
	scale := cfg.Ship.DisplayWidth / tw
	w, h := displaySize(cfg.TextureShip, scale, scale)

	x := float64(cfg.C.Width) / 2
	y := float64(cfg.C.Height) * cfg.Ship.SpawnYRatio
	attachObject(ecs, ship, x, y, w*cfg.Ship.BodyRatio, h*cfg.Ship.BodyRatio, tags.ResolvShip)

	components.Ship.SetValue(ship, components.ShipData{
		Stamina: cfg.Ship.MaxStamina,
		GodMode: cfg.Debug.GodMode,
	})
	components.Health.SetValue(ship, components.HealthData{
		Current: cfg.Ship.MaxHealth,
		Max:     cfg.Ship.MaxHealth,
	})
	components.Sprite.SetValue(ship, components.SpriteData{
		Texture: cfg.TextureShip,
		Width:   w,
		Height:  h,
		Alpha:   1,
		Depth:   10,
	})

	return ship
}
