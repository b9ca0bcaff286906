package systems

import (
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup destroys entities that left the playfield and enemies whose
// lifetime ran out.
func UpdateCleanup(ecs *ecs.ECS) {
	h := float64(cfg.C.Height)
	now := Now(ecs)

	destroyWhere(ecs, tags.Enemy, func(e *donburi.Entry, y float64) bool {
		if exp := components.Enemy.Get(e).ExpiresAt; exp > 0 && now >= exp {
			return true
		}
		return y > h+cfg.Level.OffscreenMargin
	})
	destroyWhere(ecs, tags.HostileProjectile, func(_ *donburi.Entry, y float64) bool {
		return y > h+cfg.Level.OffscreenMargin
	})
	destroyWhere(ecs, tags.PowerUp, func(_ *donburi.Entry, y float64) bool {
		return y > h+cfg.Level.PowerUpMargin
	})
	destroyWhere(ecs, tags.PlayerProjectile, func(_ *donburi.Entry, y float64) bool {
		return y < 0
	})
}

func destroyWhere(ecs *ecs.ECS, c donburi.IComponentType, fn func(e *donburi.Entry, y float64) bool) {
	for _, e := range collect(ecs.World, c) {
		_, y := components.Object.Get(e).Center()
		if fn(e, y) {
			Destroy(e)
		}
	}
}
