package archetypes

import (
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	Ship = newArchetype(
		tags.Ship,
		components.Ship,
		components.Object,
		components.Physics,
		components.Health,
		components.TimedEffects,
		components.Sprite,
		components.Flash,
		components.Death,
	)
	Bat = newArchetype(
		tags.Enemy,
		tags.Bat,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Health,
		components.Sprite,
		components.Flash,
		components.Death,
	)
	Ghost = newArchetype(
		tags.Enemy,
		tags.Ghost,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Health,
		components.Sprite,
		components.Flash,
		components.Death,
	)
	Dragon = newPool(tags.Dragon,
		tags.Enemy,
		tags.Dragon,
		components.Enemy,
		components.DragonAttack,
		components.Object,
		components.Physics,
		components.Health,
		components.Sprite,
		components.Flash,
		components.Death,
	)
	PlayerProjectile = newPool(tags.PlayerProjectile,
		tags.PlayerProjectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Sprite,
		components.Death,
	)
	HostileProjectile = newPool(tags.HostileProjectile,
		tags.HostileProjectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Sprite,
		components.Death,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
		components.Physics,
		components.Sprite,
		components.Death,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Sprite,
		components.Flash,
		components.Death,
	)
	Backdrop = newArchetype(
		tags.Backdrop,
		components.Object,
		components.Sprite,
		components.Death,
	)
	VFXEffect = newArchetype(
		tags.Effect,
		components.VFX,
		components.Object,
		components.Death,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Timers,
		components.Random,
		components.Spawner,
		components.Pause,
		components.Input,
		components.Audio,
		components.Cues,
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
	// pool is the tag counted against a capacity by TrySpawn.
	pool donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func newPool(pool donburi.IComponentType, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
		pool:       pool,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}

// TrySpawn spawns unless limit live entities already share this archetype's
// pool tag. Entities destroyed earlier in the tick do not count.
func (a *archetype) TrySpawn(ecs *ecs.ECS, limit int, cs ...donburi.IComponentType) (*donburi.Entry, bool) {
	if a.pool != nil && Live(ecs.World, a.pool) >= limit {
		return nil, false
	}
	return a.Spawn(ecs, cs...), true
}

// Live counts entities carrying c that have not been destroyed.
func Live(w donburi.World, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(w, func(e *donburi.Entry) {
		if !components.Death.Get(e).Dead {
			n++
		}
	})
	return n
}
