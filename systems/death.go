package systems

import (
	"github.com/automoto/pufspace/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSweep removes every entity destroyed during the tick from the world
// and from the collision space. It runs last, even while frozen, so a
// destroyed entity never outlives the tick that destroyed it.
func UpdateSweep(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if components.Death.Get(e).Dead {
			dead = append(dead, e)
		}
	})
	if len(dead) == 0 {
		return
	}

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range dead {
		if hasSpace && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
