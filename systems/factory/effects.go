package factory

import (
	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/solarlune/resolv"
)

// SpawnVFX creates a short-lived visual centred at (x, y). Effects are not
// added to the collision space.
func SpawnVFX(ecs *ecs.ECS, x, y float64, kind cfg.CueKind, size, duration float64) *donburi.Entry {
	e := archetypes.VFXEffect.Spawn(ecs)
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	t := now(ecs)
	components.VFX.SetValue(e, components.VFXData{
		Kind:  kind,
		Start: t,
		Until: t + duration,
		Size:  size,
	})
	return e
}
