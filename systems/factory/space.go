package factory

import (
	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives e a collision box of w x h centred on (cx, cy) and
// registers it with the session space.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, cx, cy, w, h float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h, resolvTags...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// displaySize scales a texture's native size. A missing texture falls back
// to the nominal width.
func displaySize(tex cfg.TextureID, scaleX, scaleY float64) (float64, float64) {
	w, h, _ := cfg.TextureSize(tex)
	return w * scaleX, h * scaleY
}

func now(ecs *ecs.ECS) float64 {
	if e, ok := components.Timers.First(ecs.World); ok {
		return components.Timers.Get(e).Clock.Now()
	}
	return 0
}
