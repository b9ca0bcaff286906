package systems

import (
	"math"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocity for every moving entity, bounces wall
// colliders off the sides and keeps the ship inside its bounds.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := frameDt(ecs) / 1000
	w := float64(cfg.C.Width)

	for _, e := range collect(ecs.World, components.Physics) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.SpeedY += physics.Gravity * dt

		if physics.AccelX != 0 {
			physics.SpeedX += physics.AccelX * dt
		}
		if physics.Drag > 0 {
			physics.SpeedX = applyDrag(physics.SpeedX, physics.Drag*dt)
		}
		physics.SpeedY += physics.AccelY * dt

		obj.X += physics.SpeedX * dt
		obj.Y += physics.SpeedY * dt

		if physics.BounceX > 0 {
			bounceOffWalls(obj, physics, w)
		}

		if e.HasComponent(components.Projectile) && components.Projectile.Get(e).Kind == cfg.ProjectileRocket {
			components.Sprite.Get(e).Rotation = math.Atan2(physics.SpeedY, physics.SpeedX) + math.Pi/2
		}

		obj.Update()
	}

	clampShip(ecs)
}

// applyDrag moves v toward zero by amount without crossing it.
func applyDrag(v, amount float64) float64 {
	switch {
	case v > amount:
		return v - amount
	case v < -amount:
		return v + amount
	default:
		return 0
	}
}

func bounceOffWalls(obj *components.ObjectData, physics *components.PhysicsData, w float64) {
	if obj.X < 0 {
		obj.X = 0
		physics.SpeedX = math.Abs(physics.SpeedX) * physics.BounceX
	} else if obj.X+obj.W > w {
		obj.X = w - obj.W
		physics.SpeedX = -math.Abs(physics.SpeedX) * physics.BounceX
	}
}

// clampShip pins the ship inside the playfield. The bottom safe zone is
// always enforced; the top limit relaxes while the boss is out.
func clampShip(ecs *ecs.ECS) {
	ship, ok := PlayerShip(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(ship)
	x, y := obj.Center()
	halfW := obj.W / 2
	top, bottom := shipVerticalLimits(ecs, ship)

	obj.SetCenter(clamp(x, halfW, float64(cfg.C.Width)-halfW), clamp(y, top, bottom))
	obj.Update()
}

// entityAt returns the entry a resolv object belongs to.
func entityAt(data any) (*donburi.Entry, bool) {
	e, ok := data.(*donburi.Entry)
	if !ok || !Active(e) {
		return nil, false
	}
	return e, true
}
