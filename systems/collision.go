package systems

import (
	"math"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves every pairing for the tick. Handlers run one
// after another and each re-checks that its entities are still active, so
// an entity consumed by one pairing is skipped by the rest.
func UpdateCollisions(ecs *ecs.ECS) {
	resolvePlayerProjectiles(ecs)
	resolveShipContacts(ecs)
	resolveEnemyBounces(ecs)
}

// overlaps is the narrow phase; resolv's Check only reports shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// touching returns the active entities whose boxes overlap obj and carry
// one of the given tags, in the order resolv reports them.
func touching(obj *resolv.Object, resolvTags ...string) []*donburi.Entry {
	check := obj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	seen := make(map[*resolv.Object]bool)
	for _, other := range check.Objects {
		if seen[other] || other == obj || !other.HasTags(resolvTags...) || !overlaps(obj, other) {
			continue
		}
		seen[other] = true
		if e, ok := entityAt(other.Data); ok {
			out = append(out, e)
		}
	}
	return out
}

func resolvePlayerProjectiles(ecs *ecs.ECS) {
	for _, p := range collect(ecs.World, tags.PlayerProjectile) {
		obj := components.Object.Get(p).Object
		for _, target := range touching(obj, tags.ResolvEnemy, tags.ResolvBoss, tags.ResolvLaser) {
			if !Active(p) {
				break
			}
			if !Active(target) {
				continue
			}
			switch {
			case target.HasComponent(tags.HostileProjectile):
				annihilate(ecs, p, target)
			case target.HasComponent(tags.Enemy):
				HitEnemy(ecs, p, target)
			case target.HasComponent(tags.Boss):
				x, y := components.Object.Get(p).Center()
				Destroy(p)
				DamageBoss(ecs, target, x, y)
			}
		}
	}
}

// annihilate destroys a player shot together with the hostile laser it met.
func annihilate(ecs *ecs.ECS, shot, laser *donburi.Entry) {
	x, y := components.Object.Get(laser).Center()
	Destroy(shot)
	Destroy(laser)
	QueueCue(ecs, cfg.CueExplosion, x, y)
}

// HitEnemy resolves one player projectile striking an enemy. The projectile
// is always consumed. An enemy still above the top edge takes no damage.
// It reports whether the hit killed the enemy.
func HitEnemy(ecs *ecs.ECS, projectile, enemy *donburi.Entry) bool {
	if !Active(projectile) || !Active(enemy) {
		return false
	}
	px, py := components.Object.Get(projectile).Center()
	Destroy(projectile)

	obj := components.Object.Get(enemy)
	ex, ey := obj.Center()
	if ey < 0 {
		return false
	}

	data := components.Enemy.Get(enemy)
	if data.Kind == cfg.EnemyDragon {
		QueueCue(ecs, cfg.CueExplosion, px, py)
	}

	health := components.Health.Get(enemy)
	health.Current--
	flash(ecs, enemy, cfg.Effects.HitFlash)
	if health.Current > 0 {
		return false
	}

	QueueCue(ecs, cfg.CueExplosion, ex, ey)
	Destroy(enemy)
	AddScore(ecs, data.Reward)
	PlaySFX(ecs, cfg.SoundExplosion)
	return true
}

func resolveShipContacts(ecs *ecs.ECS) {
	ship, ok := PlayerShip(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(ship).Object

	for _, other := range touching(obj, tags.ResolvEnemy, tags.ResolvHostile, tags.ResolvPowerUp) {
		if !Active(other) {
			continue
		}
		switch {
		case other.HasComponent(tags.PowerUp):
			kind := components.PowerUp.Get(other).Kind
			Destroy(other)
			PickUp(ecs, kind)
		case other.HasComponent(tags.Enemy):
			if HitShip(ecs) {
				x, y := components.Object.Get(other).Center()
				Destroy(other)
				QueueCue(ecs, cfg.CueExplosion, x, y)
			}
		case other.HasComponent(tags.HostileProjectile):
			applied := HitShip(ecs)
			if applied || components.Projectile.Get(other).Kind == cfg.ProjectileFireball {
				Destroy(other)
			}
		}
	}
}

// resolveEnemyBounces pushes overlapping bats and ghosts apart and swaps
// their velocities. Each pair is handled once per tick.
func resolveEnemyBounces(ecs *ecs.ECS) {
	handled := make(map[[2]donburi.Entity]bool)

	for _, a := range collect(ecs.World, tags.Enemy) {
		if components.Enemy.Get(a).Kind == cfg.EnemyDragon {
			continue
		}
		aObj := components.Object.Get(a).Object
		for _, b := range touching(aObj, tags.ResolvBat, tags.ResolvGhost) {
			key := pairKey(a.Entity(), b.Entity())
			if handled[key] {
				continue
			}
			handled[key] = true
			bounce(a, b)
		}
	}
}

func pairKey(a, b donburi.Entity) [2]donburi.Entity {
	if b < a {
		a, b = b, a
	}
	return [2]donburi.Entity{a, b}
}

func bounce(a, b *donburi.Entry) {
	aObj := components.Object.Get(a)
	bObj := components.Object.Get(b)

	ax, ay := aObj.Center()
	bx, by := bObj.Center()
	overlapX := (aObj.W+bObj.W)/2 - math.Abs(ax-bx)
	overlapY := (aObj.H+bObj.H)/2 - math.Abs(ay-by)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}

	if overlapX < overlapY {
		push := overlapX / 2
		if ax < bx {
			push = -push
		}
		aObj.X += push
		bObj.X -= push
	} else {
		push := overlapY / 2
		if ay < by {
			push = -push
		}
		aObj.Y += push
		bObj.Y -= push
	}
	aObj.Update()
	bObj.Update()

	ap := components.Physics.Get(a)
	bp := components.Physics.Get(b)
	ap.SpeedX, bp.SpeedX = bp.SpeedX, ap.SpeedX
	ap.SpeedY, bp.SpeedY = bp.SpeedY, ap.SpeedY
}
