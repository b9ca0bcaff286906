package factory

import (
	"math"

	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type projectileSpec struct {
	kind      cfg.ProjectileKind
	texture   cfg.TextureID
	scaleX    float64
	scaleY    float64
	bodyRatio float64
	resolvTag string
}

var projectileSpecs = map[cfg.ProjectileKind]projectileSpec{
	cfg.ProjectileShot:     {cfg.ProjectileShot, cfg.TextureShot, 1, 1, 0.8, tags.ResolvShot},
	cfg.ProjectileLaser:    {cfg.ProjectileLaser, cfg.TextureLaser, 1, 2.2, 1, tags.ResolvLaser},
	cfg.ProjectileRocket:   {cfg.ProjectileRocket, cfg.TextureRocket, 0.75, 0.75, 1, tags.ResolvLaser},
	cfg.ProjectileFireball: {cfg.ProjectileFireball, cfg.TextureFireball, 1, 1, 0.8, tags.ResolvFireball},
}

func spawnProjectile(ecs *ecs.ECS, faction cfg.Faction, kind cfg.ProjectileKind, x, y, vx, vy, gravity float64) (*donburi.Entry, bool) {
	var (
		e  *donburi.Entry
		ok bool
	)
	if faction == cfg.FactionPlayer {
		e, ok = archetypes.PlayerProjectile.TrySpawn(ecs, cfg.Pools.PlayerProjectiles)
	} else {
		e, ok = archetypes.HostileProjectile.TrySpawn(ecs, cfg.Pools.HostileProjectiles)
	}
	if !ok {
		return nil, false
	}

	spec := projectileSpecs[kind]
	w, h := displaySize(spec.texture, spec.scaleX, spec.scaleY)
	resolvTags := []string{spec.resolvTag}
	if faction == cfg.FactionHostile && spec.resolvTag != tags.ResolvHostile {
		resolvTags = append(resolvTags, tags.ResolvHostile)
	}
	attachObject(ecs, e, x, y, w*spec.bodyRatio, h*spec.bodyRatio, resolvTags...)

	components.Projectile.SetValue(e, components.ProjectileData{
		Faction: faction,
		Kind:    kind,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		SpeedX:  vx,
		SpeedY:  vy,
		Gravity: gravity,
	})
	components.Sprite.SetValue(e, components.SpriteData{
		Texture:  spec.texture,
		Width:    w,
		Height:   h,
		Rotation: math.Atan2(vy, vx) + math.Pi/2,
		Alpha:    1,
		Depth:    12,
	})
	return e, true
}

// CreatePlayerShot fires a ship projectile. It reports false when the pool is full.
func CreatePlayerShot(ecs *ecs.ECS, x, y, vx, vy float64) (*donburi.Entry, bool) {
	return spawnProjectile(ecs, cfg.FactionPlayer, cfg.ProjectileShot, x, y, vx, vy, 0)
}

// CreateLaser fires a boss eye laser at angleDeg, where 90 points straight down.
func CreateLaser(ecs *ecs.ECS, x, y, angleDeg float64) (*donburi.Entry, bool) {
	rad := cfg.Deg2Rad(angleDeg)
	vx := math.Cos(rad) * cfg.Boss.LaserSpeed
	vy := math.Sin(rad) * cfg.Boss.LaserSpeed
	return spawnProjectile(ecs, cfg.FactionHostile, cfg.ProjectileLaser, x, y, vx, vy, 0)
}

// CreateRocket fires a gravity rocket from a boss pipe; dir is -1 for the
// left pipe and 1 for the right.
func CreateRocket(ecs *ecs.ECS, x, y, dir float64) (*donburi.Entry, bool) {
	v := cfg.Boss.RocketVelocity
	return spawnProjectile(ecs, cfg.FactionHostile, cfg.ProjectileRocket, x, y, dir*v.X, v.Y, cfg.Boss.RocketGravity)
}

func CreateFireball(ecs *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	return spawnProjectile(ecs, cfg.FactionHostile, cfg.ProjectileFireball, x, y, 0, cfg.Dragon.FireballSpeed, 0)
}
