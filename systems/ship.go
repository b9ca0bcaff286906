package systems

import (
	"math"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	bankAngle = 0.26
	bankLerp  = 0.1
)

// UpdateShip turns the input snapshot into ship velocity, fires while the
// fire action is held and regenerates stamina.
func UpdateShip(ecs *ecs.ECS) {
	ship, ok := PlayerShip(ecs)
	if !ok {
		return
	}
	now := Now(ecs)
	input := GetInput(ecs)
	effects := components.TimedEffects.Get(ship)
	boosted := effects.Active(cfg.EffectBoost, now)

	steerShip(ecs, ship, input)

	if input.Pressed(cfg.ActionFire) {
		tryFire(ecs, ship, now, boosted, effects.Active(cfg.EffectTripleShot, now))
	}

	data := components.Ship.Get(ship)
	if boosted {
		data.Stamina = cfg.Ship.MaxStamina
	} else {
		data.Stamina = clamp(data.Stamina+cfg.Ship.StaminaRegen*frameDt(ecs)/1000, 0, cfg.Ship.MaxStamina)
	}
}

func steerShip(ecs *ecs.ECS, ship *donburi.Entry, input *components.InputData) {
	physics := components.Physics.Get(ship)

	dx, dy := 0.0, 0.0
	if input.Pressed(cfg.ActionMoveLeft) {
		dx--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dx++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dy--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dy++
	}
	// Keys win; the stick only counts while no direction key is held.
	if dx == 0 && dy == 0 {
		if math.Hypot(input.Stick.X, input.Stick.Y) > cfg.Ship.JoystickDeadzone {
			dx, dy = input.Stick.X, input.Stick.Y
		}
	}

	vx, vy := 0.0, 0.0
	if l := math.Hypot(dx, dy); l > 0 {
		vx = dx / l * cfg.Ship.Speed
		vy = dy / l * cfg.Ship.Speed
	}

	obj := components.Object.Get(ship)
	_, y := obj.Center()
	top, bottom := shipVerticalLimits(ecs, ship)
	if vy < 0 && y <= top {
		vy = 0
	}
	if vy > 0 && y >= bottom {
		vy = 0
	}
	physics.SpeedX = vx
	physics.SpeedY = vy

	sprite := components.Sprite.Get(ship)
	target := vx / cfg.Ship.Speed * bankAngle
	sprite.Rotation += (target - sprite.Rotation) * bankLerp
}

// shipVerticalLimits returns the centre-y range the ship may occupy,
// measured from the drawn sprite rather than the body. The top edge is
// relaxed while a boss is on screen.
func shipVerticalLimits(ecs *ecs.ECS, ship *donburi.Entry) (top, bottom float64) {
	half := components.Sprite.Get(ship).Height / 2
	top = half
	if GetSession(ecs).BossState != cfg.BossHidden {
		top = cfg.Ship.BossTopMargin + half
	}
	bottom = cfg.PlayableHeight() - half
	return top, bottom
}

func tryFire(ecs *ecs.ECS, ship *donburi.Entry, now float64, boosted, triple bool) {
	data := components.Ship.Get(ship)
	if now <= data.LastFired || data.Stamina < 1 {
		return
	}

	obj := components.Object.Get(ship)
	x, y := obj.Center()
	muzzleY := y - components.Sprite.Get(ship).Height/2
	speed := cfg.Ship.ProjectileSpeed

	if _, ok := factory.CreatePlayerShot(ecs, x, muzzleY, 0, -speed); !ok {
		return
	}
	if triple {
		factory.CreatePlayerShot(ecs, x, muzzleY, -cfg.Ship.SideShotSpeedX, -speed)
		factory.CreatePlayerShot(ecs, x, muzzleY, cfg.Ship.SideShotSpeedX, -speed)
	}
	PlaySFX(ecs, cfg.SoundShoot)

	rate := cfg.Ship.FireRate
	if boosted {
		rate = cfg.Ship.BoostFireRate
	}
	data.LastFired = now + rate
	if !boosted {
		data.Stamina = math.Max(0, data.Stamina-cfg.Ship.ShotCost)
	}
}

// HitShip applies one point of contact damage. It is ignored after game
// over, during invulnerability, under a shield and in god mode. It reports
// whether the hit counted.
func HitShip(ecs *ecs.ECS) bool {
	if GetSession(ecs).GameOver {
		return false
	}
	ship, ok := PlayerShip(ecs)
	if !ok {
		return false
	}
	now := Now(ecs)
	effects := components.TimedEffects.Get(ship)
	if effects.Active(cfg.EffectInvulnerable, now) || effects.Active(cfg.EffectShield, now) {
		return false
	}
	if components.Ship.Get(ship).GodMode {
		return false
	}

	health := components.Health.Get(ship)
	health.Current--
	x, y := components.Object.Get(ship).Center()
	QueueCue(ecs, cfg.CueCameraShake, x, y)
	PlaySFX(ecs, cfg.SoundPlayerHit)

	if health.Current <= 0 {
		health.Current = 0
		TriggerGameOver(ecs)
		return true
	}

	effects.Grant(cfg.EffectInvulnerable, cfg.Ship.InvulnDuration, now)
	flash(ecs, ship, cfg.Ship.InvulnDuration)
	return true
}

// TriggerGameOver ends the session once: spawning stops, the clock halts
// and the ship turns red.
func TriggerGameOver(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session.GameOver {
		return
	}
	session.GameOver = true
	CancelSpawners(ecs)
	syncClock(ecs)

	var x, y float64
	if ship, ok := PlayerShip(ecs); ok {
		x, y = components.Object.Get(ship).Center()
		sprite := components.Sprite.Get(ship)
		sprite.Tint = cfg.Red
		components.Physics.Get(ship).SpeedX = 0
		components.Physics.Get(ship).SpeedY = 0
	}
	QueueCue(ecs, cfg.CueGameOver, x, y)
}

// ToggleGodMode flips damage immunity on the ship.
func ToggleGodMode(ecs *ecs.ECS) bool {
	ship, ok := PlayerShip(ecs)
	if !ok {
		return false
	}
	data := components.Ship.Get(ship)
	data.GodMode = !data.GodMode
	return data.GodMode
}
