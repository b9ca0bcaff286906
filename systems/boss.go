package systems

import (
	"math"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBoss starts the encounter. It runs at most once per session: it is
// refused while a boss exists or after the boss was defeated. A pending
// automatic spawn is cancelled.
func SpawnBoss(ecs *ecs.ECS) bool {
	session := GetSession(ecs)
	if session.BossState != cfg.BossHidden || session.BossDefeated {
		return false
	}
	session.BossState = cfg.BossEntering

	spawner := GetSpawner(ecs)
	GetClock(ecs).Cancel(spawner.BossAutoSpawn)
	spawner.BossAutoSpawn = 0

	boss := factory.CreateBoss(ecs)
	_, tween := factory.CreateBackdrop(ecs)
	components.Boss.Get(boss).BackdropTween = tween

	PlaySFX(ecs, cfg.SoundBossEntry)
	return true
}

// UpdateBoss moves the boss through entry and, once fighting, sways it and
// arbitrates its attacks.
func UpdateBoss(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session.BossState == cfg.BossHidden {
		return
	}
	boss, ok := ActiveBoss(ecs)
	if !ok {
		return
	}

	data := components.Boss.Get(boss)
	obj := components.Object.Get(boss)
	backdrop, hasBackdrop := activeBackdrop(ecs)
	now := Now(ecs)
	dt := float32(frameDt(ecs))

	switch session.BossState {
	case cfg.BossEntering:
		x, _ := obj.Center()
		y, done := data.EntryTween.Update(dt)
		obj.SetCenter(x, float64(y))
		if hasBackdrop && data.BackdropTween != nil {
			by, _ := data.BackdropTween.Update(dt)
			bobj := components.Object.Get(backdrop)
			bx, _ := bobj.Center()
			bobj.SetCenter(bx, float64(by))
		}
		if done {
			session.BossState = cfg.BossFighting
			data.FightStartTime = now
			components.HealthBar.Get(boss).Visible = true
			QueueCue(ecs, cfg.CueBossHUD, 0, 0)
		}
	case cfg.BossFighting:
		sway := math.Sin((now-data.FightStartTime)*cfg.Boss.SwayFrequency) * cfg.Boss.SwayAmplitude
		x := float64(cfg.C.Width)/2 + sway
		_, y := obj.Center()
		obj.SetCenter(x, y)
		if hasBackdrop {
			bobj := components.Object.Get(backdrop)
			_, by := bobj.Center()
			bobj.SetCenter(x, by)
		}
		manageBossAttacks(ecs, boss, now)
	}

	updateBossBursts(ecs, boss, now)
	obj.Update()
	if hasBackdrop {
		components.Object.Get(backdrop).Update()
	}
}

// manageBossAttacks picks the attacks to start this tick. The pipe burst is
// independent; the laser has priority over the vomit stream and neither
// starts within the suppression window of the other.
func manageBossAttacks(ecs *ecs.ECS, boss *donburi.Entry, now float64) {
	data := components.Boss.Get(boss)
	health := components.Health.Get(boss)

	if float64(health.Current) < float64(health.Max)*cfg.Boss.PipeHealthRatio {
		if now-data.LastPipeTime > cfg.Boss.PipeCooldown {
			data.PipeShotsLeft = cfg.Boss.PipeShots
			data.NextPipeShot = now
			data.LastPipeTime = now
		}
	}

	laserReady := now-data.LastLaserTime > cfg.Boss.LaserCooldown
	vomitReady := data.Enraged && now-data.LastVomitTime > cfg.Boss.VomitCooldown

	if laserReady {
		if now < data.VomitUntil {
			return
		}
		if now-data.LastVomitTime >= cfg.Boss.AttackSuppression {
			fireBossLasers(ecs, boss)
			data.LastLaserTime = now
			return
		}
	}

	if vomitReady && now-data.LastLaserTime >= cfg.Boss.AttackSuppression {
		data.VomitUntil = now + cfg.Boss.VomitDuration
		data.VomitBatsLeft = cfg.Boss.VomitBats
		data.NextVomitBatAt = now
		data.LastVomitTime = now
	}
}

// updateBossBursts emits the staggered shots of a running pipe burst or
// vomit stream and swaps the vomit texture in and out.
func updateBossBursts(ecs *ecs.ECS, boss *donburi.Entry, now float64) {
	data := components.Boss.Get(boss)
	obj := components.Object.Get(boss)
	x, y := obj.Center()
	s := data.Scale

	for data.PipeShotsLeft > 0 && now >= data.NextPipeShot {
		pipeY := y + cfg.Boss.PipeOffset.Y*s
		factory.CreateRocket(ecs, x-cfg.Boss.PipeOffset.X*s-50, pipeY, -1)
		factory.CreateRocket(ecs, x+cfg.Boss.PipeOffset.X*s+30, pipeY, 1)
		data.PipeShotsLeft--
		data.NextPipeShot += cfg.Boss.PipeShotInterval
	}

	r := random(ecs)
	for data.VomitBatsLeft > 0 && now >= data.NextVomitBatAt {
		mouthY := y + obj.H*cfg.Boss.MouthRatio
		vx := randRange(r, -cfg.Boss.VomitBatSpreadX, cfg.Boss.VomitBatSpreadX)
		vy := randRange(r, cfg.Boss.VomitBatMinVY, cfg.Boss.VomitBatMaxVY)
		factory.CreateVomitBat(ecs, x, mouthY, vx, vy)
		data.VomitBatsLeft--
		data.NextVomitBatAt += cfg.Boss.VomitInterval
	}

	sprite := components.Sprite.Get(boss)
	if now < data.VomitUntil {
		sprite.Texture = cfg.TextureBossVomit
	} else {
		sprite.Texture = cfg.TextureBoss
	}
}

func fireBossLasers(ecs *ecs.ECS, boss *donburi.Entry) {
	data := components.Boss.Get(boss)
	x, y := components.Object.Get(boss).Center()
	eye := cfg.Boss.EyeOffset * data.Scale

	for _, eyeX := range []float64{x - eye, x + eye} {
		for _, angle := range cfg.Boss.LaserAngles {
			factory.CreateLaser(ecs, eyeX, y, angle)
		}
	}
	PlaySFX(ecs, cfg.SoundLaser)
}

// DamageBoss applies one qualifying hit. Hits count while the boss enters or
// fights and are rate limited in game time. It reports whether health
// changed.
func DamageBoss(ecs *ecs.ECS, boss *donburi.Entry, hitX, hitY float64) bool {
	session := GetSession(ecs)
	if !Active(boss) {
		return false
	}
	if session.BossState != cfg.BossEntering && session.BossState != cfg.BossFighting {
		return false
	}

	data := components.Boss.Get(boss)
	now := Now(ecs)
	if now-data.LastHitTime < cfg.Boss.HitRateLimit {
		return false
	}
	data.LastHitTime = now

	health := components.Health.Get(boss)
	health.Current -= cfg.Boss.DamagePerHit
	if health.Current < 0 {
		health.Current = 0
	}
	if !data.Enraged && float64(health.Current) <= float64(health.Max)*cfg.Boss.EnrageRatio {
		data.Enraged = true
	}
	flash(ecs, boss, cfg.Effects.HitFlash)
	PlaySFX(ecs, cfg.SoundBossHit)

	if health.Current <= 0 {
		KillBoss(ecs, boss)
	}
	QueueCue(ecs, cfg.CueExplosion, hitX, hitY)
	return true
}

// KillBoss runs the defeat sequence once: the boss and backdrop go away,
// the defeat is recorded permanently, the reward is paid, a heal drops and
// the level transition is requested.
func KillBoss(ecs *ecs.ECS, boss *donburi.Entry) {
	session := GetSession(ecs)
	if !Active(boss) || session.BossDefeated {
		return
	}
	session.BossState = cfg.BossHidden
	session.BossDefeated = true

	spawnPowerUp(ecs, cfg.PowerUpHeal)

	bx, by := components.Object.Get(boss).Center()
	QueueCue(ecs, cfg.CueExplosion, bx, by)

	StartLevelTransition(ecs)

	if backdrop, ok := activeBackdrop(ecs); ok {
		x, y := components.Object.Get(backdrop).Center()
		QueueCue(ecs, cfg.CueBatBurst, x, y)
		Destroy(backdrop)
	}

	c := GetClock(ecs)
	r := random(ecs)
	spread := int(cfg.Boss.DefeatExplosionSpread)
	for i := 0; i < cfg.Boss.DefeatExplosions; i++ {
		ox := float64(randInt(r, -spread, spread))
		oy := float64(randInt(r, -spread, spread))
		c.After(float64(i)*cfg.Boss.DefeatExplosionInterval, func() {
			QueueCue(ecs, cfg.CueExplosion, bx+ox, by+oy)
		})
	}
	QueueCue(ecs, cfg.CueBatBurst, bx, by)

	components.HealthBar.Get(boss).Visible = false
	Destroy(boss)

	for _, p := range collect(ecs.World, tags.HostileProjectile) {
		kind := components.Projectile.Get(p).Kind
		if kind == cfg.ProjectileLaser || kind == cfg.ProjectileRocket {
			Destroy(p)
		}
	}

	AddScore(ecs, cfg.Boss.DefeatReward)
	PlaySFX(ecs, cfg.SoundExplosion)
}

func activeBackdrop(ecs *ecs.ECS) (*donburi.Entry, bool) {
	e, ok := tags.Backdrop.First(ecs.World)
	if !ok || !Active(e) {
		return nil, false
	}
	return e, true
}

// DebugSetBossHealth drops the boss to one hit point.
func DebugSetBossHealth(ecs *ecs.ECS) bool {
	boss, ok := ActiveBoss(ecs)
	if !ok {
		return false
	}
	components.Health.Get(boss).Current = 1
	return true
}
