package systems

import (
	"github.com/automoto/pufspace/clock"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// StartSpawners schedules every recurring spawn for a fresh session. A
// session started at the checkpoint skips the level 1 waves, the
// automatic boss and the level 1 atmosphere.
func StartSpawners(ecs *ecs.ECS) {
	c := GetClock(ecs)
	spawner := GetSpawner(ecs)
	session := GetSession(ecs)
	fromCheckpoint := session.StartedAtCheckpoint

	if !fromCheckpoint {
		runBatWaves(ecs)
		runGhosts(ecs)
	}

	spawner.DragonPoll = c.Every(cfg.Spawn.DragonPollInterval, func() {
		s := GetSession(ecs)
		if s.Level2Active && !s.GameOver && s.BossState != cfg.BossFighting {
			spawnDragon(ecs)
		}
	})

	for kind := cfg.PowerUpKind(0); kind < cfg.PowerUpKindCount; kind++ {
		schedulePowerUp(ecs, kind)
	}

	if fromCheckpoint {
		return
	}
	spawner.BossAutoSpawn = c.After(cfg.Boss.AutoSpawnDelay, func() {
		GetSpawner(ecs).BossAutoSpawn = 0
		SpawnBoss(ecs)
	})
	spawner.Lightning = c.Every(cfg.Level.LightningInterval, func() {
		QueueCue(ecs, cfg.CueLightning, 0, 0)
	})
	session.RainActive = true
	QueueCue(ecs, cfg.CueRainStart, 0, 0)
}

// waveGate reports whether level 1 enemies may appear.
func waveGate(ecs *ecs.ECS) bool {
	s := GetSession(ecs)
	return !s.GameOver && s.BossState == cfg.BossHidden && !s.BossDefeated && !s.Level2Active
}

// runBatWaves spawns a wave and schedules the next one. The chain ends for
// good once the boss appears, level 2 is active or the game is over.
func runBatWaves(ecs *ecs.ECS) {
	if !waveGate(ecs) {
		return
	}
	SpawnBatWave(ecs)
	r := random(ecs)
	delay := randRange(r, cfg.Spawn.BatWaveMinDelay, cfg.Spawn.BatWaveMaxDelay)
	GetSpawner(ecs).BatWave = GetClock(ecs).After(delay, func() { runBatWaves(ecs) })
}

func runGhosts(ecs *ecs.ECS) {
	if !waveGate(ecs) {
		return
	}
	SpawnGhost(ecs)
	r := random(ecs)
	delay := randRange(r, cfg.Spawn.GhostMinDelay, cfg.Spawn.GhostMaxDelay)
	GetSpawner(ecs).Ghost = GetClock(ecs).After(delay, func() { runGhosts(ecs) })
}

// SpawnBatWave drops a group of bats at x positions kept apart by the
// configured spacing. A slot that finds no free position is skipped. It
// returns the x positions used.
func SpawnBatWave(ecs *ecs.ECS) []float64 {
	r := random(ecs)
	count := randInt(r, cfg.Spawn.BatWaveMinCount, cfg.Spawn.BatWaveMaxCount)
	margin := int(cfg.Spawn.BatMarginX)

	var xs []float64
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < cfg.Spawn.BatAttempts; attempt++ {
			x := float64(randInt(r, margin, cfg.C.Width-margin))
			if !clearOf(x, xs, cfg.Spawn.BatSpacing) {
				continue
			}
			xs = append(xs, x)
			y := randRange(r, cfg.Spawn.BatMinY, cfg.Spawn.BatMaxY)
			vy := randRange(r, cfg.Bat.MinSpeedY, cfg.Bat.MaxSpeedY)
			factory.CreateBat(ecs, x, y, 0, vy, cfg.Bat.Scale)
			break
		}
	}
	return xs
}

// SpawnGhost drops one ghost with a random sway.
func SpawnGhost(ecs *ecs.ECS) {
	r := random(ecs)
	margin := int(cfg.Spawn.GhostMarginX)
	x := float64(randInt(r, margin, cfg.C.Width-margin))
	y := randRange(r, cfg.Spawn.GhostMinY, cfg.Spawn.GhostMaxY)
	speed := randRange(r, cfg.Ghost.MinSpeedY, cfg.Ghost.MaxSpeedY)
	sway := cfg.Ghost.SwaySpeeds[r.Intn(len(cfg.Ghost.SwaySpeeds))]
	force := randRange(r, cfg.Ghost.MinSwayForce, cfg.Ghost.MaxSwayForce)
	factory.CreateGhost(ecs, x, y, speed, sway, force)
}

func spawnDragon(ecs *ecs.ECS) bool {
	r := random(ecs)
	margin := int(cfg.Spawn.DragonMarginX)
	x := float64(randInt(r, margin, cfg.C.Width-margin))
	vy := randRange(r, cfg.Dragon.MinSpeedY, cfg.Dragon.MaxSpeedY)
	_, ok := factory.CreateDragon(ecs, x, cfg.Spawn.DragonY, vy)
	return ok
}

// powerUpDelay returns the wait before the next drop of kind. Drops come
// faster while the boss fights, except the shield.
func powerUpDelay(ecs *ecs.ECS, kind cfg.PowerUpKind) float64 {
	fighting := GetSession(ecs).BossState == cfg.BossFighting
	p := cfg.PowerUps
	switch kind {
	case cfg.PowerUpBoost:
		if fighting {
			return p.BoostFightInterval
		}
		return p.BoostInterval
	case cfg.PowerUpTripleShot:
		if fighting {
			return p.TripleShotFightInterval
		}
		return p.TripleShotInterval
	case cfg.PowerUpHeal:
		if fighting {
			return p.HealFightInterval
		}
		return p.HealInterval
	default:
		return p.ShieldInterval
	}
}

func schedulePowerUp(ecs *ecs.ECS, kind cfg.PowerUpKind) {
	if GetSession(ecs).GameOver {
		return
	}
	GetSpawner(ecs).PowerUps[kind] = GetClock(ecs).After(powerUpDelay(ecs, kind), func() {
		if GetSession(ecs).GameOver {
			return
		}
		spawnPowerUp(ecs, kind)
		schedulePowerUp(ecs, kind)
	})
}

// CancelSpawners stops every recurring schedule of the session.
func CancelSpawners(ecs *ecs.ECS) {
	c := GetClock(ecs)
	spawner := GetSpawner(ecs)
	handles := []*clock.Handle{
		&spawner.BossAutoSpawn,
		&spawner.Lightning,
		&spawner.BatWave,
		&spawner.Ghost,
		&spawner.DragonPoll,
	}
	for i := range spawner.PowerUps {
		handles = append(handles, &spawner.PowerUps[i])
	}
	for _, h := range handles {
		c.Cancel(*h)
		*h = 0
	}
}
