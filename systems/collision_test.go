package systems

import (
	"testing"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestHitEnemyKillsBatAfterTwoHits(t *testing.T) {
	e := newTestECS(t)
	bat := factory.CreateBat(e, 200, 300, 0, 0, cfg.Bat.Scale)

	shot1, _ := factory.CreatePlayerShot(e, 200, 300, 0, -900)
	if HitEnemy(e, shot1, bat) {
		t.Fatal("first hit killed a bat with 2 health")
	}
	if got := components.Health.Get(bat).Current; got != 1 {
		t.Fatalf("bat health = %d, want 1", got)
	}
	if Active(shot1) {
		t.Error("projectile survived its hit")
	}

	shot2, _ := factory.CreatePlayerShot(e, 200, 300, 0, -900)
	if !HitEnemy(e, shot2, bat) {
		t.Fatal("second hit did not kill the bat")
	}
	if got := GetSession(e).Score; got != cfg.Bat.Reward {
		t.Errorf("score = %d, want %d", got, cfg.Bat.Reward)
	}
	if Active(bat) {
		t.Error("dead bat still active")
	}

	shot3, _ := factory.CreatePlayerShot(e, 200, 300, 0, -900)
	if HitEnemy(e, shot3, bat) {
		t.Error("hit on a dead bat reported a kill")
	}
	if !Active(shot3) {
		t.Error("projectile consumed by a dead bat")
	}
	if got := GetSession(e).Score; got != cfg.Bat.Reward {
		t.Errorf("score after third hit = %d, want %d", got, cfg.Bat.Reward)
	}
}

func TestHitEnemyAboveTopEdge(t *testing.T) {
	e := newTestECS(t)
	bat := factory.CreateBat(e, 200, -40, 0, 0, cfg.Bat.Scale)
	shot, _ := factory.CreatePlayerShot(e, 200, -40, 0, -900)

	if HitEnemy(e, shot, bat) {
		t.Fatal("off-screen bat was killed")
	}
	if got := components.Health.Get(bat).Current; got != cfg.Bat.Health {
		t.Errorf("bat health = %d, want %d", got, cfg.Bat.Health)
	}
	if Active(shot) {
		t.Error("projectile not consumed")
	}
}

func TestSingleShotDamagesOneEnemy(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateBat(e, 100, 300, 0, 0, cfg.Bat.Scale)
	b := factory.CreateBat(e, 110, 300, 0, 0, cfg.Bat.Scale)
	shot, _ := factory.CreatePlayerShot(e, 105, 300, 0, -900)

	UpdateCollisions(e)

	lost := cfg.Bat.Health - components.Health.Get(a).Current
	lost += cfg.Bat.Health - components.Health.Get(b).Current
	if lost != 1 {
		t.Errorf("total damage = %d, want 1", lost)
	}
	if Active(shot) {
		t.Error("projectile not consumed")
	}
}

func TestShotAnnihilatesLaser(t *testing.T) {
	e := newTestECS(t)
	shot, _ := factory.CreatePlayerShot(e, 300, 300, 0, -900)
	laser, _ := factory.CreateLaser(e, 300, 300, 90)

	UpdateCollisions(e)

	if Active(shot) || Active(laser) {
		t.Errorf("shot active = %v, laser active = %v, want both destroyed", Active(shot), Active(laser))
	}
	if GetCues(e).Emitted[cfg.CueExplosion] != 1 {
		t.Errorf("explosion cues = %d, want 1", GetCues(e).Emitted[cfg.CueExplosion])
	}
}

func TestShotAnnihilatesRocket(t *testing.T) {
	e := newTestECS(t)
	shot, _ := factory.CreatePlayerShot(e, 300, 300, 0, -900)
	rocket, _ := factory.CreateRocket(e, 300, 300, 1)

	UpdateCollisions(e)

	if Active(shot) || Active(rocket) {
		t.Errorf("shot active = %v, rocket active = %v, want both destroyed", Active(shot), Active(rocket))
	}
	if GetCues(e).Emitted[cfg.CueExplosion] != 1 {
		t.Errorf("explosion cues = %d, want 1", GetCues(e).Emitted[cfg.CueExplosion])
	}
}

func TestShotPassesFireball(t *testing.T) {
	e := newTestECS(t)
	shot, _ := factory.CreatePlayerShot(e, 300, 300, 0, -900)
	fireball, _ := factory.CreateFireball(e, 300, 300)

	UpdateCollisions(e)

	if !Active(shot) || !Active(fireball) {
		t.Errorf("shot active = %v, fireball active = %v, want both alive", Active(shot), Active(fireball))
	}
}

func TestShotsIntoBossSameTick(t *testing.T) {
	e := newTestECS(t)
	boss := spawnTestBoss(t, e)
	place(boss, 270, 300)

	a, _ := factory.CreatePlayerShot(e, 265, 300, 0, -900)
	b, _ := factory.CreatePlayerShot(e, 275, 300, 0, -900)

	UpdateCollisions(e)

	if Active(a) || Active(b) {
		t.Errorf("shot a active = %v, shot b active = %v, want both consumed", Active(a), Active(b))
	}
	if got, want := components.Health.Get(boss).Current, cfg.Boss.MaxHealth-cfg.Boss.DamagePerHit; got != want {
		t.Errorf("boss health = %d, want %d", got, want)
	}
}

func TestShipContacts(t *testing.T) {
	tests := []struct {
		name         string
		shield       bool
		spawn        func(e *ecs.ECS, x, y float64) *donburi.Entry
		wantHealth   int
		wantConsumed bool
	}{
		{
			name:         "bat rams ship",
			spawn:        spawnBat,
			wantHealth:   cfg.Ship.MaxHealth - 1,
			wantConsumed: true,
		},
		{
			name:         "bat blocked by shield",
			shield:       true,
			spawn:        spawnBat,
			wantHealth:   cfg.Ship.MaxHealth,
			wantConsumed: false,
		},
		{
			name:         "laser hits ship",
			spawn:        spawnLaser,
			wantHealth:   cfg.Ship.MaxHealth - 1,
			wantConsumed: true,
		},
		{
			name:         "laser blocked by shield",
			shield:       true,
			spawn:        spawnLaser,
			wantHealth:   cfg.Ship.MaxHealth,
			wantConsumed: false,
		},
		{
			name:         "fireball blocked by shield",
			shield:       true,
			spawn:        spawnFireball,
			wantHealth:   cfg.Ship.MaxHealth,
			wantConsumed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			ship := shipEntry(t, e)
			if tt.shield {
				components.TimedEffects.Get(ship).Grant(cfg.EffectShield, cfg.PowerUps.ShieldDuration, Now(e))
			}
			x, y := components.Object.Get(ship).Center()
			other := tt.spawn(e, x, y)

			UpdateCollisions(e)

			if got := components.Health.Get(ship).Current; got != tt.wantHealth {
				t.Errorf("ship health = %d, want %d", got, tt.wantHealth)
			}
			if consumed := !Active(other); consumed != tt.wantConsumed {
				t.Errorf("consumed = %v, want %v", consumed, tt.wantConsumed)
			}
			if got := GetSession(e).Score; got != 0 {
				t.Errorf("score = %d, want 0", got)
			}
		})
	}
}

func spawnBat(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateBat(e, x, y, 0, 0, cfg.Bat.Scale)
}

func spawnLaser(e *ecs.ECS, x, y float64) *donburi.Entry {
	laser, _ := factory.CreateLaser(e, x, y, 90)
	return laser
}

func spawnFireball(e *ecs.ECS, x, y float64) *donburi.Entry {
	fireball, _ := factory.CreateFireball(e, x, y)
	return fireball
}
