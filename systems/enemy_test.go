package systems

import (
	"math"
	"testing"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/tags"
)

func TestDragonAttackCycle(t *testing.T) {
	e := newTestECS(t)
	dragon, ok := factory.CreateDragon(e, 270, 300, 0)
	if !ok {
		t.Fatal("CreateDragon() refused")
	}
	attack := components.DragonAttack.Get(dragon)
	sprite := components.Sprite.Get(dragon)

	const step = 10.0
	start := cfg.Dragon.FirstAttackDelay
	interval := cfg.Dragon.ShotInterval
	lastShot := start + float64(cfg.Dragon.BurstShots-1)*interval
	// The burst begins on the tick the idle delay ends and its first
	// fireball leaves on the following tick.
	wantShots := []float64{start + step}
	for i := 1; i < cfg.Dragon.BurstShots; i++ {
		wantShots = append(wantShots, start+float64(i)*interval)
	}

	var shots []float64
	fired := 0
	for Now(e) < lastShot+cfg.Dragon.Cooldown-step {
		advance(e, step)
		UpdateEnemies(e)
		now := Now(e)

		if n := len(collect(e.World, tags.HostileProjectile)); n > fired {
			for ; fired < n; fired++ {
				shots = append(shots, now)
			}
		}

		switch {
		case now < start:
			if attack.Phase != cfg.DragonIdle {
				t.Fatalf("t=%v: phase = %v before the first attack", now, attack.Phase)
			}
		case now < lastShot+cfg.Dragon.FireTextureHold:
			if sprite.Texture != cfg.Dragon.FireTexture {
				t.Fatalf("t=%v: fire texture not shown during the burst", now)
			}
		default:
			if attack.Phase != cfg.DragonCooling {
				t.Fatalf("t=%v: phase = %v, want cooling", now, attack.Phase)
			}
			if sprite.Texture != cfg.Dragon.Texture {
				t.Fatalf("t=%v: fire texture not reverted", now)
			}
		}
	}

	if len(shots) != len(wantShots) {
		t.Fatalf("shots at %v, want %v", shots, wantShots)
	}
	for i := range shots {
		if shots[i] != wantShots[i] {
			t.Errorf("shot %d at %v, want %v", i+1, shots[i], wantShots[i])
		}
	}

	// Cooling ends and the next burst starts.
	advance(e, step)
	UpdateEnemies(e)
	if attack.Phase != cfg.DragonBursting {
		t.Errorf("phase = %v after the cooldown, want bursting", attack.Phase)
	}
}

func TestDragonFireballPosition(t *testing.T) {
	e := newTestECS(t)
	dragon, _ := factory.CreateDragon(e, 270, 300, 0)
	components.DragonAttack.Get(dragon).NextAt = 0

	UpdateEnemies(e)
	UpdateEnemies(e)

	fireballs := collect(e.World, tags.HostileProjectile)
	if len(fireballs) != 1 {
		t.Fatalf("fireballs = %d, want 1", len(fireballs))
	}
	x, y := components.Object.Get(fireballs[0]).Center()
	if math.Abs(x-270) > 1e-9 || math.Abs(y-(300+cfg.Dragon.FireballOffsetY)) > 1e-9 {
		t.Errorf("fireball at (%v, %v), want (270, %v)", x, y, 300+cfg.Dragon.FireballOffsetY)
	}
	if got := components.Physics.Get(fireballs[0]).SpeedY; got != cfg.Dragon.FireballSpeed {
		t.Errorf("fireball vy = %v, want %v", got, cfg.Dragon.FireballSpeed)
	}
}
