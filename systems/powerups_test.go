package systems

import (
	"math"
	"testing"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/tags"
)

func TestFirstPickupShowsTutorial(t *testing.T) {
	e := newTestECS(t)
	ship := shipEntry(t, e)
	effects := components.TimedEffects.Get(ship)

	PickUp(e, cfg.PowerUpBoost)

	pause := GetPause(e)
	if len(pause.Tutorials) != 1 || pause.Tutorials[0] != cfg.PowerUpBoost {
		t.Fatalf("tutorials = %v, want [boost]", pause.Tutorials)
	}
	if !Frozen(e) || !GetClock(e).Paused() {
		t.Error("session not frozen behind the tutorial")
	}
	if effects.Active(cfg.EffectBoost, Now(e)) {
		t.Error("boost applied before the tutorial was dismissed")
	}

	if !DismissTutorial(e) {
		t.Fatal("DismissTutorial() = false")
	}
	if Frozen(e) || GetClock(e).Paused() {
		t.Error("session still frozen after dismissal")
	}
	if got := effects.Remaining(cfg.EffectBoost, Now(e)); got != cfg.PowerUps.BoostDuration {
		t.Errorf("boost remaining = %v, want %v", got, cfg.PowerUps.BoostDuration)
	}
	if DismissTutorial(e) {
		t.Error("second DismissTutorial() = true with nothing queued")
	}

	// The second pickup of the same kind applies at once.
	advance(e, 4000)
	PickUp(e, cfg.PowerUpBoost)
	if len(pause.Tutorials) != 0 {
		t.Error("tutorial shown twice for one kind")
	}
	if got := effects.Remaining(cfg.EffectBoost, Now(e)); got != cfg.PowerUps.BoostDuration {
		t.Errorf("refreshed boost remaining = %v, want %v", got, cfg.PowerUps.BoostDuration)
	}
}

func TestApplyPowerUp(t *testing.T) {
	tests := []struct {
		name     string
		kind     cfg.PowerUpKind
		effect   cfg.EffectKind
		duration float64
	}{
		{"boost", cfg.PowerUpBoost, cfg.EffectBoost, cfg.PowerUps.BoostDuration},
		{"triple shot", cfg.PowerUpTripleShot, cfg.EffectTripleShot, cfg.PowerUps.TripleShotDuration},
		{"shield", cfg.PowerUpShield, cfg.EffectShield, cfg.PowerUps.ShieldDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			ship := shipEntry(t, e)
			effects := components.TimedEffects.Get(ship)

			ApplyPowerUp(e, tt.kind)
			advance(e, tt.duration-1)
			if !effects.Active(tt.effect, Now(e)) {
				t.Errorf("effect ended early")
			}
			advance(e, 1)
			if effects.Active(tt.effect, Now(e)) {
				t.Errorf("effect outlived its duration")
			}
		})
	}
}

func TestHealClampsToMax(t *testing.T) {
	e := newTestECS(t)
	ship := shipEntry(t, e)
	health := components.Health.Get(ship)

	health.Current = 2
	ApplyPowerUp(e, cfg.PowerUpHeal)
	if health.Current != health.Max {
		t.Errorf("health = %d, want %d", health.Current, health.Max)
	}
	ApplyPowerUp(e, cfg.PowerUpHeal)
	if health.Current != health.Max {
		t.Errorf("health after second heal = %d, want %d", health.Current, health.Max)
	}
}

func TestPowerUpSpacing(t *testing.T) {
	e := newTestECS(t)

	for i := 0; i < 20; i++ {
		spawnPowerUp(e, cfg.PowerUpKind(i%int(cfg.PowerUpKindCount)))
	}

	var xs []float64
	for _, p := range collect(e.World, tags.PowerUp) {
		x, _ := components.Object.Get(p).Center()
		xs = append(xs, x)
	}
	if len(xs) == 0 {
		t.Fatal("no power-up spawned")
	}
	// The screen only fits a handful at the configured padding.
	if max := cfg.C.Width / int(cfg.PowerUps.Padding); len(xs) > max+1 {
		t.Errorf("%d power-ups spawned, room for at most %d", len(xs), max+1)
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if d := math.Abs(xs[i] - xs[j]); d < cfg.PowerUps.Padding {
				t.Errorf("power-ups %d and %d are %v apart", i, j, d)
			}
		}
	}
}

func TestPowerUpPickupByContact(t *testing.T) {
	e := newTestECS(t)
	seen := GetPause(e).TutorialSeen
	for i := range seen.Seen {
		seen.Seen[i] = true
	}
	ship := shipEntry(t, e)
	x, y := components.Object.Get(ship).Center()

	p := factory.CreatePowerUp(e, cfg.PowerUpShield, x)
	place(p, x, y)
	UpdateCollisions(e)

	if Active(p) {
		t.Error("power-up still active after pickup")
	}
	if !components.TimedEffects.Get(ship).Active(cfg.EffectShield, Now(e)) {
		t.Error("shield not applied")
	}
	if len(GetPause(e).Tutorials) != 0 {
		t.Error("tutorial shown for a seen kind")
	}
}
