package factory

import (
	"testing"

	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	CreateSession(e, SessionOptions{Seed: 1})
	return e
}

func TestPlayerShotPool(t *testing.T) {
	e := newWorld(t)

	var first *donburi.Entry
	for i := 0; i < cfg.Pools.PlayerProjectiles; i++ {
		shot, ok := CreatePlayerShot(e, 100, 400, 0, -900)
		if !ok {
			t.Fatalf("shot %d refused below the ceiling", i+1)
		}
		if first == nil {
			first = shot
		}
	}
	if _, ok := CreatePlayerShot(e, 100, 400, 0, -900); ok {
		t.Fatal("shot accepted past the ceiling")
	}
	if got := archetypes.Live(e.World, tags.PlayerProjectile); got != cfg.Pools.PlayerProjectiles {
		t.Errorf("live shots = %d, want %d", got, cfg.Pools.PlayerProjectiles)
	}

	// A shot destroyed this tick frees its slot before the sweep.
	components.Death.Get(first).Dead = true
	if _, ok := CreatePlayerShot(e, 100, 400, 0, -900); !ok {
		t.Error("freed slot not reused")
	}
}

func TestHostilePoolIsShared(t *testing.T) {
	e := newWorld(t)

	for i := 0; i < cfg.Pools.HostileProjectiles; i++ {
		var ok bool
		switch i % 3 {
		case 0:
			_, ok = CreateLaser(e, 200, 200, 90)
		case 1:
			_, ok = CreateRocket(e, 200, 200, 1)
		default:
			_, ok = CreateFireball(e, 200, 200)
		}
		if !ok {
			t.Fatalf("hostile projectile %d refused below the ceiling", i+1)
		}
	}

	tests := []struct {
		name string
		fire func() (*donburi.Entry, bool)
	}{
		{"laser", func() (*donburi.Entry, bool) { return CreateLaser(e, 200, 200, 90) }},
		{"rocket", func() (*donburi.Entry, bool) { return CreateRocket(e, 200, 200, -1) }},
		{"fireball", func() (*donburi.Entry, bool) { return CreateFireball(e, 200, 200) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.fire(); ok {
				t.Error("accepted past the shared ceiling")
			}
		})
	}

	// Player shots draw from their own pool.
	if _, ok := CreatePlayerShot(e, 100, 400, 0, -900); !ok {
		t.Error("player shot refused while only the hostile pool is full")
	}
}

func TestRocketCollidesLikeALaser(t *testing.T) {
	e := newWorld(t)
	rocket, _ := CreateRocket(e, 200, 200, 1)
	fireball, _ := CreateFireball(e, 200, 200)

	obj := components.Object.Get(rocket).Object
	if !obj.HasTags(tags.ResolvLaser) || !obj.HasTags(tags.ResolvHostile) {
		t.Errorf("rocket tags = %v, want laser and hostile", obj.Tags())
	}
	if components.Object.Get(fireball).Object.HasTags(tags.ResolvLaser) {
		t.Error("fireball tagged as a laser")
	}
}
