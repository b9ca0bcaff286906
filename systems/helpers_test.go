package systems

import (
	"testing"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scriptedInput replays a fixed snapshot every poll.
type scriptedInput struct {
	snap components.InputSnapshot
}

func (s *scriptedInput) Poll() components.InputSnapshot {
	return s.snap
}

func (s *scriptedInput) hold(actions ...cfg.ActionID) {
	s.snap = components.InputSnapshot{}
	for _, a := range actions {
		s.snap.Actions[a] = true
	}
}

// newTestECS builds a session world with no spawners running. Tuning is
// restored when the test ends.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	return newSessionECS(t, factory.SessionOptions{Seed: 1})
}

func newSessionECS(t *testing.T, opts factory.SessionOptions) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, opts)
	return e
}

// tick runs the movement and firing systems for one frame.
func tick(e *ecs.ECS) {
	UpdateClock(e)
	UpdateInput(e)
	UpdateShip(e)
	UpdateCleanup(e)
	UpdatePhysics(e)
	UpdateSweep(e)
}

// advance moves game time forward without running any system.
func advance(e *ecs.ECS, ms float64) {
	GetClock(e).Advance(ms)
}

func shipEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	ship, ok := PlayerShip(e)
	if !ok {
		t.Fatal("ship missing")
	}
	return ship
}

func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.SetCenter(x, y)
	obj.Update()
}

func TestDestroyIsIdempotent(t *testing.T) {
	e := newTestECS(t)
	bat := factory.CreateBat(e, 100, 100, 0, 200, cfg.Bat.Scale)

	if !Destroy(bat) {
		t.Fatal("first Destroy() = false, want true")
	}
	if Destroy(bat) {
		t.Error("second Destroy() = true, want false")
	}
	if Active(bat) {
		t.Error("destroyed bat still active")
	}

	UpdateSweep(e)
	if bat.Valid() {
		t.Error("bat still in the world after the sweep")
	}
	if Destroy(bat) {
		t.Error("Destroy() after the sweep = true, want false")
	}
}

func TestRandRange(t *testing.T) {
	e := newTestECS(t)
	r := random(e)
	tests := []struct {
		name     string
		min, max float64
	}{
		{"positive", 200, 400},
		{"negative", -200, 200},
		{"empty", 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := randRange(r, tt.min, tt.max)
				if v < tt.min || v > tt.max {
					t.Fatalf("randRange(%v, %v) = %v", tt.min, tt.max, v)
				}
			}
		})
	}
}
