package scenes

import (
	"testing"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/systems"
	"github.com/automoto/pufspace/systems/factory"
	"github.com/automoto/pufspace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const stepMs = 10.0

type sceneRecorder struct {
	scenes []interface{}
}

func (r *sceneRecorder) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

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

type recordingBackend struct {
	music []cfg.MusicID
	sfx   int
	stops int
}

func (b *recordingBackend) PlaySFX(cfg.SoundID) { b.sfx++ }

func (b *recordingBackend) PlayMusic(id cfg.MusicID, _, _ float64) {
	b.music = append(b.music, id)
}

func (b *recordingBackend) StopMusic() { b.stops++ }

func newTestPlay(t *testing.T, fromCheckpoint bool) (*PlayScene, *Services, *systems.MemoryStore) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	store := systems.NewMemoryStore()
	services := NewServices(store, nil, nil, 1)
	return NewPlayScene(&sceneRecorder{}, services, fromCheckpoint), services, store
}

func steps(ps *PlayScene, ms float64) {
	for elapsed := 0.0; elapsed < ms; elapsed += stepMs {
		ps.Step(stepMs)
	}
}

func ship(t *testing.T, ps *PlayScene) *donburi.Entry {
	t.Helper()
	e, ok := systems.PlayerShip(ps.ECS())
	if !ok {
		t.Fatal("ship missing")
	}
	return e
}

func count(ps *PlayScene, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(ps.ECS().World, func(e *donburi.Entry) {
		if systems.Active(e) {
			n++
		}
	})
	return n
}

// dropOnShip places a power-up over the ship so the next step collects it.
func dropOnShip(t *testing.T, ps *PlayScene, kind cfg.PowerUpKind) {
	t.Helper()
	s := ship(t, ps)
	x, y := components.Object.Get(s).Center()
	p := factory.CreatePowerUp(ps.ECS(), kind, x)
	obj := components.Object.Get(p)
	obj.SetCenter(x, y)
	obj.Update()
}

func TestTutorialDefersBoost(t *testing.T) {
	ps, _, store := newTestPlay(t, false)
	ps.ToggleGodMode()
	systems.CancelSpawners(ps.ECS())

	dropOnShip(t, ps, cfg.PowerUpBoost)
	ps.Step(stepMs)

	pause := systems.GetPause(ps.ECS())
	if len(pause.Tutorials) != 1 {
		t.Fatalf("tutorials = %v, want one", pause.Tutorials)
	}
	effects := components.TimedEffects.Get(ship(t, ps))
	frozenAt := ps.Now()
	steps(ps, 1000)
	if ps.Now() != frozenAt {
		t.Errorf("clock moved behind the tutorial: %v -> %v", frozenAt, ps.Now())
	}
	if effects.Active(cfg.EffectBoost, ps.Now()) {
		t.Fatal("boost active before dismissal")
	}

	if !ps.DismissTutorial() {
		t.Fatal("DismissTutorial() = false")
	}
	if got := effects.Remaining(cfg.EffectBoost, ps.Now()); got != cfg.PowerUps.BoostDuration {
		t.Errorf("boost remaining = %v, want %v", got, cfg.PowerUps.BoostDuration)
	}

	steps(ps, cfg.PowerUps.BoostDuration-100)
	if !effects.Active(cfg.EffectBoost, ps.Now()) {
		t.Error("boost ended early")
	}
	steps(ps, 200)
	if effects.Active(cfg.EffectBoost, ps.Now()) {
		t.Error("boost still active after its duration")
	}

	if _, ok, _ := store.LoadBool(systems.KeyTutorialSeen); ok {
		t.Error("tutorial flag saved before every kind was seen")
	}
}

func TestTutorialFlagSavedOnceAllSeen(t *testing.T) {
	ps, _, store := newTestPlay(t, false)
	ps.ToggleGodMode()
	systems.CancelSpawners(ps.ECS())

	for kind := cfg.PowerUpKind(0); kind < cfg.PowerUpKindCount; kind++ {
		dropOnShip(t, ps, kind)
		ps.Step(stepMs)
		if !ps.DismissTutorial() {
			t.Fatalf("no tutorial for kind %d", kind)
		}
	}

	v, ok, _ := store.LoadBool(systems.KeyTutorialSeen)
	if !ok || !v {
		t.Fatal("tutorial flag not saved")
	}

	// A later process skips every tutorial.
	next := NewServices(store, nil, nil, 2)
	if !next.Tutorials.All() {
		t.Error("stored flag did not mark every kind seen")
	}
	ps2 := NewPlayScene(&sceneRecorder{}, next, false)
	systems.CancelSpawners(ps2.ECS())
	dropOnShip(t, ps2, cfg.PowerUpShield)
	ps2.Step(stepMs)
	if len(systems.GetPause(ps2.ECS()).Tutorials) != 0 {
		t.Error("tutorial shown again after the flag was stored")
	}
	if !components.TimedEffects.Get(ship(t, ps2)).Active(cfg.EffectShield, ps2.Now()) {
		t.Error("shield not applied directly")
	}
}

func TestPauseFreezesSession(t *testing.T) {
	ps, _, _ := newTestPlay(t, false)
	ps.ToggleGodMode()
	steps(ps, 500)

	bats := donburi.NewQuery(filter.Contains(tags.Bat))
	bat, ok := bats.First(ps.ECS().World)
	if !ok {
		t.Fatal("no bat after the first wave")
	}
	_, batY := components.Object.Get(bat).Center()
	now := ps.Now()
	spawner := systems.GetSpawner(ps.ECS())
	clock := systems.GetClock(ps.ECS())
	remaining, ok := clock.Remaining(spawner.BossAutoSpawn)
	if !ok {
		t.Fatal("boss spawn not scheduled")
	}

	if !ps.TogglePause() {
		t.Fatal("TogglePause() = false")
	}
	steps(ps, 3000)

	if ps.Now() != now {
		t.Errorf("Now() = %v while paused, want %v", ps.Now(), now)
	}
	if _, y := components.Object.Get(bat).Center(); y != batY {
		t.Errorf("bat moved while paused: %v -> %v", batY, y)
	}
	if got, _ := clock.Remaining(spawner.BossAutoSpawn); got != remaining {
		t.Errorf("boss spawn remaining = %v while paused, want %v", got, remaining)
	}

	if ps.TogglePause() {
		t.Fatal("TogglePause() = true on resume")
	}
	steps(ps, 100)
	if ps.Now() <= now {
		t.Error("clock did not resume")
	}
	if got, _ := clock.Remaining(spawner.BossAutoSpawn); got >= remaining || got < remaining-110 {
		t.Errorf("boss spawn remaining = %v after resume, want just under %v", got, remaining)
	}
}

func TestCheckpointStart(t *testing.T) {
	ps, services, _ := newTestPlay(t, true)
	ps.ToggleGodMode()

	session := ps.Session()
	if !session.Level2Active {
		t.Fatal("checkpoint session not in level 2")
	}
	if session.RainActive {
		t.Error("rain active at the checkpoint")
	}
	spawner := systems.GetSpawner(ps.ECS())
	if spawner.BossAutoSpawn != 0 || spawner.Lightning != 0 {
		t.Error("level 1 schedules running at the checkpoint")
	}

	steps(ps, cfg.Spawn.DragonPollInterval+100)

	if n := count(ps, tags.Bat) + count(ps, tags.Ghost); n != 0 {
		t.Errorf("%d level 1 enemies at the checkpoint", n)
	}
	if count(ps, tags.Dragon) == 0 {
		t.Error("no dragon after the first poll")
	}
	if !services.CheckpointReached {
		t.Error("checkpoint not recorded")
	}
}

func TestRestart(t *testing.T) {
	tests := []struct {
		name           string
		fromCheckpoint bool
	}{
		{"new game", false},
		{"checkpoint", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, services, _ := newTestPlay(t, tt.fromCheckpoint)
			steps(ps, 200)
			systems.TriggerGameOver(ps.ECS())
			ps.Step(stepMs)
			if !ps.GameOver() {
				t.Fatal("game over not reached")
			}
			old := ps.ECS()
			seed := services.Seed

			ps.Restart()

			if ps.ECS() == old {
				t.Fatal("restart kept the old world")
			}
			if ps.GameOver() || ps.Score() != 0 {
				t.Error("restart kept the old session state")
			}
			if got := ps.Session().Level2Active; got != tt.fromCheckpoint {
				t.Errorf("level 2 active = %v, want %v", got, tt.fromCheckpoint)
			}
			if services.Seed != seed+1 {
				t.Errorf("seed = %d, want %d", services.Seed, seed+1)
			}
		})
	}
}

func TestShipBoundsOverLongRun(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	input := &scriptedInput{}
	services := NewServices(systems.NewMemoryStore(), nil, input, 7)
	ps := NewPlayScene(&sceneRecorder{}, services, false)

	patterns := [][]cfg.ActionID{
		{cfg.ActionFire, cfg.ActionMoveLeft},
		{cfg.ActionFire, cfg.ActionMoveUp},
		{cfg.ActionFire, cfg.ActionMoveRight},
		{cfg.ActionMoveDown},
	}
	for i := 0; i < 6000 && !ps.GameOver(); i++ {
		input.hold(patterns[(i/300)%len(patterns)]...)
		ps.Step(stepMs)
		if systems.GetPause(ps.ECS()).Frozen() {
			ps.DismissTutorial()
		}

		s, ok := systems.PlayerShip(ps.ECS())
		if !ok {
			t.Fatal("ship removed")
		}
		health := components.Health.Get(s)
		if health.Current < 0 || health.Current > health.Max {
			t.Fatalf("step %d: health = %d", i, health.Current)
		}
		stamina := components.Ship.Get(s).Stamina
		if stamina < 0 || stamina > cfg.Ship.MaxStamina {
			t.Fatalf("step %d: stamina = %v", i, stamina)
		}
	}
}

func TestMusicPreference(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	store := systems.NewMemoryStore()
	backend := &recordingBackend{}
	input := &scriptedInput{}
	services := NewServices(store, backend, input, 1)
	ps := NewPlayScene(&sceneRecorder{}, services, false)

	ps.Step(stepMs)
	if len(backend.music) != 0 {
		t.Fatal("music played with the preference off")
	}

	if !ps.ToggleMusic() {
		t.Fatal("ToggleMusic() = false")
	}
	ps.Step(stepMs)
	if len(backend.music) != 1 || backend.music[0] != cfg.MusicLevel1 {
		t.Errorf("music = %v, want [level 1]", backend.music)
	}
	if v, ok, _ := store.LoadBool(systems.KeyMusicEnabled); !ok || !v {
		t.Error("music preference not saved")
	}

	// The hotkey goes through the same path.
	input.hold(cfg.ActionToggleMusic)
	ps.Step(stepMs)
	input.hold()
	ps.Step(stepMs)
	if services.MusicEnabled {
		t.Error("hotkey did not turn music off")
	}
	if v, _, _ := store.LoadBool(systems.KeyMusicEnabled); v {
		t.Error("music off not saved")
	}
	if backend.stops == 0 {
		t.Error("music not stopped")
	}
}

func TestGameOverDisablesPause(t *testing.T) {
	ps, _, _ := newTestPlay(t, false)
	systems.TriggerGameOver(ps.ECS())
	if ps.TogglePause() || ps.Paused() {
		t.Error("paused after game over")
	}
	now := ps.Now()
	steps(ps, 500)
	if ps.Now() != now {
		t.Error("clock ran after game over")
	}
}
