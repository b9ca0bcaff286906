package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/pufspace/assets"
	"github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/fonts"
	"github.com/automoto/pufspace/scenes"
	"github.com/automoto/pufspace/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	audio   *assets.AudioBackend
	watcher *config.Watcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(services *scenes.Services, backend *assets.AudioBackend, watcher *config.Watcher) *Game {
	g := &Game{
		bounds:  image.Rectangle{},
		audio:   backend,
		watcher: watcher,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g, services, false)
	} else {
		g.scene = scenes.NewMenuScene(g, services)
	}

	return g
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	if g.audio != nil {
		g.audio.Update()
	}
	if done, ok := g.scene.(interface{ Done() bool }); ok && done.Done() {
		return ebiten.Termination
	}
	return nil
}

// reloadTuning applies edits to the tuning file between frames.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		if err := config.LoadTuning(path); err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		log.Printf("Reloaded tuning from %s", path)
	case err := <-g.watcher.Errors:
		log.Printf("Warning: Tuning watcher error: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning (reloaded on change)")
	level2 := flag.Bool("level2", false, "Skip the menu and start from the level 2 checkpoint")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for the first session")
	god := flag.Bool("god", false, "Start with god mode on")
	hitboxes := flag.Bool("hitboxes", false, "Draw collision boxes")
	debugKeys := flag.Bool("debug", false, "Enable debug hotkeys (B boss, G god mode, H boss health, T transition)")
	flag.Parse()

	config.Debug.GodMode = *god
	config.Debug.ShowHitboxes = *hitboxes
	config.Debug.Keys = *debugKeys

	var watcher *config.Watcher
	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		w, err := config.NewWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: Tuning changes will not be reloaded: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var store systems.Store
	if s, err := systems.NewGDataStore("pufspace"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = s
	}

	backend, err := assets.NewAudioBackend(audio.NewContext(config.Audio.SampleRate))
	if err != nil {
		log.Printf("Warning: Audio disabled: %v", err)
		backend = nil
	}

	services := scenes.NewServices(store, nil, systems.NewEbitenSource(), *seed)
	if backend != nil {
		services.Audio = backend
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pufspace")
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(services, backend, watcher)
	if *level2 {
		game.scene = scenes.NewPlayScene(game, services, true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
