package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/pufspace/components"
	"github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/scenes"
	"github.com/automoto/pufspace/systems"
	"github.com/gdamore/tcell/v2"
)

// host runs a single play session in the terminal. It has no title screen;
// leaving the session ends the program.
type host struct {
	screen tcell.Screen
	keys   *keySource
	play   *scenes.PlayScene
	quit   bool
}

func (h *host) ChangeScene(scene interface{}) {
	if ps, ok := scene.(*scenes.PlayScene); ok {
		h.play = ps
		return
	}
	h.quit = true
}

func (h *host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			h.quit = true
			return
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && h.play.GameOver() {
			h.play.Restart()
			return
		}
		h.keys.Handle(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func (h *host) run() {
	tick := time.Second / time.Duration(config.C.TPS)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	dt := float64(tick) / float64(time.Millisecond)
	for !h.quit {
		select {
		case ev := <-eventChan:
			h.handle(ev)
		case <-ticker.C:
			h.play.Step(dt)
			draw(h.screen, h.play)
		}
	}
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	level2 := flag.Bool("level2", false, "Start from the level 2 checkpoint")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for the first session")
	god := flag.Bool("god", false, "Start with god mode on")
	music := flag.Bool("music", false, "Play sound through the speaker")
	debugKeys := flag.Bool("debug", false, "Enable debug hotkeys (b boss, g god mode, h boss health, t transition)")
	flag.Parse()

	config.Debug.GodMode = *god
	config.Debug.Keys = *debugKeys
	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
			os.Exit(1)
		}
	}

	var backend components.AudioBackend
	if *music {
		b, err := newSpeakerBackend()
		if err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer b.Close()
			backend = b
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	keys := newKeySource()
	services := scenes.NewServices(systems.NewMemoryStore(), backend, keys, *seed)
	services.MusicEnabled = *music

	h := &host{screen: screen, keys: keys}
	h.play = scenes.NewPlayScene(h, services, *level2)
	h.run()
}
