package main

import (
	"fmt"
	"time"

	"github.com/automoto/pufspace/assets"
	cfg "github.com/automoto/pufspace/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerBackend plays the synthesized sounds through the system speaker.
// Music switches are immediate; the terminal host has no crossfade.
type speakerBackend struct {
	mixer  *beep.Mixer
	sfx    map[cfg.SoundID]*beep.Buffer
	tracks map[cfg.MusicID]*beep.Buffer
	music  *beep.Ctrl
}

func newSpeakerBackend() (*speakerBackend, error) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}

	b := &speakerBackend{
		mixer:  &beep.Mixer{},
		sfx:    make(map[cfg.SoundID]*beep.Buffer),
		tracks: make(map[cfg.MusicID]*beep.Buffer),
	}
	for id, def := range cfg.Sound.SFX {
		buf := beep.NewBuffer(format)
		buf.Append(assets.SFXStream(def, cfg.Audio.SampleRate))
		b.sfx[id] = buf
	}
	for id, def := range cfg.Sound.Music {
		s, err := assets.TrackStream(def, cfg.Audio.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize track %d: %w", id, err)
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		b.tracks[id] = buf
	}

	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *speakerBackend) PlaySFX(id cfg.SoundID) {
	buf, ok := b.sfx[id]
	if !ok {
		return
	}
	speaker.Lock()
	b.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

func (b *speakerBackend) PlayMusic(id cfg.MusicID, volume float64, fadeMs float64) {
	buf, ok := b.tracks[id]
	if !ok {
		return
	}
	b.StopMusic()
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	speaker.Lock()
	b.music = ctrl
	b.mixer.Add(ctrl)
	speaker.Unlock()
}

func (b *speakerBackend) StopMusic() {
	speaker.Lock()
	defer speaker.Unlock()
	if b.music != nil {
		// A paused Ctrl keeps streaming silence; dropping the streamer
		// lets the mixer remove it.
		b.music.Streamer = nil
		b.music = nil
	}
}

func (b *speakerBackend) Close() {
	speaker.Clear()
	speaker.Close()
}
