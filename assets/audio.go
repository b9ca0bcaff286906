package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/pufspace/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// sweep is an oscillator whose frequency moves linearly from start to end
// over its duration.
type sweep struct {
	wave       cfg.WaveType
	start, end float64
	phase      float64
	pos, total int
	rate       beep.SampleRate
	noise      *rand.Rand
}

func newSweep(def cfg.ToneDef, rate beep.SampleRate) *sweep {
	return &sweep{
		wave:  def.Wave,
		start: def.StartFreq,
		end:   def.EndFreq,
		total: rate.N(time.Duration(def.DurationMs) * time.Millisecond),
		rate:  rate,
		noise: rand.New(rand.NewSource(int64(def.DurationMs))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.start + (s.end-s.start)*t

		val := oscillate(s.wave, s.phase, s.noise)
		// Linear fade out
		val *= 1 - t

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func oscillate(wave cfg.WaveType, phase float64, noise *rand.Rand) float64 {
	switch wave {
	case cfg.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case cfg.WaveSaw:
		return 2 * (phase - 0.5)
	case cfg.WaveNoise:
		return noise.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// lowPass is a one-pole filter that softens square and saw tracks.
type lowPass struct {
	streamer beep.Streamer
	alpha    float64
	prev     [2]float64
}

func (f *lowPass) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			f.prev[c] += f.alpha * (samples[i][c] - f.prev[c])
			samples[i][c] = f.prev[c]
		}
	}
	return n, ok
}

func (f *lowPass) Err() error { return f.streamer.Err() }

// withVolume scales a stream; zero volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SFXStream returns a sound effect as a finite stream.
func SFXStream(def cfg.ToneDef, sampleRate int) beep.Streamer {
	rate := beep.SampleRate(sampleRate)
	return withVolume(newSweep(def, rate), def.Volume)
}

// SynthesizeSFX renders a sound effect as 16-bit stereo PCM.
func SynthesizeSFX(def cfg.ToneDef, sampleRate int) []byte {
	return renderPCM(SFXStream(def, sampleRate))
}

// TrackStream returns one pass of a music loop as a finite stream.
func TrackStream(def cfg.TrackDef, sampleRate int) (beep.Streamer, error) {
	rate := beep.SampleRate(sampleRate)
	noteLen := rate.N(time.Duration(def.NoteMs) * time.Millisecond)

	var notes []beep.Streamer
	for _, freq := range def.Notes {
		if freq <= 0 {
			notes = append(notes, generators.Silence(noteLen))
			continue
		}
		tone, err := toneFor(def.Wave, rate, freq)
		if err != nil {
			return nil, fmt.Errorf("failed to build %v Hz note: %w", freq, err)
		}
		notes = append(notes, beep.Take(noteLen, tone))
	}

	var s beep.Streamer = beep.Seq(notes...)
	if def.Filtered {
		s = &lowPass{streamer: s, alpha: 0.15}
	}
	return withVolume(s, def.Volume), nil
}

// SynthesizeTrack renders one pass of a music loop as 16-bit stereo PCM.
func SynthesizeTrack(def cfg.TrackDef, sampleRate int) ([]byte, error) {
	s, err := TrackStream(def, sampleRate)
	if err != nil {
		return nil, err
	}
	return renderPCM(s), nil
}

func toneFor(wave cfg.WaveType, rate beep.SampleRate, freq float64) (beep.Streamer, error) {
	switch wave {
	case cfg.WaveSquare:
		return generators.SquareTone(rate, freq)
	case cfg.WaveSaw:
		return generators.SawtoothTone(rate, freq)
	default:
		return generators.SineTone(rate, freq)
	}
}

// renderPCM drains a finite stream into little-endian 16-bit stereo.
func renderPCM(s beep.Streamer) []byte {
	var out bytes.Buffer
	buf := make([][2]float64, 512)
	var frame [4]byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := math.Max(-1, math.Min(1, buf[i][c]))
				binary.LittleEndian.PutUint16(frame[c*2:], uint16(int16(v*math.MaxInt16)))
			}
			out.Write(frame[:])
		}
		if !ok || n == 0 {
			break
		}
	}
	return out.Bytes()
}

// AudioBackend plays synthesized sounds through ebiten's audio context.
// Music switches crossfade over real time; call Update once per frame.
type AudioBackend struct {
	ctx    *audio.Context
	sfx    map[cfg.SoundID][]byte
	tracks map[cfg.MusicID][]byte

	music      *audio.Player
	musicVol   float64
	fading     *audio.Player
	fadeVol    float64
	fadeFrames int
	fadeLeft   int
	riseFrames int
	riseLeft   int
}

// NewAudioBackend synthesizes every configured sound up front.
func NewAudioBackend(ctx *audio.Context) (*AudioBackend, error) {
	b := &AudioBackend{
		ctx:    ctx,
		sfx:    make(map[cfg.SoundID][]byte),
		tracks: make(map[cfg.MusicID][]byte),
	}
	for id, def := range cfg.Sound.SFX {
		b.sfx[id] = SynthesizeSFX(def, ctx.SampleRate())
	}
	for id, def := range cfg.Sound.Music {
		pcm, err := SynthesizeTrack(def, ctx.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize track %d: %w", id, err)
		}
		b.tracks[id] = pcm
	}
	return b, nil
}

func (b *AudioBackend) PlaySFX(id cfg.SoundID) {
	pcm, ok := b.sfx[id]
	if !ok {
		return
	}
	player := b.ctx.NewPlayerFromBytes(pcm)
	volume := cfg.Audio.DefaultSFXVol
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

func (b *AudioBackend) PlayMusic(id cfg.MusicID, volume float64, fadeMs float64) {
	pcm, ok := b.tracks[id]
	if !ok {
		return
	}
	if volume <= 0 {
		volume = cfg.Audio.DefaultMusicVol
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := b.ctx.NewPlayer(loop)
	if err != nil {
		return
	}

	frames := int(fadeMs / 1000 * 60)
	b.stopFading()
	if b.music != nil && frames > 0 {
		b.fading, b.fadeVol = b.music, b.musicVol
		b.fadeFrames, b.fadeLeft = frames, frames
	} else if b.music != nil {
		_ = b.music.Close()
	}

	b.music, b.musicVol = player, volume
	b.riseFrames, b.riseLeft = frames, frames
	if frames > 0 {
		player.SetVolume(0)
	} else {
		player.SetVolume(volume)
	}
	player.Play()
}

func (b *AudioBackend) StopMusic() {
	b.stopFading()
	if b.music != nil {
		_ = b.music.Close()
		b.music = nil
	}
}

func (b *AudioBackend) stopFading() {
	if b.fading != nil {
		_ = b.fading.Close()
		b.fading = nil
	}
}

// Update advances any running crossfade by one frame.
func (b *AudioBackend) Update() {
	if b.fading != nil {
		b.fadeLeft--
		if b.fadeLeft <= 0 {
			b.stopFading()
		} else {
			b.fading.SetVolume(b.fadeVol * float64(b.fadeLeft) / float64(b.fadeFrames))
		}
	}
	if b.music != nil && b.riseLeft > 0 {
		b.riseLeft--
		b.music.SetVolume(b.musicVol * (1 - float64(b.riseLeft)/float64(b.riseFrames)))
	}
}
