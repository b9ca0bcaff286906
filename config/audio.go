package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundExplosion
	SoundPlayerHit
	SoundPickup
	SoundBossEntry
	SoundBossHit
	SoundLaser
	SoundMenuSelect
)

// MusicID represents a looping music track
type MusicID int

const (
	MusicNone MusicID = iota
	MusicLevel1
	MusicLevel2
	MusicMenu
)

// WaveType selects an oscillator shape for synthesized sounds
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ToneDef describes a synthesized sound effect: a frequency sweep over a
// duration with a linear fade out.
type ToneDef struct {
	Wave       WaveType
	StartFreq  float64
	EndFreq    float64
	DurationMs int
	Volume     float64
}

// TrackDef describes a synthesized music loop as a note sequence.
type TrackDef struct {
	Wave     WaveType
	Notes    []float64 // Hz, 0 is a rest
	NoteMs   int
	Volume   float64
	Filtered bool
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	SFX               map[SoundID]ToneDef
	Music             map[MusicID]TrackDef
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		SFX: map[SoundID]ToneDef{
			SoundShoot:      {Wave: WaveSquare, StartFreq: 880, EndFreq: 440, DurationMs: 60, Volume: 0.2},
			SoundExplosion:  {Wave: WaveNoise, StartFreq: 0, EndFreq: 0, DurationMs: 300, Volume: 0.4},
			SoundPlayerHit:  {Wave: WaveSaw, StartFreq: 220, EndFreq: 80, DurationMs: 200, Volume: 0.5},
			SoundPickup:     {Wave: WaveSine, StartFreq: 600, EndFreq: 1200, DurationMs: 150, Volume: 0.4},
			SoundBossEntry:  {Wave: WaveSaw, StartFreq: 60, EndFreq: 120, DurationMs: 1500, Volume: 0.6},
			SoundBossHit:    {Wave: WaveSquare, StartFreq: 300, EndFreq: 250, DurationMs: 40, Volume: 0.15},
			SoundLaser:      {Wave: WaveSine, StartFreq: 1400, EndFreq: 700, DurationMs: 120, Volume: 0.25},
			SoundMenuSelect: {Wave: WaveSine, StartFreq: 660, EndFreq: 660, DurationMs: 80, Volume: 0.3},
		},
		Music: map[MusicID]TrackDef{
			MusicLevel1: {Wave: WaveSquare, Notes: []float64{110, 0, 131, 0, 147, 0, 131, 165}, NoteMs: 250, Volume: 0.25, Filtered: true},
			MusicLevel2: {Wave: WaveSaw, Notes: []float64{98, 98, 117, 0, 131, 117, 98, 0}, NoteMs: 220, Volume: 0.25, Filtered: true},
			MusicMenu:   {Wave: WaveSine, Notes: []float64{262, 330, 392, 330}, NoteMs: 400, Volume: 0.2},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 1.5,
		},
	}
}
