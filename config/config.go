package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// ShipConfig contains all player-ship configuration values
type ShipConfig struct {
	MaxHealth  int     `yaml:"max_health"`
	MaxStamina float64 `yaml:"max_stamina"`
	Speed      float64 `yaml:"speed"`

	// Placement and size
	SpawnYRatio    float64 `yaml:"spawn_y_ratio"`
	DisplayWidth   float64 `yaml:"display_width"`
	BodyRatio      float64 `yaml:"body_ratio"`
	SafeZoneHeight float64 `yaml:"safe_zone_height"` // bottom strip the ship may not enter
	BossTopMargin  float64 `yaml:"boss_top_margin"`  // top clamp while the boss fights

	JoystickDeadzone float64 `yaml:"joystick_deadzone"`

	// Firing (milliseconds)
	FireRate        float64 `yaml:"fire_rate"`
	BoostFireRate   float64 `yaml:"boost_fire_rate"`
	ShotCost        float64 `yaml:"shot_cost"`
	StaminaRegen    float64 `yaml:"stamina_regen"` // per second
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	SideShotSpeedX  float64 `yaml:"side_shot_speed_x"`

	InvulnDuration float64 `yaml:"invuln_duration"`
	InvulnAlpha    float64 `yaml:"invuln_alpha"`
}

// EnemyConfig contains per-kind enemy values
type EnemyConfig struct {
	Health    int     `yaml:"health"`
	Reward    int     `yaml:"reward"`
	MinSpeedY float64 `yaml:"min_speed_y"`
	MaxSpeedY float64 `yaml:"max_speed_y"`

	Texture   TextureID `yaml:"-"`
	Scale     float64   `yaml:"scale"`
	BodyRatio Vector    `yaml:"body_ratio"`
}

// BatConfig contains bat-specific movement values
type BatConfig struct {
	EnemyConfig  `yaml:",inline"`
	MinDownSpeed float64 `yaml:"min_down_speed"`
	MaxSpeedX    float64 `yaml:"max_speed_x"`
	Bounce       float64 `yaml:"bounce"`
}

// GhostConfig contains ghost sway values
type GhostConfig struct {
	EnemyConfig  `yaml:",inline"`
	SwaySpeeds   []float64 `yaml:"sway_speeds"`
	MinSwayForce float64   `yaml:"min_sway_force"`
	MaxSwayForce float64   `yaml:"max_sway_force"`
	EdgeMargin   float64   `yaml:"edge_margin"`
	TurnForce    float64   `yaml:"turn_force"`
	OutwardDrag  float64   `yaml:"outward_drag"`
	Drag         float64   `yaml:"drag"`
	MinFallSpeed float64   `yaml:"min_fall_speed"`
}

// DragonConfig contains dragon attack values (milliseconds)
type DragonConfig struct {
	EnemyConfig      `yaml:",inline"`
	FirstAttackDelay float64   `yaml:"first_attack_delay"`
	BurstShots       int       `yaml:"burst_shots"`
	ShotInterval     float64   `yaml:"shot_interval"`
	FireTextureHold  float64   `yaml:"fire_texture_hold"`
	Cooldown         float64   `yaml:"cooldown"`
	FireballSpeed    float64   `yaml:"fireball_speed"`
	FireballOffsetY  float64   `yaml:"fireball_offset_y"`
	FireTexture      TextureID `yaml:"-"`
}

// BossConfig contains the boss encounter values (milliseconds unless noted)
type BossConfig struct {
	Name           string  `yaml:"name"`
	MaxHealth      int     `yaml:"max_health"`
	DamagePerHit   int     `yaml:"damage_per_hit"`
	HitRateLimit   float64 `yaml:"hit_rate_limit"`
	EnrageRatio    float64 `yaml:"enrage_ratio"`
	AutoSpawnDelay float64 `yaml:"auto_spawn_delay"`
	DefeatReward   int     `yaml:"defeat_reward"`

	// Entry and movement
	EntryDuration float64 `yaml:"entry_duration"`
	StartOffsetY  float64 `yaml:"start_offset_y"` // below the bottom edge
	RestOffsetY   float64 `yaml:"rest_offset_y"`
	WidthFraction float64 `yaml:"width_fraction"`
	SwayFrequency float64 `yaml:"sway_frequency"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`

	// Pipe rockets
	PipeHealthRatio  float64 `yaml:"pipe_health_ratio"`
	PipeCooldown     float64 `yaml:"pipe_cooldown"`
	PipeShots        int     `yaml:"pipe_shots"`
	PipeShotInterval float64 `yaml:"pipe_shot_interval"`
	PipeOffset       Vector  `yaml:"pipe_offset"`
	RocketVelocity   Vector  `yaml:"rocket_velocity"`
	RocketGravity    float64 `yaml:"rocket_gravity"`

	// Eye lasers
	LaserCooldown float64   `yaml:"laser_cooldown"`
	LaserAngles   []float64 `yaml:"laser_angles"` // degrees, 90 is straight down
	LaserSpeed    float64   `yaml:"laser_speed"`
	EyeOffset     float64   `yaml:"eye_offset"`

	// Bat vomit
	VomitCooldown    float64 `yaml:"vomit_cooldown"`
	VomitDuration    float64 `yaml:"vomit_duration"`
	VomitBats        int     `yaml:"vomit_bats"`
	VomitInterval    float64 `yaml:"vomit_interval"`
	VomitBatLifetime float64 `yaml:"vomit_bat_lifetime"`
	VomitBatSpreadX  float64 `yaml:"vomit_bat_spread_x"`
	VomitBatMinVY    float64 `yaml:"vomit_bat_min_vy"`
	VomitBatMaxVY    float64 `yaml:"vomit_bat_max_vy"`
	VomitBatScale    float64 `yaml:"vomit_bat_scale"`
	MouthRatio       float64 `yaml:"mouth_ratio"`

	// Minimum gap between a laser volley and a vomit stream
	AttackSuppression float64 `yaml:"attack_suppression"`

	DefeatExplosions        int     `yaml:"defeat_explosions"`
	DefeatExplosionInterval float64 `yaml:"defeat_explosion_interval"`
	DefeatExplosionSpread   float64 `yaml:"defeat_explosion_spread"`
}

// PowerUpConfig contains pickup schedules and effect durations (milliseconds)
type PowerUpConfig struct {
	FallSpeed   float64 `yaml:"fall_speed"`
	SpawnY      float64 `yaml:"spawn_y"`
	MarginX     float64 `yaml:"margin_x"`
	Padding     float64 `yaml:"padding"`
	TopBand     float64 `yaml:"top_band"`
	MaxAttempts int     `yaml:"max_attempts"`
	DisplaySize float64 `yaml:"display_size"`

	BoostDuration      float64 `yaml:"boost_duration"`
	TripleShotDuration float64 `yaml:"triple_shot_duration"`
	ShieldDuration     float64 `yaml:"shield_duration"`
	HealAmount         int     `yaml:"heal_amount"`

	BoostInterval           float64 `yaml:"boost_interval"`
	BoostFightInterval      float64 `yaml:"boost_fight_interval"`
	TripleShotInterval      float64 `yaml:"triple_shot_interval"`
	TripleShotFightInterval float64 `yaml:"triple_shot_fight_interval"`
	HealInterval            float64 `yaml:"heal_interval"`
	HealFightInterval       float64 `yaml:"heal_fight_interval"`
	ShieldInterval          float64 `yaml:"shield_interval"`
}

// SpawnConfig contains enemy wave timing and placement
type SpawnConfig struct {
	BatWaveMinDelay float64 `yaml:"bat_wave_min_delay"`
	BatWaveMaxDelay float64 `yaml:"bat_wave_max_delay"`
	BatWaveMinCount int     `yaml:"bat_wave_min_count"`
	BatWaveMaxCount int     `yaml:"bat_wave_max_count"`
	BatSpacing      float64 `yaml:"bat_spacing"`
	BatAttempts     int     `yaml:"bat_attempts"`
	BatMarginX      float64 `yaml:"bat_margin_x"`
	BatMinY         float64 `yaml:"bat_min_y"`
	BatMaxY         float64 `yaml:"bat_max_y"`

	GhostMinDelay float64 `yaml:"ghost_min_delay"`
	GhostMaxDelay float64 `yaml:"ghost_max_delay"`
	GhostMarginX  float64 `yaml:"ghost_margin_x"`
	GhostMinY     float64 `yaml:"ghost_min_y"`
	GhostMaxY     float64 `yaml:"ghost_max_y"`

	DragonPollInterval float64 `yaml:"dragon_poll_interval"`
	DragonMarginX      float64 `yaml:"dragon_margin_x"`
	DragonY            float64 `yaml:"dragon_y"`
}

// PoolConfig caps concurrent projectile-like entities
type PoolConfig struct {
	PlayerProjectiles  int `yaml:"player_projectiles"`
	HostileProjectiles int `yaml:"hostile_projectiles"`
	Dragons            int `yaml:"dragons"`
}

// LevelConfig contains background and transition values
type LevelConfig struct {
	TransitionDuration float64 `yaml:"transition_duration"`
	LightningInterval  float64 `yaml:"lightning_interval"`
	ScrollSpeed        float64 `yaml:"scroll_speed"` // pixels per second
	OffscreenMargin    float64 `yaml:"offscreen_margin"`
	PowerUpMargin      float64 `yaml:"power_up_margin"`
	Level2MusicVolume  float64 `yaml:"level2_music_volume"`
	MusicCrossfade     float64 `yaml:"music_crossfade"`
	BackdropOffsetY    float64 `yaml:"backdrop_offset_y"`
}

// EffectsConfig contains presentation timings (milliseconds)
type EffectsConfig struct {
	HitFlash          float64 `yaml:"hit_flash"`
	ExplosionDuration float64 `yaml:"explosion_duration"`
	ExplosionSize     float64 `yaml:"explosion_size"`
	ShakeIntensity    float64 `yaml:"shake_intensity"`
	ShakeDuration     float64 `yaml:"shake_duration"`
	LightningFlash    float64 `yaml:"lightning_flash"`
	BatBurstCount     int     `yaml:"bat_burst_count"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool
	GodMode      bool
	ShowHitboxes bool
	Keys         bool // boss, god mode, boss health and transition hotkeys
}

// Vector is a plain 2D value used in tuning tables.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var C *Config
var Ship ShipConfig
var Bat BatConfig
var Ghost GhostConfig
var Dragon DragonConfig
var Boss BossConfig
var PowerUps PowerUpConfig
var Spawn SpawnConfig
var Pools PoolConfig
var Level LevelConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  540,
		Height: 960,
		TPS:    60,
	}
	Reset()
}

// Reset restores every tuning value to its built-in default.
func Reset() {
	Ship = ShipConfig{
		MaxHealth:  5,
		MaxStamina: 50,
		Speed:      420,

		SpawnYRatio:    0.7,
		DisplayWidth:   60,
		BodyRatio:      0.8,
		SafeZoneHeight: 150,
		BossTopMargin:  5,

		JoystickDeadzone: 0.1,

		FireRate:        166.6,
		BoostFireRate:   100,
		ShotCost:        2,
		StaminaRegen:    5,
		ProjectileSpeed: 900,
		SideShotSpeedX:  300,

		InvulnDuration: 1000,
		InvulnAlpha:    0.5,
	}

	Bat = BatConfig{
		EnemyConfig: EnemyConfig{
			Health:    2,
			Reward:    200,
			MinSpeedY: 200,
			MaxSpeedY: 400,
			Texture:   TextureBat,
			Scale:     0.2,
			BodyRatio: Vector{X: 0.6, Y: 0.6},
		},
		MinDownSpeed: 100,
		MaxSpeedX:    200,
		Bounce:       0.5,
	}

	Ghost = GhostConfig{
		EnemyConfig: EnemyConfig{
			Health:    3,
			Reward:    200,
			MinSpeedY: 80,
			MaxSpeedY: 150,
			Texture:   TextureGhost,
			Scale:     0.4,
			BodyRatio: Vector{X: 0.5, Y: 0.6},
		},
		SwaySpeeds:   []float64{0.001, 0.002, 0.003},
		MinSwayForce: 150,
		MaxSwayForce: 250,
		EdgeMargin:   75,
		TurnForce:    450,
		OutwardDrag:  300,
		Drag:         30,
		MinFallSpeed: 50,
	}

	Dragon = DragonConfig{
		EnemyConfig: EnemyConfig{
			Health:    6,
			Reward:    50,
			MinSpeedY: 120,
			MaxSpeedY: 180,
			Texture:   TextureDragon,
			Scale:     0.4,
			BodyRatio: Vector{X: 0.6, Y: 0.6},
		},
		FirstAttackDelay: 1000,
		BurstShots:       4,
		ShotInterval:     150,
		FireTextureHold:  200,
		Cooldown:         2000,
		FireballSpeed:    400,
		FireballOffsetY:  40,
		FireTexture:      TextureDragonFire,
	}

	Boss = BossConfig{
		Name:           "Cryptonic Sam",
		MaxHealth:      250,
		DamagePerHit:   1,
		HitRateLimit:   50,
		EnrageRatio:    0.8,
		AutoSpawnDelay: 15000,
		DefeatReward:   5000,

		EntryDuration: 4000,
		StartOffsetY:  150,
		RestOffsetY:   40,
		WidthFraction: 2.0 / 3.0,
		SwayFrequency: 0.0015,
		SwayAmplitude: 40,

		PipeHealthRatio:  0.8,
		PipeCooldown:     2500,
		PipeShots:        3,
		PipeShotInterval: 200,
		PipeOffset:       Vector{X: 180, Y: 120},
		RocketVelocity:   Vector{X: 60, Y: -300},
		RocketGravity:    700,

		LaserCooldown: 2000,
		LaserAngles:   []float64{20, 50, 80, 90, 100, 130, 160},
		LaserSpeed:    225,
		EyeOffset:     100,

		VomitCooldown:    4000,
		VomitDuration:    2000,
		VomitBats:        20,
		VomitInterval:    100,
		VomitBatLifetime: 3000,
		VomitBatSpreadX:  200,
		VomitBatMinVY:    300,
		VomitBatMaxVY:    500,
		VomitBatScale:    0.25,
		MouthRatio:       0.3,

		AttackSuppression: 1000,

		DefeatExplosions:        5,
		DefeatExplosionInterval: 200,
		DefeatExplosionSpread:   100,
	}

	PowerUps = PowerUpConfig{
		FallSpeed:   150,
		SpawnY:      -50,
		MarginX:     50,
		Padding:     80,
		TopBand:     150,
		MaxAttempts: 15,
		DisplaySize: 48,

		BoostDuration:      10000,
		TripleShotDuration: 15000,
		ShieldDuration:     7000,
		HealAmount:         5,

		BoostInterval:           15000,
		BoostFightInterval:      10000,
		TripleShotInterval:      25000,
		TripleShotFightInterval: 10000,
		HealInterval:            60000,
		HealFightInterval:       10000,
		ShieldInterval:          35000,
	}

	Spawn = SpawnConfig{
		BatWaveMinDelay: 1500,
		BatWaveMaxDelay: 3000,
		BatWaveMinCount: 2,
		BatWaveMaxCount: 5,
		BatSpacing:      80,
		BatAttempts:     10,
		BatMarginX:      40,
		BatMinY:         -250,
		BatMaxY:         -50,

		GhostMinDelay: 2500,
		GhostMaxDelay: 5000,
		GhostMarginX:  50,
		GhostMinY:     -150,
		GhostMaxY:     -50,

		DragonPollInterval: 2000,
		DragonMarginX:      50,
		DragonY:            -100,
	}

	Pools = PoolConfig{
		PlayerProjectiles:  30,
		HostileProjectiles: 50,
		Dragons:            10,
	}

	Level = LevelConfig{
		TransitionDuration: 2000,
		LightningInterval:  10000,
		ScrollSpeed:        60,
		OffscreenMargin:    100,
		PowerUpMargin:      50,
		Level2MusicVolume:  0.3,
		MusicCrossfade:     2000,
		BackdropOffsetY:    50,
	}

	Effects = EffectsConfig{
		HitFlash:          100,
		ExplosionDuration: 500,
		ExplosionSize:     64,
		ShakeIntensity:    6,
		ShakeDuration:     200,
		LightningFlash:    150,
		BatBurstCount:     12,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}

// PlayableHeight is the screen height above the bottom safe zone.
func PlayableHeight() float64 {
	return float64(C.Height) - Ship.SafeZoneHeight
}

// BossScale returns the boss sprite scale for a texture of the given width.
func BossScale(texWidth float64) float64 {
	h := float64(C.Height)
	return float64(C.Width) / texWidth * Boss.WidthFraction * (PlayableHeight() / h)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
