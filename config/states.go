package config

// BossState is the boss encounter phase.
type BossState int

const (
	BossHidden BossState = iota
	BossEntering
	BossFighting
)

func (s BossState) String() string {
	switch s {
	case BossEntering:
		return "ENTERING"
	case BossFighting:
		return "FIGHTING"
	default:
		return "HIDDEN"
	}
}

// EnemyKind identifies an enemy archetype.
type EnemyKind int

const (
	EnemyBat EnemyKind = iota
	EnemyGhost
	EnemyDragon
)

// Faction selects which collision pairings a projectile takes part in.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionHostile
)

// ProjectileKind distinguishes projectile visuals and motion.
type ProjectileKind int

const (
	ProjectileShot ProjectileKind = iota
	ProjectileLaser
	ProjectileRocket
	ProjectileFireball
)

// PowerUpKind identifies a pickup.
type PowerUpKind int

const (
	PowerUpBoost PowerUpKind = iota
	PowerUpTripleShot
	PowerUpHeal
	PowerUpShield
	PowerUpKindCount // Must be last - used for array sizing
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBoost:
		return "boost"
	case PowerUpTripleShot:
		return "tripleshot"
	case PowerUpHeal:
		return "heal"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// EffectKind identifies a timed effect on the ship.
type EffectKind int

const (
	EffectInvulnerable EffectKind = iota
	EffectShield
	EffectBoost
	EffectTripleShot
	EffectKindCount // Must be last - used for array sizing
)

// DragonPhase is the dragon attack cycle.
type DragonPhase int

const (
	DragonIdle DragonPhase = iota
	DragonBursting
	DragonCooling
)

// CueKind identifies a fire-and-forget presentation request.
type CueKind int

const (
	CueExplosion CueKind = iota
	CueCameraShake
	CueLightning
	CueRainStart
	CueRainStop
	CueBatBurst
	CueBossHUD
	CueGameOver
)

// TutorialText holds the first-pickup explanation for each power-up kind.
var TutorialText = map[PowerUpKind]string{
	PowerUpBoost:      "BOOST: unlimited stamina and faster fire for 10 seconds.",
	PowerUpTripleShot: "TRIPLE SHOT: every shot splits into three for 15 seconds.",
	PowerUpHeal:       "HEAL: restores your health.",
	PowerUpShield:     "SHIELD: blocks all damage for 7 seconds.",
}
