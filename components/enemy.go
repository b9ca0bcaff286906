package components

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind   cfg.EnemyKind
	Reward int

	// Ghost sway
	SwaySpeed float64
	SwayForce float64
	FallSpeed float64

	// ExpiresAt removes the enemy at this game time; zero means never.
	ExpiresAt float64
}

var Enemy = donburi.NewComponentType[EnemyData]()

// DragonAttackData drives a dragon's idle -> bursting -> cooling cycle.
type DragonAttackData struct {
	Phase      cfg.DragonPhase
	ShotsFired int
	NextAt     float64
	// RevertAt restores the idle texture after a burst; zero means no pending revert.
	RevertAt float64
}

var DragonAttack = donburi.NewComponentType[DragonAttackData]()
