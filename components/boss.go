package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BossData is the boss singleton's combat state. Health lives in the Health
// component; the encounter phase lives in SessionData.
type BossData struct {
	Scale   float64
	Enraged bool

	// Entry tweens move the boss and its backdrop into place.
	EntryTween     *gween.Tween
	BackdropTween  *gween.Tween
	FightStartTime float64

	LastHitTime   float64
	LastLaserTime float64
	LastVomitTime float64
	LastPipeTime  float64

	// VomitUntil keeps the vomit texture up; lasers hold off until then.
	VomitUntil     float64
	VomitBatsLeft  int
	NextVomitBatAt float64

	PipeShotsLeft int
	NextPipeShot  float64
}

var Boss = donburi.NewComponentType[BossData]()
