package components

import (
	"image/color"

	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

// TimedEffectsData holds one expiry timestamp per effect kind. An effect is
// active while the game clock is before its expiry.
type TimedEffectsData struct {
	Expiry [cfg.EffectKindCount]float64
}

// Active reports whether kind is in effect at time now.
func (t *TimedEffectsData) Active(kind cfg.EffectKind, now float64) bool {
	return now < t.Expiry[kind]
}

// Remaining returns the milliseconds left on kind, or zero.
func (t *TimedEffectsData) Remaining(kind cfg.EffectKind, now float64) float64 {
	if r := t.Expiry[kind] - now; r > 0 {
		return r
	}
	return 0
}

// Grant sets kind to last duration milliseconds from now. Granting an
// active effect refreshes it to the full duration.
func (t *TimedEffectsData) Grant(kind cfg.EffectKind, duration, now float64) {
	t.Expiry[kind] = now + duration
}

// Clear ends kind immediately.
func (t *TimedEffectsData) Clear(kind cfg.EffectKind) {
	t.Expiry[kind] = 0
}

var TimedEffects = donburi.NewComponentType[TimedEffectsData]()

// FlashData tints a sprite until a game time.
type FlashData struct {
	Until float64
	Color color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Until     float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// VFXData is a short-lived visual such as an explosion.
type VFXData struct {
	Kind  cfg.CueKind
	Start float64
	Until float64
	Size  float64
}

var VFX = donburi.NewComponentType[VFXData]()
