package components

import (
	"image/color"

	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

// SpriteData is the visual state the renderer reads. The simulation writes
// it and never reads it back.
type SpriteData struct {
	Texture  cfg.TextureID
	Width    float64
	Height   float64
	Rotation float64
	Alpha    float64
	Depth    int
	Hidden   bool
	// Tint overrides the texture color while its alpha is non-zero.
	Tint color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
