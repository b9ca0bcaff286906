package config

import "image/color"

// TextureID names a sprite texture.
type TextureID int

const (
	TextureNone TextureID = iota
	TextureShip
	TextureBat
	TextureGhost
	TextureDragon
	TextureDragonFire
	TextureShot
	TextureLaser
	TextureRocket
	TextureFireball
	TextureBoost
	TextureTripleShot
	TextureHeal
	TextureShield
	TextureShieldAura
	TextureBoss
	TextureBossVomit
	TextureBossBackdrop
	TextureBackground1
	TextureBackground2
	TextureExplosion
)

// NominalTextureWidth stands in for a texture missing from Textures.
const NominalTextureWidth = 512

// TextureInfo describes the native size of a texture and the flat color
// used to draw it.
type TextureInfo struct {
	Width  int
	Height int
	Color  color.RGBA
	Round  bool
}

// Textures lists every loaded texture. A texture absent from this table is
// treated as missing.
var Textures map[TextureID]TextureInfo

func init() {
	Textures = map[TextureID]TextureInfo{
		TextureShip:         {Width: 300, Height: 300, Color: color.RGBA{R: 80, G: 200, B: 255, A: 255}},
		TextureBat:          {Width: 256, Height: 256, Color: color.RGBA{R: 150, G: 60, B: 200, A: 255}, Round: true},
		TextureGhost:        {Width: 160, Height: 200, Color: color.RGBA{R: 220, G: 220, B: 240, A: 200}, Round: true},
		TextureDragon:       {Width: 317, Height: 317, Color: color.RGBA{R: 60, G: 160, B: 60, A: 255}},
		TextureDragonFire:   {Width: 317, Height: 317, Color: color.RGBA{R: 230, G: 120, B: 40, A: 255}},
		TextureShot:         {Width: 8, Height: 24, Color: Yellow},
		TextureLaser:        {Width: 6, Height: 10, Color: Red},
		TextureRocket:       {Width: 24, Height: 24, Color: Orange, Round: true},
		TextureFireball:     {Width: 32, Height: 32, Color: color.RGBA{R: 255, G: 90, B: 20, A: 255}, Round: true},
		TextureBoost:        {Width: 160, Height: 160, Color: Yellow, Round: true},
		TextureTripleShot:   {Width: 800, Height: 800, Color: Cyan, Round: true},
		TextureHeal:         {Width: 106, Height: 106, Color: Green, Round: true},
		TextureShield:       {Width: 213, Height: 213, Color: color.RGBA{R: 90, G: 140, B: 255, A: 255}, Round: true},
		TextureShieldAura:   {Width: 300, Height: 300, Color: color.RGBA{R: 90, G: 140, B: 255, A: 90}, Round: true},
		TextureBoss:         {Width: 512, Height: 512, Color: Purple},
		TextureBossVomit:    {Width: 512, Height: 512, Color: color.RGBA{R: 170, G: 40, B: 120, A: 255}},
		TextureBossBackdrop: {Width: 540, Height: 960, Color: color.RGBA{R: 40, G: 0, B: 60, A: 160}},
		TextureBackground1:  {Width: 540, Height: 960, Color: color.RGBA{R: 10, G: 10, B: 40, A: 255}},
		TextureBackground2:  {Width: 540, Height: 960, Color: color.RGBA{R: 50, G: 15, B: 15, A: 255}},
		TextureExplosion:    {Width: 64, Height: 64, Color: Orange, Round: true},
	}
}

// TextureSize returns the native size of a texture. A missing texture
// reports the nominal width as a square and ok=false.
func TextureSize(id TextureID) (w, h float64, ok bool) {
	info, ok := Textures[id]
	if !ok || info.Width <= 0 || info.Height <= 0 {
		return NominalTextureWidth, NominalTextureWidth, false
	}
	return float64(info.Width), float64(info.Height), true
}

// HasTexture reports whether a texture is loaded.
func HasTexture(id TextureID) bool {
	_, ok := Textures[id]
	return ok
}

// PowerUpTextures maps a pickup kind to its texture.
var PowerUpTextures = map[PowerUpKind]TextureID{
	PowerUpBoost:      TextureBoost,
	PowerUpTripleShot: TextureTripleShot,
	PowerUpHeal:       TextureHeal,
	PowerUpShield:     TextureShield,
}
