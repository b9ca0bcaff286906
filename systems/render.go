package systems

import (
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/pufspace/assets"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	drawQueue []*donburi.Entry
	rainColor = color.RGBA{R: 140, G: 160, B: 220, A: 120}
	// Shake jitter has its own source so drawing never consumes the session's.
	shakeRand = rand.New(rand.NewSource(1))
)

// DrawBackground scrolls the level backdrop and crossfades to level 2.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	switch {
	case session.Level2Active:
		drawScrolling(screen, cfg.TextureBackground2, session.ScrollOffset, 1)
	case session.Transitioning:
		drawScrolling(screen, cfg.TextureBackground1, session.ScrollOffset, 1-session.TransitionProgress)
		drawScrolling(screen, cfg.TextureBackground2, session.ScrollOffset, session.TransitionProgress)
	default:
		drawScrolling(screen, cfg.TextureBackground1, session.ScrollOffset, 1)
	}

	if session.RainActive {
		drawRain(screen, session.ScrollOffset)
	}
}

func drawScrolling(screen *ebiten.Image, tex cfg.TextureID, offset, alpha float64) {
	img, ok := assets.GetImage(tex)
	if !ok || alpha <= 0 {
		return
	}
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	b := img.Bounds()
	sx, sy := w/float64(b.Dx()), h/float64(b.Dy())
	y := math.Mod(offset, h)

	for _, dy := range []float64{y - h, y} {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(sx, sy)
		drawOp.GeoM.Translate(0, dy)
		drawOp.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(img, drawOp)
	}
}

func drawRain(screen *ebiten.Image, offset float64) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	shift := float32(math.Mod(offset*8, float64(h)))
	for i := 0; i < 60; i++ {
		x := float32((i * 97) % int(w))
		y := float32(math.Mod(float64(float32(i*53)+shift), float64(h)))
		vector.StrokeLine(screen, x, y, x-3, y+14, 1, rainColor, false)
	}
}

// DrawSprites draws every visible sprite back to front, applying hit
// flashes, tints and the current screen shake.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	now := Now(ecs)
	shake := ShakeOffset(ecs)
	shakeX, shakeY := 0.0, 0.0
	if shake > 0 {
		shakeX = (shakeRand.Float64()*2 - 1) * shake
		shakeY = (shakeRand.Float64()*2 - 1) * shake
	}

	drawQueue = drawQueue[:0]
	donburi.NewQuery(filter.Contains(components.Sprite, components.Object)).Each(ecs.World, func(e *donburi.Entry) {
		if Active(e) && !components.Sprite.Get(e).Hidden {
			drawQueue = append(drawQueue, e)
		}
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		return components.Sprite.Get(drawQueue[i]).Depth < components.Sprite.Get(drawQueue[j]).Depth
	})

	for _, e := range drawQueue {
		sprite := components.Sprite.Get(e)
		x, y := components.Object.Get(e).Center()
		x += shakeX
		y += shakeY

		if e.HasComponent(tags.Ship) {
			drawShieldAura(ecs, screen, e, x, y, now)
		}

		img, ok := assets.GetImage(sprite.Texture)
		if !ok {
			continue
		}
		b := img.Bounds()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		drawOp.GeoM.Scale(sprite.Width/float64(b.Dx()), sprite.Height/float64(b.Dy()))
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(x, y)

		switch {
		case Flashing(e, now):
			drawOp.ColorScale.ScaleWithColor(components.Flash.Get(e).Color)
		case sprite.Tint.A > 0:
			drawOp.ColorScale.ScaleWithColor(sprite.Tint)
		}
		drawOp.ColorScale.ScaleAlpha(float32(sprite.Alpha))
		screen.DrawImage(img, drawOp)
	}
}

func drawShieldAura(ecs *ecs.ECS, screen *ebiten.Image, ship *donburi.Entry, x, y, now float64) {
	if !components.TimedEffects.Get(ship).Active(cfg.EffectShield, now) {
		return
	}
	img, ok := assets.GetImage(cfg.TextureShieldAura)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(ship)
	size := math.Max(sprite.Width, sprite.Height) * 1.4
	b := img.Bounds()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// DrawVFX draws explosions, bat bursts and lightning flashes.
func DrawVFX(ecs *ecs.ECS, screen *ebiten.Image) {
	now := Now(ecs)
	components.VFX.Each(ecs.World, func(e *donburi.Entry) {
		if !Active(e) {
			return
		}
		vfx := components.VFX.Get(e)
		span := vfx.Until - vfx.Start
		if span <= 0 {
			return
		}
		t := clamp((now-vfx.Start)/span, 0, 1)
		x, y := components.Object.Get(e).Center()

		switch vfx.Kind {
		case cfg.CueExplosion:
			c := cfg.Orange
			c.A = uint8(255 * (1 - t))
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(vfx.Size/2*(0.4+0.6*t)), c, true)
		case cfg.CueBatBurst:
			drawBatBurst(screen, x, y, vfx.Size, t)
		case cfg.CueLightning:
			c := color.RGBA{R: 255, G: 255, B: 255, A: uint8(160 * (1 - t))}
			vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), c, false)
		}
	})
}

func drawBatBurst(screen *ebiten.Image, x, y, size, t float64) {
	n := cfg.Effects.BatBurstCount
	c := cfg.Textures[cfg.TextureBat].Color
	c.A = uint8(255 * (1 - t))
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		d := size * t * 2
		vector.DrawFilledCircle(screen, float32(x+math.Cos(angle)*d), float32(y+math.Sin(angle)*d), 6, c, true)
	}
}
