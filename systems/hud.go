package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10
	hudGap       = 6
	bossBarWidth = 360
)

var (
	hudBarBack   = color.RGBA{40, 40, 40, 255}
	hudHealth    = color.RGBA{40, 220, 40, 255}
	hudStamina   = color.RGBA{240, 200, 40, 255}
	effectColors = map[cfg.EffectKind]color.RGBA{
		cfg.EffectBoost:      cfg.Yellow,
		cfg.EffectTripleShot: cfg.Cyan,
		cfg.EffectShield:     {90, 140, 255, 255},
	}
)

// DrawHUD renders score, ship bars, active power-up timers and the boss bar.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	text.Draw(screen, fmt.Sprintf("SCORE %d", session.Score), fonts.Bold.Get(), hudMargin, hudMargin+16, cfg.White)

	if ship, ok := PlayerShip(ecs); ok {
		drawShipBars(ecs, screen, ship)
	}
	drawBossBar(ecs, screen)
}

func drawShipBars(ecs *ecs.ECS, screen *ebiten.Image, ship *donburi.Entry) {
	hp := components.Health.Get(ship)
	data := components.Ship.Get(ship)
	effects := components.TimedEffects.Get(ship)
	now := Now(ecs)

	y := float32(hudMargin + 26)
	drawBar(screen, hudMargin, y, hudBarWidth, float64(hp.Current)/float64(hp.Max), hudHealth)
	y += hudBarHeight + hudGap
	drawBar(screen, hudMargin, y, hudBarWidth, data.Stamina/cfg.Ship.MaxStamina, hudStamina)

	durations := map[cfg.EffectKind]float64{
		cfg.EffectBoost:      cfg.PowerUps.BoostDuration,
		cfg.EffectTripleShot: cfg.PowerUps.TripleShotDuration,
		cfg.EffectShield:     cfg.PowerUps.ShieldDuration,
	}
	for _, kind := range []cfg.EffectKind{cfg.EffectBoost, cfg.EffectTripleShot, cfg.EffectShield} {
		remaining := effects.Remaining(kind, now)
		if remaining <= 0 || durations[kind] <= 0 {
			continue
		}
		y += hudBarHeight + hudGap
		drawBar(screen, hudMargin, y, hudBarWidth/2, remaining/durations[kind], effectColors[kind])
	}
}

func drawBossBar(ecs *ecs.ECS, screen *ebiten.Image) {
	boss, ok := ActiveBoss(ecs)
	if !ok || !components.HealthBar.Get(boss).Visible {
		return
	}
	hp := components.Health.Get(boss)
	x := float32(cfg.C.Width-bossBarWidth) / 2
	y := float32(cfg.C.Height) - float32(cfg.Ship.SafeZoneHeight) + 40

	text.Draw(screen, components.HealthBar.Get(boss).Name, fonts.Regular.Get(), int(x), int(y)-6, cfg.White)
	drawBar(screen, x, y, bossBarWidth, float64(hp.Current)/float64(hp.Max), cfg.LightRed)
}

func drawBar(screen *ebiten.Image, x, y, width float32, ratio float64, fill color.RGBA) {
	ratio = clamp(ratio, 0, 1)
	vector.FillRect(screen, x, y, width, hudBarHeight, hudBarBack, false)
	vector.FillRect(screen, x, y, width*float32(ratio), hudBarHeight, fill, false)
}
