package main

import (
	"fmt"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/scenes"
	"github.com/automoto/pufspace/systems"
	"github.com/automoto/pufspace/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	styleShip     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleBat      = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleGhost    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDragon   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHostile  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePowerUp  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBackdrop = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
)

var powerUpRunes = map[cfg.PowerUpKind]rune{
	cfg.PowerUpBoost:      'B',
	cfg.PowerUpTripleShot: 'T',
	cfg.PowerUpHeal:       '+',
	cfg.PowerUpShield:     'S',
}

var projectileRunes = map[cfg.ProjectileKind]rune{
	cfg.ProjectileShot:     '|',
	cfg.ProjectileLaser:    '!',
	cfg.ProjectileRocket:   '*',
	cfg.ProjectileFireball: 'o',
}

// draw renders the session scaled onto the terminal grid. The top row is
// the HUD.
func draw(screen tcell.Screen, ps *scenes.PlayScene) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols < 10 || rows < 5 {
		screen.Show()
		return
	}
	sx := float64(cols) / float64(cfg.C.Width)
	sy := float64(rows-1) / float64(cfg.C.Height)

	world := ps.ECS().World
	donburi.NewQuery(filter.Contains(components.Object, components.Sprite)).Each(world, func(e *donburi.Entry) {
		if !systems.Active(e) || components.Sprite.Get(e).Hidden {
			return
		}
		r, style, ok := glyphFor(e)
		if !ok {
			return
		}
		obj := components.Object.Get(e)
		if e.HasComponent(tags.Boss) {
			fillBox(screen, obj.X*sx, obj.Y*sy+1, obj.W*sx, obj.H*sy, r, style)
			return
		}
		x, y := obj.Center()
		col, row := int(x*sx), int(y*sy)+1
		if col >= 0 && col < cols && row >= 1 && row < rows {
			screen.SetContent(col, row, r, nil, style)
		}
	})

	drawHUD(screen, ps, cols)
	drawBanner(screen, ps, cols, rows)
	screen.Show()
}

func glyphFor(e *donburi.Entry) (rune, tcell.Style, bool) {
	switch {
	case e.HasComponent(tags.Ship):
		style := styleShip
		if tint := components.Sprite.Get(e).Tint; tint.A > 0 {
			style = style.Foreground(tcell.NewRGBColor(int32(tint.R), int32(tint.G), int32(tint.B)))
		}
		return 'A', style, true
	case e.HasComponent(tags.Bat):
		return 'v', styleBat, true
	case e.HasComponent(tags.Ghost):
		return 'G', styleGhost, true
	case e.HasComponent(tags.Dragon):
		return 'D', styleDragon, true
	case e.HasComponent(tags.PlayerProjectile):
		return projectileRunes[components.Projectile.Get(e).Kind], styleShot, true
	case e.HasComponent(tags.HostileProjectile):
		return projectileRunes[components.Projectile.Get(e).Kind], styleHostile, true
	case e.HasComponent(tags.PowerUp):
		return powerUpRunes[components.PowerUp.Get(e).Kind], stylePowerUp, true
	case e.HasComponent(tags.Boss):
		return '#', styleBoss, true
	case e.HasComponent(tags.Backdrop):
		return 0, styleBackdrop, false
	}
	return 0, tcell.StyleDefault, false
}

func fillBox(screen tcell.Screen, x, y, w, h float64, r rune, style tcell.Style) {
	cols, rows := screen.Size()
	for row := int(y); row < int(y+h); row++ {
		for col := int(x); col < int(x+w); col++ {
			if col >= 0 && col < cols && row >= 1 && row < rows {
				screen.SetContent(col, row, r, nil, style)
			}
		}
	}
}

func drawHUD(screen tcell.Screen, ps *scenes.PlayScene, cols int) {
	line := fmt.Sprintf(" SCORE %d  HP %d  STAMINA %.0f", ps.Score(), shipHealth(ps), shipStamina(ps))
	if boss, ok := systems.ActiveBoss(ps.ECS()); ok && components.HealthBar.Get(boss).Visible {
		h := components.Health.Get(boss)
		line += fmt.Sprintf("  %s %d/%d", cfg.Boss.Name, h.Current, h.Max)
	}
	drawText(screen, 0, 0, cols, line, styleHUD)
}

func drawBanner(screen tcell.Screen, ps *scenes.PlayScene, cols, rows int) {
	var lines []string
	pause := systems.GetPause(ps.ECS())
	switch {
	case ps.GameOver():
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", ps.Score()), "r: restart   q: quit"}
	case len(pause.Tutorials) > 0:
		lines = []string{cfg.TutorialText[pause.Tutorials[0]], "Enter: continue"}
	case pause.IsPaused:
		lines = []string{"PAUSED", "p: resume   q: quit"}
	}
	top := rows/2 - len(lines)/2
	for i, l := range lines {
		x := (cols - len(l)) / 2
		if x < 0 {
			x = 0
		}
		drawText(screen, x, top+i, cols, l, styleBanner)
	}
}

func drawText(screen tcell.Screen, x, y, cols int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= cols {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func shipHealth(ps *scenes.PlayScene) int {
	if ship, ok := systems.PlayerShip(ps.ECS()); ok {
		return components.Health.Get(ship).Current
	}
	return 0
}

func shipStamina(ps *scenes.PlayScene) float64 {
	if ship, ok := systems.PlayerShip(ps.ECS()); ok {
		return components.Ship.Get(ship).Stamina
	}
	return 0
}
