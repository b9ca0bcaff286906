package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/fonts"
	"github.com/automoto/pufspace/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug handles the debug keys: spawn the boss, god mode, boss at one
// hit point and forcing the level transition.
func UpdateDebug(ecs *ecs.ECS) {
	if !cfg.Debug.Keys {
		return
	}
	input := GetInput(ecs)
	if input.JustPressed(cfg.ActionDebugBoss) {
		SpawnBoss(ecs)
	}
	if input.JustPressed(cfg.ActionDebugGodMode) {
		ToggleGodMode(ecs)
	}
	if input.JustPressed(cfg.ActionDebugBossHealth) {
		DebugSetBossHealth(ecs)
	}
	if input.JustPressed(cfg.ActionDebugTransition) {
		StartLevelTransition(ecs)
	}
}

// DrawDebug outlines collision boxes and prints the session state when
// hitbox debugging is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvShip) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvHostile) {
				c = color.RGBA{255, 128, 0, 255}
			} else if obj.HasTags(tags.ResolvEnemy, tags.ResolvBoss) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvPowerUp) {
				c = color.RGBA{0, 255, 0, 255}
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	session := GetSession(ecs)
	line := fmt.Sprintf("t=%.0f boss=%s lvl2=%v", Now(ecs), session.BossState, session.Level2Active)
	text.Draw(screen, line, fonts.Small.Get(), hudMargin, cfg.C.Height-hudMargin, cfg.White)
}
