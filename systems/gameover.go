package systems

import (
	"fmt"

	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver dims the frozen playfield and shows the final score. The
// restart control itself lives in the overlay UI.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if !session.GameOver {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "GAME OVER"
	titleWidth := len(title) * 26 // Approximate width for title font
	text.Draw(screen, title, fonts.Title.Get(), int((width-float64(titleWidth))/2), int(height*0.35), cfg.Red)

	score := fmt.Sprintf("Score: %d", session.Score)
	scoreWidth := len(score) * 11
	text.Draw(screen, score, fonts.Bold.Get(), int((width-float64(scoreWidth))/2), int(height*0.35)+50, cfg.White)
}

// DrawPause dims the playfield while paused. Tutorials draw their own panel.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetPause(e)
	if !pause.IsPaused || GetSession(e).GameOver {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	titleWidth := len(title) * 26
	text.Draw(screen, title, fonts.Title.Get(), int((width-float64(titleWidth))/2), int(height*0.35), cfg.White)
}
