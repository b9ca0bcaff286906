package factory

import (
	"github.com/automoto/pufspace/archetypes"
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/automoto/pufspace/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss places the boss below the bottom edge with full health and
// starts its entry tween toward its resting height.
func CreateBoss(ecs *ecs.ECS) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	tw, th, _ := cfg.TextureSize(cfg.TextureBoss)
	scale := cfg.BossScale(tw)
	w, h := tw*scale, th*scale

	startX := float64(cfg.C.Width) / 2
	startY := float64(cfg.C.Height) + cfg.Boss.StartOffsetY
	restY := h/2 + cfg.Boss.RestOffsetY
	attachObject(ecs, boss, startX, startY, w, h, tags.ResolvBoss)

	t := now(ecs)
	components.Boss.SetValue(boss, components.BossData{
		Scale:       scale,
		EntryTween:  gween.New(float32(startY), float32(restY), float32(cfg.Boss.EntryDuration), ease.OutQuad),
		LastHitTime: t - cfg.Boss.HitRateLimit - 1,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: cfg.Boss.MaxHealth,
		Max:     cfg.Boss.MaxHealth,
	})
	components.HealthBar.SetValue(boss, components.HealthBarData{
		Name: cfg.Boss.Name,
	})
	components.Sprite.SetValue(boss, components.SpriteData{
		Texture: cfg.TextureBoss,
		Width:   w,
		Height:  h,
		Alpha:   1,
		Depth:   5,
	})
	return boss
}

// CreateBackdrop places the boss backdrop below the screen and returns the
// tween that brings it into view alongside the boss.
func CreateBackdrop(ecs *ecs.ECS) (*donburi.Entry, *gween.Tween) {
	backdrop := archetypes.Backdrop.Spawn(ecs)

	playable := cfg.PlayableHeight()
	w := float64(cfg.C.Width) * 1.2 * (playable / float64(cfg.C.Height)) * 1.5
	h := float64(cfg.C.Height) * 1.5
	startY := playable + playable/2
	restY := playable/2 + cfg.Level.BackdropOffsetY

	attachObject(ecs, backdrop, float64(cfg.C.Width)/2, startY, w, h)
	components.Sprite.SetValue(backdrop, components.SpriteData{
		Texture: cfg.TextureBossBackdrop,
		Width:   w,
		Height:  h,
		Alpha:   0.7,
		Depth:   1,
	})
	return backdrop, gween.New(float32(startY), float32(restY), float32(cfg.Boss.EntryDuration), ease.OutQuad)
}
