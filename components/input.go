package components

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputSnapshot is one poll of an input device: held actions plus an
// analog stick vector (x, y in -1..1).
type InputSnapshot struct {
	Actions [cfg.ActionCount]bool
	Stick   math.Vec2
}

// InputSource supplies one snapshot per tick.
type InputSource interface {
	Poll() InputSnapshot
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Source   InputSource
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Stick    math.Vec2
}

func (i *InputData) Pressed(action cfg.ActionID) bool {
	return i.Current[action]
}

func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
