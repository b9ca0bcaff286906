package systems

import (
	"github.com/automoto/pufspace/components"
	cfg "github.com/automoto/pufspace/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateInput polls the session's input source into the Input component.
// Must run BEFORE UpdatePause and UpdateShip in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Stick = math2.Vec2{}

	if input.Source == nil {
		return
	}
	snap := input.Source.Poll()
	input.Current = snap.Actions
	input.Stick = snap.Stick
}

// EbitenSource reads the keyboard and the first standard gamepad.
type EbitenSource struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func (s *EbitenSource) Poll() components.InputSnapshot {
	var snap components.InputSnapshot
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap.Actions[actionID] = true
			}
		}
		for _, gpID := range s.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap.Actions[actionID] = true
				}
			}
		}
	}

	snap.Stick = analogStick(s.gamepadIDs)
	return snap
}

// analogStick reads the left stick of the first gamepad outside the deadzone.
func analogStick(gamepads []ebiten.GamepadID) math2.Vec2 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > deadzone*deadzone {
			return math2.Vec2{X: h, Y: v}
		}
	}
	return math2.Vec2{}
}
