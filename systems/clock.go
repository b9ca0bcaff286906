package systems

import (
	"github.com/automoto/pufspace/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances game time by the tick length. Timers due within the
// tick fire here, before any other gameplay system runs.
func UpdateClock(ecs *ecs.ECS) {
	timers := components.Timers.Get(sessionEntry(ecs))
	timers.Clock.Advance(timers.Dt)
}
