package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is per-entity motion in pixels per second.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
	AccelX float64
	AccelY float64

	// Gravity is added to SpeedY every second.
	Gravity float64
	// Drag slows SpeedX toward zero.
	Drag float64
	// BounceX is the restitution against the side walls; zero means no wall collision.
	BounceX float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
