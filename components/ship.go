package components

import (
	"github.com/yohamta/donburi"
)

type ShipData struct {
	Stamina float64
	// LastFired is the game time before which the next shot is held back.
	LastFired float64
	GodMode   bool
}

var Ship = donburi.NewComponentType[ShipData]()
