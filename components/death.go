package components

import "github.com/yohamta/donburi"

// DeathData marks an entity destroyed during the current tick. The sweep
// system removes it from the world after every other pass has run; until
// then every handler must treat it as gone.
type DeathData struct {
	Dead bool
}

var Death = donburi.NewComponentType[DeathData]()
