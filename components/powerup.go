package components

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

type PowerUpData struct {
	Kind cfg.PowerUpKind
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
