package components

import (
	cfg "github.com/automoto/pufspace/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Faction cfg.Faction
	Kind    cfg.ProjectileKind
}

var Projectile = donburi.NewComponentType[ProjectileData]()
