package tags

import "github.com/yohamta/donburi"

var (
	Ship              = donburi.NewTag().SetName("Ship")
	Enemy             = donburi.NewTag().SetName("Enemy")
	Bat               = donburi.NewTag().SetName("Bat")
	Ghost             = donburi.NewTag().SetName("Ghost")
	Dragon            = donburi.NewTag().SetName("Dragon")
	PlayerProjectile  = donburi.NewTag().SetName("PlayerProjectile")
	HostileProjectile = donburi.NewTag().SetName("HostileProjectile")
	PowerUp           = donburi.NewTag().SetName("PowerUp")
	Boss              = donburi.NewTag().SetName("Boss")
	Backdrop          = donburi.NewTag().SetName("Backdrop")
	Effect            = donburi.NewTag().SetName("Effect")
)

// Resolv tags for collision pairing
const (
	ResolvShip     = "ship"
	ResolvEnemy    = "enemy"
	ResolvShot     = "shot"
	ResolvHostile  = "hostile"
	ResolvPowerUp  = "powerup"
	ResolvBoss     = "boss"
	ResolvBat      = "bat"
	ResolvGhost    = "ghost"
	ResolvDragon   = "dragon"
	ResolvLaser    = "laser"
	ResolvFireball = "fireball"
)
