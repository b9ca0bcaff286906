package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

type HealthBarData struct {
	Name    string
	Visible bool
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
