package components

import "github.com/yohamta/donburi"

type AppleData struct {
	FallSpeed float64 // downward speed in pixels per second
}

var Apple = donburi.NewComponentType[AppleData]()
