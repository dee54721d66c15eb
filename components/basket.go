package components

import "github.com/yohamta/donburi"

type BasketData struct {
	Speed float64 // horizontal speed in pixels per second
}

var Basket = donburi.NewComponentType[BasketData]()
