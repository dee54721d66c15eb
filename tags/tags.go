package tags

import "github.com/yohamta/donburi"

var (
	Basket = donburi.NewTag().SetName("Basket")
	Apple  = donburi.NewTag().SetName("Apple")
	Pop    = donburi.NewTag().SetName("Pop")
)
