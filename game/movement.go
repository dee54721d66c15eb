package game

import (
	"github.com/yohamta/donburi"

	"github.com/oakhollow/applefall/components"
	"github.com/oakhollow/applefall/gamemath"
	"github.com/oakhollow/applefall/tags"
)

// moveBasket advances the basket horizontally by speed*dt in the held
// direction and clamps it so its box stays inside the play area. Holding
// both directions, or neither, leaves it in place.
func (s *Session) moveBasket(dt float64, in Input, bounds Bounds) {
	entry, ok := s.basketEntry()
	if !ok {
		return
	}
	t := components.Transform.Get(entry)
	basket := components.Basket.Get(entry)

	dir := 0.0
	switch {
	case in.Left && !in.Right:
		dir = -1
	case in.Right && !in.Left:
		dir = 1
	}
	t.Pos.X = gamemath.ClampX(t.Pos.X+dir*basket.Speed*dt, t.Half.X, bounds.Width)
}

// moveApples drops every apple by its fall speed and removes the ones whose
// box has fully passed below the bottom edge. Updates are independent per
// apple, so iteration order does not matter. Returns the number removed.
func (s *Session) moveApples(dt float64, bounds Bounds) int {
	var fallen []donburi.Entity
	tags.Apple.Each(s.world, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		apple := components.Apple.Get(e)
		t.Pos.Y -= apple.FallSpeed * dt
		if t.Pos.Y+t.Half.Y < -bounds.Height/2 {
			fallen = append(fallen, e.Entity())
		}
	})
	for _, e := range fallen {
		s.world.Remove(e)
	}
	s.missed += len(fallen)
	return len(fallen)
}
