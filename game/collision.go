package game

import (
	"github.com/yohamta/donburi"

	"github.com/oakhollow/applefall/components"
	"github.com/oakhollow/applefall/tags"
)

// resolveCatches tests the basket's box against every apple's box and
// credits one point per overlapping apple. Caught apples are removed
// within the same tick, so an apple can only ever be caught once; several
// apples overlapping the basket in one tick are all credited.
func (s *Session) resolveCatches(res *Result) {
	entry, ok := s.basketEntry()
	if !ok {
		return
	}
	basketBox := components.Transform.Get(entry).Box()

	var caught []donburi.Entity
	tags.Apple.Each(s.world, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		if basketBox.Intersects(t.Box()) {
			caught = append(caught, e.Entity())
			res.CaughtAt = append(res.CaughtAt, t.Pos)
		}
	})
	for _, e := range caught {
		s.world.Remove(e)
	}

	s.score += len(caught)
	res.Caught += len(caught)
}
