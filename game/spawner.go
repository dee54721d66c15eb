package game

import (
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/oakhollow/applefall/archetypes"
	"github.com/oakhollow/applefall/components"
	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/gamemath"
)

// advanceSpawner accumulates dt into the spawn timer and, on expiry,
// creates one apple at a random horizontal position just above the top
// edge. The accumulator resets to zero on fire, so at most one apple
// spawns per tick no matter how large dt was.
func (s *Session) advanceSpawner(dt float64, bounds Bounds) bool {
	s.timer.Elapsed += dt
	if s.timer.Elapsed < s.timer.Interval {
		return false
	}
	s.timer.Elapsed = 0

	w, h, err := s.objectSize(AppleTexture)
	if err != nil {
		// Without texture metadata there is no spawn geometry. Skip this
		// expiry; the timer starts over and the next one tries again.
		return false
	}

	r := gamemath.SpawnRange(bounds.Width, w)
	x := -r + s.rng.Float64()*(2*r)
	y := bounds.Height/2 + h/4

	entry := archetypes.Apple.Spawn(s.world)
	components.Transform.SetValue(entry, components.TransformData{
		Pos:   dmath.Vec2{X: x, Y: y},
		Half:  dmath.Vec2{X: w * cfg.Scale.Object / 2, Y: h * cfg.Scale.Object / 2},
		Scale: cfg.Scale.Object,
	})
	components.Apple.SetValue(entry, components.AppleData{
		FallSpeed: s.fallSpeed,
	})
	return true
}
