package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// AABB is an axis-aligned box described by its center and half-extent.
type AABB struct {
	Center dmath.Vec2
	Half   dmath.Vec2
}

// Intersects reports whether two boxes overlap. Boxes that merely touch on
// an edge or corner count as overlapping.
func (a AABB) Intersects(b AABB) bool {
	return math.Abs(a.Center.X-b.Center.X) <= a.Half.X+b.Half.X &&
		math.Abs(a.Center.Y-b.Center.Y) <= a.Half.Y+b.Half.Y
}

// ClampX clamps a box center so the box stays inside [-width/2, width/2]
// horizontally.
func ClampX(centerX, halfX, width float64) float64 {
	min := -width/2 + halfX
	max := width/2 - halfX
	if centerX < min {
		return min
	}
	if centerX > max {
		return max
	}
	return centerX
}

// SpawnRange returns the half-width R of the horizontal band apples spawn
// in, derived from the object's native (unscaled) width. The inset is
// nativeWidth/2 rather than the full width; with the 0.5 display scale this
// works out to exactly the clamp range of an object that size.
func SpawnRange(areaWidth, nativeWidth float64) float64 {
	return (areaWidth - nativeWidth/2) / 2
}
