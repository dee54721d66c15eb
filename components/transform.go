package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/oakhollow/applefall/gamemath"
)

// TransformData places an entity in the play area. Coordinates are centered
// on the middle of the play area with y growing upward; the renderer maps
// them to screen space. Half is the display half-extent (native size times
// the object scale, halved).
type TransformData struct {
	Pos   dmath.Vec2
	Half  dmath.Vec2
	Scale float64
}

// Box returns the entity's bounding box.
func (t *TransformData) Box() gamemath.AABB {
	return gamemath.AABB{Center: t.Pos, Half: t.Half}
}

var Transform = donburi.NewComponentType[TransformData]()
