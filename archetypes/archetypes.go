package archetypes

import (
	"github.com/yohamta/donburi"

	"github.com/oakhollow/applefall/components"
	"github.com/oakhollow/applefall/tags"
)

var (
	Basket = newArchetype(
		tags.Basket,
		components.Basket,
		components.Transform,
	)
	Apple = newArchetype(
		tags.Apple,
		components.Apple,
		components.Transform,
	)
	Pop = newArchetype(
		tags.Pop,
		components.Pop,
		components.Transform,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
