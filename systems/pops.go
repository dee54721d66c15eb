package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/oakhollow/applefall/archetypes"
	"github.com/oakhollow/applefall/assets"
	"github.com/oakhollow/applefall/components"
	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/game"
	"github.com/oakhollow/applefall/tags"
)

// SpawnPop creates the short scale/fade effect where an apple was caught.
func SpawnPop(w donburi.World, pos dmath.Vec2) {
	entry := archetypes.Pop.Spawn(w)
	components.Transform.SetValue(entry, components.TransformData{
		Pos:   pos,
		Scale: cfg.Scale.Object,
	})
	components.Pop.SetValue(entry, components.PopData{
		Scale: gween.New(
			float32(cfg.Scale.Object),
			float32(cfg.Pop.MaxScale),
			float32(cfg.Pop.Duration),
			ease.OutQuad,
		),
	})
}

// NewUpdatePops returns a system that advances pop tweens and removes
// finished ones. dt supplies the frame's elapsed seconds.
func NewUpdatePops(dt func() float64) ecs.System {
	return func(e *ecs.ECS) {
		elapsed := float32(dt())
		var done []donburi.Entity
		tags.Pop.Each(e.World, func(entry *donburi.Entry) {
			pop := components.Pop.Get(entry)
			t := components.Transform.Get(entry)

			scale, finished := pop.Scale.Update(elapsed)
			t.Scale = float64(scale)
			pop.Life += float64(elapsed)
			if finished {
				done = append(done, entry.Entity())
			}
		})
		for _, entity := range done {
			e.World.Remove(entity)
		}
	}
}

// DrawPops renders pop effects as a fading, growing apple ghost.
func DrawPops(e *ecs.ECS, screen *ebiten.Image) {
	if appleImg == nil {
		appleImg = assets.GetObjectImage(game.AppleTexture)
	}
	tags.Pop.Each(e.World, func(entry *donburi.Entry) {
		pop := components.Pop.Get(entry)
		t := components.Transform.Get(entry)

		alpha := 1 - float32(pop.Life/cfg.Pop.Duration)
		if alpha < 0 {
			alpha = 0
		}
		drawObject(screen, appleImg, t, alpha)
	})
}
