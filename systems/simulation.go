package systems

import (
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/game"
)

// NewUpdateSimulation returns the system that drives the core: it samples
// the input snapshot and the frame clock once, advances the session one
// tick, and spawns a pop effect for every catch. While the session is not
// Playing the simulation stays frozen.
func NewUpdateSimulation(session *game.Session, dt func() float64) ecs.System {
	return func(e *ecs.ECS) {
		if session.Phase() != game.Playing {
			return
		}

		input := getOrCreateInput(e.World)
		in := game.Input{
			Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
			Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		}
		bounds := game.Bounds{
			Width:  float64(cfg.C.Width),
			Height: float64(cfg.C.Height),
		}

		res := session.Advance(dt(), in, bounds)
		for _, pos := range res.CaughtAt {
			SpawnPop(e.World, pos)
		}
	}
}
