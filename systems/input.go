package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/oakhollow/applefall/components"
	cfg "github.com/oakhollow/applefall/config"
)

// UpdateInput polls the keyboard and updates the Input singleton.
// Must run before any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e.World)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// GetAction returns the temporal state of an action, with edges computed
// by comparing the current and previous frames.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[action],
		JustPressed:  input.Current[action] && !input.Previous[action],
		JustReleased: !input.Current[action] && input.Previous[action],
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
