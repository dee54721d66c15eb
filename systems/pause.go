package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/oakhollow/applefall/components"
	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/fonts"
	"github.com/oakhollow/applefall/game"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdatePause returns a system that edge-toggles pause on the pause key
// and drives the pause overlay menu. menuScene builds the scene to switch
// to on "Quit to Menu".
func NewUpdatePause(session *game.Session, sceneChanger SceneChanger, menuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e.World)
		pause := getOrCreatePause(e.World)

		if GetAction(input, cfg.ActionPause).JustPressed {
			session.TogglePause()
			if session.Phase() == game.Paused {
				pause.SelectedOption = components.MenuResume
			}
		}

		// Only process menu input while paused
		if session.Phase() != game.Paused {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MenuExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch pause.SelectedOption {
			case components.MenuResume:
				session.Resume()
			case components.MenuQuitToMenu:
				session.QuitToMenu()
				sceneChanger.ChangeScene(menuScene())
			case components.MenuExit:
				os.Exit(0)
			}
		}
	}
}

// NewDrawPause returns a renderer for the pause overlay and its menu.
func NewDrawPause(session *game.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if session.Phase() != game.Paused {
			return
		}
		pause := getOrCreatePause(e.World)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(
			screen,
			0, 0,
			float32(width), float32(height),
			cfg.Pause.OverlayColor,
			false,
		)

		menuOptions := cfg.Pause.MenuOptions
		totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
		startY := (height - totalMenuHeight) / 2

		fontFace := fonts.Body.Get()
		for i, option := range menuOptions {
			y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

			textColor := cfg.Pause.TextColorNormal
			if components.PauseMenuOption(i) == pause.SelectedOption {
				textColor = cfg.Pause.TextColorSelected
			}

			// Approximate centering for the fixed-size face
			textWidth := len(option) * 9
			x := int((width - float64(textWidth)) / 2)
			text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
		}

		hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
		hintFont := fonts.Small.Get()
		hintWidth := len(hint) * 6
		hintX := int((width - float64(hintWidth)) / 2)
		text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
	}
}

func getOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := w.Entry(w.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			SelectedOption: components.MenuResume,
		})
	}
	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}
