package scenes

import (
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/game"
	"github.com/oakhollow/applefall/systems"
	"github.com/oakhollow/applefall/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	session      *game.Session
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(session *game.Session, sc SceneChanger) *MenuScene {
	return &MenuScene{session: session, sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func() {
			ms.session.StartGame()
			ms.sceneChanger.ChangeScene(NewPlayScene(ms.session, ms.sceneChanger))
		},
		func() {
			cfg.DifficultyIndex = (cfg.DifficultyIndex + 1) % len(cfg.Difficulties)
			cfg.ApplyDifficulty()
			if err := systems.SaveSettings(systems.CurrentSettings()); err != nil {
				// Already logged; the selection still applies this run.
				return
			}
		},
		func() {
			_ = systems.SaveSettings(systems.CurrentSettings())
			os.Exit(0)
		},
	)
}
