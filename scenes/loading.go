package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2

	"github.com/oakhollow/applefall/assets"
	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/fonts"
	"github.com/oakhollow/applefall/game"
)

// LoadingScene decodes the embedded textures, then hands the session to
// the menu (or straight into a game with Debug.SkipMenu).
type LoadingScene struct {
	session      *game.Session
	sceneChanger SceneChanger
}

// NewLoadingScene creates the boot scene.
func NewLoadingScene(session *game.Session, sc SceneChanger) *LoadingScene {
	return &LoadingScene{session: session, sceneChanger: sc}
}

func (ls *LoadingScene) Update() {
	if err := assets.Preload(); err != nil {
		panic("failed to load textures: " + err.Error())
	}
	ls.session.FinishLoading()

	if cfg.Debug.SkipMenu {
		ls.session.StartGame()
		ls.sceneChanger.ChangeScene(NewPlayScene(ls.session, ls.sceneChanger))
		return
	}
	ls.sceneChanger.ChangeScene(NewMenuScene(ls.session, ls.sceneChanger))
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	text.Draw(screen, "Loading...", fonts.Small.Get(), 12, cfg.C.Height-12, cfg.Menu.TextColor)
}
