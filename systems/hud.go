package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/fonts"
	"github.com/oakhollow/applefall/game"
)

// NewDrawHUD returns a renderer for the in-game score line.
func NewDrawHUD(session *game.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if session.Phase() != game.Playing && session.Phase() != game.Paused {
			return
		}

		face := fonts.Score.Get()
		margin := int(cfg.HUD.Margin)
		line := fmt.Sprintf("Score: %d", session.Score())
		text.Draw(screen, line, face, margin, margin+16, cfg.HUD.TextColor)

		missed := fmt.Sprintf("Missed: %d", session.Missed())
		text.Draw(screen, missed, fonts.Small.Get(), margin, margin+34, cfg.HUD.TextColor)
	}
}
