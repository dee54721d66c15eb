package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/oakhollow/applefall/assets"
	"github.com/oakhollow/applefall/components"
	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/game"
	"github.com/oakhollow/applefall/tags"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	appleImg  *ebiten.Image
	basketImg *ebiten.Image
)

// worldToScreen maps centered y-up simulation coordinates to top-left
// y-down screen coordinates.
func worldToScreen(pos dmath.Vec2, screen *ebiten.Image) (float64, float64) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	return w/2 + pos.X, h/2 - pos.Y
}

// DrawBackdrop paints the orchard background: sky with a grass strip along
// the bottom.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.SkyBlue, false)
	vector.FillRect(screen, 0, h-28, w, 28, cfg.GrassGreen, false)
}

// DrawPlayfield renders the basket and every live apple at its transform,
// scaled by the display scale.
func DrawPlayfield(e *ecs.ECS, screen *ebiten.Image) {
	if appleImg == nil {
		appleImg = assets.GetObjectImage(game.AppleTexture)
		basketImg = assets.GetObjectImage(game.BasketTexture)
	}

	tags.Apple.Each(e.World, func(entry *donburi.Entry) {
		drawObject(screen, appleImg, components.Transform.Get(entry), 1)
	})
	tags.Basket.Each(e.World, func(entry *donburi.Entry) {
		drawObject(screen, basketImg, components.Transform.Get(entry), 1)
	})
}

func drawObject(screen, img *ebiten.Image, t *components.TransformData, alpha float32) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Pivot on the texture center, then scale and place.
	drawOp.GeoM.Translate(
		-float64(img.Bounds().Dx())/2,
		-float64(img.Bounds().Dy())/2,
	)
	drawOp.GeoM.Scale(t.Scale, t.Scale)

	sx, sy := worldToScreen(t.Pos, screen)
	drawOp.GeoM.Translate(sx, sy)
	drawOp.ColorScale.ScaleAlpha(alpha)

	screen.DrawImage(img, drawOp)
}
