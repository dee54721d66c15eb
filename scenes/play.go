package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/game"
	"github.com/oakhollow/applefall/systems"
)

// maxTickSeconds caps the per-frame delta so a window drag or a debugger
// stop cannot teleport apples through the basket.
const maxTickSeconds = 0.1

// PlayScene hosts the simulation while a game is running or paused.
type PlayScene struct {
	ecs          *ecs.ECS
	session      *game.Session
	sceneChanger SceneChanger
	once         sync.Once
	lastTick     time.Time
	dt           float64
}

// NewPlayScene creates a scene around an already started session.
func NewPlayScene(session *game.Session, sc SceneChanger) *PlayScene {
	return &PlayScene{session: session, sceneChanger: sc}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.tickClock()
	ps.ecs.Update()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	ps.ecs = ecs.NewECS(ps.session.World())
	ps.lastTick = time.Now()

	menuScene := func() interface{} {
		return NewMenuScene(ps.session, ps.sceneChanger)
	}

	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.NewUpdatePause(ps.session, ps.sceneChanger, menuScene))
	ps.ecs.AddSystem(systems.NewUpdateSimulation(ps.session, ps.frameDt))
	ps.ecs.AddSystem(systems.NewUpdatePops(ps.frameDt))

	ps.ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPlayfield)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPops)
	ps.ecs.AddRenderer(cfg.Default, systems.NewDrawHUD(ps.session))
	ps.ecs.AddRenderer(cfg.Default, systems.NewDrawPause(ps.session))
}

// tickClock samples real elapsed time once per frame; every system reads
// the same value for the whole tick.
func (ps *PlayScene) tickClock() {
	now := time.Now()
	ps.dt = now.Sub(ps.lastTick).Seconds()
	ps.lastTick = now
	if ps.dt > maxTickSeconds {
		ps.dt = maxTickSeconds
	}
}

func (ps *PlayScene) frameDt() float64 {
	return ps.dt
}
