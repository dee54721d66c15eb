package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/oakhollow/applefall/archetypes"
	"github.com/oakhollow/applefall/components"
	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/tags"
)

// Texture names the session asks its SizeSource about.
const (
	AppleTexture  = "apple.png"
	BasketTexture = "basket.png"
)

// SizeSource supplies native (unscaled) texture dimensions for spawn
// geometry and bounding boxes. Implemented by the assets package; tests
// substitute a stub.
type SizeSource interface {
	ObjectSize(name string) (w, h float64, err error)
}

// SpawnTimer is the repeating countdown that drives apple spawns. It only
// advances while the session is Playing.
type SpawnTimer struct {
	Interval float64 // seconds between spawns
	Elapsed  float64 // seconds accumulated since the last spawn
}

// Input is the per-tick input snapshot, sampled once by the host at the
// start of a tick.
type Input struct {
	Left  bool
	Right bool
}

// Bounds is the play area size in pixels. A zero value means the host has
// no usable play area this tick.
type Bounds struct {
	Width  float64
	Height float64
}

// Result reports what one Advance call did. The presentation layer uses it
// for effects and the HUD; the simulation itself never reads it back.
type Result struct {
	Caught   int
	CaughtAt []dmath.Vec2
	Missed   int
	Spawned  bool
}

var errNoSizeSource = errors.New("no size source configured")

// Session owns all simulation state: the entity world, the phase, the
// score and the spawn timer. Entities are only ever referenced by their
// donburi handle, never by pointer.
type Session struct {
	world     donburi.World
	phase     Phase
	score     int
	missed    int
	timer     SpawnTimer
	fallSpeed float64
	basket    donburi.Entity
	hasBasket bool
	sizes     SizeSource
	rng       *rand.Rand
}

// NewSession creates a session in the Loading phase.
func NewSession(sizes SizeSource) *Session {
	return &Session{
		world: donburi.NewWorld(),
		phase: Loading,
		sizes: sizes,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the number of apples caught this game. It is only
// meaningful while the phase is Playing or Paused.
func (s *Session) Score() int { return s.score }

// Missed returns the number of apples that fell through this game.
func (s *Session) Missed() int { return s.missed }

// World exposes the entity store for read-only presentation access.
func (s *Session) World() donburi.World { return s.world }

// Timer returns a copy of the spawn timer.
func (s *Session) Timer() SpawnTimer { return s.timer }

// Basket returns the basket entry while one exists.
func (s *Session) Basket() (*donburi.Entry, bool) {
	return s.basketEntry()
}

// FinishLoading moves from Loading to the main menu once the presentation
// layer reports its assets ready.
func (s *Session) FinishLoading() {
	if s.phase != Loading {
		s.invalidPhase("FinishLoading")
		return
	}
	s.phase = MainMenu
}

// StartGame begins a fresh game: score and miss count reset, a fresh spawn
// timer, an empty apple set and a basket at the bottom-center default
// position.
func (s *Session) StartGame() {
	if s.phase != MainMenu {
		s.invalidPhase("StartGame")
		return
	}
	s.clearEntities()

	s.score = 0
	s.missed = 0
	s.timer = SpawnTimer{Interval: cfg.Spawn.Interval}
	s.fallSpeed = cfg.Apple.FallSpeed

	w, h, err := s.objectSize(BasketTexture)
	if err != nil {
		w, h = cfg.Basket.NativeWidth, cfg.Basket.NativeHeight
	}
	half := dmath.Vec2{X: w * cfg.Scale.Object / 2, Y: h * cfg.Scale.Object / 2}

	entry := archetypes.Basket.Spawn(s.world)
	components.Transform.SetValue(entry, components.TransformData{
		Pos: dmath.Vec2{
			X: 0,
			Y: -float64(cfg.C.Height)/2 + cfg.Basket.BottomMargin + half.Y,
		},
		Half:  half,
		Scale: cfg.Scale.Object,
	})
	components.Basket.SetValue(entry, components.BasketData{
		Speed: cfg.Basket.Speed,
	})
	s.basket = entry.Entity()
	s.hasBasket = true
	s.phase = Playing
}

// Pause freezes the simulation. All entity, score and timer state is
// preserved for Resume.
func (s *Session) Pause() {
	if s.phase != Playing {
		s.invalidPhase("Pause")
		return
	}
	s.phase = Paused
}

// Resume continues a paused game.
func (s *Session) Resume() {
	if s.phase != Paused {
		s.invalidPhase("Resume")
		return
	}
	s.phase = Playing
}

// TogglePause flips between Playing and Paused. The host calls this on the
// pause key's JustPressed edge so a held key cannot re-toggle.
func (s *Session) TogglePause() {
	switch s.phase {
	case Playing:
		s.phase = Paused
	case Paused:
		s.phase = Playing
	default:
		s.invalidPhase("TogglePause")
	}
}

// QuitToMenu abandons the current game: the basket and every apple are
// destroyed and the phase returns to the main menu.
func (s *Session) QuitToMenu() {
	if s.phase != Playing && s.phase != Paused {
		s.invalidPhase("QuitToMenu")
		return
	}
	s.clearEntities()
	s.phase = MainMenu
}

func (s *Session) clearEntities() {
	var doomed []donburi.Entity
	tags.Apple.Each(s.world, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	tags.Basket.Each(s.world, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	tags.Pop.Each(s.world, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		s.world.Remove(e)
	}
	s.hasBasket = false
}

func (s *Session) basketEntry() (*donburi.Entry, bool) {
	if !s.hasBasket || !s.world.Valid(s.basket) {
		return nil, false
	}
	return s.world.Entry(s.basket), true
}

func (s *Session) objectSize(name string) (float64, float64, error) {
	if s.sizes == nil {
		return 0, 0, errNoSizeSource
	}
	return s.sizes.ObjectSize(name)
}

// invalidPhase reports a phase-machine misuse by the host. A wrong call is
// a fatal integration error under Debug.StrictPhase and a no-op otherwise.
func (s *Session) invalidPhase(op string) {
	if cfg.Debug.StrictPhase {
		panic(fmt.Sprintf("game: %s called in phase %s", op, s.phase))
	}
}
