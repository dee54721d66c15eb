package game_test

import (
	"errors"
	"testing"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/oakhollow/applefall/archetypes"
	"github.com/oakhollow/applefall/components"
	cfg "github.com/oakhollow/applefall/config"
	"github.com/oakhollow/applefall/game"
	"github.com/oakhollow/applefall/tags"
)

// stubSizes answers metadata queries with the real texture dimensions, or
// fails every query when fail is set.
type stubSizes struct{ fail bool }

func (s stubSizes) ObjectSize(name string) (float64, float64, error) {
	if s.fail {
		return 0, 0, errors.New("metadata unavailable")
	}
	switch name {
	case game.AppleTexture:
		return 64, 64, nil
	case game.BasketTexture:
		return 128, 64, nil
	}
	return 0, 0, errors.New("unknown object " + name)
}

var bounds = game.Bounds{Width: 640, Height: 360}

func newPlayingSession(t *testing.T) *game.Session {
	t.Helper()
	cfg.DifficultyIndex = 1
	cfg.ApplyDifficulty()
	s := game.NewSession(stubSizes{})
	s.FinishLoading()
	s.StartGame()
	if s.Phase() != game.Playing {
		t.Fatalf("phase after StartGame = %s, want Playing", s.Phase())
	}
	return s
}

func appleCount(w donburi.World) int {
	n := 0
	tags.Apple.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func addApple(s *game.Session, x, y, hx, hy float64) {
	e := archetypes.Apple.Spawn(s.World())
	components.Transform.SetValue(e, components.TransformData{
		Pos:   dmath.Vec2{X: x, Y: y},
		Half:  dmath.Vec2{X: hx, Y: hy},
		Scale: cfg.Scale.Object,
	})
	components.Apple.SetValue(e, components.AppleData{FallSpeed: 160})
}

func basketPos(t *testing.T, s *game.Session) dmath.Vec2 {
	t.Helper()
	entry, ok := s.Basket()
	if !ok {
		t.Fatalf("no basket entity")
	}
	return components.Transform.Get(entry).Pos
}

func TestPhaseProgression(t *testing.T) {
	s := game.NewSession(stubSizes{})
	if s.Phase() != game.Loading {
		t.Fatalf("initial phase = %s, want Loading", s.Phase())
	}
	s.FinishLoading()
	if s.Phase() != game.MainMenu {
		t.Fatalf("phase after FinishLoading = %s, want MainMenu", s.Phase())
	}
	if _, ok := s.Basket(); ok {
		t.Fatalf("basket must not exist before a game starts")
	}
}

func TestStartGameResetsState(t *testing.T) {
	s := newPlayingSession(t)
	if s.Score() != 0 {
		t.Fatalf("score after StartGame = %d, want 0", s.Score())
	}
	if n := appleCount(s.World()); n != 0 {
		t.Fatalf("apple count after StartGame = %d, want 0", n)
	}
	if timer := s.Timer(); timer.Elapsed != 0 || timer.Interval != 1.75 {
		t.Fatalf("spawn timer after StartGame = %+v, want fresh 1.75s timer", timer)
	}

	// Basket rests at bottom-center: y = -180 + margin 12 + half 16.
	pos := basketPos(t, s)
	if pos.X != 0 || pos.Y != -152 {
		t.Fatalf("basket start position = (%f, %f), want (0, -152)", pos.X, pos.Y)
	}
}

func TestQuitToMenuDestroysEntities(t *testing.T) {
	s := newPlayingSession(t)
	addApple(s, 50, 100, 16, 16)
	addApple(s, -50, 80, 16, 16)

	s.QuitToMenu()
	if s.Phase() != game.MainMenu {
		t.Fatalf("phase after QuitToMenu = %s, want MainMenu", s.Phase())
	}
	if _, ok := s.Basket(); ok {
		t.Fatalf("basket must be destroyed on leaving Playing")
	}
	if n := appleCount(s.World()); n != 0 {
		t.Fatalf("apple count after QuitToMenu = %d, want 0", n)
	}

	// A second game starts clean.
	s.StartGame()
	if s.Score() != 0 || appleCount(s.World()) != 0 {
		t.Fatalf("second game should start with zero score and no apples")
	}
}

func TestPauseResumeRoundTrip(t *testing.T) {
	s := newPlayingSession(t)
	addApple(s, 40, 120, 16, 16)
	for i := 0; i < 5; i++ {
		s.Advance(0.05, game.Input{Right: true}, bounds)
	}

	score := s.Score()
	timer := s.Timer()
	pos := basketPos(t, s)
	apples := appleCount(s.World())

	s.Pause()
	if s.Phase() != game.Paused {
		t.Fatalf("phase after Pause = %s, want Paused", s.Phase())
	}
	s.Resume()
	if s.Phase() != game.Playing {
		t.Fatalf("phase after Resume = %s, want Playing", s.Phase())
	}

	if s.Score() != score {
		t.Fatalf("score changed across pause: %d != %d", s.Score(), score)
	}
	if s.Timer() != timer {
		t.Fatalf("spawn timer changed across pause: %+v != %+v", s.Timer(), timer)
	}
	if got := basketPos(t, s); got != pos {
		t.Fatalf("basket moved across pause: %+v != %+v", got, pos)
	}
	if got := appleCount(s.World()); got != apples {
		t.Fatalf("apple count changed across pause: %d != %d", got, apples)
	}
}

func TestTogglePause(t *testing.T) {
	s := newPlayingSession(t)
	s.TogglePause()
	if s.Phase() != game.Paused {
		t.Fatalf("phase after toggle = %s, want Paused", s.Phase())
	}
	s.TogglePause()
	if s.Phase() != game.Playing {
		t.Fatalf("phase after second toggle = %s, want Playing", s.Phase())
	}
}

func TestAdvanceOutsidePlayingIsNoOp(t *testing.T) {
	s := game.NewSession(stubSizes{})
	s.FinishLoading()

	res := s.Advance(0.1, game.Input{}, bounds)
	if res.Caught != 0 || res.Spawned || res.Missed != 0 {
		t.Fatalf("Advance outside Playing must do nothing, got %+v", res)
	}
	if s.Phase() != game.MainMenu {
		t.Fatalf("phase drifted to %s", s.Phase())
	}
}

func TestAdvanceOutsidePlayingPanicsWhenStrict(t *testing.T) {
	cfg.Debug.StrictPhase = true
	defer func() {
		cfg.Debug.StrictPhase = false
		if recover() == nil {
			t.Fatalf("expected panic from Advance outside Playing under StrictPhase")
		}
	}()

	s := game.NewSession(stubSizes{})
	s.FinishLoading()
	s.Advance(0.1, game.Input{}, bounds)
}
