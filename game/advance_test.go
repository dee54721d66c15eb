package game_test

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/oakhollow/applefall/components"
	"github.com/oakhollow/applefall/game"
	"github.com/oakhollow/applefall/tags"
)

func TestBasketStaysPutWithoutInput(t *testing.T) {
	s := newPlayingSession(t)
	start := basketPos(t, s)

	for _, dt := range []float64{0, 0.016, 0.1, 1.5} {
		s.Advance(dt, game.Input{}, bounds)
		if got := basketPos(t, s); got.X != start.X {
			t.Fatalf("basket moved with no keys held (dt=%f): %f", dt, got.X)
		}
	}

	// Both directions held cancel out.
	s.Advance(0.1, game.Input{Left: true, Right: true}, bounds)
	if got := basketPos(t, s); got.X != start.X {
		t.Fatalf("basket moved with both keys held: %f", got.X)
	}
}

func TestBasketMovesAndClamps(t *testing.T) {
	s := newPlayingSession(t)

	s.Advance(0.1, game.Input{Right: true}, bounds)
	afterRight := basketPos(t, s).X
	if afterRight <= 0 {
		t.Fatalf("basket did not move right: %f", afterRight)
	}

	s.Advance(0.1, game.Input{Left: true}, bounds)
	if got := basketPos(t, s).X; got >= afterRight {
		t.Fatalf("basket did not move left: %f", got)
	}

	// Clamp invariant: with half-extent 32 in a 640-wide area, the center
	// never leaves [-288, 288] no matter how long a key is held.
	for i := 0; i < 100; i++ {
		s.Advance(0.5, game.Input{Right: true}, bounds)
	}
	if got := basketPos(t, s).X; got != 288 {
		t.Fatalf("basket right clamp = %f, want 288", got)
	}
	for i := 0; i < 100; i++ {
		s.Advance(0.5, game.Input{Left: true}, bounds)
	}
	if got := basketPos(t, s).X; got != -288 {
		t.Fatalf("basket left clamp = %f, want -288", got)
	}
}

func TestApplesFallAndDespawnWithoutScoring(t *testing.T) {
	// Failing metadata keeps the spawner quiet so only the planted apple
	// is in play.
	s := game.NewSession(stubSizes{fail: true})
	s.FinishLoading()
	s.StartGame()
	// Off to the side so the basket cannot catch it.
	addApple(s, 250, 196, 16, 16)

	// 196 -> below -180-16 at 160 px/s takes ~2.45s; 30 ticks of 0.1s
	// accumulate 3s of fall.
	for i := 0; i < 30; i++ {
		s.Advance(0.1, game.Input{}, bounds)
	}
	if n := appleCount(s.World()); n != 0 {
		t.Fatalf("apple still present after falling past the bottom edge")
	}
	if s.Score() != 0 {
		t.Fatalf("despawn must not affect score, got %d", s.Score())
	}
	if s.Missed() == 0 {
		t.Fatalf("missed counter did not record the drop")
	}
}

func TestScoreMonotonicWhilePlaying(t *testing.T) {
	s := newPlayingSession(t)
	prev := s.Score()
	for i := 0; i < 200; i++ {
		s.Advance(0.05, game.Input{Right: i%10 < 5}, bounds)
		if s.Score() < prev {
			t.Fatalf("score decreased from %d to %d at tick %d", prev, s.Score(), i)
		}
		prev = s.Score()
	}
}

func TestSpawnFiresAfterInterval(t *testing.T) {
	s := newPlayingSession(t)

	// interval 1.75s, 0.1s ticks: nothing through tick 17 (1.7s), one
	// spawn on tick 18 (1.8s).
	for i := 0; i < 17; i++ {
		res := s.Advance(0.1, game.Input{}, bounds)
		if res.Spawned {
			t.Fatalf("spawn fired early at tick %d", i+1)
		}
	}
	if n := appleCount(s.World()); n != 0 {
		t.Fatalf("apple count before interval = %d, want 0", n)
	}

	res := s.Advance(0.1, game.Input{}, bounds)
	if !res.Spawned {
		t.Fatalf("spawn did not fire once elapsed passed the interval")
	}
	if n := appleCount(s.World()); n != 1 {
		t.Fatalf("apple count after spawn = %d, want exactly 1", n)
	}

	// R = (640 - 64/2) / 2 = 304; spawn y = 180 + 64/4 = 196.
	tags.Apple.Each(s.World(), func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Pos
		if pos.X < -304 || pos.X > 304 {
			t.Fatalf("spawn x = %f outside [-304, 304]", pos.X)
		}
		if pos.Y != 196 {
			t.Fatalf("spawn y = %f, want 196", pos.Y)
		}
		half := components.Transform.Get(e).Half
		if half.X != 16 || half.Y != 16 {
			t.Fatalf("spawned half-extent = %+v, want (16, 16)", half)
		}
	})

	// The accumulator reset on fire, so the next tick cannot spawn again.
	if res := s.Advance(0.1, game.Input{}, bounds); res.Spawned {
		t.Fatalf("spawner fired twice in consecutive ticks")
	}
}

func TestSpawnSkipsWithoutMetadata(t *testing.T) {
	s := game.NewSession(stubSizes{fail: true})
	s.FinishLoading()
	s.StartGame()

	for i := 0; i < 50; i++ {
		if res := s.Advance(0.1, game.Input{}, bounds); res.Spawned {
			t.Fatalf("spawner fired without texture metadata")
		}
	}
	if n := appleCount(s.World()); n != 0 {
		t.Fatalf("apples spawned without metadata: %d", n)
	}

	// The basket fell back to configured dimensions and still exists.
	if _, ok := s.Basket(); !ok {
		t.Fatalf("basket missing when metadata is unavailable")
	}
}

func TestCatchScoresAndRemoves(t *testing.T) {
	s := newPlayingSession(t)
	pos := basketPos(t, s)
	addApple(s, pos.X, pos.Y, 16, 16)

	res := s.Advance(0, game.Input{}, bounds)
	if res.Caught != 1 {
		t.Fatalf("caught = %d, want 1", res.Caught)
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}
	if n := appleCount(s.World()); n != 0 {
		t.Fatalf("caught apple still in store")
	}

	// Nothing left to catch on the next tick.
	if res := s.Advance(0, game.Input{}, bounds); res.Caught != 0 {
		t.Fatalf("second tick re-credited a removed apple")
	}
}

func TestTwoCatchesInOneTick(t *testing.T) {
	s := newPlayingSession(t)
	pos := basketPos(t, s)
	addApple(s, pos.X-10, pos.Y+5, 16, 16)
	addApple(s, pos.X+10, pos.Y+5, 16, 16)

	res := s.Advance(0, game.Input{}, bounds)
	if res.Caught != 2 {
		t.Fatalf("caught = %d, want 2 in a single tick", res.Caught)
	}
	if s.Score() != 2 {
		t.Fatalf("score = %d, want 2", s.Score())
	}
	if len(res.CaughtAt) != 2 {
		t.Fatalf("caught positions = %d, want 2", len(res.CaughtAt))
	}
}

func TestTouchingBoxesCount(t *testing.T) {
	s := newPlayingSession(t)
	pos := basketPos(t, s)
	// Apple edge exactly touching the basket's right edge: 32 + 16 apart.
	addApple(s, pos.X+48, pos.Y, 16, 16)

	if res := s.Advance(0, game.Input{}, bounds); res.Caught != 1 {
		t.Fatalf("touching boxes must count as a catch, got %d", res.Caught)
	}
}

func TestZeroBoundsSkipsTick(t *testing.T) {
	s := newPlayingSession(t)
	addApple(s, 100, 50, 16, 16)
	timer := s.Timer()

	res := s.Advance(0.5, game.Input{Right: true}, game.Bounds{})
	if res.Spawned || res.Missed != 0 {
		t.Fatalf("tick with no play area must be skipped, got %+v", res)
	}
	if got := basketPos(t, s); got.X != 0 {
		t.Fatalf("basket moved without a play area: %f", got.X)
	}
	if s.Timer() != timer {
		t.Fatalf("spawn timer advanced without a play area")
	}

	var appleY float64
	tags.Apple.Each(s.World(), func(e *donburi.Entry) {
		appleY = components.Transform.Get(e).Pos.Y
	})
	if appleY != 50 {
		t.Fatalf("apple moved without a play area: %f", appleY)
	}
}
