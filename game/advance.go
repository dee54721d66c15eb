package game

// Advance runs one simulation tick: basket and apple movement, then the
// spawner, then catch resolution, in that fixed order. It must only be
// called while the phase is Playing; the systems never run in any other
// phase.
//
// dt is the real time elapsed since the previous tick, in seconds. The
// input snapshot and bounds are sampled once by the host and treated as
// immutable for the whole tick.
func (s *Session) Advance(dt float64, in Input, bounds Bounds) Result {
	if s.phase != Playing {
		s.invalidPhase("Advance")
		return Result{}
	}

	var res Result
	if bounds.Width <= 0 || bounds.Height <= 0 {
		// No usable play area this tick; entities stay where they are
		// and the next tick gets fresh inputs.
		return res
	}

	s.moveBasket(dt, in, bounds)
	res.Missed = s.moveApples(dt, bounds)
	res.Spawned = s.advanceSpawner(dt, bounds)
	s.resolveCatches(&res)
	return res
}
