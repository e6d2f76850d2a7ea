package engine

import "time"

// TickInterval is how often the presentation layer should call Tick.
const TickInterval = time.Second

// timer counts whole seconds of play. Each Init starts a new generation;
// ticks carrying an older generation are ignored, which is how a periodic
// callback left over from a previous game is cancelled.
type timer struct {
	gen     uint64
	elapsed int
	running bool
}

func (t *timer) start() {
	t.gen++
	t.elapsed = 0
	t.running = true
}

func (t *timer) stop() {
	t.running = false
}

// TimerGeneration identifies the clock of the current game.
func (g *Game) TimerGeneration() uint64 {
	return g.timer.gen
}

// Tick advances the clock by one interval if gen is current and the game
// is still in play. It reports whether the caller should schedule the next
// tick.
func (g *Game) Tick(gen uint64) bool {
	if gen != g.timer.gen || !g.timer.running {
		return false
	}
	g.timer.elapsed++
	return true
}

func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.timer.elapsed) * TickInterval
}
