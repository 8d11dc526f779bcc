package gui

import "time"

// pacer steps the simulation at most once per delay while not paused.
type pacer struct {
	step   func()
	delay  time.Duration
	last   time.Time
	paused bool
}

func (p *pacer) toggle() { p.paused = !p.paused }

// advance steps if due at now and reports whether it did.
func (p *pacer) advance(now time.Time) bool {
	if p.paused || now.Sub(p.last) < p.delay {
		return false
	}
	p.last = now
	p.step()
	return true
}
