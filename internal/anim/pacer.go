package anim

import "time"

// SleepPacer sleeps for whatever is left of the frame period since the
// previous Tick. A late frame resets the schedule instead of bursting.
type SleepPacer struct {
	Now   func() time.Time
	Sleep func(time.Duration)
	last  time.Time
}

func NewSleepPacer() *SleepPacer {
	return &SleepPacer{Now: time.Now, Sleep: time.Sleep}
}

func (p *SleepPacer) Tick(hz int) {
	if hz <= 0 {
		return
	}
	period := time.Second / time.Duration(hz)
	now := p.Now()
	if !p.last.IsZero() {
		if wait := period - now.Sub(p.last); wait > 0 {
			p.Sleep(wait)
			now = now.Add(wait)
		}
	}
	p.last = now
}

// NoPacer never blocks; used for headless rendering.
type NoPacer struct{}

func (NoPacer) Tick(int) {}
