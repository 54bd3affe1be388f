package core

import "time"

// Pacer releases events at a steady rate independent of the caller's frame
// rate. The viewer uses it to reveal generations one row at a time.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer emitting perSecond events per second. The
// first call to Take always yields at least one event.
func NewPacer(perSecond int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(perSecond)
	p.accumulator = p.step
	return p
}

// SetRate changes the event rate. Non-positive rates fall back to 60.
func (p *Pacer) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 60
	}
	p.step = time.Second / time.Duration(perSecond)
}

// Take reports how many events became due since the previous call.
func (p *Pacer) Take() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	return n
}

// Reset discards accumulated time so the next Take starts a fresh interval.
func (p *Pacer) Reset() {
	p.last = time.Time{}
	p.accumulator = p.step
}
