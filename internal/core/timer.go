package core

import "time"

// FixedStep gates a periodic check to a steady rate. The viewer uses it to
// poll for window size changes without re-rendering on every frame while a
// window is being dragged.
type FixedStep struct {
	step time.Duration
	next time.Time
}

// NewFixedStep constructs a FixedStep firing at most perSecond times a
// second.
func NewFixedStep(perSecond int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(perSecond)
	return fs
}

// SetRate changes the rate. Non-positive values fall back to 4 per second.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 4
	}
	f.step = time.Second / time.Duration(perSecond)
}

// Ready reports whether a step is due at now and, if so, schedules the
// next one.
func (f *FixedStep) Ready(now time.Time) bool {
	if !f.next.IsZero() && now.Before(f.next) {
		return false
	}
	f.next = now.Add(f.step)
	return true
}

// ShouldStep is Ready for the current wall-clock time.
func (f *FixedStep) ShouldStep() bool {
	return f.Ready(time.Now())
}
