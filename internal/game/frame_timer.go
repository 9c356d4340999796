package game

import (
	"math"
	"time"
)

// FrameCounter averages frame rate over fixed reporting periods. Each
// report stands alone; there is no smoothing across periods.
type FrameCounter struct {
	period  time.Duration
	now     func() time.Time
	publish func(fps int, frames int)

	frames int
	last   time.Time
}

// NewFrameCounter starts counting from now(). publish receives the rounded
// rate and the number of frames it was computed from.
func NewFrameCounter(period time.Duration, now func() time.Time, publish func(fps int, frames int)) *FrameCounter {
	if now == nil {
		now = time.Now
	}
	return &FrameCounter{
		period:  period,
		now:     now,
		publish: publish,
		last:    now(),
	}
}

// OnFrameRendered counts one frame and publishes once a period has elapsed.
// It reports whether a figure was published.
func (f *FrameCounter) OnFrameRendered() bool {
	f.frames++
	now := f.now()
	elapsed := now.Sub(f.last)
	if elapsed < f.period {
		return false
	}

	fps := Rate(f.frames, elapsed)
	if f.publish != nil {
		f.publish(fps, f.frames)
	}
	f.frames = 0
	f.last = now
	return true
}

// Rate is frames per second over elapsed, rounded to the nearest integer.
func Rate(frames int, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(math.Round(float64(frames) / elapsed.Seconds()))
}
