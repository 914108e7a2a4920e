package timer

import "time"

// Stopwatch measures wall-clock time of a batch of runs.
type Stopwatch struct {
	start time.Time
	now   func() time.Time
}

func Start() *Stopwatch {
	return StartWith(time.Now)
}

// StartWith uses the given clock, which lets tests control elapsed time.
func StartWith(now func() time.Time) *Stopwatch {
	return &Stopwatch{start: now(), now: now}
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// Milliseconds returns elapsed time as fractional milliseconds.
func (s *Stopwatch) Milliseconds() float64 {
	return float64(s.Elapsed()) / float64(time.Millisecond)
}
