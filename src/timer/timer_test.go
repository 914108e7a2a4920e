package timer

import (
	"testing"
	"time"
)

func TestStopwatch(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sw := StartWith(func() time.Time { return now })
	now = now.Add(1500 * time.Microsecond)
	if got := sw.Elapsed(); got != 1500*time.Microsecond {
		t.Errorf("Elapsed = %v, want 1.5ms", got)
	}
	if got := sw.Milliseconds(); got != 1.5 {
		t.Errorf("Milliseconds = %g, want 1.5", got)
	}
}
