package dispatcher

import (
	"sweepsim/src/elev"
	"sweepsim/src/types"
)

// Options tune a single run. MaxSweepPairs == 0 means SweepPairBound of the roster.
type Options struct {
	Policy        types.CallPolicy
	MaxSweepPairs int
}

// Result is the outcome of one completed run.
type Result struct {
	AverageWait float64
	Waits       []int
	Events      []types.Event
	SweepPairs  int
	Final       *elev.Elevator // elevator state at the end of the run, detached from the sweep
}
