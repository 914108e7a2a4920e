package types

import "fmt"

// CallPolicy decides when a waiting passenger starts calling the elevator.
type CallPolicy int

const (
	// ExactTick calls only when the elevator clock equals the arrival tick.
	ExactTick CallPolicy = iota
	// Arrived calls at the first evaluation whose clock is at or past the arrival tick.
	Arrived
)

func (c CallPolicy) String() string {
	switch c {
	case ExactTick:
		return "exact"
	case Arrived:
		return "arrived"
	}
	return fmt.Sprintf("CallPolicy(%d)", int(c))
}

func ParseCallPolicy(s string) (CallPolicy, error) {
	switch s {
	case "exact":
		return ExactTick, nil
	case "arrived":
		return Arrived, nil
	}
	return ExactTick, fmt.Errorf("unknown call policy %q (want exact or arrived)", s)
}

type EventKind int

const (
	Board EventKind = iota
	Depart
)

func (k EventKind) String() string {
	switch k {
	case Board:
		return "board"
	case Depart:
		return "depart"
	}
	return "unknown"
}

// Event is one boarding or departure observed by the elevator. Wait is only set for departures.
type Event struct {
	Kind        EventKind
	Clock       int
	Floor       int
	PassengerID string
	Wait        int
}

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
)

// SweepPhase is the state of the sweep state machine within one run.
type SweepPhase int

const (
	Init SweepPhase = iota
	SweepUp
	SweepDown
	CheckTerminal
	Done
)

func (s SweepPhase) String() string {
	switch s {
	case Init:
		return "Init"
	case SweepUp:
		return "SweepUp"
	case SweepDown:
		return "SweepDown"
	case CheckTerminal:
		return "CheckTerminal"
	case Done:
		return "Done"
	}
	return fmt.Sprintf("SweepPhase(%d)", int(s))
}
