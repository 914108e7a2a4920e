package dispatcher

import (
	"fmt"
	"log/slog"
	"slices"

	"sweepsim/src/config"
	"sweepsim/src/elev"
	"sweepsim/src/types"
	"sweepsim/src/utils"
)

// Sweep drives one elevator through repeated full up and down sweeps until every passenger is delivered.
// A Sweep owns its roster and is good for exactly one run.
type Sweep struct {
	opts     Options
	topFloor int
	roster   []types.Passenger
	calling  map[string]bool
	elevator *elev.Elevator
	phase    types.SweepPhase
	pairs    int
	bound    int
}

// New validates roster and takes a private copy of its passengers.
func New(roster types.Roster, opts Options) (*Sweep, error) {
	if err := roster.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxSweepPairs < 0 {
		return nil, fmt.Errorf("max sweep pairs must be >= 0, got %d", opts.MaxSweepPairs)
	}
	bound := opts.MaxSweepPairs
	if bound == 0 {
		bound = SweepPairBound(roster)
	}
	return &Sweep{
		opts:     opts,
		topFloor: roster.Floors,
		roster:   slices.Clone(roster.Passengers),
		calling:  make(map[string]bool, roster.Len()),
		elevator: elev.New(roster.Floors),
		phase:    types.Init,
		bound:    bound,
	}, nil
}

// SweepPairBound is the number of sweep pairs after which a run is declared non-terminating.
// Under either call policy a passenger with a reachable arrival tick is calling by the end of
// pair ceil(maxArrival/pairTicks), boards within the following pair and departs within the next.
func SweepPairBound(roster types.Roster) int {
	pairTicks := 2 * (roster.Floors - config.BottomFloor)
	if pairTicks <= 0 {
		return 1
	}
	return (roster.MaxArrival()+pairTicks-1)/pairTicks + 2
}

// Run executes the state machine to completion.
//   - returns types.ErrEmptySample if no passenger departed
//   - returns a *types.NonTerminatingRunError once the sweep pair bound is exceeded
func (s *Sweep) Run() (Result, error) {
	if s.phase != types.Init {
		return Result{}, fmt.Errorf("sweep already run (phase %s)", s.phase)
	}
	slog.Debug("Run started", "passengers", len(s.roster), "topFloor", s.topFloor, "bound", s.Bound())

	for s.phase != types.Done {
		switch s.phase {
		case types.Init:
			s.phase = types.CheckTerminal
		case types.SweepUp:
			for s.elevator.Floor < s.topFloor {
				s.evaluate()
				s.elevator.MoveUp()
			}
			s.phase = types.SweepDown
		case types.SweepDown:
			for s.elevator.Floor > config.BottomFloor {
				s.evaluate()
				s.elevator.MoveDown()
			}
			s.pairs++
			s.phase = types.CheckTerminal
		case types.CheckTerminal:
			if len(s.roster) == 0 {
				s.phase = types.Done
				continue
			}
			if s.pairs >= s.bound {
				slog.Warn("Run exceeded sweep pair bound", "pairs", s.pairs, "remaining", len(s.roster))
				return Result{}, &types.NonTerminatingRunError{
					SweepPairs: s.pairs,
					Remaining:  s.Remaining(),
				}
			}
			s.phase = types.SweepUp
		}
	}

	avg, err := s.elevator.AverageWait()
	if err != nil {
		return Result{}, err
	}
	final, err := s.elevator.Snapshot()
	if err != nil {
		return Result{}, fmt.Errorf("snapshot elevator: %w", err)
	}
	slog.Debug("Run finished", "averageWait", avg, "pairs", s.pairs, "clock", final.Clock)
	return Result{
		AverageWait: avg,
		Waits:       final.Waits,
		Events:      final.Events,
		SweepPairs:  s.pairs,
		Final:       final,
	}, nil
}

// evaluate applies the call, board and depart rules to every passenger still in the roster.
func (s *Sweep) evaluate() {
	e := s.elevator
	slog.Debug("Evaluating floor", "clock", e.Clock, "floor", e.Floor, "onboard", len(e.Onboard))
	s.roster = utils.ForEachPassenger(s.roster, func(p types.Passenger) bool {
		if e.ShouldCall(p, s.opts.Policy) {
			s.calling[p.ID] = true
		}
		if p.Origin == e.Floor && s.calling[p.ID] && !e.IsOnboard(p.ID) {
			e.Board(p)
			return false
		}
		if e.Floor == p.Destination && e.IsOnboard(p.ID) {
			return e.Depart(p)
		}
		return false
	})
}

// IsCalling reports whether the passenger has called the elevator at any point in this run.
func (s *Sweep) IsCalling(id string) bool { return s.calling[id] }

func (s *Sweep) Phase() types.SweepPhase { return s.phase }

func (s *Sweep) Bound() int { return s.bound }

// Remaining returns the ids of passengers not yet delivered.
func (s *Sweep) Remaining() []string { return utils.PassengerIDs(s.roster) }
