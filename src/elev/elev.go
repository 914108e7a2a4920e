package elev

import (
	"log/slog"

	"github.com/tiendc/go-deepcopy"

	"sweepsim/src/config"
	"sweepsim/src/types"
	"sweepsim/src/utils"
)

// New returns an elevator parked at the bottom floor with the clock at its first tick.
func New(topFloor int) *Elevator {
	elevator := &Elevator{
		TopFloor: topFloor,
		Floor:    config.BottomFloor,
		Clock:    config.StartClock,
		Onboard:  make(map[string]types.Passenger),
	}
	slog.Debug("Elevator initialized", "topFloor", topFloor)
	return elevator
}

// MoveUp moves one floor up. The caller guarantees Floor < TopFloor.
func (e *Elevator) MoveUp() { e.move(types.MD_Up) }

// MoveDown moves one floor down. The caller guarantees Floor > config.BottomFloor.
func (e *Elevator) MoveDown() { e.move(types.MD_Down) }

func (e *Elevator) move(dir types.MotorDirection) {
	e.Floor += int(dir)
	e.Clock++
}

func (e *Elevator) IsOnboard(id string) bool {
	_, ok := e.Onboard[id]
	return ok
}

// ShouldCall reports whether p is calling the elevator at the current clock.
func (e *Elevator) ShouldCall(p types.Passenger, policy types.CallPolicy) bool {
	if policy == types.Arrived {
		return e.Clock >= p.ArrivalTime
	}
	return e.Clock == p.ArrivalTime
}

// Board adds p to the car. Boarding a passenger already onboard does nothing.
func (e *Elevator) Board(p types.Passenger) {
	if e.IsOnboard(p.ID) {
		return
	}
	e.Onboard[p.ID] = p
	e.Events = append(e.Events, types.Event{
		Kind:        types.Board,
		Clock:       e.Clock,
		Floor:       e.Floor,
		PassengerID: p.ID,
	})
	slog.Debug("Passenger boarded",
		"id", p.ID,
		"floor", e.Floor,
		"clock", e.Clock,
		"destination", p.Destination)
}

// Depart removes p from the car and records its wait sample.
// Returns false if p was not onboard.
func (e *Elevator) Depart(p types.Passenger) bool {
	if !e.IsOnboard(p.ID) {
		return false
	}
	delete(e.Onboard, p.ID)
	wait := e.Clock - p.ArrivalTime
	e.Waits = append(e.Waits, wait)
	e.Events = append(e.Events, types.Event{
		Kind:        types.Depart,
		Clock:       e.Clock,
		Floor:       e.Floor,
		PassengerID: p.ID,
		Wait:        wait,
	})
	slog.Debug("Passenger departed", "id", p.ID, "floor", e.Floor, "clock", e.Clock, "wait", wait)
	return true
}

// AverageWait is the mean of the recorded wait samples.
func (e *Elevator) AverageWait() (float64, error) {
	return utils.Mean(e.Waits)
}

// Snapshot returns a deep copy that shares no maps or slices with e.
func (e *Elevator) Snapshot() (*Elevator, error) {
	snapshot := new(Elevator)
	if err := deepcopy.Copy(snapshot, e); err != nil {
		return nil, err
	}
	return snapshot, nil
}
