package elev

import (
	"errors"
	"testing"

	"sweepsim/src/types"
)

func TestMoveAdvancesClock(t *testing.T) {
	e := New(5)
	if e.Floor != 1 || e.Clock != 1 {
		t.Fatalf("new elevator at floor %d clock %d, want 1/1", e.Floor, e.Clock)
	}
	e.MoveUp()
	e.MoveUp()
	e.MoveDown()
	if e.Floor != 2 {
		t.Errorf("floor = %d, want 2", e.Floor)
	}
	if e.Clock != 4 {
		t.Errorf("clock = %d, want 4", e.Clock)
	}
}

func TestBoardAndDepart(t *testing.T) {
	e := New(5)
	p := types.Passenger{ID: "100", ArrivalTime: 1, Origin: 1, Destination: 4}

	e.Board(p)
	e.Board(p)
	if len(e.Onboard) != 1 || len(e.Events) != 1 {
		t.Fatalf("double board: onboard=%d events=%d, want 1/1", len(e.Onboard), len(e.Events))
	}

	e.MoveUp()
	e.MoveUp()
	e.MoveUp()
	if !e.Depart(p) {
		t.Fatal("Depart returned false for an onboard passenger")
	}
	if e.IsOnboard(p.ID) {
		t.Error("passenger still onboard after departing")
	}
	if len(e.Waits) != 1 || e.Waits[0] != 3 {
		t.Errorf("waits = %v, want [3]", e.Waits)
	}
	last := e.Events[len(e.Events)-1]
	want := types.Event{Kind: types.Depart, Clock: 4, Floor: 4, PassengerID: "100", Wait: 3}
	if last != want {
		t.Errorf("depart event = %+v, want %+v", last, want)
	}

	if e.Depart(p) {
		t.Error("Depart returned true for a passenger not onboard")
	}
	if len(e.Waits) != 1 {
		t.Errorf("waits grew on a failed depart: %v", e.Waits)
	}
}

func TestDepartAtFirstTickRecordsWait(t *testing.T) {
	e := New(3)
	p := types.Passenger{ID: "a", ArrivalTime: 0, Origin: 2, Destination: 1}
	e.Board(p)
	e.Depart(p)
	if len(e.Waits) != 1 || e.Waits[0] != 1 {
		t.Errorf("waits = %v, want [1]", e.Waits)
	}
	if e.IsOnboard("a") {
		t.Error("passenger still onboard")
	}
}

func TestShouldCall(t *testing.T) {
	tests := []struct {
		name    string
		clock   int
		arrival int
		policy  types.CallPolicy
		want    bool
	}{
		{"exact match", 3, 3, types.ExactTick, true},
		{"exact before", 2, 3, types.ExactTick, false},
		{"exact after", 4, 3, types.ExactTick, false},
		{"arrived match", 3, 3, types.Arrived, true},
		{"arrived before", 2, 3, types.Arrived, false},
		{"arrived after", 4, 3, types.Arrived, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(10)
			e.Clock = tt.clock
			got := e.ShouldCall(types.Passenger{ID: "x", ArrivalTime: tt.arrival}, tt.policy)
			if got != tt.want {
				t.Errorf("ShouldCall = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageWait(t *testing.T) {
	e := New(4)
	if _, err := e.AverageWait(); !errors.Is(err, types.ErrEmptySample) {
		t.Fatalf("empty average err = %v, want ErrEmptySample", err)
	}
	e.Waits = []int{1, 2, 6}
	avg, err := e.AverageWait()
	if err != nil {
		t.Fatal(err)
	}
	if avg != 3 {
		t.Errorf("average = %g, want 3", avg)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	e := New(4)
	e.Board(types.Passenger{ID: "a", ArrivalTime: 1, Origin: 1, Destination: 2})
	e.Waits = append(e.Waits, 5)

	snap, err := e.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	e.Board(types.Passenger{ID: "b", ArrivalTime: 1, Origin: 1, Destination: 3})
	e.Waits[0] = 99

	if len(snap.Onboard) != 1 || !snap.IsOnboard("a") {
		t.Errorf("snapshot onboard = %v, want only a", snap.Onboard)
	}
	if snap.Waits[0] != 5 {
		t.Errorf("snapshot waits = %v, want [5]", snap.Waits)
	}
	if len(snap.Events) != 1 {
		t.Errorf("snapshot events = %d, want 1", len(snap.Events))
	}
}
