package utils

import (
	"errors"
	"slices"
	"testing"

	"sweepsim/src/types"
)

func TestMean(t *testing.T) {
	if _, err := Mean([]int{}); !errors.Is(err, types.ErrEmptySample) {
		t.Errorf("Mean(empty) err = %v, want ErrEmptySample", err)
	}
	got, err := Mean([]float64{2, 4, 6})
	if err != nil || got != 4 {
		t.Errorf("Mean([2 4 6]) = %g, %v; want 4", got, err)
	}
	got, err = Mean([]int{1, 2})
	if err != nil || got != 1.5 {
		t.Errorf("Mean([1 2]) = %g, %v; want 1.5", got, err)
	}
}

func TestForEachPassengerVisitsAllWhileRemoving(t *testing.T) {
	passengers := []types.Passenger{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	var visited []string
	kept := ForEachPassenger(passengers, func(p types.Passenger) bool {
		visited = append(visited, p.ID)
		return p.ID == "a" || p.ID == "b"
	})
	if !slices.Equal(visited, []string{"a", "b", "c", "d"}) {
		t.Errorf("visited %v, want all four", visited)
	}
	if got := PassengerIDs(kept); !slices.Equal(got, []string{"c", "d"}) {
		t.Errorf("kept %v, want [c d]", got)
	}
}
