package utils

import "sweepsim/src/types"

type number interface {
	~int | ~int64 | ~float64
}

// Mean returns the arithmetic mean of samples, or types.ErrEmptySample when there are none.
func Mean[T number](samples []T) (float64, error) {
	if len(samples) == 0 {
		return 0, types.ErrEmptySample
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	return sum / float64(len(samples)), nil
}

// ForEachPassenger visits every passenger in order and drops the ones for which action returns true.
// Removing a passenger never causes the next one to be skipped.
func ForEachPassenger(passengers []types.Passenger, action func(p types.Passenger) (remove bool)) []types.Passenger {
	kept := passengers[:0]
	for _, p := range passengers {
		if !action(p) {
			kept = append(kept, p)
		}
	}
	clear(passengers[len(kept):])
	return kept
}

func PassengerIDs(passengers []types.Passenger) []string {
	ids := make([]string, len(passengers))
	for i, p := range passengers {
		ids[i] = p.ID
	}
	return ids
}
