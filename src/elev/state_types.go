// State types are defined in elev package to make method receivers possible in elev.go.
package elev

import "sweepsim/src/types"

// Elevator is the physical state of the single car: position, clock and riders.
type Elevator struct {
	TopFloor int
	Floor    int
	Clock    int
	Onboard  map[string]types.Passenger
	Waits    []int         // one sample per departure, in departure order
	Events   []types.Event // board/depart log
}
