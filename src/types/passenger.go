package types

import "fmt"

// Passenger is one rider read from an input file. It is never modified after load.
type Passenger struct {
	ID          string
	ArrivalTime int
	Origin      int
	Destination int
}

func (p Passenger) String() string {
	return fmt.Sprintf("%s at %d from %d to %d", p.ID, p.ArrivalTime, p.Origin, p.Destination)
}

// Validate checks a passenger against a building with floors 1..floors.
func (p Passenger) Validate(floors int) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("empty id")
	case p.ArrivalTime < 0:
		return fmt.Errorf("passenger %s: negative arrival time %d", p.ID, p.ArrivalTime)
	case p.Origin < 1 || p.Origin > floors:
		return fmt.Errorf("passenger %s: origin %d outside 1..%d", p.ID, p.Origin, floors)
	case p.Destination < 1 || p.Destination > floors:
		return fmt.Errorf("passenger %s: destination %d outside 1..%d", p.ID, p.Destination, floors)
	case p.Origin == p.Destination:
		return fmt.Errorf("passenger %s: origin equals destination (%d)", p.ID, p.Origin)
	}
	return nil
}

// Roster is the passenger list of one run together with the building height.
type Roster struct {
	Floors     int
	Passengers []Passenger
}

func (r Roster) Len() int { return len(r.Passengers) }

// Validate returns a *RecordError for the first invalid or duplicated passenger.
// Line numbers assume the file layout: floor count on line 1, passenger i on line i+2.
func (r Roster) Validate() error {
	if r.Floors < 1 {
		return &RecordError{Line: 1, Reason: fmt.Sprintf("floor count must be positive, got %d", r.Floors)}
	}
	seen := make(map[string]bool, len(r.Passengers))
	for i, p := range r.Passengers {
		if err := p.Validate(r.Floors); err != nil {
			return &RecordError{Line: i + 2, Reason: err.Error()}
		}
		if seen[p.ID] {
			return &RecordError{Line: i + 2, Reason: fmt.Sprintf("duplicate id %s", p.ID)}
		}
		seen[p.ID] = true
	}
	return nil
}

// MaxArrival returns the latest arrival tick in the roster, or 0 when empty.
func (r Roster) MaxArrival() int {
	latest := 0
	for _, p := range r.Passengers {
		latest = max(latest, p.ArrivalTime)
	}
	return latest
}
