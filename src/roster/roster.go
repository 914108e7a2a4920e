// Package roster reads and writes passenger input files.
//
// File format:
//
//	<nbr_floors>
//	<id> <arrival_time> <origin> <destination>
//	...
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sweepsim/src/types"
)

// Parse reads a roster and rejects the first malformed line with a *types.RecordError.
// Blank lines are ignored.
func Parse(r io.Reader) (types.Roster, error) {
	var roster types.Roster
	seen := make(map[string]bool)
	haveFloors := false
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if !haveFloors {
			floors, err := parseFloors(fields)
			if err != nil {
				return types.Roster{}, &types.RecordError{Line: line, Reason: err.Error()}
			}
			roster.Floors = floors
			haveFloors = true
			continue
		}
		p, err := parsePassenger(fields)
		if err == nil {
			err = p.Validate(roster.Floors)
		}
		if err == nil && seen[p.ID] {
			err = fmt.Errorf("duplicate id %s", p.ID)
		}
		if err != nil {
			return types.Roster{}, &types.RecordError{Line: line, Reason: err.Error()}
		}
		seen[p.ID] = true
		roster.Passengers = append(roster.Passengers, p)
	}
	if err := scanner.Err(); err != nil {
		return types.Roster{}, fmt.Errorf("read roster: %w", err)
	}
	if !haveFloors {
		return types.Roster{}, &types.RecordError{Line: line + 1, Reason: "missing floor count"}
	}
	return roster, nil
}

func parseFloors(fields []string) (int, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("floor count line has %d fields, want 1", len(fields))
	}
	floors, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("floor count %q is not an integer", fields[0])
	}
	if floors < 1 {
		return 0, fmt.Errorf("floor count must be positive, got %d", floors)
	}
	return floors, nil
}

func parsePassenger(fields []string) (types.Passenger, error) {
	if len(fields) != 4 {
		return types.Passenger{}, fmt.Errorf("got %d fields, want 4 (id arrival origin destination)", len(fields))
	}
	names := [3]string{"arrival time", "origin", "destination"}
	var values [3]int
	for i := range values {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return types.Passenger{}, fmt.Errorf("%s %q is not an integer", names[i], fields[i+1])
		}
		values[i] = v
	}
	return types.Passenger{
		ID:          fields[0],
		ArrivalTime: values[0],
		Origin:      values[1],
		Destination: values[2],
	}, nil
}

// Load parses the roster file at path.
func Load(path string) (types.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Roster{}, err
	}
	defer f.Close()
	roster, err := Parse(f)
	if err != nil {
		return types.Roster{}, fmt.Errorf("%s: %w", path, err)
	}
	return roster, nil
}

// Write emits roster in the file format read by Parse.
func Write(w io.Writer, roster types.Roster) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, roster.Floors)
	for _, p := range roster.Passengers {
		fmt.Fprintf(bw, "%s %d %d %d\n", p.ID, p.ArrivalTime, p.Origin, p.Destination)
	}
	return bw.Flush()
}

// Save writes roster to path, replacing any existing file.
func Save(path string, roster types.Roster) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Write(f, roster)
}
