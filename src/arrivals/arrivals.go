// Package arrivals generates synthetic passenger rosters from a Poisson arrival process.
package arrivals

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strconv"

	"sweepsim/src/config"
	"sweepsim/src/roster"
	"sweepsim/src/types"
)

// Params describe the building and the arrival process.
type Params struct {
	Floors  int     // floors are numbered 1..Floors
	Rate    float64 // average arrivals per time unit
	MaxTime int     // arrivals fall in time units 1..MaxTime
}

func (p Params) Validate() error {
	var errs []error
	if p.Floors < 2 {
		errs = append(errs, fmt.Errorf("floors must be >= 2, got %d", p.Floors))
	}
	if p.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate must be > 0, got %g", p.Rate))
	}
	if p.MaxTime < 1 {
		errs = append(errs, fmt.Errorf("max time must be >= 1, got %d", p.MaxTime))
	}
	return errors.Join(errs...)
}

type Generator struct {
	params Params
	rnd    *rand.Rand
}

func NewGenerator(params Params, seed1, seed2 uint64) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		params: params,
		rnd:    rand.New(rand.NewPCG(seed1, seed2)),
	}, nil
}

// Generate draws one roster. Inter-arrival gaps are exponential with mean 1/Rate,
// origins are uniform over all floors and destinations uniform over the remaining ones.
func (g *Generator) Generate() types.Roster {
	roster := types.Roster{Floors: g.params.Floors}
	t := 1.0
	id := config.FirstPassenger
	for {
		t += g.rnd.ExpFloat64() / g.params.Rate
		if t >= float64(g.params.MaxTime+1) {
			break
		}
		origin := 1 + g.rnd.IntN(g.params.Floors)
		dest := 1 + g.rnd.IntN(g.params.Floors-1)
		if dest >= origin {
			dest++
		}
		roster.Passengers = append(roster.Passengers, types.Passenger{
			ID:          strconv.Itoa(id),
			ArrivalTime: int(t),
			Origin:      origin,
			Destination: dest,
		})
		id++
	}
	slog.Debug("Roster generated", "passengers", roster.Len(), "floors", roster.Floors)
	return roster
}

// WriteFiles writes count generated rosters to dir as prefix000.in, prefix001.in, ...
// and returns the paths written.
func (g *Generator) WriteFiles(dir, prefix string, count int) ([]string, error) {
	paths := make([]string, 0, count)
	for n := range count {
		path := filepath.Join(dir, fmt.Sprintf("%s%03d%s", prefix, n, config.InputFileSuffix))
		if err := roster.Save(path, g.Generate()); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Source generates a fresh roster for every run.
type Source struct {
	gen *Generator
}

func NewSource(gen *Generator) *Source { return &Source{gen: gen} }

func (s *Source) Roster(run int) (types.Roster, error) {
	return s.gen.Generate(), nil
}
