package config

import (
	"errors"
	"fmt"

	"sweepsim/src/types"
)

const (
	BottomFloor     = 1
	StartClock      = 1
	FirstPassenger  = 100
	DefaultFloors   = 10
	DefaultRate     = 1.0
	DefaultMaxTime  = 10
	DefaultRuns     = 100
	LogTimeFormat   = "15:04:05"
	InputFileSuffix = ".in"
)

// Settings carries everything a batch of runs needs. MaxSweepPairs == 0 selects the computed bound.
type Settings struct {
	Floors        int
	Rate          float64
	MaxTime       int
	Runs          int
	Policy        types.CallPolicy
	MaxSweepPairs int
	Fresh         bool
	Seed          uint64
}

func Default() Settings {
	return Settings{
		Floors:  DefaultFloors,
		Rate:    DefaultRate,
		MaxTime: DefaultMaxTime,
		Runs:    DefaultRuns,
		Policy:  types.Arrived,
	}
}

// Validate rejects settings no run could be built from.
func (s Settings) Validate() error {
	var errs []error
	if s.Floors < 2 {
		errs = append(errs, fmt.Errorf("floors must be >= 2, got %d", s.Floors))
	}
	if s.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate must be > 0, got %g", s.Rate))
	}
	if s.MaxTime < 1 {
		errs = append(errs, fmt.Errorf("max time must be >= 1, got %d", s.MaxTime))
	}
	if s.Runs < 1 {
		errs = append(errs, fmt.Errorf("runs must be >= 1, got %d", s.Runs))
	}
	if s.MaxSweepPairs < 0 {
		errs = append(errs, fmt.Errorf("max sweep pairs must be >= 0, got %d", s.MaxSweepPairs))
	}
	if _, err := types.ParseCallPolicy(s.Policy.String()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
