package executor

import (
	"fmt"
	"log/slog"

	"sweepsim/src/dispatcher"
	"sweepsim/src/types"
	"sweepsim/src/utils"
)

// RosterSource hands out the roster for each run. Every call must return a roster
// that shares no mutable state with rosters returned earlier.
type RosterSource interface {
	Roster(run int) (types.Roster, error)
}

// Report holds the per-run averages in run order and their mean.
type Report struct {
	Runs         []float64 `json:"runs"`
	GrandAverage float64   `json:"grand_average"`
}

type Executor struct {
	source RosterSource
	opts   dispatcher.Options
}

func New(source RosterSource, opts dispatcher.Options) *Executor {
	return &Executor{source: source, opts: opts}
}

// RunOnce executes a single full simulation on a fresh roster and returns its average wait.
func (ex *Executor) RunOnce(run int) (float64, error) {
	roster, err := ex.source.Roster(run)
	if err != nil {
		return 0, fmt.Errorf("run %d: load roster: %w", run, err)
	}
	sweep, err := dispatcher.New(roster, ex.opts)
	if err != nil {
		return 0, fmt.Errorf("run %d: %w", run, err)
	}
	result, err := sweep.Run()
	if err != nil {
		return 0, fmt.Errorf("run %d: %w", run, err)
	}
	slog.Info("Run complete", "run", run, "averageWait", result.AverageWait, "sweepPairs", result.SweepPairs)
	return result.AverageWait, nil
}

// Run executes n independent runs and reports the mean of their average waits.
// The first failing run aborts the batch.
func (ex *Executor) Run(n int) (Report, error) {
	report := Report{Runs: make([]float64, 0, max(n, 0))}
	for run := range max(n, 0) {
		avg, err := ex.RunOnce(run)
		if err != nil {
			return report, err
		}
		report.Runs = append(report.Runs, avg)
	}
	grand, err := utils.Mean(report.Runs)
	if err != nil {
		return report, fmt.Errorf("no runs: %w", err)
	}
	report.GrandAverage = grand
	slog.Info("Overall average", "runs", n, "grandAverage", grand)
	return report, nil
}

// SourceFunc adapts a plain function to RosterSource.
type SourceFunc func(run int) (types.Roster, error)

func (f SourceFunc) Roster(run int) (types.Roster, error) { return f(run) }
