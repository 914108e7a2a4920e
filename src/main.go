package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sweepsim/src/arrivals"
	"sweepsim/src/config"
	"sweepsim/src/dispatcher"
	"sweepsim/src/elev"
	"sweepsim/src/executor"
	"sweepsim/src/roster"
	"sweepsim/src/timer"
	"sweepsim/src/types"
)

func main() {
	if err := run(); err != nil {
		slog.Error("sweepsim failed", "error", err)
		os.Exit(1)
	}
}

// run parses flags and executes the requested command. Deferred cleanup always runs before main exits.
func run() error {
	settings := config.Default()
	flag.IntVar(&settings.Floors, "floors", config.DefaultFloors, "Number of floors (generated rosters)")
	flag.Float64Var(&settings.Rate, "rate", config.DefaultRate, "Average passenger arrivals per time unit")
	flag.IntVar(&settings.MaxTime, "max-time", config.DefaultMaxTime, "Last time unit passengers can arrive in")
	flag.IntVar(&settings.Runs, "runs", config.DefaultRuns, "Number of simulation runs")
	flag.IntVar(&settings.MaxSweepPairs, "max-sweeps", 0, "Sweep pairs before a run is declared stuck (0 = computed)")
	flag.BoolVar(&settings.Fresh, "fresh", false, "Generate a new roster for every run instead of reusing one")
	flag.Uint64Var(&settings.Seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	policy := flag.String("policy", settings.Policy.String(), "Call policy: exact or arrived")
	inPath := flag.String("in", "", "Load the roster from this file instead of generating one")
	genPath := flag.String("gen", "", "Write generated roster(s) to this path and exit")
	genCount := flag.Int("gen-count", 1, "With -gen, write a numbered series of this many files using the path as prefix")
	format := flag.String("format", "text", "Output format: text or json")
	logPath := flag.String("log", "", "Also write logs to this file")
	pretty := flag.Bool("pretty", false, "Colored log output")
	debug := flag.Bool("debug", false, "Log every floor evaluation, boarding and departure")
	flag.Parse()

	closeLog, err := elev.InitLogger(elev.LoggerOptions{Debug: *debug, File: *logPath, Pretty: *pretty})
	if err != nil {
		return err
	}
	defer closeLog()

	if settings.Policy, err = types.ParseCallPolicy(*policy); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	gen, err := arrivals.NewGenerator(arrivals.Params{
		Floors:  settings.Floors,
		Rate:    settings.Rate,
		MaxTime: settings.MaxTime,
	}, settings.Seed, settings.Seed^0x9e3779b97f4a7c15)
	if err != nil {
		return err
	}

	if *genPath != "" {
		return writeGenerated(gen, *genPath, *genCount)
	}

	source, err := rosterSource(gen, *inPath, settings.Fresh)
	if err != nil {
		return err
	}

	slog.Info("Starting simulation", "runs", settings.Runs, "policy", settings.Policy, "seed", settings.Seed)
	stopwatch := timer.Start()
	ex := executor.New(source, dispatcher.Options{
		Policy:        settings.Policy,
		MaxSweepPairs: settings.MaxSweepPairs,
	})
	report, err := ex.Run(settings.Runs)
	if err != nil {
		return err
	}
	elapsed := stopwatch.Milliseconds()

	if strings.EqualFold(*format, "json") {
		payload, err := json.MarshalIndent(struct {
			executor.Report
			ElapsedMs float64 `json:"elapsed_ms"`
		}{report, elapsed}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
		return nil
	}
	for _, avg := range report.Runs {
		fmt.Println(avg)
	}
	fmt.Printf("Overall average for %d runs is %g\n", len(report.Runs), report.GrandAverage)
	fmt.Printf("%.3f ms\n", elapsed)
	return nil
}

// rosterSource picks where each run's passengers come from: a file, one generated
// roster replayed every run, or a new roster per run.
func rosterSource(gen *arrivals.Generator, inPath string, fresh bool) (executor.RosterSource, error) {
	switch {
	case inPath != "":
		loaded, err := roster.Load(inPath)
		if err != nil {
			return nil, err
		}
		return roster.NewStaticSource(loaded), nil
	case fresh:
		return arrivals.NewSource(gen), nil
	default:
		return roster.NewStaticSource(gen.Generate()), nil
	}
}

func writeGenerated(gen *arrivals.Generator, path string, count int) error {
	if count <= 1 {
		if err := roster.Save(path, gen.Generate()); err != nil {
			return err
		}
		slog.Info("Wrote roster", "path", path)
		return nil
	}
	paths, err := gen.WriteFiles(filepath.Dir(path), filepath.Base(path), count)
	if err != nil {
		return err
	}
	slog.Info("Wrote rosters", "count", len(paths), "first", paths[0])
	return nil
}
