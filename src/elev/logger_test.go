package elev

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCompactAttr(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	if got := compactAttr(nil, slog.Time(slog.TimeKey, ts)); got.Value.String() != "07:08:09" {
		t.Errorf("time attr = %q, want 07:08:09", got.Value.String())
	}
	src := &slog.Source{File: "/home/dev/sweepsim/src/elev/elev.go", Line: 42}
	if got := compactAttr(nil, slog.Any(slog.SourceKey, src)); got.Value.String() != "elev.go:42" {
		t.Errorf("source attr = %q, want elev.go:42", got.Value.String())
	}
	if got := compactAttr(nil, slog.Int("floor", 3)); got.Value.Int64() != 3 {
		t.Errorf("other attr changed: %v", got)
	}
}

func TestInitLoggerWritesAndClosesFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "sim.log")
	closeLog, err := InitLogger(LoggerOptions{File: path})
	if err != nil {
		t.Fatal(err)
	}
	slog.Info("Run complete", "run", 7)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	if err := closeLog(); err == nil {
		t.Error("second close succeeded, file was not closed by the first")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Run complete") || !strings.Contains(string(data), "run=7") {
		t.Errorf("log file = %q", data)
	}
}

func TestInitLoggerBadPath(t *testing.T) {
	_, err := InitLogger(LoggerOptions{File: filepath.Join(t.TempDir(), "missing", "sim.log")})
	if err == nil {
		t.Error("opening a log file in a missing directory succeeded")
	}
}
