package types

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySample       = errors.New("average requested over zero samples")
	ErrNonTerminatingRun = errors.New("run did not terminate")
	ErrInvalidRecord     = errors.New("invalid record")
)

// RecordError reports a malformed input line. Line is 1-based.
type RecordError struct {
	Line   int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrInvalidRecord, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrInvalidRecord }

// NonTerminatingRunError is returned once a run exceeds its sweep pair bound with passengers left.
type NonTerminatingRunError struct {
	SweepPairs int
	Remaining  []string
}

func (e *NonTerminatingRunError) Error() string {
	return fmt.Sprintf("%s after %d sweep pairs, %d passengers left %v",
		ErrNonTerminatingRun, e.SweepPairs, len(e.Remaining), e.Remaining)
}

func (e *NonTerminatingRunError) Unwrap() error { return ErrNonTerminatingRun }
