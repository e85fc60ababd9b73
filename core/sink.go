package core

import (
	"io"
	"os"
)

// Sink selects a node's live output stream. It is distinct from the
// optional log file, which may be active at the same time.
type Sink int8

const (
	// SinkUnchanged keeps the node's current sink
	SinkUnchanged Sink = -1

	// SinkNone discards stream output (the log file is unaffected)
	SinkNone Sink = 0
	// SinkStdout writes records to standard output
	SinkStdout Sink = 1
	// SinkStderr writes records to standard error
	SinkStderr Sink = 2
	// SinkDiag writes records to the secondary diagnostic stream
	SinkDiag Sink = 3
)

// Stream destinations are variables so tests can capture sink output.
var (
	StdoutStream io.Writer = os.Stdout
	StderrStream io.Writer = os.Stderr
	DiagStream   io.Writer = os.Stderr
)

// Writer maps a selector to its destination stream. SinkNone, SinkUnchanged
// and out-of-range selectors map to nil.
func (s Sink) Writer() io.Writer {
	switch s {
	case SinkStdout:
		return StdoutStream
	case SinkStderr:
		return StderrStream
	case SinkDiag:
		return DiagStream
	default:
		return nil
	}
}

// Valid reports whether s is a concrete selector (not a sentinel)
func (s Sink) Valid() bool {
	return s >= SinkNone && s <= SinkDiag
}
