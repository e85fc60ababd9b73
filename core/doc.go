// Package core defines the shared vocabulary of the mlog module.
//
// It provides the Level type for severity thresholds, the Sink type for
// stream selection, and the per-goroutine thread tag used in record
// lines. Both Level and Sink reserve -1 as the Unchanged sentinel, the
// value every setter accepts to mean "keep the current configuration".
//
// The stream destinations behind the Sink selectors are package
// variables so tests can swap them for in-memory buffers.
package core
