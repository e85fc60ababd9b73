// Package formatter builds the single text line emitted for each log
// record. It is pure: given a timestamp, module name, thread tag, level
// and message it always produces the same bytes, and it has no failure
// path — over-long module names and messages are silently truncated,
// and broken format templates degrade to fmt's in-line diagnostics.
//
// Lines are assembled in a pooled bytes.Buffer using Go's Append-style
// time formatting to keep the per-record allocation count low.
package formatter
