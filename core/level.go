package core

import "strings"

// Level represents the severity threshold of a log record
type Level int8

const (
	// Unchanged is the sentinel accepted by every setter; it means
	// "keep the current value" and is never stored in a node.
	Unchanged Level = -1

	// NotSet lets every record through at this node
	NotSet Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 1
	// InfoLevel for general informational messages
	InfoLevel Level = 2
	// WarningLevel for warning messages (default for the root node)
	WarningLevel Level = 3
	// ErrorLevel for error messages
	ErrorLevel Level = 4
	// CriticalLevel for unrecoverable conditions
	CriticalLevel Level = 5

	// MinLevel and MaxLevel bound every stored threshold
	MinLevel = NotSet
	MaxLevel = CriticalLevel
)

// String returns the lowercase name used inside record lines
func (l Level) String() string {
	switch l {
	case NotSet:
		return "unset"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name, as produced by Level.String, back to
// its value. Matching is case-insensitive and ignores surrounding
// whitespace; an unknown name reports false and WarningLevel.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unset", "notset":
		return NotSet, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warning", "warn":
		return WarningLevel, true
	case "error":
		return ErrorLevel, true
	case "critical":
		return CriticalLevel, true
	default:
		return WarningLevel, false
	}
}

// ClampLevel folds an arbitrary level value into [MinLevel, MaxLevel].
// Negative input is treated by magnitude, so ClampLevel(-3) == WarningLevel.
// Callers handle the Unchanged sentinel before clamping.
func ClampLevel(l Level) Level {
	if l < 0 {
		l = -l
	}
	if l > MaxLevel {
		return MaxLevel
	}
	if l < MinLevel {
		return MinLevel
	}
	return l
}
