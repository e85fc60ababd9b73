package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{NotSet, "unset"},
		{DebugLevel, "debug"},
		{InfoLevel, "info"},
		{WarningLevel, "warning"},
		{ErrorLevel, "error"},
		{CriticalLevel, "critical"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		name string
		in   Level
		want Level
	}{
		{"in range", InfoLevel, InfoLevel},
		{"above max", Level(99), CriticalLevel},
		{"negative by magnitude", Level(-3), WarningLevel},
		{"negative beyond max", Level(-99), CriticalLevel},
		{"zero", NotSet, NotSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLevel(tt.in); got != tt.want {
				t.Errorf("ClampLevel(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Level
		valid bool
	}{
		{"debug", "debug", DebugLevel, true},
		{"uppercase", "ERROR", ErrorLevel, true},
		{"whitespace", " info ", InfoLevel, true},
		{"warn alias", "warn", WarningLevel, true},
		{"critical", "critical", CriticalLevel, true},
		{"unset", "unset", NotSet, true},
		{"unknown", "loud", WarningLevel, false},
		{"empty", "", WarningLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := ParseLevel(tt.input)
			if got != tt.want || valid != tt.valid {
				t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)",
					tt.input, got, valid, tt.want, tt.valid)
			}
		})
	}
}

func TestSink_Writer(t *testing.T) {
	if SinkStdout.Writer() != StdoutStream {
		t.Error("SinkStdout should map to StdoutStream")
	}
	if SinkStderr.Writer() != StderrStream {
		t.Error("SinkStderr should map to StderrStream")
	}
	if SinkDiag.Writer() != DiagStream {
		t.Error("SinkDiag should map to DiagStream")
	}
	if SinkNone.Writer() != nil {
		t.Error("SinkNone should map to nil")
	}
	if SinkUnchanged.Writer() != nil {
		t.Error("SinkUnchanged should map to nil")
	}
}

func TestSink_Valid(t *testing.T) {
	for _, s := range []Sink{SinkNone, SinkStdout, SinkStderr, SinkDiag} {
		if !s.Valid() {
			t.Errorf("Sink(%d).Valid() = false, want true", s)
		}
	}
	if SinkUnchanged.Valid() {
		t.Error("SinkUnchanged.Valid() = true, want false")
	}
	if Sink(9).Valid() {
		t.Error("Sink(9).Valid() = true, want false")
	}
}
