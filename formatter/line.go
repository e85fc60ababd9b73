package formatter

import (
	"fmt"
	"time"

	"github.com/igmartin/mlog/core"
)

// Message renders a printf-style template into the final message text,
// truncated to MaxMessageLen bytes. It never fails: fmt embeds its own
// %! diagnostics into the output for mismatched verbs, which replaces
// the broken portion instead of aborting the call.
func Message(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > MaxMessageLen {
		msg = msg[:MaxMessageLen]
	}
	return msg
}

// Line builds one complete record line (without trailing newline):
//
//	<timestamp> <module><sep><threadtag>[<levelname>] <message>
//
// <sep> is ": " only when the module name is non-empty, and the module
// name is truncated to MaxModuleWidth. Given fixed inputs the output is
// fully deterministic.
func Line(t time.Time, module, threadTag string, level core.Level, msg string) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.Write(t.AppendFormat(buf.AvailableBuffer(), TimeLayout))
	buf.WriteByte(' ')

	if module != "" {
		if len(module) > MaxModuleWidth {
			module = module[:MaxModuleWidth]
		}
		buf.WriteString(module)
		buf.WriteString(": ")
	}

	buf.WriteString(threadTag)

	buf.WriteByte('[')
	buf.WriteString(level.String())
	buf.WriteString("] ")
	buf.WriteString(msg)

	return buf.String()
}
