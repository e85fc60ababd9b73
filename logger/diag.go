package logger

import (
	"io"
	"time"

	"github.com/igmartin/mlog/core"
	"github.com/igmartin/mlog/formatter"
)

// intDiag reports a failure from inside the facility itself. It is used
// only where logging through a node is impossible (the node is mid-
// teardown), and writes a regular record line to the stderr stream.
func intDiag(format string, args ...interface{}) {
	msg := formatter.Message(format, args...)
	rec := formatter.Line(time.Now(), "_logging", core.ThreadTag(), core.ErrorLevel, msg)
	io.WriteString(core.StderrStream, rec+"\n")
}
