package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/igmartin/mlog/core"
	"github.com/igmartin/mlog/formatter"
)

// Logger is one node of the module tree. Nodes are created lazily by
// GetLogger, shared between callers by dotted name, and unlinked from
// the tree when the last Handle referencing them is released.
//
// All configuration is guarded by the node's own mutex. The reference
// count lives outside the mutex; it counts live Handles plus one per
// live child (a child keeps its parent alive, never the reverse).
type Logger struct {
	mu        sync.Mutex
	name      string // own path segment; empty for root
	level     core.Level
	sinkSel   core.Sink
	sink      io.Writer
	file      *os.File
	filename  string // resolved absolute path of the open log file
	propagate bool
	parent    *Logger // set at creation, cleared during teardown
	children  map[string]*Logger
	refs      atomic.Int64
}

func newLogger(name string, parent *Logger) *Logger {
	l := &Logger{
		name:      name,
		level:     core.NotSet,
		sinkSel:   core.SinkNone,
		propagate: true,
		parent:    parent,
		children:  make(map[string]*Logger),
	}
	l.refs.Store(1)
	return l
}

// Name returns the node's own path segment ("root" for the root node)
func (l *Logger) Name() string {
	return l.displayName()
}

func (l *Logger) displayName() string {
	if l.parent == nil && l.name == "" {
		return "root"
	}
	return l.name
}

// GetLevel returns the node's current threshold
func (l *Logger) GetLevel() core.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel sets the threshold and returns the previous one. The input
// is clamped into [MinLevel, MaxLevel]; core.Unchanged is a no-op read.
func (l *Logger) SetLevel(level core.Level) core.Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.level
	if level != core.Unchanged {
		l.level = core.ClampLevel(level)
	}
	return cur
}

// SetPropagation switches upward propagation and returns the previous mode
func (l *Logger) SetPropagation(mode bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.propagate
	l.propagate = mode
	return cur
}

// SetSink selects the node's output stream and returns the previous
// selector. core.SinkUnchanged leaves the current selection untouched.
func (l *Logger) SetSink(sel core.Sink) core.Sink {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.sinkSel
	if sel.Valid() {
		l.sinkSel = sel
		l.sink = sel.Writer()
	}
	return cur
}

// SetLogFile opens path in append mode as the node's log file. The path
// is resolved to its canonical absolute form first; if it equals the
// currently active file the call is a no-op. Otherwise the previous
// file is closed before the new one is opened. An empty path closes the
// current file without opening another.
//
// Open failures never surface to the caller: the previous file stays
// closed and the error is reported as a diagnostic through this node.
func (l *Logger) SetLogFile(path string) {
	var newname string
	var ferr error

	if path != "" {
		// newname stays empty on failure, which closes the previous
		// file below without opening a replacement.
		newname, ferr = canonicalPath(path)
	}

	l.mu.Lock()
	if newname != l.filename {
		if cerr := l.closeFileLocked(); cerr != nil {
			ferr = multierr.Append(ferr, cerr)
		}
		if newname != "" {
			f, err := os.OpenFile(newname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				ferr = multierr.Append(ferr, err)
			} else {
				l.file = f
				l.filename = newname
			}
		}
	}
	l.mu.Unlock()

	// Emission takes the node lock again, so report only after unlocking.
	if ferr != nil {
		l.Error("error opening log file '%s': %v", path, ferr)
	}
}

// canonicalPath resolves path to an absolute, symlink-free form. A file
// that does not exist yet is created (truncated) purely to discover its
// canonical path; the real open for writing happens afterwards.
func canonicalPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		f, cerr := os.Create(path)
		if cerr != nil {
			return "", cerr
		}
		if cerr = f.Close(); cerr != nil {
			return "", cerr
		}
		if resolved, err = filepath.EvalSymlinks(path); err != nil {
			return "", err
		}
	}
	return filepath.Abs(resolved)
}

// closeFileLocked closes the active log file. Callers hold l.mu.
func (l *Logger) closeFileLocked() error {
	if l.file == nil {
		return nil
	}
	err := multierr.Append(l.file.Sync(), l.file.Close())
	l.file = nil
	l.filename = ""
	return err
}

// Log emits a message at an arbitrary level, clamped into the valid range
func (l *Logger) Log(level core.Level, format string, args ...interface{}) {
	l.emit(core.ClampLevel(level), format, args)
}

// Critical emits a message at critical level
func (l *Logger) Critical(format string, args ...interface{}) {
	l.emit(core.CriticalLevel, format, args)
}

// Error emits a message at error level
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(core.ErrorLevel, format, args)
}

// Warning emits a message at warning level
func (l *Logger) Warning(format string, args ...interface{}) {
	l.emit(core.WarningLevel, format, args)
}

// Info emits a message at info level
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(core.InfoLevel, format, args)
}

// Debug emits a message at debug level
func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(core.DebugLevel, format, args)
}

// emit builds the record once, from the originating node's name, then
// walks the ancestor chain while propagation allows. Each visited node
// applies its own threshold, so a record suppressed at the leaf may
// still surface at an ancestor and vice versa.
func (l *Logger) emit(level core.Level, format string, args []interface{}) {
	msg := formatter.Message(format, args...)
	rec := formatter.Line(time.Now(), l.displayName(), core.ThreadTag(), level, msg)

	node := l
	for node != nil {
		node.mu.Lock()

		if level >= node.level {
			if node.sink != nil {
				io.WriteString(node.sink, rec+"\n")
			}
			if node.file != nil {
				// os.File writes are unbuffered; each record reaches
				// the file before the call returns.
				node.file.WriteString(rec + "\n")
			}
		}

		next := node.parent
		prop := node.propagate
		node.mu.Unlock()

		if !prop {
			break
		}
		node = next
	}
}
