package logger

import (
	"strings"
	"sync"

	"github.com/igmartin/mlog/core"
)

var (
	rootOnce sync.Once
	root     *Logger
)

// getRoot creates the root node exactly once, on first use. The root
// has no parent, so the destruction cascade always halts at it; its
// reference count starts at 1 and never reaches zero.
func getRoot() *Logger {
	rootOnce.Do(func() {
		root = newLogger("", nil)
		root.level = core.WarningLevel
		root.propagate = false
	})
	return root
}

// GetRoot returns a Handle on the root node, applying any options
func GetRoot(opts ...Option) *Handle {
	r := getRoot()
	r.retain()
	applyOptions(r, opts)
	return newHandle(r)
}

// GetLogger resolves (creating as needed) the node for the dotted
// module name and returns a Handle on it. A zero-length name resolves
// to the root. Resolution past core.MaxModuleSubfields segments stops
// early with an error diagnostic on the furthest node reached, which
// is returned so callers always get a usable logger.
//
// Options apply to the returned node only; absent options leave the
// node's current configuration untouched.
func GetLogger(name string, opts ...Option) *Handle {
	cur := getRoot()
	cur.retain()

	if name != "" {
		for i, seg := range strings.Split(name, ".") {
			if i >= core.MaxModuleSubfields {
				cur.Error("max number of module subfields exceeded")
				break
			}
			next := cur.child(seg)
			cur.release()
			cur = next
		}
	}

	if cur == nil {
		// A resolved path never yields an empty handle.
		panic("logger: resolution produced no node for module " + name)
	}

	applyOptions(cur, opts)
	return newHandle(cur)
}

// child returns a counted reference to the child node for one path
// segment, creating it if missing. Only the current node's lock is
// held; a dying child (reference count already at zero) is replaced
// by a fresh node, and the dying node's teardown detects the swap.
func (l *Logger) child(seg string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.children[seg]; ok && c.tryRetain() {
		return c
	}

	c := newLogger(seg, l)
	l.retain() // the child's owning reference to this node
	l.children[seg] = c
	return c
}

// retain adds an owning reference
func (l *Logger) retain() {
	l.refs.Add(1)
}

// tryRetain adds an owning reference unless the count has already hit
// zero. Zero is final: a node past it is mid-teardown and must not be
// revived (weak-reference lock semantics).
func (l *Logger) tryRetain() bool {
	for {
		n := l.refs.Load()
		if n == 0 {
			return false
		}
		if l.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release drops one owning reference and, on the last one, runs the
// destruction protocol.
func (l *Logger) release() {
	if l.refs.Add(-1) > 0 {
		return
	}
	l.destroy()
}

// destroy unlinks an unreachable node from its parent and tears it
// down. Lock order is fixed: the node's own lock first, then the
// parent's. This is the only place two node locks overlap; resolution
// holds at most one at a time, so no cycle can form.
func (l *Logger) destroy() {
	l.mu.Lock()

	if len(l.children) != 0 {
		// Still a routing waypoint; children keep us referenced.
		l.mu.Unlock()
		return
	}

	parent := l.parent
	if parent == nil {
		// Root halts every cascade.
		l.mu.Unlock()
		return
	}

	parent.mu.Lock()
	if parent.children[l.name] == l {
		// Confirmed orphan: no resolver installed a replacement, so
		// remove the entry while the parent lock still blocks lookups.
		delete(parent.children, l.name)
	}
	parent.mu.Unlock()

	err := l.closeFileLocked()
	l.parent = nil
	l.mu.Unlock()

	if err != nil {
		intDiag("error closing log file for module %s: %v", l.name, err)
	}

	// Dropped after the parent lock is gone: this may recursively
	// destroy the parent, and re-entrant acquisition would deadlock.
	parent.release()
}

// Handle is a counted reference to a Logger node. Handles are what
// GetLogger and GetRoot return; the node stays alive while at least
// one Handle on it (or on a descendant) exists. Release is idempotent
// per Handle.
type Handle struct {
	*Logger
	once sync.Once
}

func newHandle(l *Logger) *Handle {
	return &Handle{Logger: l}
}

// Release drops this Handle's reference. When it was the last one and
// the node has no children, the node is unlinked from the tree; the
// collapse cascades upward through ancestors that become unreachable
// and childless themselves.
func (h *Handle) Release() {
	h.once.Do(h.Logger.release)
}

// Option applies an optional setting to a resolved node
type Option func(*Logger)

// WithLevel sets the node's threshold during resolution
func WithLevel(level core.Level) Option {
	return func(l *Logger) {
		l.SetLevel(level)
	}
}

// WithSink selects the node's output stream during resolution
func WithSink(sel core.Sink) Option {
	return func(l *Logger) {
		l.SetSink(sel)
	}
}

func applyOptions(l *Logger, opts []Option) {
	for _, opt := range opts {
		opt(l)
	}
}
