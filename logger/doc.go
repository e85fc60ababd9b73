// Package logger is the public API of mlog: a tree of named logger
// nodes, each independently configurable, where a record logged at a
// leaf cascades upward through ancestors until a non-propagating node
// or the root is reached.
//
// Nodes are identified by dotted module names and created lazily:
//
//	log := logger.GetLogger("net.addr", logger.WithLevel(core.DebugLevel))
//	defer log.Release()
//	log.Info("parsed %s", host)
//
// All calls for the same name share one node per path segment. The
// returned Handle is a counted reference; releasing the last Handle on
// a node with no children unlinks it from the tree, and the collapse
// cascades through ancestors that become unreachable and childless
// themselves. Ownership points upward only — a child keeps its parent
// alive, a parent never keeps a child alive — so intermediate nodes
// survive exactly as long as some descendant or Handle needs them.
//
// Each node carries a severity threshold, an optional output stream,
// an optional log file, and a propagate flag. During a cascade every
// visited node applies its own threshold, so a record suppressed at
// the leaf may still surface at an ancestor with a lower threshold.
//
// Emission never fails visibly: formatting problems degrade to
// self-describing text, configuration problems are reported through
// the logging channel itself, and over-long names and messages are
// silently truncated.
package logger
