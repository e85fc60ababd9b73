package core

import (
	"fmt"
	"hash/fnv"
	"runtime"
	"strconv"
)

// MaxModuleSubfields caps the number of dot-separated segments a module
// name may resolve through before resolution stops early.
const MaxModuleSubfields = 32

// mainGoroutine is captured during package initialization, which the
// runtime guarantees to happen on the main goroutine.
var mainGoroutine = goroutineID()

// ThreadTag returns the per-goroutine tag embedded in record lines:
// empty for the main goroutine, otherwise "(<hex>) " where <hex> is a
// short hash of the calling goroutine's identity.
func ThreadTag() string {
	id := goroutineID()
	if id == mainGoroutine {
		return ""
	}
	h := fnv.New32a()
	fmt.Fprintf(h, "%d", id)
	return fmt.Sprintf("(%x) ", h.Sum32())
}

// goroutineID parses the current goroutine's id from the first line of
// a stack dump ("goroutine <id> [running]:"); the runtime exposes no
// direct accessor.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[:n]

	const prefix = "goroutine "
	if len(s) <= len(prefix) {
		return 0
	}
	s = s[len(prefix):]
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	id, err := strconv.ParseUint(string(s[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
