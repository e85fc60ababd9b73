package formatter

import (
	"bytes"
	"sync"
)

const (
	// TimeLayout is the fixed timestamp pattern of every record line
	TimeLayout = "2006/01/02:15:04:05"

	// MaxModuleWidth is the display width a module name is silently
	// truncated to inside a record line.
	MaxModuleWidth = 8

	// MaxMessageLen is the byte length a formatted message is silently
	// truncated to. Truncation is not an error; logging has no failure
	// path of its own.
	MaxMessageLen = 256
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
