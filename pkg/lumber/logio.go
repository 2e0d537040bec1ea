package lumber

import (
	"bytes"
	"sync"
)

// Writer adapts a Logger to io.Writer, one log entry per line.
// Close flushes a trailing partial line.
type Writer struct {
	Log Logger

	mu      sync.Mutex
	pending bytes.Buffer
}

// NewWriter returns a new Writer that writes to the provided Logger.
func NewWriter(log Logger) *Writer {
	return &Writer{Log: log}
}

// Write logs every complete line in bs at debug level and buffers the rest.
func (w *Writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(bs)
	for {
		line, rest, found := bytes.Cut(bs, []byte{'\n'})
		if !found {
			w.pending.Write(line)
			return n, nil
		}
		w.pending.Write(line)
		w.emit()
		bs = rest
	}
}

// Close flushes buffered data, if any, as a final entry.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending.Len() > 0 {
		w.emit()
	}
	return nil
}

func (w *Writer) emit() {
	w.Log.Debugf("%s", w.pending.String())
	w.pending.Reset()
}
