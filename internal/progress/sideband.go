package progress

import (
	"bytes"
	"regexp"
	"strconv"
	"sync"
)

var counterPattern = regexp.MustCompile(`^(?:remote:\s*)?([A-Za-z ]+):\s+\d+% \((\d+)/(\d+)\)`)

// transferPhases are the sideband phases that measure object transfer.
// Counting and enumerating finish before any data moves, so they would
// saturate the reporter early.
var transferPhases = map[string]bool{
	"Compressing objects": true,
	"Receiving objects":   true,
	"Writing objects":     true,
}

// Writer parses go-git sideband progress (lines such as
// "Receiving objects:  42% (21/50)") and feeds the counts of transfer
// phases to a Reporter. Lines are terminated by \r or \n. Other phases
// and text without counters are ignored.
type Writer struct {
	mu       sync.Mutex
	reporter *Reporter
	buf      []byte
}

// NewWriter returns a Writer that ticks reporter
func NewWriter(reporter *Reporter) *Writer {
	return &Writer{reporter: reporter}
}

// Write implements io.Writer. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexAny(w.buf, "\r\n")
		if idx < 0 {
			break
		}
		w.parse(w.buf[:idx])
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Flush parses any unterminated trailing line
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.buf) > 0 {
		w.parse(w.buf)
		w.buf = nil
	}
}

func (w *Writer) parse(line []byte) {
	m := counterPattern.FindSubmatch(bytes.TrimSpace(line))
	if m == nil || !transferPhases[string(m[1])] {
		return
	}
	completed, err := strconv.ParseInt(string(m[2]), 10, 64)
	if err != nil {
		return
	}
	total, err := strconv.ParseInt(string(m[3]), 10, 64)
	if err != nil {
		return
	}
	w.reporter.Tick(completed, total)
}
