package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-isatty"

	"gitdesk.dev/gitdesk/internal/progress"
)

// ProgressMode selects how transfer progress is drawn
type ProgressMode int

const (
	// ProgressLines prints one "phase: N%" line per event
	ProgressLines ProgressMode = iota
	// ProgressBar redraws a single progress bar line
	ProgressBar
	// ProgressJSON prints one JSON event object per line
	ProgressJSON
)

const progressBarWidth = 40

// ProgressRenderer is a progress.Sink that draws events to a writer
type ProgressRenderer struct {
	mu   sync.Mutex
	out  io.Writer
	mode ProgressMode
	bar  bar.Model
}

// NewProgressRenderer creates a renderer for out in the given mode
func NewProgressRenderer(out io.Writer, mode ProgressMode) *ProgressRenderer {
	return &ProgressRenderer{
		out:  out,
		mode: mode,
		bar:  bar.New(bar.WithDefaultGradient(), bar.WithWidth(progressBarWidth)),
	}
}

// DetectProgressMode picks the bar on a terminal and plain lines elsewhere.
// JSON output always renders JSON events.
func DetectProgressMode(out io.Writer, jsonOutput bool) ProgressMode {
	if jsonOutput {
		return ProgressJSON
	}
	if IsTerminal(out) {
		return ProgressBar
	}
	return ProgressLines
}

// IsTerminal reports whether v is a file attached to a terminal
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Emit draws one event
func (r *ProgressRenderer) Emit(e progress.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.mode {
	case ProgressJSON:
		data, err := json.Marshal(e)
		if err != nil {
			return
		}
		_, _ = fmt.Fprintln(r.out, string(data))
	case ProgressBar:
		_, _ = fmt.Fprintf(r.out, "\r%-20s %s", e.Phase, r.bar.ViewAs(float64(e.Value)/100))
		if e.Value >= 100 {
			_, _ = fmt.Fprintln(r.out)
		}
	default:
		_, _ = fmt.Fprintf(r.out, "%s: %d%%\n", e.Phase, e.Value)
	}
}
