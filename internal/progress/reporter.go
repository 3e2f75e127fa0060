// Package progress turns raw transfer ticks into a throttled, monotonic
// percentage stream for clone, fetch and push.
package progress

import "sync"

const (
	// PhaseDownloading labels object transfer for clone and fetch
	PhaseDownloading = "Downloading Objects"
	// PhasePushing labels object transfer for push
	PhasePushing = "Pushing Objects"
	// PhaseCompleted labels the terminal push event
	PhaseCompleted = "Completed"
)

// Event is one visible progress sample
type Event struct {
	Phase string `json:"phase"`
	Value int    `json:"value"`
}

// Sink receives progress events. It is called with the reporter's lock
// held, so it must return quickly.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(Event)

// Emit calls f(e)
func (f SinkFunc) Emit(e Event) {
	f(e)
}

// Discard drops every event
var Discard Sink = SinkFunc(func(Event) {})

// Reporter throttles ticks for a single operation. Create one per operation.
type Reporter struct {
	mu    sync.Mutex
	phase string
	sink  Sink
	last  int
}

// NewReporter creates a reporter that labels its events with phase
func NewReporter(phase string, sink Sink) *Reporter {
	if sink == nil {
		sink = Discard
	}
	return &Reporter{phase: phase, sink: sink}
}

// Tick records completed out of total units. An event is emitted only when
// the integer percentage rises above the last emitted value.
func (r *Reporter) Tick(completed, total int64) {
	if total <= 0 {
		return
	}
	if completed > total {
		completed = total
	}
	percent := int(completed * 100 / total)

	r.mu.Lock()
	defer r.mu.Unlock()
	if percent <= r.last {
		return
	}
	r.last = percent
	r.sink.Emit(Event{Phase: r.phase, Value: percent})
}

// Complete emits 100 unless it was already reached
func (r *Reporter) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last >= 100 {
		return
	}
	r.last = 100
	r.sink.Emit(Event{Phase: r.phase, Value: 100})
}

// Finish emits a terminal 100 event for phase regardless of earlier ticks
func (r *Reporter) Finish(phase string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = 100
	r.sink.Emit(Event{Phase: phase, Value: 100})
}

// Last returns the last emitted percentage
func (r *Reporter) Last() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
