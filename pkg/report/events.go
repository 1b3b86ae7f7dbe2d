package report

import (
	"fmt"
	"time"
)

// EventKind defines the category of the event.
type EventKind string

const (
	EventStateChange   EventKind = "state_change"
	EventLeafFound     EventKind = "leaf_found"
	EventRuleFound     EventKind = "rule_found"
	EventChildRejected EventKind = "child_rejected"
)

// IsWarning reports whether events of this kind signal a recoverable misuse.
func (k EventKind) IsWarning() bool {
	return k == EventChildRejected
}

// Event is a single formatted notice emitted by the core.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      EventKind `json:"kind"`
	// Subject is the node label or state name the event is about.
	Subject string `json:"subject,omitempty"`
	// Message is the human-readable form of the event.
	Message string `json:"message"`
}

// String returns the message, which is what console-style sinks print.
func (e Event) String() string {
	return e.Message
}

// NewEvent builds an Event stamped with the current time.
func NewEvent(kind EventKind, subject, format string, args ...any) Event {
	return Event{
		Timestamp: time.Now(),
		Kind:      kind,
		Subject:   subject,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Reporter consumes events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

// Report calls f(e).
func (f ReporterFunc) Report(e Event) {
	f(e)
}

type nop struct{}

func (nop) Report(Event) {}

// Nop is a Reporter that drops every event.
var Nop Reporter = nop{}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop
	}
	return r
}

type multi []Reporter

func (m multi) Report(e Event) {
	for _, r := range m {
		r.Report(e)
	}
}

// Multi fans every event out to each reporter in order. Nil reporters are skipped.
func Multi(reporters ...Reporter) Reporter {
	out := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return Nop
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
