package form

import "sync/atomic"

// State is the lifecycle position of an Instance.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the observable result of one submission cycle.
type Outcome int

const (
	// OutcomeNone means no cycle ran (e.g. the instance was not bound).
	OutcomeNone Outcome = iota
	OutcomeSucceeded
	// OutcomeFailed covers server rejections and client-side failures.
	OutcomeFailed
	// OutcomeConnectionFailed means no response was received.
	OutcomeConnectionFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeConnectionFailed:
		return "connection_failed"
	default:
		return "none"
	}
}

// Event is the submit trigger handed to Instance.Submit. The engine always
// prevents its default action before doing anything else.
type Event struct {
	prevented atomic.Bool
}

// NewEvent returns a fresh submit event.
func NewEvent() *Event {
	return &Event{}
}

// PreventDefault suppresses the native navigation of the submit.
func (e *Event) PreventDefault() {
	if e != nil {
		e.prevented.Store(true)
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e != nil && e.prevented.Load()
}
