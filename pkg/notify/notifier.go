package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level identifies the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// DefaultDuration is how long a toast stays visible unless overridden.
const DefaultDuration = 4 * time.Second

// Options carries per-notification settings.
type Options struct {
	// Duration controls auto-dismissal; zero keeps the notification until it
	// is closed explicitly.
	Duration time.Duration
	// durationSet distinguishes an explicit zero from "not provided".
	durationSet bool
}

// Option mutates Options.
type Option func(*Options)

// WithDuration overrides the display duration.
func WithDuration(d time.Duration) Option {
	return func(o *Options) {
		o.Duration = d
		o.durationSet = true
	}
}

// Resolve applies opts over the fallback duration.
func Resolve(fallback time.Duration, opts ...Option) Options {
	out := Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	if !out.durationSet {
		out.Duration = fallback
	}
	return out
}

// Notifier is the capability set the engine requires.
type Notifier interface {
	Success(message string, opts ...Option)
	Error(message string, opts ...Option)
	Info(message string, opts ...Option)
}

// Send dispatches message to n using level. Warning falls back to Info since
// the bridge contract only guarantees three severities.
func Send(n Notifier, level Level, message string, opts ...Option) {
	if n == nil {
		return
	}
	switch level {
	case LevelSuccess:
		n.Success(message, opts...)
	case LevelError:
		n.Error(message, opts...)
	default:
		n.Info(message, opts...)
	}
}

// Alerter blocks until the user acknowledges message.
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func(message string)

// Alert implements Alerter.
func (f AlerterFunc) Alert(message string) { f(message) }

// WriterAlerter writes each alert as one line. Writes are serialised.
type WriterAlerter struct {
	mu sync.Mutex
	W  io.Writer
}

// Alert implements Alerter.
func (a *WriterAlerter) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	w := a.W
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, message)
}

// Alert is the Null-Object Notifier: every severity collapses into one
// blocking alert. It exists so outcomes are never silently dropped.
type Alert struct {
	Alerter Alerter
}

var _ Notifier = Alert{}

func (a Alert) Success(message string, _ ...Option) { a.alert(message) }
func (a Alert) Error(message string, _ ...Option)   { a.alert(message) }
func (a Alert) Info(message string, _ ...Option)    { a.alert(message) }

func (a Alert) alert(message string) {
	if a.Alerter == nil {
		defaultAlerter.Alert(message)
		return
	}
	a.Alerter.Alert(message)
}

var defaultAlerter = &WriterAlerter{}
