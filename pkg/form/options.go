package form

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/dom"
	"github.com/goliatone/go-formflow/pkg/host"
	"github.com/goliatone/go-formflow/pkg/notify"
	"github.com/goliatone/go-formflow/pkg/transport"
)

// Option configures an Instance. Registry applies the same options to every
// instance it creates.
type Option func(*settings)

type settings struct {
	client    *transport.Client
	namespace *notify.Namespace
	hosts     host.Directory
	observer  Observer
	logger    *zap.Logger
	document  dom.Document
	now       func() time.Time
}

func newSettings(options []Option) settings {
	s := settings{
		observer: nopObserver{},
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithClient sets the transport used to post submissions. Without it a
// default client is created on first use.
func WithClient(client *transport.Client) Option {
	return func(s *settings) {
		s.client = client
	}
}

// WithNamespace sets the shared namespace the notifier is looked up in at
// notification time.
func WithNamespace(ns *notify.Namespace) Option {
	return func(s *settings) {
		s.namespace = ns
	}
}

// WithHosts sets the directory used to close host containers. When omitted
// containers are resolved from the bound document.
func WithHosts(dir host.Directory) Option {
	return func(s *settings) {
		s.hosts = dir
	}
}

// WithObserver installs a lifecycle observer.
func WithObserver(observer Observer) Option {
	return func(s *settings) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithLogger attaches a logger. Instances log through a sub-logger named
// after the form.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDocument binds instances to doc as soon as they are registered.
func WithDocument(doc dom.Document) Option {
	return func(s *settings) {
		s.document = doc
	}
}

// WithClock overrides the time source used for elapsed durations.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}
