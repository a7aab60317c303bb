package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/dom"
	"github.com/goliatone/go-formflow/pkg/formconfig"
)

// Registry is the page-wide directory of form instances keyed by name.
// Registering a name again replaces the previous instance.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Instance
	options   []Option
	logger    *zap.Logger
}

// NewRegistry creates an empty registry. options are applied to every
// instance it creates.
func NewRegistry(options ...Option) *Registry {
	return &Registry{
		instances: make(map[string]*Instance),
		options:   append([]Option(nil), options...),
		logger:    newSettings(options).logger,
	}
}

// Register merges cfg and stores a new instance under its name. An invalid
// configuration is logged and returned as *formconfig.ConfigurationError;
// other registrations are unaffected. When the registry carries a document
// the instance is bound immediately; a missing form element is logged and
// leaves the instance registered but unbound.
func (r *Registry) Register(cfg formconfig.Config) (*Instance, error) {
	eff, err := formconfig.Merge(cfg)
	if err != nil {
		r.logger.Error("form registration rejected",
			zap.String("form", cfg.Name),
			zap.Error(err),
		)
		return nil, err
	}

	s := newSettings(r.options)
	inst := newInstance(eff, s)
	if s.document != nil {
		if err := inst.Bind(s.document); err != nil {
			r.logger.Warn("form not bound", zap.String("form", eff.Name), zap.Error(err))
		}
	}

	r.mu.Lock()
	_, replaced := r.instances[eff.Name]
	r.instances[eff.Name] = inst
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("form replaced", zap.String("form", eff.Name))
	}
	return inst, nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(cfg formconfig.Config) *Instance {
	inst, err := r.Register(cfg)
	if err != nil {
		panic(err)
	}
	return inst
}

// Get retrieves an instance by name.
func (r *Registry) Get(name string) (*Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[name]
	return inst, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns the registered names sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.instances))
	for name := range r.instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BindAll binds every registered instance to doc and joins the failures.
func (r *Registry) BindAll(doc dom.Document) error {
	var errs []error
	for _, name := range r.List() {
		inst, ok := r.Get(name)
		if !ok {
			continue
		}
		if err := inst.Bind(doc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Submit submits the instance registered under name.
func (r *Registry) Submit(ctx context.Context, name string, ev *Event) (Outcome, error) {
	inst, ok := r.Get(name)
	if !ok {
		return OutcomeNone, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return inst.Submit(ctx, ev)
}
