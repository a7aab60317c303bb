package form

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-formflow/pkg/binding"
	"github.com/goliatone/go-formflow/pkg/dom"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/host"
	"github.com/goliatone/go-formflow/pkg/notify"
	"github.com/goliatone/go-formflow/pkg/transport"
)

const inputSubmitSelector = `input[type="submit"]`

type elements struct {
	form    dom.Form
	submit  dom.Element
	label   dom.Element
	spinner dom.Element
}

// Instance manages the submission lifecycle of one configured form.
//
// Concurrent calls to Submit are coalesced: a submit arriving while a cycle
// is in flight joins that cycle and receives its outcome, so only one request
// is sent and the finalizer runs once.
type Instance struct {
	cfg      formconfig.Effective
	settings settings
	client   *transport.Client
	logger   *zap.Logger

	mu        sync.RWMutex
	doc       dom.Document
	els       elements
	idleLabel string
	state     State
	last      Outcome

	inflight singleflight.Group
}

// New merges cfg and returns an unbound instance. Configuration problems are
// reported as *formconfig.ConfigurationError.
func New(cfg formconfig.Config, options ...Option) (*Instance, error) {
	eff, err := formconfig.Merge(cfg)
	if err != nil {
		return nil, err
	}
	return newInstance(eff, newSettings(options)), nil
}

func newInstance(cfg formconfig.Effective, s settings) *Instance {
	logger := s.logger.Named(cfg.Name).With(zap.String("form_id", cfg.FormID))
	client := s.client
	if client == nil {
		// New only fails on a malformed base URL, which is not set here.
		client, _ = transport.New(transport.WithLogger(logger))
	}
	return &Instance{
		cfg:       cfg,
		settings:  s,
		client:    client,
		logger:    logger,
		idleLabel: cfg.Messages.Idle,
	}
}

// Name returns the registry key of the instance.
func (i *Instance) Name() string {
	return i.cfg.Name
}

// Config returns a copy of the effective configuration.
func (i *Instance) Config() formconfig.Effective {
	cfg := i.cfg
	cfg.Fields = append([]string(nil), i.cfg.Fields...)
	return cfg
}

// State reports the current lifecycle state.
func (i *Instance) State() State {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.state
}

// LastOutcome reports the result of the most recent completed cycle.
func (i *Instance) LastOutcome() Outcome {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.last
}

// IdleLabel is the submit label restored by the finalizer.
func (i *Instance) IdleLabel() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.idleLabel
}

// Bound reports whether Bind found the form element.
func (i *Instance) Bound() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.els.form != nil
}

// Bind resolves the form, its submit control and the control's label and
// spinner in doc. Only the form element is required. When the idle message
// was left at its default, the label text found in the markup becomes the
// idle label.
func (i *Instance) Bind(doc dom.Document) error {
	if doc == nil {
		return fmt.Errorf("form %s: %w", i.cfg.Name, ErrFormNotFound)
	}
	f, ok := doc.FormByID(i.cfg.FormID)
	if !ok {
		return fmt.Errorf("form %s: %w: #%s", i.cfg.Name, ErrFormNotFound, i.cfg.FormID)
	}

	els := elements{form: f}
	if submit, ok := f.Query(binding.SubmitSelector); ok {
		els.submit = submit
	} else if submit, ok := f.Query(inputSubmitSelector); ok {
		els.submit = submit
	}
	if els.submit != nil {
		if label, ok := els.submit.Query("." + binding.LabelClass); ok {
			els.label = label
		}
		if spinner, ok := els.submit.Query("." + binding.SpinnerClass); ok {
			els.spinner = spinner
		}
	}

	idle := i.cfg.Messages.Idle
	if els.label != nil && idle == formconfig.DefaultMessages().Idle {
		if text := strings.TrimSpace(els.label.Text()); text != "" {
			idle = text
		}
	}

	i.mu.Lock()
	i.doc = doc
	i.els = els
	i.idleLabel = idle
	i.mu.Unlock()

	i.logger.Debug("form bound",
		zap.Bool("submit", els.submit != nil),
		zap.Bool("label", els.label != nil),
		zap.Bool("spinner", els.spinner != nil),
	)
	return nil
}

// Submit runs one submission cycle: it prevents the event default, clears
// field errors, collects values, posts them and maps the response. The
// returned error is nil for server rejections, which are reported through
// the outcome; it is set when the instance is unbound, the transformer
// failed, or no response was received (*transport.ConnectionError).
//
// Concurrent calls share one cycle, and that cycle runs under the ctx of the
// call that started it. Cancelling that ctx ends the request for every
// joined caller, which all receive OutcomeConnectionFailed.
func (i *Instance) Submit(ctx context.Context, ev *Event) (Outcome, error) {
	ev.PreventDefault()
	if ctx == nil {
		ctx = context.Background()
	}
	if !i.Bound() {
		return OutcomeNone, fmt.Errorf("form %s: %w", i.cfg.Name, ErrNotBound)
	}

	result, err, shared := i.inflight.Do(i.cfg.Name, func() (any, error) {
		return i.run(ctx)
	})
	if shared {
		i.logger.Debug("submit joined in-flight cycle")
	}
	outcome, _ := result.(Outcome)
	return outcome, err
}

func (i *Instance) run(ctx context.Context) (outcome Outcome, err error) {
	els := i.elements()
	start := i.settings.now()
	i.setState(StateSubmitting)
	i.settings.observer.SubmitStarted(i.cfg.Name)
	defer func() {
		i.setLoading(false)
		i.mu.Lock()
		i.state = StateIdle
		i.last = outcome
		i.mu.Unlock()
		i.settings.observer.SubmitFinished(i.cfg.Name, outcome, i.settings.now().Sub(start))
	}()

	i.ClearErrors()
	values, err := i.collect(ctx, els.form)
	if err != nil {
		i.logger.Warn("submission aborted", zap.Error(err))
		i.fail(ctx, nil, i.cfg.Messages.Server)
		return OutcomeFailed, err
	}

	i.setLoading(true)
	resp, err := i.client.PostJSON(ctx, i.cfg.Endpoint, values)
	if err != nil {
		if transport.IsConnectionError(err) {
			i.logger.Warn("connection failed", zap.String("endpoint", i.cfg.Endpoint), zap.Error(err))
			i.fail(ctx, nil, i.cfg.Messages.Connection)
			return OutcomeConnectionFailed, err
		}
		i.logger.Error("request not sent", zap.Error(err))
		i.fail(ctx, nil, i.cfg.Messages.Server)
		return OutcomeFailed, err
	}

	if resp.OK() {
		i.succeed(ctx, els)
		return OutcomeSucceeded, nil
	}

	payload := resp.Payload
	if payload == nil {
		payload = &transport.ErrorPayload{Status: resp.Status}
	}
	i.logger.Debug("submission rejected",
		zap.Int("status", payload.Status),
		zap.String("request_id", resp.RequestID),
		zap.Strings("fields", payload.Errors.Fields()),
	)
	switch {
	case payload.HasFieldErrors():
		i.ShowErrors(payload.Errors)
		i.fail(ctx, payload, i.cfg.Messages.Validation)
	case payload.Message != "":
		i.fail(ctx, payload, payload.Message)
	default:
		i.fail(ctx, payload, i.cfg.Messages.Server)
	}
	return OutcomeFailed, nil
}

func (i *Instance) succeed(ctx context.Context, els elements) {
	i.setState(StateSucceeded)
	i.notifier().Success(i.cfg.Messages.Success)
	els.form.Reset()
	i.closeHost()
	i.cfg.Hooks.Success.OnSuccess(ctx)
}

func (i *Instance) fail(ctx context.Context, payload *transport.ErrorPayload, message string) {
	i.setState(StateFailed)
	i.notifier().Error(message)
	i.cfg.Hooks.Error.OnError(ctx, payload)
}

// collect reads every configured field. Missing controls and empty strings
// both become nil.
func (i *Instance) collect(ctx context.Context, f dom.Form) (formconfig.Values, error) {
	values := make(formconfig.Values, len(i.cfg.Fields))
	for _, field := range i.cfg.Fields {
		value, ok := f.FormValue(field)
		if !ok || value == "" {
			values[field] = nil
			continue
		}
		values[field] = value
	}

	out, err := i.cfg.Hooks.Transform.Transform(ctx, values, f.Values())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransform, err)
	}
	if out == nil {
		out = formconfig.Values{}
	}
	return out, nil
}

func (i *Instance) setLoading(loading bool) {
	els := i.elements()
	idle := i.IdleLabel()
	if els.submit != nil {
		els.submit.SetDisabled(loading)
	}
	if els.label != nil {
		if loading {
			els.label.SetText(i.cfg.Messages.Submitting)
		} else {
			els.label.SetText(idle)
		}
	}
	if els.spinner != nil {
		if loading {
			els.spinner.RemoveClass(binding.HiddenClass)
		} else {
			els.spinner.AddClass(binding.HiddenClass)
		}
	}
}

func (i *Instance) closeHost() {
	if i.cfg.HostID == "" {
		return
	}
	dir := i.settings.hosts
	if dir == nil {
		dir = host.DocumentDirectory{Doc: i.document()}
	}
	container, ok := dir.Lookup(host.KindModal, i.cfg.HostID)
	if !ok {
		i.logger.Debug("host container not found", zap.String("host_id", i.cfg.HostID))
		return
	}
	container.Hide()
}

func (i *Instance) notifier() notify.Notifier {
	return notify.Lookup(i.settings.namespace)
}

func (i *Instance) setState(state State) {
	i.mu.Lock()
	i.state = state
	i.mu.Unlock()
}

func (i *Instance) elements() elements {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.els
}

func (i *Instance) document() dom.Document {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.doc
}
