package formconfig

import (
	"context"
	"net/url"

	"github.com/goliatone/go-formflow/pkg/transport"
)

// Values are the collected field values sent to the endpoint. Empty inputs
// are represented by nil, never by "".
type Values map[string]any

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Transformer reshapes collected values before they are sent. raw is the
// full form payload, including controls outside the configured field list.
type Transformer interface {
	Transform(ctx context.Context, values Values, raw url.Values) (Values, error)
}

// SuccessHook runs after a successful submission.
type SuccessHook interface {
	OnSuccess(ctx context.Context)
}

// ErrorHook runs after a failed submission. payload is nil when no response
// was received.
type ErrorHook interface {
	OnError(ctx context.Context, payload *transport.ErrorPayload)
}

// TransformFunc adapts a function to Transformer.
type TransformFunc func(ctx context.Context, values Values, raw url.Values) (Values, error)

func (f TransformFunc) Transform(ctx context.Context, values Values, raw url.Values) (Values, error) {
	return f(ctx, values, raw)
}

// SuccessFunc adapts a function to SuccessHook.
type SuccessFunc func(ctx context.Context)

func (f SuccessFunc) OnSuccess(ctx context.Context) { f(ctx) }

// ErrorFunc adapts a function to ErrorHook.
type ErrorFunc func(ctx context.Context, payload *transport.ErrorPayload)

func (f ErrorFunc) OnError(ctx context.Context, payload *transport.ErrorPayload) { f(ctx, payload) }

// Hooks groups the optional extension points. Merge replaces unset hooks
// with no-op implementations, so callers can invoke them unconditionally.
type Hooks struct {
	Transform Transformer
	Success   SuccessHook
	Error     ErrorHook
}

type noopHooks struct{}

func (noopHooks) Transform(_ context.Context, values Values, _ url.Values) (Values, error) {
	return values, nil
}
func (noopHooks) OnSuccess(context.Context)                        {}
func (noopHooks) OnError(context.Context, *transport.ErrorPayload) {}

// withDefaults treats nil interfaces and nil func adapters alike as unset.
func (h Hooks) withDefaults() Hooks {
	if f, ok := h.Transform.(TransformFunc); h.Transform == nil || (ok && f == nil) {
		h.Transform = noopHooks{}
	}
	if f, ok := h.Success.(SuccessFunc); h.Success == nil || (ok && f == nil) {
		h.Success = noopHooks{}
	}
	if f, ok := h.Error.(ErrorFunc); h.Error == nil || (ok && f == nil) {
		h.Error = noopHooks{}
	}
	return h
}
