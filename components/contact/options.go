package contact

import "github.com/goliatone/go-formflow/pkg/formconfig"

type Options struct {
	Name     string
	Endpoint string
	FormID   string
	HostID   string
	Fields   []string
	Messages formconfig.Messages
	Hooks    formconfig.Hooks
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Name:     "ContactForm",
		Endpoint: "/api/v1/contact",
		FormID:   "contact-form",
		HostID:   "contact-modal",
		Fields:   []string{"name", "email", "phone", "message"},
		Messages: formconfig.Messages{
			Success:    "Message sent. We will get back to you soon.",
			Idle:       "Send message",
			Submitting: "Sending...",
		},
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Fields != nil {
		opts.Fields = append([]string{}, opts.Fields...)
	}
	return opts
}

func WithEndpoint(endpoint string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint = endpoint
	}
}

func WithHostID(id string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HostID = id
	}
}

func WithFields(fields ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Fields = append([]string{}, fields...)
	}
}

// WithMessages overrides individual messages; empty entries keep the
// component defaults.
func WithMessages(messages formconfig.Messages) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Messages = o.Messages.Override(messages)
	}
}

func WithHooks(hooks formconfig.Hooks) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Hooks = hooks
	}
}
