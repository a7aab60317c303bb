package contact

import (
	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/page"
)

// Component wraps the contact form configuration and its page markup.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Config returns the form configuration registered by Register.
func (c *Component) Config() formconfig.Config {
	opts := c.Options()
	return formconfig.Config{
		Name:     opts.Name,
		Endpoint: opts.Endpoint,
		FormID:   opts.FormID,
		HostID:   opts.HostID,
		Fields:   opts.Fields,
		Messages: opts.Messages,
		Hooks:    opts.Hooks,
	}
}

// Register registers the contact form with reg.
func (c *Component) Register(reg *form.Registry) (*form.Instance, error) {
	return reg.Register(c.Config())
}

// Hints are the rendering hints of the contact fields.
func Hints() map[string]page.FieldHint {
	return map[string]page.FieldHint{
		"name":    {Label: "Full name", Required: true},
		"email":   {Label: "Email", Type: "email", Required: true},
		"phone":   {Label: "Phone", Type: "tel"},
		"message": {Label: "Message", Type: "textarea", Required: true},
	}
}

// AddTo adds the contact form to p.
func (c *Component) AddTo(p *page.Page) error {
	eff, err := formconfig.Merge(c.Config())
	if err != nil {
		return err
	}
	p.Add(eff, Hints())
	return nil
}
