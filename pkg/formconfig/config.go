package formconfig

import (
	"github.com/goliatone/go-formflow/pkg/binding"
)

const (
	DefaultErrorClass  = "border-red-500"
	DefaultNormalClass = "border-gray-300"
)

// Messages holds the user facing texts. Empty entries are "not provided" and
// inherit the defaults during Merge.
type Messages struct {
	Success    string `json:"success,omitempty" yaml:"success,omitempty"`
	Validation string `json:"validationError,omitempty" yaml:"validationError,omitempty"`
	Server     string `json:"serverError,omitempty" yaml:"serverError,omitempty"`
	Connection string `json:"connectionError,omitempty" yaml:"connectionError,omitempty"`
	Submitting string `json:"submittingLabel,omitempty" yaml:"submittingLabel,omitempty"`
	Idle       string `json:"idleLabel,omitempty" yaml:"idleLabel,omitempty"`
}

// DefaultMessages returns the engine message set.
func DefaultMessages() Messages {
	return Messages{
		Success:    "Operation completed successfully.",
		Validation: "Please correct the errors in the form.",
		Server:     "Server error. Please try again.",
		Connection: "Connection error. Please check your internet connection.",
		Submitting: "Processing...",
		Idle:       "Submit",
	}
}

// Override returns m with every non-empty entry of o applied.
func (m Messages) Override(o Messages) Messages {
	if o.Success != "" {
		m.Success = o.Success
	}
	if o.Validation != "" {
		m.Validation = o.Validation
	}
	if o.Server != "" {
		m.Server = o.Server
	}
	if o.Connection != "" {
		m.Connection = o.Connection
	}
	if o.Submitting != "" {
		m.Submitting = o.Submitting
	}
	if o.Idle != "" {
		m.Idle = o.Idle
	}
	return m
}

// Config is the caller supplied description of a form.
type Config struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Endpoint string   `json:"endpoint" yaml:"endpoint" validate:"required"`
	FormID   string   `json:"formId" yaml:"formId" validate:"required"`
	Fields   []string `json:"fields" yaml:"fields" validate:"required,min=1,unique,dive,required"`

	// HostID names an enclosing container (e.g. a modal) closed on success.
	HostID string `json:"hostId,omitempty" yaml:"hostId,omitempty"`

	InputPrefix string `json:"inputPrefix,omitempty" yaml:"inputPrefix,omitempty"`
	ErrorPrefix string `json:"errorPrefix,omitempty" yaml:"errorPrefix,omitempty"`
	ErrorClass  string `json:"errorClass,omitempty" yaml:"errorClass,omitempty"`
	NormalClass string `json:"normalClass,omitempty" yaml:"normalClass,omitempty"`

	Messages Messages `json:"messages,omitempty" yaml:"messages,omitempty"`
	Hooks    Hooks    `json:"-" yaml:"-"`
}

// Effective is the merged configuration. It is produced by Merge and owned
// by value; Fields is a private copy.
type Effective struct {
	Name     string
	Endpoint string
	FormID   string
	Fields   []string
	HostID   string

	Convention  binding.Convention
	ErrorClass  string
	NormalClass string
	Messages    Messages
	Hooks       Hooks
}

// Bindings resolves the element ids of every configured field.
func (e Effective) Bindings() []binding.Binding {
	return e.Convention.Resolve(e.Fields)
}

// HasField reports whether name is a configured field.
func (e Effective) HasField(name string) bool {
	for _, field := range e.Fields {
		if field == name {
			return true
		}
	}
	return false
}
