package binding

import "strings"

const (
	// FormSuffix is stripped from a form id when deriving the input prefix.
	FormSuffix = "-form"
	// Separator is appended to the derived input prefix.
	Separator = "-"
	// DefaultErrorPrefix prefixes every error slot id.
	DefaultErrorPrefix = "error-"

	// SubmitSelector locates the submit control inside the form.
	SubmitSelector = `button[type="submit"]`
	// LabelClass marks the label element inside the submit control.
	LabelClass = "btn-text"
	// SpinnerClass marks the optional spinner element inside the submit control.
	SpinnerClass = "btn-spinner"
	// HiddenClass toggles visibility of error slots and spinners.
	HiddenClass = "hidden"
)

// Convention maps field names onto element ids.
type Convention struct {
	InputPrefix string
	ErrorPrefix string
}

// DefaultInputPrefix derives the input prefix for a form id by removing the
// first "-form" occurrence and appending the separator.
func DefaultInputPrefix(formID string) string {
	return strings.Replace(formID, FormSuffix, "", 1) + Separator
}

// New returns the convention for formID. Empty overrides fall back to the
// derived input prefix and DefaultErrorPrefix.
func New(formID, inputPrefix, errorPrefix string) Convention {
	if inputPrefix == "" {
		inputPrefix = DefaultInputPrefix(formID)
	}
	if errorPrefix == "" {
		errorPrefix = DefaultErrorPrefix
	}
	return Convention{
		InputPrefix: inputPrefix,
		ErrorPrefix: errorPrefix,
	}
}

// InputID returns the id of the input bound to field.
func (c Convention) InputID(field string) string {
	return c.InputPrefix + field
}

// ErrorID returns the id of the error slot bound to field.
func (c Convention) ErrorID(field string) string {
	return c.ErrorPrefix + field
}

// Binding is the resolved pair of ids for one field.
type Binding struct {
	Field   string
	InputID string
	ErrorID string
}

// Resolve returns the bindings for fields in order.
func (c Convention) Resolve(fields []string) []Binding {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Binding, 0, len(fields))
	for _, field := range fields {
		out = append(out, Binding{
			Field:   field,
			InputID: c.InputID(field),
			ErrorID: c.ErrorID(field),
		})
	}
	return out
}
