package form

import "errors"

var (
	// ErrNotBound is returned when an instance is used before Bind succeeded.
	ErrNotBound = errors.New("form: instance not bound to a document")
	// ErrFormNotFound signals that the configured form element is absent.
	ErrFormNotFound = errors.New("form: form element not found")
	// ErrNotRegistered is returned by Registry lookups for unknown names.
	ErrNotRegistered = errors.New("form: form not registered")
	// ErrTransform wraps failures of the configured Transformer.
	ErrTransform = errors.New("form: transform failed")
)
