package transport

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldError is one server-reported problem with a field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors keeps field errors in the order the server emitted them.
type FieldErrors []FieldError

// Get returns the message reported for field.
func (f FieldErrors) Get(field string) (string, bool) {
	for _, entry := range f {
		if entry.Field == field {
			return entry.Message, true
		}
	}
	return "", false
}

// Fields returns the field keys in order.
func (f FieldErrors) Fields() []string {
	if len(f) == 0 {
		return nil
	}
	out := make([]string, 0, len(f))
	for _, entry := range f {
		out = append(out, entry.Field)
	}
	return out
}

// ErrorPayload is the decoded body of a failed submission.
type ErrorPayload struct {
	Status  int
	Message string
	// Errors is nil when the payload carried no errors object; an empty but
	// non-nil value means the object was present and empty.
	Errors FieldErrors
	Body   []byte
}

// HasFieldErrors reports whether the payload carried an errors object.
func (p *ErrorPayload) HasFieldErrors() bool {
	return p != nil && p.Errors != nil
}

// DecodeErrorPayload parses body leniently. Bodies that are not JSON objects
// produce a payload with neither message nor errors.
func DecodeErrorPayload(status int, body []byte) *ErrorPayload {
	payload := &ErrorPayload{
		Status: status,
		Body:   body,
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return payload
	}

	var envelope struct {
		Message json.RawMessage `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return payload
	}

	var message string
	if err := json.Unmarshal(envelope.Message, &message); err == nil {
		payload.Message = strings.TrimSpace(message)
	}
	if errs, ok := decodeFieldErrors(envelope.Errors); ok {
		payload.Errors = errs
	}
	return payload
}

func decodeFieldErrors(raw json.RawMessage) (FieldErrors, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	out := FieldErrors{}
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return out, true
		}
		key, _ := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return out, true
		}
		if _, dup := seen[key]; dup {
			continue
		}
		message, ok := firstMessage(value)
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, FieldError{Field: key, Message: message})
	}
	return out, true
}

// firstMessage accepts a string or a list of strings.
func firstMessage(raw json.RawMessage) (string, bool) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, true
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if strings.TrimSpace(item) != "" {
				return item, true
			}
		}
	}
	return "", false
}
