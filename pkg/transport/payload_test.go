package transport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeErrorPayload(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		wantMessage string
		wantErrors  FieldErrors
		hasErrors   bool
	}{
		{name: "empty body"},
		{name: "not json", body: "<html>Bad Gateway</html>"},
		{name: "json array", body: `[1,2]`},
		{name: "message only", body: `{"message":" Server down "}`, wantMessage: "Server down"},
		{name: "errors null", body: `{"errors":null}`},
		{name: "errors empty", body: `{"errors":{}}`, wantErrors: FieldErrors{}, hasErrors: true},
		{
			name:       "duplicate keys keep first",
			body:       `{"errors":{"email":"first","email":"second"}}`,
			wantErrors: FieldErrors{{Field: "email", Message: "first"}},
			hasErrors:  true,
		},
		{
			name:       "non string values skipped",
			body:       `{"errors":{"age":12,"email":"invalid"}}`,
			wantErrors: FieldErrors{{Field: "email", Message: "invalid"}},
			hasErrors:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := DecodeErrorPayload(400, []byte(tc.body))
			if payload.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", payload.Message, tc.wantMessage)
			}
			if payload.HasFieldErrors() != tc.hasErrors {
				t.Fatalf("HasFieldErrors = %v, want %v", payload.HasFieldErrors(), tc.hasErrors)
			}
			if diff := cmp.Diff(tc.wantErrors, payload.Errors); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldErrorsAccessors(t *testing.T) {
	errs := FieldErrors{{Field: "b", Message: "B"}, {Field: "a", Message: "A"}}
	if diff := cmp.Diff([]string{"b", "a"}, errs.Fields()); diff != "" {
		t.Fatalf("fields mismatch: %s", diff)
	}
	if msg, ok := errs.Get("a"); !ok || msg != "A" {
		t.Fatalf("Get(a) = %q, %v", msg, ok)
	}
	if _, ok := errs.Get("c"); ok {
		t.Fatalf("unexpected entry")
	}
	var nilPayload *ErrorPayload
	if nilPayload.HasFieldErrors() {
		t.Fatalf("nil payload has no errors")
	}
}
