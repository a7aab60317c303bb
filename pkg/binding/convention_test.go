package binding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultInputPrefix(t *testing.T) {
	cases := map[string]string{
		"contact-form":  "contact-",
		"reserva-form":  "reserva-",
		"signup":        "signup-",
		"a-form-b-form": "a-b-form-",
		"":              "-",
	}
	for formID, want := range cases {
		if got := DefaultInputPrefix(formID); got != want {
			t.Errorf("DefaultInputPrefix(%q) = %q, want %q", formID, got, want)
		}
	}
}

func TestNew_Overrides(t *testing.T) {
	conv := New("contact-form", "", "")
	if conv.InputPrefix != "contact-" || conv.ErrorPrefix != DefaultErrorPrefix {
		t.Fatalf("unexpected defaults: %+v", conv)
	}

	conv = New("contact-form", "c_", "err_")
	if got := conv.InputID("email"); got != "c_email" {
		t.Fatalf("input id mismatch: %s", got)
	}
	if got := conv.ErrorID("email"); got != "err_email" {
		t.Fatalf("error id mismatch: %s", got)
	}
}

func TestResolve(t *testing.T) {
	conv := New("contact-form", "", "")
	got := conv.Resolve([]string{"name", "email"})
	want := []Binding{
		{Field: "name", InputID: "contact-name", ErrorID: "error-name"},
		{Field: "email", InputID: "contact-email", ErrorID: "error-email"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
	if conv.Resolve(nil) != nil {
		t.Fatalf("expected nil bindings for empty field list")
	}
}
