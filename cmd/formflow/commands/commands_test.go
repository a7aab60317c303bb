package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand("test", "none")
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender_DefaultContactForm(t *testing.T) {
	out, err := run(t, "render", "--title", "Say hello")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		`<title>Say hello</title>`,
		`id="contact-form"`,
		`id="contact-email"`,
		`id="error-message"`,
		`id="contact-modal"`,
		`id="toast-container"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered page missing %s", want)
		}
	}
}

func TestRenderThenCheck(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "contact.html")
	if _, err := run(t, "render", "-o", pagePath); err != nil {
		t.Fatalf("render: %v", err)
	}

	out, err := run(t, "check", "--page", pagePath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "ok   ContactForm #contact-form bound in") {
		t.Fatalf("unexpected check output: %q", out)
	}
}

func TestCheck_ReportsMissingElements(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "partial.html")
	markup := `<html><body><form id="contact-form">
<input id="contact-name" name="name"><p id="error-name" class="hidden"></p>
<button type="submit"><span class="btn-text">Send</span></button>
</form><div id="contact-modal"></div></body></html>`
	if err := os.WriteFile(pagePath, []byte(markup), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "check", "--page", pagePath)
	if err == nil {
		t.Fatalf("expected failure, output %q", out)
	}
	if !strings.Contains(out, "FAIL ContactForm: missing #contact-email, #error-email") {
		t.Fatalf("unexpected check output: %q", out)
	}
}

func TestCheck_FormsDirectory(t *testing.T) {
	dir := t.TempDir()
	doc := `forms:
  - name: BookingForm
    endpoint: /api/bookings
    formId: booking-form
    fields: [package, customer]
  - name: Broken
    endpoint: /api/broken
    formId: broken-form
    fields: []
`
	if err := os.WriteFile(filepath.Join(dir, "forms.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "check", "--forms", dir)
	if err == nil {
		t.Fatalf("expected load error for the invalid definition")
	}
}

func TestSubmit_Success(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/contact" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	out, err := run(t, "submit", "--base-url", srv.URL,
		"--set", "name=Ada", "--set", "email=ada@example.com", "--set", "message=Hello",
		"--metrics")
	if err != nil {
		t.Fatalf("submit: %v\n%s", err, out)
	}

	if body["name"] != "Ada" || body["email"] != "ada@example.com" || body["message"] != "Hello" {
		t.Fatalf("unexpected body %v", body)
	}
	if v, ok := body["phone"]; !ok || v != nil {
		t.Fatalf("empty phone should be sent as null, got %v (present %v)", v, ok)
	}
	for _, want := range []string{
		"Message sent. We will get back to you soon.",
		"outcome: succeeded",
		`formflow_submissions_total{form="ContactForm",outcome="succeeded"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSubmit_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"errors":{"email":["Email is invalid"]}}`)
	}))
	defer srv.Close()

	out, err := run(t, "submit", "--base-url", srv.URL, "--set", "email=nope")
	if !errors.Is(err, errSubmitFailed) {
		t.Fatalf("expected errSubmitFailed, got %v", err)
	}
	for _, want := range []string{
		"Please correct the errors in the form.",
		"outcome: failed",
		"  email: Email is invalid",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSubmit_UnknownField(t *testing.T) {
	_, err := run(t, "submit", "--set", "nickname=ada")
	if err == nil || !strings.Contains(err.Error(), "nickname") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestSubmit_UnknownForm(t *testing.T) {
	_, err := run(t, "submit", "Newsletter")
	if err == nil || !strings.Contains(err.Error(), `form "Newsletter" not found`) {
		t.Fatalf("expected unknown form error, got %v", err)
	}
}

func TestKebab(t *testing.T) {
	cases := map[string]string{
		"createBooking":  "create-booking",
		"submit_contact": "submit-contact",
		"Signup":         "signup",
	}
	for in, want := range cases {
		if got := kebab(in); got != want {
			t.Errorf("kebab(%q) = %q, want %q", in, got, want)
		}
	}
}
