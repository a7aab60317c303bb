package page

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/formconfig"
)

func contactEffective(t *testing.T) formconfig.Effective {
	t.Helper()
	eff, err := formconfig.Merge(formconfig.Config{
		Name:     "ContactForm",
		Endpoint: "/api/v1/contact",
		FormID:   "contact-form",
		Fields:   []string{"name", "email", "phone", "message"},
		HostID:   "contact-modal",
		Messages: formconfig.Messages{Idle: "Send message"},
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	return eff
}

func TestNewFormView(t *testing.T) {
	view := NewFormView(contactEffective(t), map[string]FieldHint{
		"name": {Label: "Your name", Required: true},
	})
	want := []FieldView{
		{Name: "name", Label: "Your name", Type: "text", InputID: "contact-name", ErrorID: "error-name", Required: true},
		{Name: "email", Label: "Email", Type: "email", InputID: "contact-email", ErrorID: "error-email"},
		{Name: "phone", Label: "Phone", Type: "tel", InputID: "contact-phone", ErrorID: "error-phone"},
		{Name: "message", Label: "Message", Type: "textarea", InputID: "contact-message", ErrorID: "error-message"},
	}
	if diff := cmp.Diff(want, view.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if view.SubmitLabel != "Send message" || view.HostID != "contact-modal" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestHumanize(t *testing.T) {
	for in, want := range map[string]string{
		"firstName":  "First name",
		"first_name": "First name",
		"email":      "Email",
	} {
		if got := humanize(in); got != want {
			t.Fatalf("humanize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderer_DocumentBindsToForm(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p := Page{Title: "Contact <us>"}
	p.Add(contactEffective(t), nil)

	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Contact &lt;us&gt;") {
		t.Fatalf("title must be escaped:\n%s", out)
	}

	doc, err := r.Document(p)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	for _, id := range []string{"contact-form", "contact-modal", "contact-name", "error-message", ToastContainerID} {
		if _, ok := doc.ElementByID(id); !ok {
			t.Fatalf("element %s missing", id)
		}
	}
	slot, _ := doc.ElementByID("error-email")
	if !slot.HasClass("hidden") {
		t.Fatalf("error slots start hidden")
	}

	inst, err := form.New(formconfig.Config{
		Name:     "ContactForm",
		Endpoint: "/api/v1/contact",
		FormID:   "contact-form",
		Fields:   []string{"name", "email", "phone", "message"},
	})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if err := inst.Bind(doc); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if inst.IdleLabel() != "Send message" {
		t.Fatalf("idle label = %q", inst.IdleLabel())
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"list.tmpl": {Data: []byte(`{{ brand }}:{% for form in forms %}{{ form.FormID }};{% endfor %}`)},
	}
	r, err := New(
		WithTemplatesFS(files),
		WithTemplate("list.tmpl"),
		WithGlobalData(map[string]any{"brand": "acme"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p := Page{}
	p.Add(contactEffective(t), nil)

	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != "acme:contact-form;" {
		t.Fatalf("output = %q", got)
	}
}

func TestRenderer_MissingTemplate(t *testing.T) {
	r, err := New(WithTemplatesFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, Page{}); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestRenderer_TemplatesDir(t *testing.T) {
	dir := t.TempDir()
	tmpl := `<title>{{ title }}</title>{% for form in forms %}<form id="{{ form.FormID }}"></form>{% endfor %}`
	if err := os.WriteFile(filepath.Join(dir, DefaultTemplate), []byte(tmpl), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := New(WithTemplatesDir(dir))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p := Page{Title: "Local"}
	p.Add(contactEffective(t), nil)

	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != `<title>Local</title><form id="contact-form"></form>` {
		t.Fatalf("output = %q", got)
	}
}

func TestNewEngine_RequiresSource(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Fatalf("expected error without a template source")
	}
}

func TestFilterTrim(t *testing.T) {
	registerFilters()
	files := fstest.MapFS{"t.tmpl": {Data: []byte(`[{{ title|trim }}]`)}}
	engine, err := NewEngine(FromFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	var buf bytes.Buffer
	if err := engine.RenderTemplate(&buf, "t.tmpl", map[string]any{"title": "  Contact  "}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "[Contact]" {
		t.Fatalf("output = %q", buf.String())
	}
}
