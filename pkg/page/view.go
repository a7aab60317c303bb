package page

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-formflow/pkg/formconfig"
)

// FieldView is the template model of one input and its error slot.
type FieldView struct {
	Name     string
	Label    string
	Type     string
	InputID  string
	ErrorID  string
	Required bool
}

// FormView is the template model of one form.
type FormView struct {
	Name        string
	FormID      string
	Endpoint    string
	HostID      string
	NormalClass string
	SubmitLabel string
	Fields      []FieldView
}

// FieldHint customises how a field is rendered.
type FieldHint struct {
	Label    string
	Type     string
	Required bool
}

// NewFormView derives the template model from an effective configuration.
// Field types default from the field name: "email" renders an email input,
// "phone" a tel input and "message" a textarea.
func NewFormView(cfg formconfig.Effective, hints map[string]FieldHint) FormView {
	view := FormView{
		Name:        cfg.Name,
		FormID:      cfg.FormID,
		Endpoint:    cfg.Endpoint,
		HostID:      cfg.HostID,
		NormalClass: cfg.NormalClass,
		SubmitLabel: cfg.Messages.Idle,
	}
	for _, b := range cfg.Bindings() {
		hint := hints[b.Field]
		field := FieldView{
			Name:     b.Field,
			Label:    hint.Label,
			Type:     hint.Type,
			InputID:  b.InputID,
			ErrorID:  b.ErrorID,
			Required: hint.Required,
		}
		if field.Label == "" {
			field.Label = humanize(b.Field)
		}
		if field.Type == "" {
			field.Type = inferType(b.Field)
		}
		view.Fields = append(view.Fields, field)
	}
	return view
}

func inferType(field string) string {
	name := strings.ToLower(field)
	switch {
	case strings.Contains(name, "email"):
		return "email"
	case strings.Contains(name, "phone"), strings.Contains(name, "tel"):
		return "tel"
	case strings.Contains(name, "message"), strings.Contains(name, "notes"), strings.Contains(name, "comment"):
		return "textarea"
	default:
		return "text"
	}
}

// humanize turns "firstName" or "first_name" into "First name".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
