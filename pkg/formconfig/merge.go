package formconfig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formflow/pkg/binding"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ConfigurationError reports a Config that cannot be registered. Problems
// lists the offending keys (e.g. "endpoint", "fields[2]").
type ConfigurationError struct {
	Form     string
	Problems []string
	Err      error
}

func (e *ConfigurationError) Error() string {
	form := e.Form
	if form == "" {
		form = "<unnamed>"
	}
	if len(e.Problems) == 0 {
		return fmt.Sprintf("formconfig: form %s: %v", form, e.Err)
	}
	return fmt.Sprintf("formconfig: form %s: invalid %s", form, strings.Join(e.Problems, ", "))
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// Validate checks the mandatory fields of cfg. Values are compared after
// trimming surrounding whitespace, so blank strings count as missing.
func Validate(cfg Config) error {
	cfg = trimIdentity(cfg)
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ConfigurationError{Form: cfg.Name, Err: err}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, problemKey(fe))
	}
	return &ConfigurationError{Form: cfg.Name, Problems: problems, Err: err}
}

func problemKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	if fe.Tag() == "required" {
		return ns
	}
	return ns + " (" + fe.Tag() + ")"
}

// Merge validates cfg and fills every optional setting with its default.
func Merge(cfg Config) (Effective, error) {
	if err := Validate(cfg); err != nil {
		return Effective{}, err
	}
	cfg = trimIdentity(cfg)

	return Effective{
		Name:        cfg.Name,
		Endpoint:    cfg.Endpoint,
		FormID:      cfg.FormID,
		Fields:      cfg.Fields,
		HostID:      strings.TrimSpace(cfg.HostID),
		Convention:  binding.New(cfg.FormID, cfg.InputPrefix, cfg.ErrorPrefix),
		ErrorClass:  firstNonEmpty(cfg.ErrorClass, DefaultErrorClass),
		NormalClass: firstNonEmpty(cfg.NormalClass, DefaultNormalClass),
		Messages:    DefaultMessages().Override(cfg.Messages),
		Hooks:       cfg.Hooks.withDefaults(),
	}, nil
}

// trimIdentity trims the mandatory settings. Fields gets a fresh slice so
// the caller's copy is never shared.
func trimIdentity(cfg Config) Config {
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	cfg.FormID = strings.TrimSpace(cfg.FormID)
	cfg.Fields = trimFields(cfg.Fields)
	return cfg
}

func trimFields(fields []string) []string {
	if fields == nil {
		return nil
	}
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = strings.TrimSpace(field)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
