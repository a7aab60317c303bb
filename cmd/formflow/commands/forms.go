package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/components/contact"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/page"
)

// formSet is the ordered set of forms a command works on.
type formSet struct {
	configs []formconfig.Config
	hints   map[string]map[string]page.FieldHint
}

type openAPIFlags struct {
	path      string
	operation string
}

// names lists the form names in order.
func (s formSet) names() []string {
	out := make([]string, 0, len(s.configs))
	for _, cfg := range s.configs {
		out = append(out, cfg.Name)
	}
	return out
}

// find returns the named form, or the first one when name is empty.
func (s formSet) find(name string) (formconfig.Config, error) {
	if len(s.configs) == 0 {
		return formconfig.Config{}, fmt.Errorf("no forms defined")
	}
	if name == "" {
		return s.configs[0], nil
	}
	for _, cfg := range s.configs {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return formconfig.Config{}, fmt.Errorf("form %q not found (have %s)", name, strings.Join(s.names(), ", "))
}

// page builds a page holding every form of the set.
func (s formSet) page(title string) (page.Page, error) {
	p := page.Page{Title: title}
	for _, cfg := range s.configs {
		eff, err := formconfig.Merge(cfg)
		if err != nil {
			return page.Page{}, err
		}
		p.Add(eff, s.hints[cfg.Name])
	}
	return p, nil
}

// loadForms resolves the forms from the OpenAPI flags, the forms directory
// or the built-in contact form, in that order, then applies the configured
// theme classes.
func (a *app) loadForms(ctx context.Context, oa openAPIFlags) (formSet, error) {
	set := formSet{hints: make(map[string]map[string]page.FieldHint)}

	switch {
	case strings.TrimSpace(oa.path) != "":
		cfg, err := configFromOpenAPI(ctx, oa)
		if err != nil {
			return formSet{}, err
		}
		set.configs = append(set.configs, cfg)
	case strings.TrimSpace(a.settings.Forms.Dir) != "":
		store, err := formconfig.LoadFS(os.DirFS(a.settings.Forms.Dir))
		if err != nil {
			return formSet{}, err
		}
		for _, name := range store.Names() {
			cfg, _ := store.Form(name)
			set.configs = append(set.configs, cfg)
		}
		a.logger.Debug("form definitions loaded",
			zap.String("dir", a.settings.Forms.Dir),
			zap.Strings("forms", set.names()))
	default:
		component := contact.New()
		cfg := component.Config()
		set.configs = append(set.configs, cfg)
		set.hints[cfg.Name] = contact.Hints()
	}

	if manifest := a.settings.Theme.Manifest(); manifest != nil {
		selector := formconfig.NewManifestSelector(manifest)
		classes, err := formconfig.ThemeClasses(selector, a.settings.Theme.Name, a.settings.Theme.Variant)
		if err != nil {
			return formSet{}, err
		}
		for i := range set.configs {
			set.configs[i] = formconfig.ApplyClasses(set.configs[i], classes)
		}
	}
	return set, nil
}

func configFromOpenAPI(ctx context.Context, oa openAPIFlags) (formconfig.Config, error) {
	if strings.TrimSpace(oa.operation) == "" {
		return formconfig.Config{}, fmt.Errorf("--operation is required with --openapi")
	}
	data, err := os.ReadFile(oa.path)
	if err != nil {
		return formconfig.Config{}, fmt.Errorf("read openapi document: %w", err)
	}
	cfg, err := formconfig.FromOpenAPI(ctx, data, oa.operation)
	if err != nil {
		return formconfig.Config{}, err
	}
	cfg.Name = oa.operation
	cfg.FormID = kebab(oa.operation) + "-form"
	return cfg, nil
}

// kebab turns createBooking into create-booking.
func kebab(s string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '_' || r == ' ':
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
