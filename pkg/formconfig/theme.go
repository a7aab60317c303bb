package formconfig

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme tokens holding the input state classes.
const (
	TokenErrorClass  = "form.input.error"
	TokenNormalClass = "form.input.normal"
)

// Classes are the CSS classes toggled on inputs.
type Classes struct {
	Error  string
	Normal string
}

// ThemeClasses resolves input classes from the theme chosen by selector.
// Variant tokens override base tokens; missing tokens fall back to the engine
// defaults.
func ThemeClasses(selector theme.ThemeSelector, name, variant string) (Classes, error) {
	if selector == nil {
		return Classes{}, errors.New("formconfig: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Classes{}, fmt.Errorf("formconfig: select theme %q: %w", name, err)
	}
	tokens := selectionTokens(selection)
	return Classes{
		Error:  firstNonEmpty(tokens[TokenErrorClass], DefaultErrorClass),
		Normal: firstNonEmpty(tokens[TokenNormalClass], DefaultNormalClass),
	}, nil
}

// ApplyClasses fills the class settings of cfg that the caller left empty.
func ApplyClasses(cfg Config, classes Classes) Config {
	if strings.TrimSpace(cfg.ErrorClass) == "" {
		cfg.ErrorClass = classes.Error
	}
	if strings.TrimSpace(cfg.NormalClass) == "" {
		cfg.NormalClass = classes.Normal
	}
	return cfg
}

func selectionTokens(selection *theme.Selection) map[string]string {
	tokens := make(map[string]string)
	if selection == nil || selection.Manifest == nil {
		return tokens
	}
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}

// ManifestSelector selects among an in-memory set of manifests.
type ManifestSelector struct {
	manifests    map[string]*theme.Manifest
	defaultTheme string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector indexes manifests by name. The first manifest is the
// default used when Select receives an empty name.
func NewManifestSelector(manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		if s.defaultTheme == "" {
			s.defaultTheme = manifest.Name
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// Select implements theme.ThemeSelector. Unknown variants select the base
// manifest tokens.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name == "" {
		name = s.defaultTheme
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("formconfig: theme %q not registered", name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
