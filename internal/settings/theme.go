package settings

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formflow/pkg/formconfig"
)

// Manifest converts the inline theme into a go-theme manifest. It returns
// nil when no theme is configured.
func (t Theme) Manifest() *theme.Manifest {
	if t.Name == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name:   t.Name,
		Tokens: tokens(t.Input),
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, classes := range t.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: tokens(classes)}
		}
	}
	return manifest
}

func tokens(c ThemeClasses) map[string]string {
	out := make(map[string]string, 2)
	if c.Error != "" {
		out[formconfig.TokenErrorClass] = c.Error
	}
	if c.Normal != "" {
		out[formconfig.TokenNormalClass] = c.Normal
	}
	return out
}
