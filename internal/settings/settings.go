// Package settings loads the CLI configuration from three layers, highest
// precedence last: built-in defaults, an optional YAML file and environment
// variables prefixed FORMFLOW_, where "__" maps to "." (for example
// FORMFLOW_HTTP__BASE_URL sets http.base_url).
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FORMFLOW_"

type HTTP struct {
	BaseURL string            `koanf:"base_url" validate:"omitempty,url"`
	Timeout time.Duration     `koanf:"timeout" validate:"gte=0"`
	Headers map[string]string `koanf:"headers"`
}

type Forms struct {
	// Dir holds YAML/JSON form definitions. Empty selects the built-in
	// contact form.
	Dir string `koanf:"dir"`
}

type Log struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// ThemeClasses are the input state classes of a theme or variant.
type ThemeClasses struct {
	Error  string `koanf:"error"`
	Normal string `koanf:"normal"`
}

// Theme describes an inline theme manifest. Token names contain dots, which
// koanf treats as nesting, so the input classes are spelled out instead.
type Theme struct {
	Name     string                  `koanf:"name"`
	Variant  string                  `koanf:"variant"`
	Input    ThemeClasses            `koanf:"input"`
	Variants map[string]ThemeClasses `koanf:"variants"`
}

type Notify struct {
	Duration time.Duration `koanf:"duration" validate:"gte=0"`
}

type Settings struct {
	HTTP   HTTP   `koanf:"http"`
	Forms  Forms  `koanf:"forms"`
	Log    Log    `koanf:"log"`
	Theme  Theme  `koanf:"theme"`
	Notify Notify `koanf:"notify"`
}

// Defaults returns the built-in layer.
func Defaults() Settings {
	return Settings{
		HTTP:   HTTP{Timeout: 30 * time.Second},
		Log:    Log{Level: "info", Format: "console"},
		Notify: Notify{Duration: 4 * time.Second},
	}
}

var validate = validator.New()

// Load merges the layers and validates the result. path may be empty.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	if path = strings.TrimSpace(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("settings: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("settings: env overlay: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("settings: unmarshal: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("settings: invalid: %w", err)
	}
	return &cfg, nil
}
