// Package prompt collects form values interactively in a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formflow/pkg/page"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a single line prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// TextAreaConfig configures a multi-line prompt.
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// Driver abstracts the terminal so collection can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns the survey-backed driver.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			value, _ := ans.(string)
			return cfg.Validator(value)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Collect asks for every field of view in order. Values already present in
// defaults are offered as the prompt default. Required fields reject empty
// answers.
func Collect(ctx context.Context, driver Driver, view page.FormView, defaults map[string]string) (map[string]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	out := make(map[string]string, len(view.Fields))
	for _, field := range view.Fields {
		message := field.Label
		if field.Required {
			message += " *"
		}

		var (
			value string
			err   error
		)
		if field.Type == "textarea" {
			value, err = driver.TextArea(ctx, TextAreaConfig{
				Message: message,
				Default: defaults[field.Name],
			})
			if err == nil && field.Required && value == "" {
				err = fmt.Errorf("prompt: %s is required", field.Name)
			}
		} else {
			cfg := InputConfig{Message: message, Default: defaults[field.Name]}
			if field.Required {
				cfg.Validator = requireValue(field.Name)
			}
			value, err = driver.Input(ctx, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("prompt: field %s: %w", field.Name, err)
		}
		out[field.Name] = value
	}
	return out, nil
}

func requireValue(name string) func(string) error {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
