// Package commands implements the formflow command line.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/internal/logging"
	"github.com/goliatone/go-formflow/internal/settings"
)

type globalFlags struct {
	configPath string
	formsDir   string
	baseURL    string
	logLevel   string
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	settings *settings.Settings
	logger   *zap.Logger
}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit string) error {
	return newRootCommand(version, commit).ExecuteContext(ctx)
}

func newRootCommand(version, commit string) *cobra.Command {
	flags := &globalFlags{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "formflow",
		Short: "Render, check and submit convention-bound HTML forms",
		Long: `formflow renders pages whose forms follow the input and error id
convention, checks existing pages against form definitions and submits a
form the way the browser runtime does, printing notifications and field
errors to the terminal.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(flags)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "settings file (YAML)")
	pf.StringVar(&flags.formsDir, "forms", "", "directory of form definitions (defaults to the built-in contact form)")
	pf.StringVar(&flags.baseURL, "base-url", "", "base URL relative endpoints resolve against")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newRenderCommand(a))
	rootCmd.AddCommand(newSubmitCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))

	return rootCmd
}

// init loads settings and applies flag overrides, which take precedence over
// the file and environment layers.
func (a *app) init(flags *globalFlags) error {
	cfg, err := settings.Load(flags.configPath)
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(flags.formsDir); v != "" {
		cfg.Forms.Dir = v
	}
	if v := strings.TrimSpace(flags.baseURL); v != "" {
		cfg.HTTP.BaseURL = v
	}
	if v := strings.TrimSpace(flags.logLevel); v != "" {
		cfg.Log.Level = v
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.settings = cfg
	a.logger = logger
	return nil
}
