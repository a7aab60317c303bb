package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/page"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		output     string
		title      string
		stylesheet string
		templates  string
		oa         openAPIFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an HTML page containing the configured forms",
		Example: `  # Render the built-in contact form
  formflow render -o contact.html

  # Render every definition in a directory
  formflow render --forms ./forms --title "Bookings"

  # Derive a form from an OpenAPI operation
  formflow render --openapi api.yaml --operation createBooking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := a.loadForms(cmd.Context(), oa)
			if err != nil {
				return err
			}
			p, err := set.page(title)
			if err != nil {
				return err
			}
			p.Stylesheet = stylesheet

			var opts []page.Option
			if templates != "" {
				opts = append(opts, page.WithTemplatesDir(templates))
			}
			renderer, err := page.New(opts...)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := renderer.Render(w, p); err != nil {
				return err
			}
			if output != "" {
				a.logger.Info("page written", zap.String("path", output), zap.Strings("forms", set.names()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&title, "title", "Contact", "page title")
	cmd.Flags().StringVar(&stylesheet, "stylesheet", "", "stylesheet URL linked from the page")
	cmd.Flags().StringVar(&templates, "templates", "", "directory overriding the page templates")
	cmd.Flags().StringVar(&oa.path, "openapi", "", "OpenAPI document to derive the form from")
	cmd.Flags().StringVar(&oa.operation, "operation", "", "POST operation id used with --openapi")

	return cmd
}
