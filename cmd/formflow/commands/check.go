package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formflow/pkg/binding"
	"github.com/goliatone/go-formflow/pkg/dom"
	"github.com/goliatone/go-formflow/pkg/dom/htmldoc"
	"github.com/goliatone/go-formflow/pkg/formconfig"
)

func newCheckCommand(a *app) *cobra.Command {
	var (
		pagePath string
		oa       openAPIFlags
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate form definitions and, optionally, a page against them",
		Long: `Validate every form definition. With --page the HTML file is also checked
for the form element, the submit control and the input and error slot of
every field.`,
		Example: `  formflow check --forms ./forms
  formflow check --page public/contact.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			set, err := a.loadForms(cmd.Context(), oa)
			if err != nil {
				return err
			}

			var doc *htmldoc.Document
			if pagePath != "" {
				f, err := os.Open(pagePath)
				if err != nil {
					return fmt.Errorf("open page: %w", err)
				}
				doc, err = htmldoc.Parse(f)
				f.Close()
				if err != nil {
					return err
				}
			}

			failed := 0
			for _, cfg := range set.configs {
				eff, err := formconfig.Merge(cfg)
				if err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", cfg.Name, err)
					failed++
					continue
				}
				if doc == nil {
					fmt.Fprintf(out, "ok   %s #%s (%s)\n", eff.Name, eff.FormID, strings.Join(eff.Fields, ", "))
					continue
				}
				if missing := missingElements(doc, eff); len(missing) > 0 {
					reportMissing(out, eff.Name, missing)
					failed++
					continue
				}
				fmt.Fprintf(out, "ok   %s #%s bound in %s\n", eff.Name, eff.FormID, pagePath)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d forms failed", failed, len(set.configs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pagePath, "page", "", "HTML page to check the bindings against")
	cmd.Flags().StringVar(&oa.path, "openapi", "", "OpenAPI document to derive the form from")
	cmd.Flags().StringVar(&oa.operation, "operation", "", "POST operation id used with --openapi")

	return cmd
}

// missingElements lists the ids or selectors eff expects but doc lacks.
func missingElements(doc dom.Document, eff formconfig.Effective) []string {
	formEl, ok := doc.ElementByID(eff.FormID)
	if !ok {
		return []string{"#" + eff.FormID}
	}

	var missing []string
	if _, ok := formEl.Query(binding.SubmitSelector); !ok {
		if _, ok := formEl.Query(`input[type="submit"]`); !ok {
			missing = append(missing, binding.SubmitSelector)
		}
	}
	if eff.HostID != "" {
		if _, ok := doc.ElementByID(eff.HostID); !ok {
			missing = append(missing, "#"+eff.HostID)
		}
	}
	for _, b := range eff.Bindings() {
		if _, ok := doc.ElementByID(b.InputID); !ok {
			missing = append(missing, "#"+b.InputID)
		}
		if _, ok := doc.ElementByID(b.ErrorID); !ok {
			missing = append(missing, "#"+b.ErrorID)
		}
	}
	return missing
}

func reportMissing(w io.Writer, name string, missing []string) {
	fmt.Fprintf(w, "FAIL %s: missing %s\n", name, strings.Join(missing, ", "))
}
