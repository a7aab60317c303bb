package commands

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/internal/prompt"
	"github.com/goliatone/go-formflow/pkg/binding"
	"github.com/goliatone/go-formflow/pkg/dom/htmldoc"
	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/metrics"
	"github.com/goliatone/go-formflow/pkg/notify"
	"github.com/goliatone/go-formflow/pkg/page"
	"github.com/goliatone/go-formflow/pkg/transport"
)

// errSubmitFailed is returned when the server rejected the submission, so the
// process exits non-zero after the errors were printed.
var errSubmitFailed = errors.New("submission failed")

func newSubmitCommand(a *app) *cobra.Command {
	var (
		values      map[string]string
		interactive bool
		showMetrics bool
		output      string
		oa          openAPIFlags
	)

	cmd := &cobra.Command{
		Use:   "submit [form]",
		Short: "Fill a form and submit it to its endpoint",
		Long: `Render the form, fill its inputs and run a submission exactly as the
page runtime would. Notifications are printed as they fire and any field
errors reported by the server are listed afterwards.`,
		Example: `  formflow submit --base-url https://api.example.com \
    --set name=Ada --set email=ada@example.com --set message=Hello

  formflow submit BookingForm --forms ./forms --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			set, err := a.loadForms(ctx, oa)
			if err != nil {
				return err
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			cfg, err := set.find(name)
			if err != nil {
				return err
			}
			eff, err := formconfig.Merge(cfg)
			if err != nil {
				return err
			}

			p, err := set.page(cfg.Name)
			if err != nil {
				return err
			}
			renderer, err := page.New()
			if err != nil {
				return err
			}
			doc, err := renderer.Document(p)
			if err != nil {
				return err
			}

			if interactive {
				view := page.NewFormView(eff, set.hints[cfg.Name])
				values, err = prompt.Collect(ctx, prompt.NewSurveyDriver(), view, values)
				if err != nil {
					return err
				}
			}
			if err := fill(doc, eff, values); err != nil {
				return err
			}

			client, err := a.transport()
			if err != nil {
				return err
			}
			ns := notify.NewNamespace()
			ns.Set(notify.ToastKey, notify.NewConsole(out))

			promReg := prometheus.NewRegistry()
			collector, err := metrics.New(promReg)
			if err != nil {
				return err
			}

			reg := form.NewRegistry(
				form.WithClient(client),
				form.WithNamespace(ns),
				form.WithLogger(a.logger),
				form.WithDocument(doc),
				form.WithObserver(form.Observers{form.LogObserver{Logger: a.logger}, collector}),
			)
			if _, err := reg.Register(cfg); err != nil {
				return err
			}

			outcome, submitErr := reg.Submit(ctx, cfg.Name, form.NewEvent())
			fmt.Fprintf(out, "outcome: %s\n", outcome)
			printFieldErrors(out, doc, eff)

			if showMetrics {
				if err := printMetrics(out, promReg); err != nil {
					a.logger.Warn("metrics unavailable", zap.Error(err))
				}
			}
			if output != "" {
				if err := writeDocument(output, doc); err != nil {
					return err
				}
			}

			if submitErr != nil {
				return submitErr
			}
			if outcome != form.OutcomeSucceeded {
				return errSubmitFailed
			}
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&values, "set", nil, "field value as name=value (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for every field")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print submission metrics when done")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the page as left after the submission")
	cmd.Flags().StringVar(&oa.path, "openapi", "", "OpenAPI document to derive the form from")
	cmd.Flags().StringVar(&oa.operation, "operation", "", "POST operation id used with --openapi")

	return cmd
}

func (a *app) transport() (*transport.Client, error) {
	opts := []transport.Option{
		transport.WithBaseURL(a.settings.HTTP.BaseURL),
		transport.WithLogger(a.logger),
	}
	if a.settings.HTTP.Timeout > 0 {
		opts = append(opts, transport.WithHTTPClient(&http.Client{Timeout: a.settings.HTTP.Timeout}))
	}
	for name, value := range a.settings.HTTP.Headers {
		opts = append(opts, transport.WithHeader(name, value))
	}
	return transport.New(opts...)
}

// fill writes values into the inputs of eff. Unknown field names are
// rejected so typos do not silently submit empty values.
func fill(doc *htmldoc.Document, eff formconfig.Effective, values map[string]string) error {
	var unknown []string
	for name := range values {
		if !eff.HasField(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown fields for %s: %s", eff.Name, strings.Join(unknown, ", "))
	}
	for _, b := range eff.Bindings() {
		value, ok := values[b.Field]
		if !ok {
			continue
		}
		if input, found := doc.ElementByID(b.InputID); found {
			input.SetValue(value)
		}
	}
	return nil
}

func printFieldErrors(w io.Writer, doc *htmldoc.Document, eff formconfig.Effective) {
	for _, b := range eff.Bindings() {
		slot, ok := doc.ElementByID(b.ErrorID)
		if !ok || slot.HasClass(binding.HiddenClass) {
			continue
		}
		if text := strings.TrimSpace(slot.Text()); text != "" {
			fmt.Fprintf(w, "  %s: %s\n", b.Field, text)
		}
	}
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}

func writeDocument(path string, doc *htmldoc.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
