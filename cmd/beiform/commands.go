package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-beiform"
	"github.com/goliatone/go-beiform/internal/httpapi"
	"github.com/goliatone/go-beiform/pkg/analysis"
	"github.com/goliatone/go-beiform/pkg/buildingtype"
	"github.com/goliatone/go-beiform/pkg/contract"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/payload"
	"github.com/goliatone/go-beiform/pkg/reference"
	"github.com/goliatone/go-beiform/pkg/service"
	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/summary"
	"github.com/goliatone/go-beiform/pkg/tui"
	"github.com/goliatone/go-beiform/pkg/validation"
	"github.com/goliatone/go-beiform/pkg/wizard"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshot>",
		Short: "Run the local checks and print the findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			res := validation.NewAggregator(validation.WithLogger(a.logger)).Validate(snap)
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if res.Blocking {
				return errBlocked
			}
			return nil
		},
	}
}

func (a *app) payloadCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "payload <snapshot>",
		Short: "Print the normalised request body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			res := beiform.Validate(snap)
			if res.Blocking && !force {
				fmt.Fprintln(cmd.ErrOrStderr(), res.Message())
				for _, path := range res.Order {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", path, res.Errors[path])
				}
				return errBlocked
			}
			data, err := payload.MarshalIndent(beiform.BuildPayload(snap))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "print the payload even when local checks fail")
	return cmd
}

func (a *app) printOutcome(w io.Writer, out submit.Outcome, router *wizard.Router) error {
	switch out.Status {
	case submit.StatusOK:
		if out.Result != nil && out.Result.BEI != nil {
			rating := analysis.AnalyzeBEI(*out.Result.BEI)
			fmt.Fprintf(w, "BEI: %s (%s)\n", analysis.FormatBEI(*out.Result.BEI), rating.Comment)
		} else {
			fmt.Fprintln(w, "計算が完了しました。")
		}
		if out.Result != nil {
			for _, msg := range out.Result.WarningMessages() {
				fmt.Fprintln(w, "警告:", msg)
			}
		}
		return nil
	default:
		fmt.Fprintln(w, out.Failure.Message)
		if step, ok := router.Step(out.Step); ok && out.Step != 0 {
			fmt.Fprintf(w, "該当ステップ: %d %s\n", step.ID, step.Label)
		}
		return errBlocked
	}
}

func (a *app) computeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "compute <snapshot>",
		Short: "Submit the snapshot to the compute operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			sub, _, err := a.submitter(cmd.Context())
			if err != nil {
				return err
			}
			out := sub.Compute(cmd.Context(), snap)
			if asJSON {
				if err := printJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
				if out.Status != submit.StatusOK {
					return errBlocked
				}
				return nil
			}
			return a.printOutcome(cmd.OutOrStdout(), out, sub.Router())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full outcome as JSON")
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	var (
		output   string
		workbook bool
	)
	cmd := &cobra.Command{
		Use:   "report <snapshot|workbook>",
		Short: "Render the official PDF report",
		Long: `Render the official PDF report from a snapshot, or with --workbook
from an input workbook uploaded as-is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, client, err := a.submitter(cmd.Context())
			if err != nil {
				return err
			}

			var pdf []byte
			if workbook {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				pdf, err = client.ReportFromWorkbook(cmd.Context(), filepath.Base(args[0]), data)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), service.Normalize(err).Message)
					return errBlocked
				}
			} else {
				snap, err := readSnapshot(args[0])
				if err != nil {
					return err
				}
				out := sub.Report(cmd.Context(), snap)
				if out.Status != submit.StatusOK {
					return a.printOutcome(cmd.ErrOrStderr(), out, sub.Router())
				}
				pdf = out.Report
			}

			if err := os.WriteFile(output, pdf, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "レポートを保存しました: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "bei-report.pdf", "PDF output path")
	cmd.Flags().BoolVar(&workbook, "workbook", false, "treat the argument as an input workbook")
	return cmd
}

func (a *app) reviewCmd() *cobra.Command {
	var (
		html        bool
		templateDir string
	)
	cmd := &cobra.Command{
		Use:   "review <snapshot>",
		Short: "Render the review summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			var templates fs.FS = beiform.EmbeddedTemplates()
			if templateDir != "" {
				templates = os.DirFS(templateDir)
			}
			renderer := summary.NewRenderer(summary.WithTemplates(templates))
			sum := summary.Build(snap, beiform.Validate(snap), nil, wizard.NewRouter())

			render := renderer.Markdown
			if html {
				render = renderer.HTML
			}
			text, err := render(sum)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "render HTML instead of Markdown")
	cmd.Flags().StringVar(&templateDir, "template-dir", "", "directory overriding the bundled templates")
	return cmd
}

func (a *app) analyzeCmd() *cobra.Command {
	var bei float64
	cmd := &cobra.Command{
		Use:   "analyze <snapshot>",
		Short: "Compare design energy figures with the reference ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			area, ok := snap.FloorArea()
			if !ok || area <= 0 {
				return errors.New("analyze: calc_floor_area must be a positive number")
			}
			intensities := make(map[reference.Category]float64, len(snap.DesignEnergy))
			for cat, v := range snap.DesignEnergy {
				if n, ok := v.Float(); ok && n > 0 {
					intensities[cat] = n / area
				}
			}
			report := map[string]any{
				"building_type": buildingtype.Resolve(snap.Building.BuildingType.Text()),
				"consumption":   analysis.NewAnalyzer().Breakdown(intensities, snap.Building.BuildingType.Text()),
			}
			if cmd.Flags().Changed("bei") {
				report["bei"] = analysis.AnalyzeBEI(bei)
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().Float64Var(&bei, "bei", 0, "also rate this BEI value")
	return cmd
}

func (a *app) referenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reference [building-type]",
		Short: "Print reference energy ranges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := reference.Default()
			if len(args) == 0 {
				types := table.Types()
				out := make(map[string]string, len(types))
				for _, t := range types {
					out[string(t)] = buildingtype.Label(t)
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"unit": table.Unit(), "types": out})
			}
			if !buildingtype.Known(args[0]) {
				return fmt.Errorf("unknown building type %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), table.Guidance(args[0]))
		},
	}
}

func (a *app) contractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contract",
		Short: "Print the embedded OpenAPI contract of the calculation service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := fs.ReadFile(beiform.ContractFS(), contract.DefaultFile)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (a *app) serviceVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "service-version",
		Short: "Query the calculation service version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, err := a.submitter(cmd.Context())
			if err != nil {
				return err
			}
			v, err := client.Version(cmd.Context())
			if err != nil {
				return errors.New(service.Normalize(err).Message)
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
}

func (a *app) readinessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readiness",
		Short: "Report whether the configuration is production ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := a.cfg.Readiness()
			if err := printJSON(cmd.OutOrStdout(), r); err != nil {
				return err
			}
			if !r.Ready {
				return errBlocked
			}
			return nil
		},
	}
}

func (a *app) wizardCmd() *cobra.Command {
	var (
		save   string
		report string
	)
	cmd := &cobra.Command{
		Use:   "wizard [snapshot]",
		Short: "Edit a snapshot interactively and submit it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := form.NewSnapshot()
			if len(args) == 1 {
				loaded, err := readSnapshot(args[0])
				if err != nil {
					return err
				}
				snap = loaded
			}
			sub, _, err := a.submitter(cmd.Context())
			if err != nil {
				return err
			}
			w := tui.New(
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithSession(submit.NewSession(sub)),
				tui.WithRouter(sub.Router()),
				tui.WithReportPath(report),
				tui.WithLogger(a.logger),
			)
			res, runErr := w.Run(cmd.Context(), snap)
			if save != "" && res.Snapshot != nil {
				if err := saveSnapshot(save, res.Snapshot); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "入力内容を保存しました: %s\n", save)
			}
			if errors.Is(runErr, tui.ErrAborted) {
				return nil
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the edited snapshot to this YAML file")
	cmd.Flags().StringVar(&report, "report", "", "enable PDF reports, written to this path")
	return cmd
}

func saveSnapshot(path string, snap *form.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, _, err := a.submitter(cmd.Context())
			if err != nil {
				return err
			}
			cfg := *a.cfg
			api := httpapi.New(sub,
				httpapi.WithLogger(a.logger),
				httpapi.WithReadiness(cfg.Readiness),
			)
			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           api.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("http api listening", "addr", cfg.HTTP.Addr, "service", cfg.Service.BaseURL)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()
			a.logger.Info("http api shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}
}
