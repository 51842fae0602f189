package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-beiform"
	"github.com/goliatone/go-beiform/internal/config"
	"github.com/goliatone/go-beiform/internal/logging"
	"github.com/goliatone/go-beiform/internal/telemetry"
	"github.com/goliatone/go-beiform/pkg/form"
	"github.com/goliatone/go-beiform/pkg/service"
	"github.com/goliatone/go-beiform/pkg/submit"
)

var version = "0.1.0"

// errBlocked makes the process exit non-zero after the refusal was printed.
var errBlocked = errors.New("submission blocked")

func main() {
	root := newRootCmd(os.Stdout, os.Stderr, os.Getenv)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errBlocked) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// app carries the state shared by subcommands.
type app struct {
	configPath string
	apiBase    string

	cfg       *config.Config
	logger    *slog.Logger
	telemetry *telemetry.Provider

	getenv func(string) string
}

func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = os.Getenv
	}
	a := &app{getenv: getenv}

	rootCmd := &cobra.Command{
		Use:   "beiform",
		Short: "BEI building-energy input validation and submission",
		Long: `beiform checks BEI wizard input locally, builds the official
calculation request, and submits it to the calculation service.

Snapshots are JSON or YAML documents with a building record, optional
design figures, and the repeated equipment sections.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Context(), stderr)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.telemetry.Shutdown(context.WithoutCancel(cmd.Context()))
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.apiBase, "api-base", "", "calculation service base URL (overrides config)")

	rootCmd.AddCommand(a.validateCmd())
	rootCmd.AddCommand(a.payloadCmd())
	rootCmd.AddCommand(a.computeCmd())
	rootCmd.AddCommand(a.reportCmd())
	rootCmd.AddCommand(a.reviewCmd())
	rootCmd.AddCommand(a.analyzeCmd())
	rootCmd.AddCommand(a.referenceCmd())
	rootCmd.AddCommand(a.contractCmd())
	rootCmd.AddCommand(a.serviceVersionCmd())
	rootCmd.AddCommand(a.readinessCmd())
	rootCmd.AddCommand(a.wizardCmd())
	rootCmd.AddCommand(a.serveCmd())
	return rootCmd
}

func (a *app) load(ctx context.Context, stderr io.Writer) error {
	cfg, err := config.Load(a.configPath, config.WithEnv(a.getenv))
	if err != nil {
		return err
	}
	if a.apiBase != "" {
		cfg.Service.BaseURL = a.apiBase
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = logging.New(stderr, cfg.Log)

	if ctx == nil {
		ctx = context.Background()
	}
	a.telemetry, err = telemetry.New(ctx, cfg.Telemetry, telemetry.WithGlobal())
	if err != nil {
		return err
	}
	return nil
}

func (a *app) submitter(ctx context.Context) (*submit.Submitter, *service.Client, error) {
	return beiform.NewSubmitter(ctx, a.cfg.Service.BaseURL,
		beiform.WithLogger(a.logger),
		beiform.WithContractCheck(a.cfg.Contract.Enabled),
		beiform.WithServiceOptions(
			service.WithTimeout(a.cfg.Service.Timeout),
			service.WithTracerProvider(a.telemetry.TracerProvider()),
		),
	)
}

func readSnapshot(path string) (*form.Snapshot, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return form.Decode(data)
	}
	return form.LoadFile(path)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
