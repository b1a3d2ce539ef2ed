package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Cyclone1070/pharmtui/internal/api"
	"github.com/Cyclone1070/pharmtui/internal/config"
	"github.com/Cyclone1070/pharmtui/internal/logging"
	"github.com/Cyclone1070/pharmtui/internal/metrics"
	"github.com/Cyclone1070/pharmtui/internal/ui"
	uiservices "github.com/Cyclone1070/pharmtui/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 2 * time.Second

// options holds the persistent flag values.
type options struct {
	baseURL     string
	configPath  string
	logFile     string
	verbose     bool
	metricsAddr string
}

// app holds everything built from the flags before a command runs.
type app struct {
	opts options

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	client   *api.Client

	metricsServer *http.Server
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pharmtui",
		Short: "Pharmacy Learning Toolkit in the terminal",
		Long: `pharmtui is a terminal client for the Pharmacy Learning Toolkit backend.

Run without arguments to open the interactive panels: drug search,
interaction simulator, pharmacology chatbot, quiz generator, research
assistant and demo data seeding.

Each panel is also available as a subcommand for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cmd == cmd.Root())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.baseURL, "base-url", "", "Backend base URL (default from config or "+config.EnvBackendURL+")")
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "Config file (default ~/.config/pharmtui/config.json)")
	flags.StringVar(&a.opts.logFile, "log-file", "", "Diagnostic log file for the interactive mode")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")

	root.AddCommand(
		newSearchCmd(a),
		newSimulateCmd(a),
		newChatCmd(a),
		newQuizCmd(a),
		newResearchCmd(a),
		newSeedCmd(a),
	)
	return root
}

// setup loads config, applies flag overrides, validates the result once and
// builds the logger, metrics and backend client.
func (a *app) setup(cmd *cobra.Command, interactive bool) error {
	cfg, err := config.NewLoader().LoadFrom(a.opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Backend.BaseURL = a.opts.baseURL
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.opts.logFile
	}
	if a.opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if interactive {
		a.logger, err = logging.New(cfg.Log.File, cfg.Log.Level)
	} else {
		a.logger, err = logging.NewConsole(cfg.Log.Level)
	}
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	collectors := metrics.New(a.registry)

	a.client, err = api.NewClient(cfg.Backend.BaseURL,
		api.WithTimeout(cfg.RequestTimeout()),
		api.WithRateLimit(cfg.Backend.RequestsPerSecond),
		api.WithMetrics(collectors),
		api.WithLogger(a.logger),
		api.WithRequestIDFunc(uuid.NewString),
	)
	if err != nil {
		return err
	}

	if a.opts.metricsAddr != "" {
		if err := a.serveMetrics(a.opts.metricsAddr); err != nil {
			return err
		}
	}

	a.logger.Debug("configured",
		zap.String("base_url", a.client.BaseURL()),
		zap.Duration("timeout", cfg.RequestTimeout()),
		zap.Bool("interactive", interactive),
	)
	return nil
}

// serveMetrics exposes /metrics until teardown.
func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(a.registry))
	a.metricsServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := a.metricsServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
	a.logger.Info("serving metrics", zap.String("addr", ln.Addr().String()))
	return nil
}

func (a *app) teardown() {
	if a.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = a.metricsServer.Shutdown(ctx)
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) runInteractive() error {
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	tui := ui.NewUI(a.client, uiservices.NewGlamourRenderer(), spinnerFactory, a.cfg, a.logger)
	return tui.Start()
}
