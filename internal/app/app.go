// Package app wires the mirrsearch services together and runs either the
// terminal UI or a one-shot search.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"mirrsearch/internal/config"
	"mirrsearch/internal/domain"
	"mirrsearch/internal/eventbus"
	"mirrsearch/internal/filters"
	"mirrsearch/internal/search"
	"mirrsearch/internal/searchclient"
	"mirrsearch/internal/ui"
)

// Main runs the program with args and returns the exit status
func Main(args []string) int {
	opts, err := ParseFlags(args, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	// Set up logging
	logFile, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := Run(ctx, opts, os.Stdout); err != nil {
		log.Printf("Exiting with error: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Run builds the services described by opts and runs the selected mode
func Run(ctx context.Context, opts Options, stdout io.Writer) error {
	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	reg := prometheus.NewRegistry()
	newLifecycleMetrics(reg, bus)

	configSvc := config.NewConfigServiceWithBus(opts.ConfigPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.Search.BaseURL = opts.BaseURL
	}

	if opts.InitConfig {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", configSvc.Path())
		return nil
	}

	client := searchclient.New(cfg.Search.BaseURL,
		searchclient.WithTimeout(cfg.SearchTimeout()),
		searchclient.WithMetrics(searchclient.NewMetrics(reg)),
	)
	svc := search.NewService(client, bus)
	fs := filters.New(cfg.FilterOptions())

	if opts.MetricsAddr != "" {
		stop := serveMetrics(opts.MetricsAddr, reg)
		defer stop()
	}

	if opts.Print {
		return runPrint(ctx, opts, fs, svc, stdout)
	}
	return runTUI(ctx, bus, cfg, fs, svc)
}

// serveMetrics exposes reg on addr until the returned function is called
func serveMetrics(addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Printf("Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server failed: %v", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// applyOptions copies the one-shot filters into fs. Agencies and parts are
// selected last to first so the first one given is the most recent and is
// the one sent.
func applyOptions(opts Options, fs *filters.State) {
	fs.SetQuery(opts.Query)
	fs.SetDateRange(opts.From, opts.To)
	if opts.DocketType != "" {
		fs.SetDocketType(opts.DocketType)
	}
	for _, s := range opts.Statuses {
		if !fs.HasStatus(s) {
			fs.ToggleStatus(s)
		}
	}
	// toggling a selected key twice promotes it without dropping it
	for _, code := range slices.Backward(opts.Agencies) {
		if fs.AgencySelected(code) {
			fs.ToggleAgency(code)
		}
		fs.ToggleAgency(code)
	}
	for _, part := range slices.Backward(opts.CfrParts) {
		if fs.CfrPartSelected(part) {
			fs.ToggleCfrPart(part)
		}
		fs.ToggleCfrPart(part)
	}
}

func runPrint(ctx context.Context, opts Options, fs *filters.State, svc *search.Service, stdout io.Writer) error {
	applyOptions(opts, fs)

	rs, err := svc.Search(ctx, fs.Snapshot())
	if err != nil {
		return err
	}

	results := rs.Results
	if results == nil {
		results = []domain.Result{}
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func runTUI(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, fs *filters.State, svc *search.Service) error {
	model := ui.NewModel(ctx, bus, cfg, fs, svc)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Printf("UI stopped by signal")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
