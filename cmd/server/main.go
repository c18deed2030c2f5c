package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_fuzzy_ratio/internal/adapters/httpapi"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_ratio/internal/config"
	"github.com/baditaflorin/go_fuzzy_ratio/pkg/fuzzy"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (also FUZZ_CONFIG)")
	port := flag.Int("port", 0, "HTTP server port, overrides the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}
	}

	lg, err := createLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	lg.Info("Starting fuzzy ratio HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"request_timeout", cfg.Server.RequestTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
		"default_cutoff", cfg.Scoring.DefaultCutoff,
		"processor", cfg.Scoring.Processor,
	)

	scorer, err := fuzzy.New(
		fuzzy.WithLogger(lg),
		fuzzy.WithCutoff(cfg.Scoring.DefaultCutoff),
		fuzzy.WithProcessorType(cfg.Scoring.Processor),
		fuzzy.WithWarmUp(cfg.WarmUp),
	)
	if err != nil {
		lg.Error("Failed to initialize scorer", "error", err)
		_ = lg.Close()
		os.Exit(1)
	}
	defer scorer.Close()

	lg.Info("Scorer initialized",
		"warm_up", cfg.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	handler := httpapi.NewHandler(scorer, logger.FromExisting(lg),
		httpapi.WithMaxTextLength(cfg.Server.MaxTextLength),
		httpapi.WithTimeout(cfg.Server.RequestTimeout),
	)

	server := &fasthttp.Server{
		Handler:               handler.Handle,
		Name:                  "FuzzyRatioServer",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lg.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			lg.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	lg.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		lg.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	lg.Info("Server stopped")
}

// createLogger builds the process logger from the log section of the config.
func createLogger(cfg config.LogConfig) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	lg, err := l.NewStandardFactory().CreateLogger(logger.DefaultConfig(output, cfg.JSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return lg, nil
}
