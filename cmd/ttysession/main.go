package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/ttysession/internal/infrastructure/config"
	"github.com/GriffinCanCode/ttysession/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ttysession/internal/logging"
	"github.com/GriffinCanCode/ttysession/internal/session"
	"github.com/GriffinCanCode/ttysession/internal/shared/id"
	"github.com/GriffinCanCode/ttysession/internal/signals"
	"github.com/GriffinCanCode/ttysession/internal/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ttysession: %v\n", err)
		return 2
	}

	// Parse flags
	flag.StringVar(&cfg.Session.Mode, "mode", cfg.Session.Mode, "Driver to run: signals or secret")
	flag.IntVar(&cfg.Session.BufferSize, "buffer", cfg.Session.BufferSize, "Read buffer size in bytes")
	flag.BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "Development logging (console, debug level)")
	flag.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.Metrics.File, "metrics-file", cfg.Metrics.File, "Write Prometheus textfile metrics here on exit")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ttysession: %v\n", err)
		return 2
	}

	sessionID := id.NewSessionID()
	logger := logging.NewFromConfig(cfg.Logging).WithSession(sessionID.String())
	defer logger.Sync()

	metrics := monitoring.NewMetrics()
	defer func() {
		if err := metrics.WriteTextfile(cfg.Metrics.File); err != nil {
			logger.Warn("Metrics export failed", zap.Error(err))
		}
	}()

	h := terminal.Stdin()
	if err := h.EnsureTerminal(); err != nil {
		logger.Error("Standard input is not usable", zap.Error(err))
		fmt.Fprintf(os.Stderr, "ttysession: %v\n", err)
		return 1
	}

	logger.Info("Session starting",
		zap.String("mode", cfg.Session.Mode),
		zap.Int("buffer_size", cfg.Session.BufferSize),
	)

	switch cfg.Session.Mode {
	case config.ModeSecret:
		err = runSecret(h, os.Stdout, logger.Logger, metrics)
	default:
		err = runSignals(h, cfg.Session.BufferSize, logger.Logger, metrics)
	}

	var sigErr *signalError
	if errors.As(err, &sigErr) {
		return sigErr.ExitCode()
	}
	if err != nil {
		logger.Error("Session failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "ttysession: %v\n", err)
		return 1
	}

	logger.Info("Session ended")
	return 0
}

// runSignals drives the signal-aware read loop until end of input.
func runSignals(h *terminal.Handle, bufSize int, logger *zap.Logger, metrics *monitoring.Metrics) error {
	n, err := signals.NewNotifier(signals.Received())
	if err != nil {
		return err
	}
	n.Install()
	defer n.Stop()

	loop := session.New(h.Reader(n), n,
		session.WithOutput(os.Stdout),
		session.WithLogger(logger),
		session.WithMetrics(metrics),
		session.WithBufferSize(bufSize),
	)
	return loop.Run()
}
