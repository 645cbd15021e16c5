package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ressKim-io/NewsGuard/internal/adapter/client"
	"github.com/ressKim-io/NewsGuard/internal/adapter/tui"
	"github.com/ressKim-io/NewsGuard/internal/infrastructure/config"
	"github.com/ressKim-io/NewsGuard/internal/infrastructure/logger"
	"github.com/ressKim-io/NewsGuard/internal/infrastructure/metrics"
	"github.com/ressKim-io/NewsGuard/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout belongs to the terminal UI; log to a file or not at all
	if cfg.Log.File == "" {
		cfg.Log.Level = "fatal"
	}
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	predictor := client.NewPredictionService(client.NewPredictClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout))
	recorder := metrics.NewRecorder(prometheus.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(ctx, cfg.UI.Title, func(field *usecase.TextField, display *usecase.Display) *usecase.FormController {
		return usecase.NewFormController(predictor, field, display, log).WithRecorder(recorder)
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("terminal form failed: %w", err)
	}
	return nil
}
