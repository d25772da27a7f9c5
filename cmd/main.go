// Rowaudit checks how uniformly a load-test tool's random CSV row selection
// covers the data set. It loads the referential CSV, collects a draw
// sequence (simulated locally, scraped from a log file, or captured from the
// tool's own output), audits the distribution and prints the analysis.
//
// Exit codes:
//
//	0 - Audit completed
//	1 - Configuration or internal failure
//	2 - Input errors (CSV, log file or subprocess)
//	3 - Draw data rejected by the auditor (log and CSV disagree)
package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexkarev/rowaudit/config"
	"github.com/alexkarev/rowaudit/internal/auditor"
	"github.com/alexkarev/rowaudit/internal/drawsource"
	"github.com/alexkarev/rowaudit/internal/population"
	"github.com/alexkarev/rowaudit/internal/report"
	"github.com/alexkarev/rowaudit/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.Logging.Level, false, cfg.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pop, err := population.LoadFile(cfg.Population.Path, cfg.Population.LabelColumn)
	if err != nil {
		log.Error("Failed to load population",
			slog.String("path", cfg.Population.Path),
			slog.Any("err", err))
		os.Exit(2)
	}

	log.Info("Loaded population",
		slog.Int("records", len(pop)),
		slog.String("label_column", cfg.Population.LabelColumn))

	draws, err := collectDraws(ctx, cfg, pop, log)
	if err != nil {
		log.Error("Failed to collect draws",
			slog.String("mode", cfg.Source.Mode),
			slog.Any("err", err))
		os.Exit(2)
	}

	log.Info("Collected draws",
		slog.Int("count", len(draws)),
		slog.String("mode", cfg.Source.Mode))

	rep, err := auditor.Audit(pop, draws)
	if err != nil {
		log.Error("Auditor rejected the draw data", slog.Any("err", err))
		os.Exit(3)
	}

	verdict := auditor.Classify(rep, auditor.Thresholds{
		MaxCV:       cfg.Analysis.MaxCV,
		MinCoverage: cfg.Analysis.MinCoverage,
	})

	report.Render(os.Stdout, rep, verdict, cfg.Analysis.Top)
}

func collectDraws(ctx context.Context, cfg *config.Config, pop auditor.Population, log *slog.Logger) ([]int, error) {
	switch cfg.Source.Mode {
	case config.SourceSimulate:
		return drawsource.Uniform(len(pop), cfg.Source.Draws, cfg.Source.Seed), nil

	case config.SourceLogfile:
		scraper, err := drawsource.NewScraper(cfg.Source.Pattern)
		if err != nil {
			return nil, err
		}

		f, err := os.Open(cfg.Source.LogPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return scraper.Scrape(f, pop)

	case config.SourceCommand:
		scraper, err := drawsource.NewScraper(cfg.Source.Pattern)
		if err != nil {
			return nil, err
		}

		timeout, err := time.ParseDuration(cfg.Source.Timeout)
		if err != nil {
			return nil, err
		}

		runner := &drawsource.CommandRunner{
			Command: cfg.Source.Command,
			Args:    cfg.Source.Args,
			Stdin:   cfg.Source.Stdin,
			Timeout: timeout,
			Logger:  log,
		}

		out, err := runner.Run(ctx)
		if err != nil {
			return nil, err
		}

		return scraper.Scrape(bytes.NewReader(out), pop)

	default:
		return nil, fmt.Errorf("unknown source mode %q", cfg.Source.Mode)
	}
}
