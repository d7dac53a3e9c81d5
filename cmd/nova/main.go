// Command nova runs the NOVA learning gain simulations and prints their reports.
//
// With no flags it runs both demonstrations with built-in defaults: a cohort
// of 10 students classified against the cohort mean, followed by 20 students
// studying Math, Science and Social against a fixed threshold of 60.
// -format json replaces the tables with one JSON document holding both runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/sky-flux/nova/cohort"
	"github.com/sky-flux/nova/config"
	"github.com/sky-flux/nova/report"
	"github.com/sky-flux/nova/study"
)

var (
	configFile = flag.String("config", "", "Configuration file path (built-in defaults when empty)")
	mode       = flag.String("mode", "all", "Simulation to run: cohort, study or all")
	format     = flag.String("format", "table", "Report format: table or json")
	chartPath  = flag.String("chart", "", "Write the improvement bar chart as PNG to this path")
	progress   = flag.Bool("progress", false, "Show a progress bar while generating the cohort")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Simulation failed")
		stop()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func setupLogger(cfg config.LoggingConfig) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	switch *mode {
	case "cohort", "study", "all":
	default:
		return fmt.Errorf("unknown mode %q (want cohort, study or all)", *mode)
	}
	switch *format {
	case "table", "json":
	default:
		return fmt.Errorf("unknown format %q (want table or json)", *format)
	}

	runID := uuid.New()
	logger := log.With().Str("run_id", runID.String()).Logger()
	logger.Info().Str("mode", *mode).Str("format", *format).Msg("Starting NOVA simulation")

	doc := report.Document{RunID: runID.String()}
	if *mode != "study" {
		res, err := runCohort(ctx, cfg, logger)
		if err != nil {
			return err
		}
		doc.Cohort = res
	}
	if *mode != "cohort" {
		students, err := study.Run(ctx, cfg.StudySimulation(&logger))
		if err != nil {
			return err
		}
		doc.Study = students
	}

	if *format == "json" {
		if err := report.JSON(out, doc); err != nil {
			return err
		}
	} else if err := writeTables(out, cfg, doc); err != nil {
		return err
	}

	if doc.Cohort == nil {
		return nil
	}
	path := cfg.Chart.PNG
	if *chartPath != "" {
		path = *chartPath
	}
	if path == "" {
		return nil
	}
	return writeChart(path, doc.Cohort, logger)
}

func runCohort(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*cohort.Result, error) {
	simCfg := cfg.CohortSimulation(&logger)
	if *progress {
		bar := progressbar.NewOptions(simCfg.Size,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("generating cohort"),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		simCfg.Progress = func() { _ = bar.Add(1) }
	}

	sim, err := cohort.NewSimulator(simCfg)
	if err != nil {
		return nil, err
	}
	return sim.Run(ctx)
}

func writeTables(out io.Writer, cfg *config.Config, doc report.Document) error {
	if doc.Cohort != nil {
		if err := report.CohortTable(out, doc.Cohort); err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := report.ImprovementChart(out, doc.Cohort, cfg.Chart.Width); err != nil {
			return err
		}
	}
	if doc.Study != nil {
		return report.StudyListing(out, doc.Study)
	}
	return nil
}

func writeChart(path string, res *cohort.Result, logger zerolog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := report.ImprovementPNG(f, res); err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("Improvement chart written")
	return nil
}
