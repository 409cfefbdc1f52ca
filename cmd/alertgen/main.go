package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/aalsahee/alertgen/internal/domain/alert"
	"github.com/aalsahee/alertgen/internal/generator"
	"github.com/aalsahee/alertgen/internal/infrastructure/config"
	"github.com/aalsahee/alertgen/internal/infrastructure/jsonl"
	"github.com/aalsahee/alertgen/internal/infrastructure/telemetry"
)

// Fixed fixture file names expected by the downstream test suites.
const (
	edrFileName  = "edr-alerts-test-10k.jsonl"
	ngavFileName = "ngav-alerts-test-10k.jsonl"
)

// Command-line flags
var (
	configPath = flag.String("config", "", "Path to optional configuration file")
	edrCount   = flag.Int("edr-count", 10000, "Number of EDR alerts to generate")
	ngavCount  = flag.Int("ngav-count", 10000, "Number of NGAV alerts to generate")
	outputDir  = flag.String("output-dir", "fixtures", "Output directory for generated files")
	seed       = flag.Int64("seed", 0, "Random seed; 0 seeds from the current time")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, err := telemetry.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

// applyFlagOverrides lets explicitly set flags win over file/env values.
func applyFlagOverrides(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "edr-count":
			cfg.Generator.EDRCount = *edrCount
		case "ngav-count":
			cfg.Generator.NGAVCount = *ngavCount
		case "output-dir":
			cfg.Output.Dir = *outputDir
		case "seed":
			cfg.Generator.Seed = *seed
		}
	})
}

func run(cfg *config.Config, logger *zap.Logger) error {
	runSeed := cfg.Generator.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))
	pools := generator.DefaultPools()

	logger.Info("generating EDR alerts",
		zap.Int("count", cfg.Generator.EDRCount),
		zap.Int64("seed", runSeed))
	edrAlerts := generator.NewEDRGenerator(rng, pools).Generate(cfg.Generator.EDRCount)
	if err := writeFamily(logger, filepath.Join(cfg.Output.Dir, edrFileName), edrAlerts); err != nil {
		return err
	}

	logger.Info("generating NGAV alerts", zap.Int("count", cfg.Generator.NGAVCount))
	ngavAlerts := generator.NewNGAVGenerator(rng, pools).Generate(cfg.Generator.NGAVCount)
	return writeFamily(logger, filepath.Join(cfg.Output.Dir, ngavFileName), ngavAlerts)
}

func writeFamily[T alert.EDRAlert | alert.NGAVAlert](logger *zap.Logger, path string, alerts []T) error {
	n, err := jsonl.WriteFile(path, alerts)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote alerts", zap.Int("count", n), zap.String("path", path))
	return nil
}
