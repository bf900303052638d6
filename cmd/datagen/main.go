package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/putti/consultfirm-datagen/internal/config"
	"github.com/putti/consultfirm-datagen/internal/db"
	"github.com/putti/consultfirm-datagen/internal/etl"
	"github.com/putti/consultfirm-datagen/internal/export"
	"github.com/putti/consultfirm-datagen/internal/fixtures"
	"github.com/putti/consultfirm-datagen/internal/generator"
	"github.com/putti/consultfirm-datagen/internal/logger"
	"github.com/putti/consultfirm-datagen/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	command := "generate"
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "generate":
		err = runGenerate(cfg, log, args)
	case "fixtures":
		err = runFixtures(cfg, log, args)
	case "export":
		err = runExport(cfg, log)
	case "statement":
		err = runStatement(cfg, log, args)
	case "etl":
		err = runETL(cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want generate, fixtures, export, statement or etl)\n", command)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("command failed")
		os.Exit(1)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runGenerate(cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	startYear := fs.Int("start-year", cfg.Generator.StartYear, "first simulated year")
	endYear := fs.Int("end-year", cfg.Generator.EndYear, "last simulated year")
	seed := fs.Int64("seed", cfg.Generator.Seed, "random seed (0 = time-based)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	database, err := db.New(cfg, log)
	if err != nil {
		return err
	}

	gen := generator.New(
		repository.NewDirectory(database),
		generator.StaticGrowth{Default: cfg.Generator.GrowthDefault, Years: cfg.Generator.GrowthYears},
		repository.NewStore(database),
		newRand(*seed),
		log,
	)

	log.Info().Int("start_year", *startYear).Int("end_year", *endYear).Msg("generating project data")
	return gen.Run(context.Background(), *startYear, *endYear)
}

func runFixtures(cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("fixtures", flag.ExitOnError)
	count := fs.Int("units", cfg.Fixtures.BusinessUnits, "business units to generate")
	seed := fs.Int64("seed", cfg.Generator.Seed, "random seed (0 = time-based)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := fixtures.WriteBusinessUnits(cfg.Fixtures.Dir, *count, newRand(*seed))
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("units", *count).Msg("business unit fixture written")
	return nil
}

func runExport(cfg *config.Config, log zerolog.Logger) error {
	database, err := db.New(cfg, log)
	if err != nil {
		return err
	}

	repo := repository.NewReportRepository(database)
	report, err := export.BuildDatasetReport(context.Background(), repo, time.Now())
	if err != nil {
		return err
	}

	content, err := export.NewExcelGenerator().Generate(report)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(cfg.Export.Dir, fmt.Sprintf("dataset-%s.xlsx", uuid.New().String()))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return err
	}
	log.Info().Str("path", path).Int("years", len(report.Years)).Msg("summary workbook written")
	return nil
}

func runStatement(cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("statement", flag.ExitOnError)
	projectID := fs.Int64("project", 0, "project id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *projectID == 0 {
		return fmt.Errorf("a -project id is required")
	}

	database, err := db.New(cfg, log)
	if err != nil {
		return err
	}

	repo := repository.NewReportRepository(database)
	statement, err := export.BuildEngagementStatement(context.Background(), repo, *projectID)
	if err != nil {
		return err
	}

	content, err := export.NewPDFGenerator().Generate(*statement)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(cfg.Export.Dir, fmt.Sprintf("statement-%d.pdf", *projectID))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return err
	}
	log.Info().Str("path", path).Int64("project", *projectID).Msg("engagement statement written")
	return nil
}

func runETL(cfg *config.Config, log zerolog.Logger) error {
	if cfg.Warehouse.DSN == "" {
		return fmt.Errorf("WAREHOUSE_DSN is required for etl")
	}

	source, err := db.New(cfg, log)
	if err != nil {
		return err
	}
	target, err := gorm.Open(postgres.Open(cfg.Warehouse.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect warehouse: %w", err)
	}

	log.Info().Msg("loading local database into warehouse")
	return etl.New(source, target, cfg.Warehouse.BatchSize, log).Run(context.Background())
}
