package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Path string
}

type WarehouseConfig struct {
	DSN       string
	BatchSize int
}

type GeneratorConfig struct {
	StartYear     int
	EndYear       int
	Seed          int64
	GrowthDefault float64
	GrowthYears   map[int]float64
}

type FixturesConfig struct {
	Dir           string
	BusinessUnits int
}

type ExportConfig struct {
	Dir string
}

type Config struct {
	Environment string
	DB          DBConfig
	Warehouse   WarehouseConfig
	Generator   GeneratorConfig
	Fixtures    FixturesConfig
	Export      ExportConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	growthYears, err := parseGrowthYears(v.GetString("GROWTH_YEARS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		DB: DBConfig{
			Path: v.GetString("DB_PATH"),
		},
		Warehouse: WarehouseConfig{
			DSN:       v.GetString("WAREHOUSE_DSN"),
			BatchSize: v.GetInt("WAREHOUSE_BATCH_SIZE"),
		},
		Generator: GeneratorConfig{
			StartYear:     v.GetInt("START_YEAR"),
			EndYear:       v.GetInt("END_YEAR"),
			Seed:          v.GetInt64("SEED"),
			GrowthDefault: v.GetFloat64("GROWTH_DEFAULT"),
			GrowthYears:   growthYears,
		},
		Fixtures: FixturesConfig{
			Dir:           v.GetString("FIXTURES_DIR"),
			BusinessUnits: v.GetInt("BUSINESS_UNITS"),
		},
		Export: ExportConfig{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = "consulting_firm.db"
	}
	if cfg.Warehouse.BatchSize == 0 {
		cfg.Warehouse.BatchSize = 500
	}
	if cfg.Generator.StartYear == 0 {
		cfg.Generator.StartYear = 2020
	}
	if cfg.Generator.EndYear == 0 {
		cfg.Generator.EndYear = cfg.Generator.StartYear + 4
	}
	if cfg.Generator.GrowthDefault == 0 {
		cfg.Generator.GrowthDefault = 0.05
	}
	if cfg.Fixtures.Dir == "" {
		cfg.Fixtures.Dir = "data/processed"
	}
	if cfg.Fixtures.BusinessUnits == 0 {
		cfg.Fixtures.BusinessUnits = 50
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "export"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Generator.StartYear > cfg.Generator.EndYear {
		return fmt.Errorf("START_YEAR %d is after END_YEAR %d", cfg.Generator.StartYear, cfg.Generator.EndYear)
	}
	return nil
}

// parseGrowthYears reads "2021:0.08,2022:0.03" into a year->rate map.
func parseGrowthYears(raw string) (map[int]float64, error) {
	raw = strings.TrimSpace(raw)
	result := map[int]float64{}
	if raw == "" {
		return result, nil
	}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("GROWTH_YEARS entry %q is not year:rate", item)
		}
		year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("GROWTH_YEARS entry %q: %w", item, err)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("GROWTH_YEARS entry %q: %w", item, err)
		}
		result[year] = rate
	}
	return result, nil
}
