package db

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/putti/consultfirm-datagen/internal/config"
)

// New opens the local sqlite database and applies migrations. Column
// names keep the schema's original casing (ProjectID, PlannedStartDate)
// so the warehouse rename stays a pure upper-casing.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NamingStrategy: schema.NamingStrategy{NoLowerCase: true},
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", cfg.DB.Path, err)
	}

	if err := runMigrations(database); err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.DB.Path).Msg("database ready")
	return database, nil
}
