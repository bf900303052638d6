package etl

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Tables copied to the warehouse, in dependency order. Helper tables
// (ConsultantCustomData, ProjectCustomData) are intentionally absent.
var orderedTables = []string{
	"Title",
	"Location",
	"BusinessUnit",
	"Client",
	"Consultant",
	"Consultant_Title_History",
	"Payroll",
	"Project",
	"ProjectTeam",
	"Deliverable",
	"ProjectBillingRate",
	"Consultant_Deliverable",
	"ProjectExpense",
}

// Loader copies the local database into the warehouse, renaming tables
// and columns to the warehouse's upper-case convention. Pure schema
// mapping; no values are derived or rewritten.
type Loader struct {
	source    *gorm.DB
	target    *gorm.DB
	batchSize int
	log       zerolog.Logger
}

func New(source, target *gorm.DB, batchSize int, log zerolog.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Loader{source: source, target: target, batchSize: batchSize, log: log}
}

func (l *Loader) Run(ctx context.Context) error {
	for _, table := range orderedTables {
		if err := l.copyTable(ctx, table); err != nil {
			return fmt.Errorf("copy table %s: %w", table, err)
		}
	}
	return nil
}

func (l *Loader) copyTable(ctx context.Context, table string) error {
	var rows []map[string]interface{}
	if err := l.source.WithContext(ctx).Table(table).Find(&rows).Error; err != nil {
		return err
	}

	targetTable := warehouseName(table)
	if len(rows) == 0 {
		l.log.Info().Str("table", table).Str("target", targetTable).Msg("source table empty, skipped")
		return nil
	}

	renamed := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		mapped := make(map[string]interface{}, len(row))
		for column, value := range row {
			mapped[warehouseName(column)] = value
		}
		renamed[i] = mapped
	}

	for start := 0; start < len(renamed); start += l.batchSize {
		end := start + l.batchSize
		if end > len(renamed) {
			end = len(renamed)
		}
		batch := renamed[start:end]
		if err := l.target.WithContext(ctx).Table(targetTable).Create(&batch).Error; err != nil {
			return err
		}
	}

	l.log.Info().Str("table", table).Str("target", targetTable).Int("rows", len(rows)).Msg("table copied")
	return nil
}

// warehouseName maps a local table or column name onto the warehouse
// convention: upper-cased, underscores preserved.
func warehouseName(name string) string {
	return strings.ToUpper(name)
}
