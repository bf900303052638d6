package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/putti/consultfirm-datagen/internal/generator"
)

// Directory serves the generator's read side from the local database.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) ClientIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).Raw(`
		SELECT ClientID FROM Client ORDER BY ClientID
	`).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *Directory) BusinessUnitIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).Raw(`
		SELECT BusinessUnitID FROM BusinessUnit ORDER BY BusinessUnitID
	`).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// AvailableConsultants returns every consultant whose title-history
// interval intersects the given year, with the current title and salary
// (latest row by start date) resolved in the same query. The result is
// ordered so a fixed seed replays identically.
func (d *Directory) AvailableConsultants(ctx context.Context, year int) ([]generator.ConsultantView, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var rows []struct {
		ConsultantID int64
		TitleID      int
		Salary       float64
	}
	err := d.db.WithContext(ctx).Raw(`
		SELECT
			c.ConsultantID AS ConsultantID,
			current.TitleID AS TitleID,
			current.Salary AS Salary
		FROM Consultant c
		JOIN Consultant_Title_History current ON current.ID = (
			SELECT th.ID
			FROM Consultant_Title_History th
			WHERE th.ConsultantID = c.ConsultantID
			ORDER BY th.StartDate DESC
			LIMIT 1
		)
		WHERE EXISTS (
			SELECT 1
			FROM Consultant_Title_History active
			WHERE active.ConsultantID = c.ConsultantID
				AND active.StartDate <= ?
				AND (active.EndDate >= ? OR active.EndDate IS NULL)
		)
		ORDER BY c.ConsultantID
	`, yearEnd, yearStart).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	pool := make([]generator.ConsultantView, 0, len(rows))
	for _, row := range rows {
		pool = append(pool, generator.ConsultantView{
			ConsultantID: row.ConsultantID,
			TitleID:      row.TitleID,
			Salary:       row.Salary,
		})
	}
	return pool, nil
}
