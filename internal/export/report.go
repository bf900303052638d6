package export

import (
	"context"
	"time"

	"github.com/putti/consultfirm-datagen/internal/model"
	"github.com/putti/consultfirm-datagen/internal/repository"
)

// BuildDatasetReport groups all generated projects by start year into the
// summary-workbook read model.
func BuildDatasetReport(ctx context.Context, repo *repository.ReportRepository, now time.Time) (model.DatasetReport, error) {
	projects, err := repo.ListProjects(ctx)
	if err != nil {
		return model.DatasetReport{}, err
	}

	byYear := map[int]*model.YearSummary{}
	var years []int
	for _, project := range projects {
		year := project.PlannedStartDate.Year()
		summary, ok := byYear[year]
		if !ok {
			summary = &model.YearSummary{Year: year}
			byYear[year] = summary
			years = append(years, year)
		}
		summary.ProjectCount++
		switch project.Type {
		case model.ProjectTypeFixed:
			summary.FixedCount++
		case model.ProjectTypeTimeAndMaterial:
			summary.TimeAndMaterial++
		}
		if project.Status == model.ProjectStatusCompleted {
			summary.CompletedCount++
		}
		summary.PlannedHours += project.PlannedHours
		summary.TotalExpenses += project.TotalExpenses
		summary.Projects = append(summary.Projects, project)
	}

	report := model.DatasetReport{GeneratedAt: now}
	for _, year := range years {
		report.Years = append(report.Years, *byYear[year])
	}
	return report, nil
}

// BuildEngagementStatement assembles everything the statement PDF prints
// for one project.
func BuildEngagementStatement(ctx context.Context, repo *repository.ReportRepository, projectID int64) (*model.EngagementStatement, error) {
	project, err := repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	clientName, err := repo.ClientName(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	unitName, err := repo.BusinessUnitName(ctx, project.UnitID)
	if err != nil {
		return nil, err
	}
	team, err := repo.ListTeam(ctx, project.ProjectID)
	if err != nil {
		return nil, err
	}
	deliverables, err := repo.ListDeliverables(ctx, project.ProjectID)
	if err != nil {
		return nil, err
	}
	expenses, err := repo.ListExpenses(ctx, project.ProjectID)
	if err != nil {
		return nil, err
	}
	rates, err := repo.ListBillingRates(ctx, project.ProjectID)
	if err != nil {
		return nil, err
	}

	return &model.EngagementStatement{
		Project:      *project,
		ClientName:   clientName,
		UnitName:     unitName,
		Team:         team,
		Deliverables: deliverables,
		Expenses:     expenses,
		BillingRates: rates,
	}, nil
}
