package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/putti/consultfirm-datagen/internal/model"
)

// ReportRepository reads generated entities back for exports.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM Project ORDER BY PlannedStartDate, ProjectID
	`).Scan(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ReportRepository) GetProject(ctx context.Context, projectID int64) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM Project WHERE ProjectID = ? LIMIT 1
	`, projectID).Scan(&project).Error
	if err != nil {
		return nil, err
	}
	if project.ProjectID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &project, nil
}

func (r *ReportRepository) ClientName(ctx context.Context, clientID int64) (string, error) {
	var name string
	err := r.db.WithContext(ctx).Raw(`
		SELECT ClientName FROM Client WHERE ClientID = ? LIMIT 1
	`, clientID).Scan(&name).Error
	return name, err
}

func (r *ReportRepository) BusinessUnitName(ctx context.Context, unitID int64) (string, error) {
	var name string
	err := r.db.WithContext(ctx).Raw(`
		SELECT BusinessUnitName FROM BusinessUnit WHERE BusinessUnitID = ? LIMIT 1
	`, unitID).Scan(&name).Error
	return name, err
}

func (r *ReportRepository) ListDeliverables(ctx context.Context, projectID int64) ([]model.Deliverable, error) {
	var deliverables []model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM Deliverable WHERE ProjectID = ? ORDER BY PlannedStartDate
	`, projectID).Scan(&deliverables).Error
	if err != nil {
		return nil, err
	}
	return deliverables, nil
}

func (r *ReportRepository) ListExpenses(ctx context.Context, projectID int64) ([]model.ProjectExpense, error) {
	var expenses []model.ProjectExpense
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM ProjectExpense WHERE ProjectID = ? ORDER BY Date, ProjectExpenseID
	`, projectID).Scan(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *ReportRepository) ListBillingRates(ctx context.Context, projectID int64) ([]model.ProjectBillingRate, error) {
	var rates []model.ProjectBillingRate
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM ProjectBillingRate WHERE ProjectID = ? ORDER BY TitleID
	`, projectID).Scan(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}

// ListTeam returns the staffed consultants of a project with their
// current title resolved the same way the generator resolves it.
func (r *ReportRepository) ListTeam(ctx context.Context, projectID int64) ([]model.TeamMemberLine, error) {
	var rows []struct {
		ConsultantID int64
		FirstName    string
		LastName     string
		TitleID      int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.ConsultantID AS ConsultantID,
			c.FirstName AS FirstName,
			c.LastName AS LastName,
			current.TitleID AS TitleID
		FROM ProjectTeam pt
		JOIN Consultant c ON c.ConsultantID = pt.ConsultantID
		LEFT JOIN Consultant_Title_History current ON current.ID = (
			SELECT th.ID
			FROM Consultant_Title_History th
			WHERE th.ConsultantID = c.ConsultantID
			ORDER BY th.StartDate DESC
			LIMIT 1
		)
		WHERE pt.ProjectID = ?
		ORDER BY pt.ID
	`, projectID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	team := make([]model.TeamMemberLine, 0, len(rows))
	for _, row := range rows {
		team = append(team, model.TeamMemberLine{
			ConsultantID: row.ConsultantID,
			FullName:     row.FirstName + " " + row.LastName,
			TitleID:      row.TitleID,
		})
	}
	return team, nil
}
