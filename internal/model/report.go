package model

import "time"

// YearSummary aggregates one simulated year of the dataset.
type YearSummary struct {
	Year            int
	ProjectCount    int
	FixedCount      int
	TimeAndMaterial int
	CompletedCount  int
	PlannedHours    int
	TotalExpenses   float64
	Projects        []Project
}

// DatasetReport is the input of the summary workbook export.
type DatasetReport struct {
	GeneratedAt time.Time
	Years       []YearSummary
}

// TeamMemberLine is one staffed consultant as shown on an engagement
// statement.
type TeamMemberLine struct {
	ConsultantID int64
	FullName     string
	TitleID      int
}

// EngagementStatement is the input of the per-project statement PDF.
type EngagementStatement struct {
	Project      Project
	ClientName   string
	UnitName     string
	Team         []TeamMemberLine
	Deliverables []Deliverable
	Expenses     []ProjectExpense
	BillingRates []ProjectBillingRate
}
