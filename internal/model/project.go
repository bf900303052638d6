package model

import "time"

type ProjectType string

const (
	ProjectTypeFixed           ProjectType = "Fixed"
	ProjectTypeTimeAndMaterial ProjectType = "Time and Material"
)

type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "Not Started"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

type Project struct {
	ProjectID        int64 `gorm:"primaryKey;autoIncrement;column:ProjectID"`
	ClientID         int64 `gorm:"column:ClientID"`
	UnitID           int64 `gorm:"column:UnitID"`
	Name             string
	Type             ProjectType
	Status           ProjectStatus
	Progress         int
	PlannedStartDate time.Time
	PlannedEndDate   time.Time
	ActualStartDate  time.Time
	ActualEndDate    *time.Time
	PlannedHours     int
	Price            *float64 // nil for Time and Material
	TotalExpenses    float64
}

func (Project) TableName() string { return "Project" }

// ProjectTeamMember is the persisted project-consultant assignment used
// for reporting.
type ProjectTeamMember struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;column:ID"`
	ProjectID    int64 `gorm:"column:ProjectID"`
	ConsultantID int64 `gorm:"column:ConsultantID"`
}

func (ProjectTeamMember) TableName() string { return "ProjectTeam" }
