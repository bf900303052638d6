package model

import "time"

type Deliverable struct {
	DeliverableID    int64 `gorm:"primaryKey;autoIncrement;column:DeliverableID"`
	ProjectID        int64 `gorm:"column:ProjectID"`
	Name             string
	PlannedStartDate time.Time
	ActualStartDate  time.Time
	DueDate          time.Time
	Status           ProjectStatus
	PlannedHours     int
	ActualHours      int
	Progress         int
}

func (Deliverable) TableName() string { return "Deliverable" }

// ConsultantDeliverable is a dated hour entry booked by one consultant
// against one deliverable.
type ConsultantDeliverable struct {
	ID            int64 `gorm:"primaryKey;autoIncrement;column:ID"`
	ConsultantID  int64 `gorm:"column:ConsultantID"`
	DeliverableID int64 `gorm:"column:DeliverableID"`
	Date          time.Time
	Hours         int
}

func (ConsultantDeliverable) TableName() string { return "Consultant_Deliverable" }
