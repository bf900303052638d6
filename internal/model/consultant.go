package model

import "time"

type Consultant struct {
	ConsultantID   int64 `gorm:"primaryKey;autoIncrement;column:ConsultantID"`
	BusinessUnitID int64 `gorm:"column:BusinessUnitID"`
	FirstName      string
	LastName       string
	Email          string
	Contact        string
	HireYear       int
}

func (Consultant) TableName() string { return "Consultant" }

// ConsultantTitleHistory is one interval of a consultant's title/salary
// record. A nil EndDate means the interval is still open.
type ConsultantTitleHistory struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;column:ID"`
	ConsultantID int64 `gorm:"column:ConsultantID"`
	TitleID      int   `gorm:"column:TitleID"`
	StartDate    time.Time
	EndDate      *time.Time
	EventType    string
	Salary       float64
}

func (ConsultantTitleHistory) TableName() string { return "Consultant_Title_History" }

type Title struct {
	TitleID int    `gorm:"primaryKey;column:TitleID"`
	Title   string `gorm:"column:Title"`
}

func (Title) TableName() string { return "Title" }
