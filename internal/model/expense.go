package model

import "time"

type ExpenseCategory string

const (
	ExpenseCategoryTravel           ExpenseCategory = "Travel"
	ExpenseCategoryEquipment        ExpenseCategory = "Equipment"
	ExpenseCategorySoftwareLicenses ExpenseCategory = "Software Licenses"
	ExpenseCategoryTraining         ExpenseCategory = "Training"
	ExpenseCategoryMiscellaneous    ExpenseCategory = "Miscellaneous"
)

type ProjectExpense struct {
	ProjectExpenseID int64 `gorm:"primaryKey;autoIncrement;column:ProjectExpenseID"`
	ProjectID        int64 `gorm:"column:ProjectID"`
	DeliverableID    int64 `gorm:"column:DeliverableID"`
	Date             time.Time
	Amount           float64
	Description      string
	Category         ExpenseCategory
	IsBillable       bool
}

func (ProjectExpense) TableName() string { return "ProjectExpense" }

type ProjectBillingRate struct {
	BillingRateID int64 `gorm:"primaryKey;autoIncrement;column:BillingRateID"`
	ProjectID     int64 `gorm:"column:ProjectID"`
	TitleID       int   `gorm:"column:TitleID"`
	Rate          float64
}

func (ProjectBillingRate) TableName() string { return "ProjectBillingRate" }
