package model

import "time"

type Payroll struct {
	PayRollID     int64 `gorm:"primaryKey;autoIncrement;column:PayRollID"`
	ConsultantID  int64 `gorm:"column:ConsultantID"`
	Amount        float64
	EffectiveDate time.Time
}

func (Payroll) TableName() string { return "Payroll" }
