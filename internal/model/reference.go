package model

type Client struct {
	ClientID    int64 `gorm:"primaryKey;autoIncrement;column:ClientID"`
	ClientName  string
	LocationID  int64 `gorm:"column:LocationID"`
	PhoneNumber string
	Email       string
}

func (Client) TableName() string { return "Client" }

type BusinessUnit struct {
	BusinessUnitID   int64 `gorm:"primaryKey;autoIncrement;column:BusinessUnitID"`
	BusinessUnitName string
	Location         string
}

func (BusinessUnit) TableName() string { return "BusinessUnit" }

type Location struct {
	LocationID int64 `gorm:"primaryKey;autoIncrement;column:LocationID"`
	State      string
	City       string
}

func (Location) TableName() string { return "Location" }
