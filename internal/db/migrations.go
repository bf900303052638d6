package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS Title (
		TitleID INTEGER PRIMARY KEY,
		Title TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS Location (
		LocationID INTEGER PRIMARY KEY AUTOINCREMENT,
		State TEXT,
		City TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS BusinessUnit (
		BusinessUnitID INTEGER PRIMARY KEY AUTOINCREMENT,
		BusinessUnitName TEXT NOT NULL,
		Location TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS Client (
		ClientID INTEGER PRIMARY KEY AUTOINCREMENT,
		ClientName TEXT NOT NULL,
		LocationID INTEGER REFERENCES Location(LocationID),
		PhoneNumber TEXT,
		Email TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS Consultant (
		ConsultantID INTEGER PRIMARY KEY AUTOINCREMENT,
		BusinessUnitID INTEGER REFERENCES BusinessUnit(BusinessUnitID),
		FirstName TEXT,
		LastName TEXT,
		Email TEXT,
		Contact TEXT,
		HireYear INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS Consultant_Title_History (
		ID INTEGER PRIMARY KEY AUTOINCREMENT,
		ConsultantID INTEGER NOT NULL REFERENCES Consultant(ConsultantID),
		TitleID INTEGER NOT NULL REFERENCES Title(TitleID),
		StartDate DATE NOT NULL,
		EndDate DATE,
		EventType TEXT,
		Salary REAL NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS Payroll (
		PayRollID INTEGER PRIMARY KEY AUTOINCREMENT,
		ConsultantID INTEGER NOT NULL REFERENCES Consultant(ConsultantID),
		Amount REAL NOT NULL,
		EffectiveDate DATE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS Project (
		ProjectID INTEGER PRIMARY KEY AUTOINCREMENT,
		ClientID INTEGER NOT NULL REFERENCES Client(ClientID),
		UnitID INTEGER NOT NULL REFERENCES BusinessUnit(BusinessUnitID),
		Name TEXT NOT NULL,
		Type TEXT NOT NULL,
		Status TEXT NOT NULL,
		Progress INTEGER NOT NULL DEFAULT 0,
		PlannedStartDate DATE,
		PlannedEndDate DATE,
		ActualStartDate DATE,
		ActualEndDate DATE,
		PlannedHours INTEGER NOT NULL DEFAULT 0,
		Price REAL,
		TotalExpenses REAL NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS ProjectTeam (
		ID INTEGER PRIMARY KEY AUTOINCREMENT,
		ProjectID INTEGER NOT NULL REFERENCES Project(ProjectID),
		ConsultantID INTEGER NOT NULL REFERENCES Consultant(ConsultantID)
	);`,
	`CREATE TABLE IF NOT EXISTS Deliverable (
		DeliverableID INTEGER PRIMARY KEY AUTOINCREMENT,
		ProjectID INTEGER NOT NULL REFERENCES Project(ProjectID),
		Name TEXT NOT NULL,
		PlannedStartDate DATE NOT NULL,
		ActualStartDate DATE,
		DueDate DATE NOT NULL,
		Status TEXT NOT NULL,
		PlannedHours INTEGER NOT NULL,
		ActualHours INTEGER NOT NULL DEFAULT 0,
		Progress INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS ProjectBillingRate (
		BillingRateID INTEGER PRIMARY KEY AUTOINCREMENT,
		ProjectID INTEGER NOT NULL REFERENCES Project(ProjectID),
		TitleID INTEGER NOT NULL REFERENCES Title(TitleID),
		Rate REAL NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS Consultant_Deliverable (
		ID INTEGER PRIMARY KEY AUTOINCREMENT,
		ConsultantID INTEGER NOT NULL REFERENCES Consultant(ConsultantID),
		DeliverableID INTEGER NOT NULL REFERENCES Deliverable(DeliverableID),
		Date DATE NOT NULL,
		Hours INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS ProjectExpense (
		ProjectExpenseID INTEGER PRIMARY KEY AUTOINCREMENT,
		ProjectID INTEGER NOT NULL REFERENCES Project(ProjectID),
		DeliverableID INTEGER NOT NULL REFERENCES Deliverable(DeliverableID),
		Date DATE NOT NULL,
		Amount REAL NOT NULL,
		Description TEXT,
		Category TEXT NOT NULL,
		IsBillable INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_title_history_consultant ON Consultant_Title_History (ConsultantID, StartDate);`,
	`CREATE INDEX IF NOT EXISTS idx_project_client ON Project (ClientID);`,
	`CREATE INDEX IF NOT EXISTS idx_deliverable_project ON Deliverable (ProjectID);`,
	`CREATE INDEX IF NOT EXISTS idx_cons_deliverable ON Consultant_Deliverable (DeliverableID);`,
	`CREATE INDEX IF NOT EXISTS idx_expense_project ON ProjectExpense (ProjectID);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
