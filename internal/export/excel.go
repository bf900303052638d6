package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/putti/consultfirm-datagen/internal/model"
)

type ExcelGenerator struct{}

func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

// Generate renders the dataset report as a workbook: one summary sheet
// plus a sheet per simulated year.
func (g *ExcelGenerator) Generate(report model.DatasetReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	for _, year := range report.Years {
		sheetName := fmt.Sprintf("Projects %d", year.Year)
		file.NewSheet(sheetName)
		if err := g.writeYear(file, sheetName, year); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ExcelGenerator) writeSummary(file *excelize.File, sheet string, report model.DatasetReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	totalProjects := 0
	totalExpenses := 0.0
	for _, year := range report.Years {
		totalProjects += year.ProjectCount
		totalExpenses += year.TotalExpenses
	}

	set("A1", "Generated at")
	set("B1", formatDateTime(report.GeneratedAt))
	set("A2", "Years")
	set("B2", len(report.Years))
	set("A3", "Projects")
	set("B3", totalProjects)
	set("A4", "Total expenses")
	set("B4", formatAmount(totalExpenses, 2))

	tableRow := 6
	headers := []string{"Year", "Projects", "Fixed", "Time and Material", "Completed", "Planned hours", "Expenses"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, year := range report.Years {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), year.Year)
		set(fmt.Sprintf("B%d", row), year.ProjectCount)
		set(fmt.Sprintf("C%d", row), year.FixedCount)
		set(fmt.Sprintf("D%d", row), year.TimeAndMaterial)
		set(fmt.Sprintf("E%d", row), year.CompletedCount)
		set(fmt.Sprintf("F%d", row), year.PlannedHours)
		set(fmt.Sprintf("G%d", row), formatAmount(year.TotalExpenses, 2))
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "G", 16)
	return nil
}

func (g *ExcelGenerator) writeYear(file *excelize.File, sheet string, year model.YearSummary) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Project", "Name", "Type", "Status", "Progress",
		"Planned start", "Planned end", "Actual end",
		"Planned hours", "Price", "Expenses",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, project := range year.Projects {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), project.ProjectID)
		set(fmt.Sprintf("B%d", row), project.Name)
		set(fmt.Sprintf("C%d", row), string(project.Type))
		set(fmt.Sprintf("D%d", row), string(project.Status))
		set(fmt.Sprintf("E%d", row), project.Progress)
		set(fmt.Sprintf("F%d", row), formatDate(project.PlannedStartDate))
		set(fmt.Sprintf("G%d", row), formatDate(project.PlannedEndDate))
		set(fmt.Sprintf("H%d", row), formatDatePtr(project.ActualEndDate))
		set(fmt.Sprintf("I%d", row), project.PlannedHours)
		set(fmt.Sprintf("J%d", row), formatPrice(project.Price))
		set(fmt.Sprintf("K%d", row), formatAmount(project.TotalExpenses, 2))
	}

	_ = file.SetColWidth(sheet, "A", "A", 10)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	_ = file.SetColWidth(sheet, "C", "K", 16)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func formatPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return formatAmount(*price, 2)
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}
