package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/putti/consultfirm-datagen/internal/model"
)

type PDFGenerator struct {
	fontName string
}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{fontName: "Helvetica"}
}

// Generate renders a printable engagement statement for one project.
func (g *PDFGenerator) Generate(statement model.EngagementStatement) ([]byte, error) {
	project := statement.Project

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Engagement Statement", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s (%s)", project.Name, project.Type), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Client: %s / Business unit: %s", statement.ClientName, statement.UnitName), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Schedule", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Planned: %s to %s", formatDate(project.PlannedStartDate), formatDate(project.PlannedEndDate)), "", 1, "L", false, 0, "")
	actualEnd := "in progress"
	if project.ActualEndDate != nil {
		actualEnd = formatDate(*project.ActualEndDate)
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Started %s, completion: %s (%d%%, %s)", formatDate(project.ActualStartDate), actualEnd, project.Progress, project.Status), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Financials", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Planned hours: %d", project.PlannedHours), "", 1, "L", false, 0, "")
	if project.Price != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Fixed price: %s", formatAmount(*project.Price, 2)), "", 1, "L", false, 0, "")
	}
	for _, rate := range statement.BillingRates {
		pdf.CellFormat(0, 6, fmt.Sprintf("Billing rate, title %d: %s/h", rate.TitleID, formatAmount(rate.Rate, 2)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Expenses: %s", formatAmount(project.TotalExpenses, 2)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Deliverables", "", 1, "L", false, 0, "")
	headers := []string{"Deliverable", "Start", "Due", "Hours", "Status"}
	colWidths := []float64{70, 30, 30, 20, 30}
	g.drawTableRow(pdf, headers, colWidths, true)
	for _, deliverable := range statement.Deliverables {
		row := []string{
			deliverable.Name,
			formatDate(deliverable.PlannedStartDate),
			formatDate(deliverable.DueDate),
			fmt.Sprintf("%d", deliverable.PlannedHours),
			string(deliverable.Status),
		}
		g.drawTableRow(pdf, row, colWidths, false)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Team", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	for _, member := range statement.Team {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s (title %d)", member.FullName, member.TitleID), "", 1, "L", false, 0, "")
	}

	if len(statement.Expenses) > 0 {
		pdf.Ln(2)
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Expenses", "", 1, "L", false, 0, "")
		expenseHeaders := []string{"Date", "Category", "Amount", "Billable"}
		expenseWidths := []float64{30, 60, 40, 25}
		g.drawTableRow(pdf, expenseHeaders, expenseWidths, true)
		for _, expense := range statement.Expenses {
			billable := "no"
			if expense.IsBillable {
				billable = "yes"
			}
			row := []string{
				formatDate(expense.Date),
				string(expense.Category),
				formatAmount(expense.Amount, 2),
				billable,
			}
			g.drawTableRow(pdf, row, expenseWidths, false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *PDFGenerator) drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
