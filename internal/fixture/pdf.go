package fixture

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"payrollkit/internal/api"
)

// renderPayslipPDF lays out the stored payslip figures on an A4 sheet.
func renderPayslipPDF(slip api.Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.Employee.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", slip.Employee.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", slip.PayrollRun.PeriodStartDate, slip.PayrollRun.PeriodEndDate))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Gross Salary: %s", slip.GrossSalary))
	pdf.Ln(7)
	for _, d := range slip.Deductions {
		pdf.Cell(0, 8, fmt.Sprintf("%s: %s", d.DeductionType, d.Amount))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Total Deductions: %s", slip.TotalDeductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Pay: %s", slip.NetPay))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
