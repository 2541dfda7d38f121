// Package report renders fetched payroll collections into files. The
// figures come from the backend as-is; nothing is recalculated here beyond
// column totals.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"payrollkit/internal/api"
)

var registerColumns = []string{
	"Employee", "Period", "Gross Salary", "Overtime", "PAYE", "NSSF", "SHIF", "AHL", "HELB", "Total Deductions", "Net Pay",
}

// PayrollRegisterXLSX writes one row per payslip plus a totals row.
func PayrollRegisterXLSX(payslips []api.Payslip) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll Register"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, name := range registerColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	var totalGross, totalDeductions, totalNet float64
	for i, slip := range payslips {
		row := []any{
			slip.Employee.FullName,
			fmt.Sprintf("%s to %s", slip.PayrollRun.PeriodStartDate, slip.PayrollRun.PeriodEndDate),
			float64(slip.GrossSalary),
			float64(slip.OvertimePay),
			float64(slip.PAYETax),
			float64(slip.NSSFDeduction),
			float64(slip.SHIFDeduction),
			float64(slip.AHLDeduction),
			float64(slip.HELBDeduction),
			float64(slip.TotalDeductions),
			float64(slip.NetPay),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
		totalGross += float64(slip.GrossSalary)
		totalDeductions += float64(slip.TotalDeductions)
		totalNet += float64(slip.NetPay)
	}

	totalsRow := len(payslips) + 2
	totals := map[int]any{1: "TOTAL", 3: totalGross, 10: totalDeductions, 11: totalNet}
	for col, value := range totals {
		cell, err := excelize.CoordinatesToCellName(col, totalsRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PayrollSummaryPDF renders a one-page totals sheet for a payroll run.
func PayrollSummaryPDF(run api.PayrollRun, payslips []api.Payslip) ([]byte, error) {
	var totalGross, totalDeductions, totalNet float64
	for _, slip := range payslips {
		totalGross += float64(slip.GrossSalary)
		totalDeductions += float64(slip.TotalDeductions)
		totalNet += float64(slip.NetPay)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", run.PeriodStartDate, run.PeriodEndDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Run date: %s", run.RunDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Payslips: %d", len(payslips)))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Total Gross: %.2f", totalGross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Deductions: %.2f", totalDeductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Net Pay: %.2f", totalNet))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
