package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"payrollkit/internal/api"
)

func samplePayslips() []api.Payslip {
	run := api.PayrollRun{ID: 1, RunDate: "2025-09-30", PeriodStartDate: "2025-09-01", PeriodEndDate: "2025-09-30"}
	return []api.Payslip{
		{
			ID:              10,
			PayrollRun:      run,
			Employee:        api.Employee{FullName: "Jane Wanjiku"},
			GrossSalary:     100000,
			PAYETax:         20000,
			TotalDeductions: 25000,
			NetPay:          75000,
		},
		{
			ID:              11,
			PayrollRun:      run,
			Employee:        api.Employee{FullName: "John Otieno"},
			GrossSalary:     80000,
			PAYETax:         15000,
			TotalDeductions: 20000,
			NetPay:          60000,
		},
	}
}

func TestPayrollRegisterXLSX(t *testing.T) {
	data, err := PayrollRegisterXLSX(samplePayslips())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	const sheet = "Payroll Register"
	name, err := f.GetCellValue(sheet, "A2")
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if name != "Jane Wanjiku" {
		t.Fatalf("A2 = %q", name)
	}
	total, err := f.GetCellValue(sheet, "A4")
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if total != "TOTAL" {
		t.Fatalf("A4 = %q, want totals row", total)
	}
	net, err := f.GetCellValue(sheet, "K4")
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if net != "135000" {
		t.Fatalf("K4 = %q, want 135000", net)
	}
}

func TestPayrollSummaryPDF(t *testing.T) {
	slips := samplePayslips()
	data, err := PayrollSummaryPDF(slips[0].PayrollRun, slips)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", data[:min(8, len(data))])
	}
}
