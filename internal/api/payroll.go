package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type PayrollService struct {
	c *Client
}

// Payslips returns the payslips visible to the session: all of them for an
// admin, only the caller's own otherwise. The scoping is the backend's.
func (s *PayrollService) Payslips(ctx context.Context) ([]Payslip, error) {
	return collectList[Payslip](ctx, s.c, "payroll/payslips/", nil)
}

func (s *PayrollService) Payslip(ctx context.Context, id int64) (Payslip, error) {
	var slip Payslip
	err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("payroll/payslips/%d/", id), nil, nil, &slip)
	return slip, err
}

// DownloadPayslipPDF returns the rendered payslip as opaque bytes; pairing
// it with PayslipFilename is the caller's concern.
func (s *PayrollService) DownloadPayslipPDF(ctx context.Context, id int64) ([]byte, error) {
	return s.c.binary(ctx, fmt.Sprintf("payroll/payslips/%d/download_pdf/", id))
}

func (s *PayrollService) Runs(ctx context.Context) ([]PayrollRun, error) {
	return collectList[PayrollRun](ctx, s.c, "payroll/payroll-runs/", nil)
}

// CreateRun triggers a payroll run over a pay period. The batch itself is
// executed by the backend; the echoed run record is returned.
func (s *PayrollService) CreateRun(ctx context.Context, input PayrollRunInput) (PayrollRun, error) {
	var run PayrollRun
	err := s.c.doJSON(ctx, http.MethodPost, "payroll/payroll-runs/", nil, input, &run)
	return run, err
}

// PayslipFilename derives the local download name from the payslip's
// subject and period: payslip_<First>_<Last>_<YYYY_MM>.pdf.
func PayslipFilename(p Payslip) string {
	name := "Employee"
	if p.Employee.FirstName != "" && p.Employee.LastName != "" {
		name = p.Employee.FirstName + "_" + p.Employee.LastName
	}
	period := "current"
	if start := p.PayrollRun.PeriodStartDate; len(start) >= 7 {
		period = strings.ReplaceAll(start[:7], "-", "_")
	}
	return fmt.Sprintf("payslip_%s_%s.pdf", name, period)
}
