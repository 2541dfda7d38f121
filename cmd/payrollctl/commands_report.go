package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"payrollkit/internal/api"
	"payrollkit/internal/export"
	"payrollkit/internal/report"
)

func init() {
	register(command{name: "report-xlsx", summary: "write a payroll register spreadsheet", require: adminOnly, run: cmdReportXLSX})
	register(command{name: "report-pdf", summary: "write a payroll run summary PDF", require: adminOnly, run: cmdReportPDF})
	register(command{name: "export", summary: "sync backend data into the warehouse database", require: adminOnly, run: cmdExport})
}

func runPayslips(ctx context.Context, a *app, runID int64) (api.PayrollRun, []api.Payslip, error) {
	runs, err := a.client.Payroll.Runs(ctx)
	if err != nil {
		return api.PayrollRun{}, nil, err
	}
	var run api.PayrollRun
	found := false
	for _, r := range runs {
		if r.ID == runID {
			run, found = r, true
			break
		}
	}
	if !found {
		return api.PayrollRun{}, nil, fmt.Errorf("payroll run %d not found", runID)
	}

	all, err := a.client.Payroll.Payslips(ctx)
	if err != nil {
		return api.PayrollRun{}, nil, err
	}
	payslips := make([]api.Payslip, 0, len(all))
	for _, p := range all {
		if p.PayrollRun.ID == runID {
			payslips = append(payslips, p)
		}
	}
	return run, payslips, nil
}

func cmdReportXLSX(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("report-xlsx", flag.ContinueOnError)
	runID := fs.Int64("run", 0, "payroll run id")
	out := fs.String("o", "payroll_register.xlsx", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == 0 {
		return fmt.Errorf("report-xlsx: -run is required")
	}

	_, payslips, err := runPayslips(ctx, a, *runID)
	if err != nil {
		return err
	}
	data, err := report.PayrollRegisterXLSX(payslips)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d payslips)\n", *out, len(payslips))
	return nil
}

func cmdReportPDF(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("report-pdf", flag.ContinueOnError)
	runID := fs.Int64("run", 0, "payroll run id")
	out := fs.String("o", "payroll_summary.pdf", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == 0 {
		return fmt.Errorf("report-pdf: -run is required")
	}

	run, payslips, err := runPayslips(ctx, a, *runID)
	if err != nil {
		return err
	}
	data, err := report.PayrollSummaryPDF(run, payslips)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d payslips)\n", *out, len(payslips))
	return nil
}

func cmdExport(ctx context.Context, a *app, _ []string) error {
	if a.cfg.WarehouseURL == "" {
		return fmt.Errorf("export: PAYROLL_WAREHOUSE_URL is required")
	}

	warehouse, err := export.Open(ctx, a.cfg.WarehouseURL, a.log)
	if err != nil {
		return err
	}
	defer warehouse.Close()

	if err := warehouse.Migrate(ctx); err != nil {
		return err
	}
	result, err := warehouse.Sync(ctx, a.client)
	if err != nil {
		return err
	}
	fmt.Printf("Synced batch %s: %d employees, %d runs, %d payslips, %d leave requests\n",
		result.BatchID, result.Employees, result.PayrollRuns, result.Payslips, result.LeaveRequests)
	return nil
}
