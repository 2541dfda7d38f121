package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"payrollkit/internal/api"
)

func init() {
	register(command{name: "payslips", summary: "list visible payslips", require: anyRole, run: cmdPayslips})
	register(command{name: "payslip", summary: "show one payslip", require: anyRole, run: cmdPayslip})
	register(command{name: "payslip-pdf", summary: "download a payslip as PDF", require: anyRole, run: cmdPayslipPDF})
	register(command{name: "runs", summary: "list payroll runs", require: adminOnly, run: cmdRuns})
	register(command{name: "run-create", summary: "process payroll for a period", require: adminOnly, run: cmdRunCreate})
}

func cmdPayslips(ctx context.Context, a *app, _ []string) error {
	payslips, err := a.client.Payroll.Payslips(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(payslips))
	for _, p := range payslips {
		rows = append(rows, []string{
			fmt.Sprint(p.ID),
			p.Employee.FullName,
			p.PayrollRun.PeriodStartDate,
			p.TotalGrossIncome.String(),
			p.TotalDeductions.String(),
			p.NetPay.String(),
		})
	}
	printTable([]string{"ID", "EMPLOYEE", "PERIOD", "GROSS", "DEDUCTIONS", "NET"}, rows)
	return nil
}

func cmdPayslip(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("payslip", flag.ContinueOnError)
	id := fs.Int64("id", 0, "payslip id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("payslip: -id is required")
	}
	p, err := a.client.Payroll.Payslip(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(p)
}

func cmdPayslipPDF(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("payslip-pdf", flag.ContinueOnError)
	id := fs.Int64("id", 0, "payslip id")
	out := fs.String("o", "", "output file (defaults to the derived payslip name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("payslip-pdf: -id is required")
	}

	p, err := a.client.Payroll.Payslip(ctx, *id)
	if err != nil {
		return err
	}
	data, err := a.client.Payroll.DownloadPayslipPDF(ctx, *id)
	if err != nil {
		return err
	}

	name := *out
	if name == "" {
		name = api.PayslipFilename(p)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d bytes)\n", name, len(data))
	return nil
}

func cmdRuns(ctx context.Context, a *app, _ []string) error {
	runs, err := a.client.Payroll.Runs(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{fmt.Sprint(r.ID), r.RunDate, r.PeriodStartDate, r.PeriodEndDate})
	}
	printTable([]string{"ID", "RUN DATE", "PERIOD START", "PERIOD END"}, rows)
	return nil
}

func cmdRunCreate(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("run-create", flag.ContinueOnError)
	start := fs.String("start", "", "period start date (YYYY-MM-DD)")
	end := fs.String("end", "", "period end date (YYYY-MM-DD)")
	date := fs.String("date", "", "run date, defaults to the period end")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *start == "" || *end == "" {
		return fmt.Errorf("run-create: -start and -end are required")
	}

	run, err := a.client.Payroll.CreateRun(ctx, api.PayrollRunInput{
		RunDate:         *date,
		PeriodStartDate: *start,
		PeriodEndDate:   *end,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created payroll run %d for %s to %s\n", run.ID, run.PeriodStartDate, run.PeriodEndDate)
	return nil
}
