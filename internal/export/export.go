// Package export syncs backend collections into a local Postgres warehouse
// so reporting can run against SQL instead of the live API.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payrollkit/internal/api"
)

type Warehouse struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func Open(ctx context.Context, dsn string, log *slog.Logger) (*Warehouse, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 4
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Warehouse{pool: pool, log: log}, nil
}

func (w *Warehouse) Close() { w.pool.Close() }

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sync_batches (
		id UUID PRIMARY KEY,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ,
		employees INT NOT NULL DEFAULT 0,
		payroll_runs INT NOT NULL DEFAULT 0,
		payslips INT NOT NULL DEFAULT 0,
		leave_requests INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGINT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		gross_salary NUMERIC(12,2) NOT NULL,
		department TEXT,
		position TEXT,
		is_active BOOLEAN NOT NULL,
		batch_id UUID NOT NULL REFERENCES sync_batches(id)
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_runs (
		id BIGINT PRIMARY KEY,
		run_date DATE NOT NULL,
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		batch_id UUID NOT NULL REFERENCES sync_batches(id)
	)`,
	`CREATE TABLE IF NOT EXISTS payslips (
		id BIGINT PRIMARY KEY,
		payroll_run_id BIGINT NOT NULL,
		employee_id BIGINT NOT NULL,
		gross_salary NUMERIC(12,2) NOT NULL,
		paye_tax NUMERIC(12,2) NOT NULL,
		nssf_deduction NUMERIC(12,2) NOT NULL,
		shif_deduction NUMERIC(12,2) NOT NULL,
		ahl_deduction NUMERIC(12,2) NOT NULL,
		helb_deduction NUMERIC(12,2) NOT NULL,
		total_deductions NUMERIC(12,2) NOT NULL,
		net_pay NUMERIC(12,2) NOT NULL,
		batch_id UUID NOT NULL REFERENCES sync_batches(id)
	)`,
	`CREATE TABLE IF NOT EXISTS leave_requests (
		id BIGINT PRIMARY KEY,
		employee_id BIGINT NOT NULL,
		leave_type TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		days_requested NUMERIC(6,2) NOT NULL,
		status TEXT NOT NULL,
		batch_id UUID NOT NULL REFERENCES sync_batches(id)
	)`,
}

func (w *Warehouse) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := w.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

type SyncResult struct {
	BatchID       uuid.UUID
	Employees     int
	PayrollRuns   int
	Payslips      int
	LeaveRequests int
}

// Sync pulls every collection through the client (draining all pages) and
// upserts the rows in one transaction stamped with a batch id.
func (w *Warehouse) Sync(ctx context.Context, client *api.Client) (SyncResult, error) {
	result := SyncResult{BatchID: uuid.New()}

	employees, err := client.Employees.List(ctx)
	if err != nil {
		return result, fmt.Errorf("fetch employees: %w", err)
	}
	runs, err := client.Payroll.Runs(ctx)
	if err != nil {
		return result, fmt.Errorf("fetch payroll runs: %w", err)
	}
	payslips, err := client.Payroll.Payslips(ctx)
	if err != nil {
		return result, fmt.Errorf("fetch payslips: %w", err)
	}
	requests, err := client.Leaves.Requests(ctx, api.RequestFilter{})
	if err != nil {
		return result, fmt.Errorf("fetch leave requests: %w", err)
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return result, err
	}
	defer tx.Rollback(ctx)

	started := time.Now().UTC()
	if _, err := tx.Exec(ctx,
		`INSERT INTO sync_batches (id, started_at) VALUES ($1, $2)`,
		result.BatchID, started); err != nil {
		return result, err
	}

	batch := &pgx.Batch{}
	for _, e := range employees {
		department, position := "", ""
		if e.JobInformation != nil {
			department = e.JobInformation.Department
			position = e.JobInformation.Position
		}
		batch.Queue(`
			INSERT INTO employees (id, full_name, email, gross_salary, department, position, is_active, batch_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				full_name = EXCLUDED.full_name,
				email = EXCLUDED.email,
				gross_salary = EXCLUDED.gross_salary,
				department = EXCLUDED.department,
				position = EXCLUDED.position,
				is_active = EXCLUDED.is_active,
				batch_id = EXCLUDED.batch_id`,
			e.ID, e.FullName, e.Email, float64(e.GrossSalary), department, position, e.IsActive, result.BatchID)
	}
	for _, r := range runs {
		batch.Queue(`
			INSERT INTO payroll_runs (id, run_date, period_start, period_end, batch_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				run_date = EXCLUDED.run_date,
				period_start = EXCLUDED.period_start,
				period_end = EXCLUDED.period_end,
				batch_id = EXCLUDED.batch_id`,
			r.ID, r.RunDate, r.PeriodStartDate, r.PeriodEndDate, result.BatchID)
	}
	for _, p := range payslips {
		batch.Queue(`
			INSERT INTO payslips (id, payroll_run_id, employee_id, gross_salary, paye_tax,
				nssf_deduction, shif_deduction, ahl_deduction, helb_deduction,
				total_deductions, net_pay, batch_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				total_deductions = EXCLUDED.total_deductions,
				net_pay = EXCLUDED.net_pay,
				batch_id = EXCLUDED.batch_id`,
			p.ID, p.PayrollRun.ID, p.Employee.ID, float64(p.GrossSalary), float64(p.PAYETax),
			float64(p.NSSFDeduction), float64(p.SHIFDeduction), float64(p.AHLDeduction),
			float64(p.HELBDeduction), float64(p.TotalDeductions), float64(p.NetPay), result.BatchID)
	}
	for _, lr := range requests {
		batch.Queue(`
			INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, days_requested, status, batch_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				status = EXCLUDED.status,
				batch_id = EXCLUDED.batch_id`,
			lr.ID, lr.Employee, lr.LeaveTypeName, lr.StartDate, lr.EndDate,
			float64(lr.DaysRequested), lr.Status, result.BatchID)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return result, fmt.Errorf("upsert: %w", err)
	}

	result.Employees = len(employees)
	result.PayrollRuns = len(runs)
	result.Payslips = len(payslips)
	result.LeaveRequests = len(requests)

	if _, err := tx.Exec(ctx, `
		UPDATE sync_batches
		SET finished_at = $2, employees = $3, payroll_runs = $4, payslips = $5, leave_requests = $6
		WHERE id = $1`,
		result.BatchID, time.Now().UTC(), result.Employees, result.PayrollRuns,
		result.Payslips, result.LeaveRequests); err != nil {
		return result, err
	}
	if err := tx.Commit(ctx); err != nil {
		return result, err
	}

	w.log.Info("warehouse sync complete",
		"batchId", result.BatchID,
		"employees", result.Employees,
		"payrollRuns", result.PayrollRuns,
		"payslips", result.Payslips,
		"leaveRequests", result.LeaveRequests)
	return result, nil
}
