package fixture

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"payrollkit/internal/api"
	"payrollkit/internal/session"
)

func startFixture(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := NewServer("journey-secret")
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T, ts *httptest.Server, pageSize int) *api.Client {
	t.Helper()
	client, err := api.New(ts.URL+"/api/v1/", session.NewMemStore(), api.Options{
		HTTPClient: ts.Client(),
		PageSize:   pageSize,
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return client
}

func TestAdminJourney(t *testing.T) {
	ts := startFixture(t)
	// Page size 5 forces the traversal across several envelope pages.
	client := newClient(t, ts, 5)
	ctx := context.Background()

	result, err := client.Auth.Login(ctx, "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Role != session.RoleAdmin {
		t.Fatalf("role = %q, want admin", result.Role)
	}

	employees, err := client.Employees.List(ctx)
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(employees) != 12 {
		t.Fatalf("got %d employees, want 12 across all pages", len(employees))
	}
	for i := 1; i < len(employees); i++ {
		if employees[i].ID <= employees[i-1].ID {
			t.Fatalf("server ordering not preserved at index %d", i)
		}
	}

	runs, err := client.Payroll.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1 seeded", len(runs))
	}

	run, err := client.Payroll.CreateRun(ctx, api.PayrollRunInput{
		PeriodStartDate: "2025-10-01",
		PeriodEndDate:   "2025-10-31",
	})
	if err != nil {
		t.Fatalf("create run: %v", err)
	}
	if run.ID == 0 || run.RunDate != "2025-10-31" {
		t.Fatalf("unexpected run: %+v", run)
	}

	payslips, err := client.Payroll.Payslips(ctx)
	if err != nil {
		t.Fatalf("payslips: %v", err)
	}
	if len(payslips) != 24 {
		t.Fatalf("got %d payslips, want 24 after second run", len(payslips))
	}

	pdf, err := client.Payroll.DownloadPayslipPDF(ctx, payslips[0].ID)
	if err != nil {
		t.Fatalf("download pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("body does not look like a PDF: %q", pdf[:min(16, len(pdf))])
	}

	pending, err := client.Leaves.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending requests, want 1 seeded", len(pending))
	}

	decision, err := client.Leaves.Approve(ctx, pending[0].ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if decision.Message != "Leave request approved successfully" {
		t.Fatalf("message = %q", decision.Message)
	}
	if decision.LeaveRequest.Status != api.LeaveStatusApproved {
		t.Fatalf("status = %q", decision.LeaveRequest.Status)
	}

	stats, err := client.Leaves.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PendingRequests != 0 {
		t.Fatalf("pending after approval = %d", stats.PendingRequests)
	}

	rates, err := client.Compliance.CurrentRates(ctx)
	if err != nil {
		t.Fatalf("current rates: %v", err)
	}
	if rates[api.RateTypeNSSF] == nil || rates[api.RateTypeNSSF].RateValue != 0.06 {
		t.Fatalf("unexpected nssf rate: %+v", rates[api.RateTypeNSSF])
	}

	// A value above 1 is a percentage.
	update, err := client.Compliance.BulkUpdate(ctx, map[string]float64{api.RateTypeNSSF: 7})
	if err != nil {
		t.Fatalf("bulk update: %v", err)
	}
	if update.Message != "Updated 1 statutory rates" {
		t.Fatalf("message = %q", update.Message)
	}
	rates, err = client.Compliance.CurrentRates(ctx)
	if err != nil {
		t.Fatalf("current rates: %v", err)
	}
	if rates[api.RateTypeNSSF].RateValue != 0.07 {
		t.Fatalf("nssf after update = %v", rates[api.RateTypeNSSF].RateValue)
	}
}

func TestEmployeeJourney(t *testing.T) {
	ts := startFixture(t)
	client := newClient(t, ts, 100)
	ctx := context.Background()

	result, err := client.Auth.Login(ctx, "employee1@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Role != session.RoleEmployee {
		t.Fatalf("role = %q, want employee", result.Role)
	}

	me, err := client.Employees.Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me.FullName != "Jane Wanjiku" {
		t.Fatalf("me = %+v", me)
	}

	payslips, err := client.Payroll.Payslips(ctx)
	if err != nil {
		t.Fatalf("payslips: %v", err)
	}
	if len(payslips) != 1 {
		t.Fatalf("employee sees %d payslips, want only their own 1", len(payslips))
	}
	if payslips[0].Employee.ID != me.ID {
		t.Fatal("payslip does not belong to the caller")
	}

	if _, err := client.Payroll.Runs(ctx); err == nil {
		t.Fatal("employee must not list payroll runs")
	} else if err.Error() != "Only administrators can view payroll runs" {
		t.Fatalf("message = %q", err.Error())
	}

	if _, err := client.Leaves.Pending(ctx); err == nil ||
		err.Error() != "Only administrators can view all pending requests" {
		t.Fatalf("pending err = %v", err)
	}

	balances, err := client.Leaves.MyBalance(ctx)
	if err != nil {
		t.Fatalf("my balance: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("got %d balances, want 2", len(balances))
	}

	types, err := client.Leaves.Types(ctx)
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	if len(types) != 3 {
		t.Fatalf("got %d leave types", len(types))
	}

	_, err = client.Leaves.CreateRequest(ctx, api.LeaveRequestInput{
		LeaveType:     types[0].ID,
		StartDate:     "2026-02-10",
		EndDate:       "2026-02-08",
		DaysRequested: 3,
		Reason:        "backwards",
	})
	if err == nil || err.Error() != "Start date cannot be after end date" {
		t.Fatalf("invalid dates err = %v", err)
	}

	created, err := client.Leaves.CreateRequest(ctx, api.LeaveRequestInput{
		LeaveType:     types[0].ID,
		StartDate:     "2026-02-08",
		EndDate:       "2026-02-10",
		DaysRequested: 3,
		Reason:        "family visit",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if created.Status != api.LeaveStatusPending {
		t.Fatalf("status = %q", created.Status)
	}

	mine, err := client.Leaves.Requests(ctx, api.RequestFilter{Status: api.LeaveStatusPending})
	if err != nil {
		t.Fatalf("requests: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d pending requests, want 2", len(mine))
	}
}

func TestRejectWorkflow(t *testing.T) {
	ts := startFixture(t)
	ctx := context.Background()

	admin := newClient(t, ts, 100)
	if _, err := admin.Auth.Login(ctx, "admin@example.com", "admin123"); err != nil {
		t.Fatalf("admin login: %v", err)
	}

	pending, err := admin.Leaves.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	id := pending[0].ID

	if _, err := admin.Leaves.Reject(ctx, id, ""); err == nil ||
		err.Error() != "Rejection reason is required" {
		t.Fatalf("empty reason err = %v", err)
	}

	decision, err := admin.Leaves.Reject(ctx, id, "Project deadline")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if decision.LeaveRequest.Status != api.LeaveStatusRejected {
		t.Fatalf("status = %q", decision.LeaveRequest.Status)
	}
	if decision.LeaveRequest.RejectionReason != "Project deadline" {
		t.Fatalf("reason = %q", decision.LeaveRequest.RejectionReason)
	}

	if _, err := admin.Leaves.Approve(ctx, id); err == nil ||
		err.Error() != "Only pending requests can be approved" {
		t.Fatalf("approve rejected err = %v", err)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	ts := startFixture(t)
	store := session.NewMemStore()
	store.Set("forged-token", session.RoleAdmin)
	client, err := api.New(ts.URL+"/api/v1/", store, api.Options{HTTPClient: ts.Client()})
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	_, err = client.Employees.List(context.Background())
	if !api.IsAuthRejected(err) {
		t.Fatalf("err = %v, want auth rejection", err)
	}
	if store.Token() != "" {
		t.Fatal("rejected session must be cleared")
	}
}

func TestBadCredentials(t *testing.T) {
	ts := startFixture(t)
	client := newClient(t, ts, 100)

	_, err := client.Auth.Login(context.Background(), "admin@example.com", "wrong")
	if err == nil || err.Error() != "Unable to log in with provided credentials." {
		t.Fatalf("err = %v", err)
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Fatalf("unexpected error shape: %v", err)
	}
}
