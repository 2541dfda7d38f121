package main

import (
	"context"
	"flag"
	"fmt"

	"payrollkit/internal/api"
)

func init() {
	register(command{name: "leave-types", summary: "list leave types", require: anyRole, run: cmdLeaveTypes})
	register(command{name: "leave-balances", summary: "list leave balances", require: adminOnly, run: cmdLeaveBalances})
	register(command{name: "my-balance", summary: "show my leave balances", require: anyRole, run: cmdMyBalance})
	register(command{name: "leave-requests", summary: "list leave requests", require: anyRole, run: cmdLeaveRequests})
	register(command{name: "leave-request", summary: "submit a leave request", require: anyRole, run: cmdLeaveRequest})
	register(command{name: "leave-delete", summary: "withdraw a pending leave request", require: anyRole, run: cmdLeaveDelete})
	register(command{name: "pending", summary: "list all pending leave requests", require: adminOnly, run: cmdPending})
	register(command{name: "approve", summary: "approve a leave request", require: adminOnly, run: cmdApprove})
	register(command{name: "reject", summary: "reject a leave request with a reason", require: adminOnly, run: cmdReject})
	register(command{name: "leave-stats", summary: "show the leave dashboard numbers", require: adminOnly, run: cmdLeaveStats})
}

func cmdLeaveTypes(ctx context.Context, a *app, _ []string) error {
	types, err := a.client.Leaves.Types(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{fmt.Sprint(t.ID), t.Code, t.Name, fmt.Sprint(t.AnnualAllocation)})
	}
	printTable([]string{"ID", "CODE", "NAME", "DAYS/YEAR"}, rows)
	return nil
}

func printBalances(balances []api.LeaveBalance) {
	rows := make([][]string, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, []string{
			fmt.Sprint(b.ID), b.EmployeeName, fmt.Sprint(b.LeaveType), fmt.Sprint(b.Year),
			b.AllocatedDays.String(), b.UsedDays.String(), b.AvailableDays.String(),
		})
	}
	printTable([]string{"ID", "EMPLOYEE", "TYPE", "YEAR", "ALLOCATED", "USED", "AVAILABLE"}, rows)
}

func cmdLeaveBalances(ctx context.Context, a *app, _ []string) error {
	balances, err := a.client.Leaves.Balances(ctx)
	if err != nil {
		return err
	}
	printBalances(balances)
	return nil
}

func cmdMyBalance(ctx context.Context, a *app, _ []string) error {
	balances, err := a.client.Leaves.MyBalance(ctx)
	if err != nil {
		return err
	}
	printBalances(balances)
	return nil
}

func printRequests(requests []api.LeaveRequest) {
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			fmt.Sprint(r.ID), r.EmployeeName, r.LeaveTypeName,
			r.StartDate, r.EndDate, r.DaysRequested.String(), r.Status,
		})
	}
	printTable([]string{"ID", "EMPLOYEE", "TYPE", "START", "END", "DAYS", "STATUS"}, rows)
}

func cmdLeaveRequests(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("leave-requests", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status (pending, approved, rejected)")
	employee := fs.Int64("employee", 0, "filter by employee id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	requests, err := a.client.Leaves.Requests(ctx, api.RequestFilter{Status: *status, Employee: *employee})
	if err != nil {
		return err
	}
	printRequests(requests)
	return nil
}

func cmdLeaveRequest(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("leave-request", flag.ContinueOnError)
	leaveType := fs.Int64("type", 0, "leave type id")
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	days := fs.Float64("days", 0, "days requested")
	reason := fs.String("reason", "", "reason for the request")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *leaveType == 0 || *start == "" || *end == "" {
		return fmt.Errorf("leave-request: -type, -start and -end are required")
	}

	request, err := a.client.Leaves.CreateRequest(ctx, api.LeaveRequestInput{
		LeaveType:     *leaveType,
		StartDate:     *start,
		EndDate:       *end,
		DaysRequested: api.Decimal(*days),
		Reason:        *reason,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Submitted leave request %d (%s)\n", request.ID, request.Status)
	return nil
}

func cmdLeaveDelete(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("leave-delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "leave request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("leave-delete: -id is required")
	}
	if err := a.client.Leaves.DeleteRequest(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Withdrew leave request %d\n", *id)
	return nil
}

func cmdPending(ctx context.Context, a *app, _ []string) error {
	requests, err := a.client.Leaves.Pending(ctx)
	if err != nil {
		return err
	}
	printRequests(requests)
	return nil
}

func cmdApprove(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("approve", flag.ContinueOnError)
	id := fs.Int64("id", 0, "leave request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("approve: -id is required")
	}
	decision, err := a.client.Leaves.Approve(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Println(decision.Message)
	return nil
}

func cmdReject(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("reject", flag.ContinueOnError)
	id := fs.Int64("id", 0, "leave request id")
	reason := fs.String("reason", "", "rejection reason")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("reject: -id is required")
	}
	decision, err := a.client.Leaves.Reject(ctx, *id, *reason)
	if err != nil {
		return err
	}
	fmt.Println(decision.Message)
	return nil
}

func cmdLeaveStats(ctx context.Context, a *app, _ []string) error {
	stats, err := a.client.Leaves.DashboardStats(ctx)
	if err != nil {
		return err
	}
	return printJSON(stats)
}
