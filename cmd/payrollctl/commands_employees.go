package main

import (
	"context"
	"flag"
	"fmt"

	"payrollkit/internal/api"
)

func init() {
	register(command{name: "employees", summary: "list employees", require: anyRole, run: cmdEmployees})
	register(command{name: "employee", summary: "show one employee", require: anyRole, run: cmdEmployee})
	register(command{name: "me", summary: "show my own employee record", require: anyRole, run: cmdMe})
	register(command{name: "employee-create", summary: "create an employee with a login account", require: adminOnly, run: cmdEmployeeCreate})
	register(command{name: "employee-update", summary: "update an employee", require: adminOnly, run: cmdEmployeeUpdate})
	register(command{name: "employee-delete", summary: "deactivate an employee", require: adminOnly, run: cmdEmployeeDelete})
}

func cmdEmployees(ctx context.Context, a *app, _ []string) error {
	employees, err := a.client.Employees.List(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		active := "yes"
		if !e.IsActive {
			active = "no"
		}
		rows = append(rows, []string{
			fmt.Sprint(e.ID), e.FullName, e.Email, e.GrossSalary.String(), active,
		})
	}
	printTable([]string{"ID", "NAME", "EMAIL", "GROSS", "ACTIVE"}, rows)
	return nil
}

func cmdEmployee(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("employee", flag.ContinueOnError)
	id := fs.Int64("id", 0, "employee id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("employee: -id is required")
	}
	e, err := a.client.Employees.Get(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(e)
}

func cmdMe(ctx context.Context, a *app, _ []string) error {
	e, err := a.client.Employees.Me(ctx)
	if err != nil {
		return err
	}
	return printJSON(e)
}

func employeeInputFlags(fs *flag.FlagSet, in *api.EmployeeInput) *float64 {
	fs.StringVar(&in.Email, "email", "", "login email")
	fs.StringVar(&in.Password, "password", "", "initial password (create only)")
	fs.StringVar(&in.FirstName, "first", "", "first name")
	fs.StringVar(&in.LastName, "last", "", "last name")
	fs.StringVar(&in.BankAccountNumber, "bank-account", "", "bank account number")
	return fs.Float64("gross", 0, "monthly gross salary")
}

func cmdEmployeeCreate(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("employee-create", flag.ContinueOnError)
	var in api.EmployeeInput
	gross := employeeInputFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if in.Email == "" || in.FirstName == "" || in.LastName == "" {
		return fmt.Errorf("employee-create: -email, -first and -last are required")
	}
	in.GrossSalary = api.Decimal(*gross)

	e, err := a.client.Employees.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("Created employee %d (%s)\n", e.ID, e.FullName)
	return nil
}

func cmdEmployeeUpdate(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("employee-update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "employee id")
	var in api.EmployeeInput
	gross := employeeInputFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("employee-update: -id is required")
	}
	in.GrossSalary = api.Decimal(*gross)

	e, err := a.client.Employees.Update(ctx, *id, in)
	if err != nil {
		return err
	}
	return printJSON(e)
}

func cmdEmployeeDelete(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("employee-delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "employee id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("employee-delete: -id is required")
	}
	if err := a.client.Employees.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Deleted employee %d\n", *id)
	return nil
}
