package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"payrollkit/internal/api"
)

func init() {
	register(command{name: "deductions", summary: "list voluntary deductions", require: anyRole, run: cmdDeductions})
	register(command{name: "deduction-create", summary: "add a voluntary deduction", require: adminOnly, run: cmdDeductionCreate})
	register(command{name: "deduction-delete", summary: "remove a voluntary deduction", require: adminOnly, run: cmdDeductionDelete})
	register(command{name: "benefits", summary: "list benefits", require: anyRole, run: cmdBenefits})
	register(command{name: "benefit-create", summary: "add a benefit", require: adminOnly, run: cmdBenefitCreate})
	register(command{name: "benefit-delete", summary: "remove a benefit", require: adminOnly, run: cmdBenefitDelete})
	register(command{name: "rates", summary: "list statutory rates", require: anyRole, run: cmdRates})
	register(command{name: "current-rates", summary: "show the rate currently in force per type", require: anyRole, run: cmdCurrentRates})
	register(command{name: "rates-update", summary: "bulk update statutory rates", require: adminOnly, run: cmdRatesUpdate})
}

func cmdDeductions(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("deductions", flag.ContinueOnError)
	employee := fs.Int64("employee", 0, "filter by employee id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	deductions, err := a.client.Deductions.List(ctx, *employee)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(deductions))
	for _, d := range deductions {
		rows = append(rows, []string{
			fmt.Sprint(d.ID), fmt.Sprint(d.Employee), d.Name, d.DeductionType, d.Amount.String(),
		})
	}
	printTable([]string{"ID", "EMPLOYEE", "NAME", "TYPE", "AMOUNT"}, rows)
	return nil
}

func cmdDeductionCreate(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("deduction-create", flag.ContinueOnError)
	employee := fs.Int64("employee", 0, "employee id")
	name := fs.String("name", "", "deduction name")
	deductionType := fs.String("type", "other", "deduction type (sacco, loan, welfare, other)")
	amount := fs.Float64("amount", 0, "monthly amount")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *employee == 0 || *name == "" {
		return fmt.Errorf("deduction-create: -employee and -name are required")
	}

	d, err := a.client.Deductions.Create(ctx, api.VoluntaryDeduction{
		Employee:        *employee,
		Name:            *name,
		DeductionType:   *deductionType,
		CalculationType: "fixed",
		Amount:          api.Decimal(*amount),
		IsActive:        true,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created deduction %d (%s)\n", d.ID, d.Name)
	return nil
}

func cmdDeductionDelete(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("deduction-delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "deduction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("deduction-delete: -id is required")
	}
	if err := a.client.Deductions.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Deleted deduction %d\n", *id)
	return nil
}

func cmdBenefits(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("benefits", flag.ContinueOnError)
	employee := fs.Int64("employee", 0, "filter by employee id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	benefits, err := a.client.Benefits.List(ctx, *employee)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(benefits))
	for _, b := range benefits {
		taxable := "no"
		if b.IsTaxable {
			taxable = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprint(b.ID), fmt.Sprint(b.Employee), b.Name, b.BenefitType, b.Amount.String(), taxable,
		})
	}
	printTable([]string{"ID", "EMPLOYEE", "NAME", "TYPE", "AMOUNT", "TAXABLE"}, rows)
	return nil
}

func cmdBenefitCreate(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("benefit-create", flag.ContinueOnError)
	employee := fs.Int64("employee", 0, "employee id")
	name := fs.String("name", "", "benefit name")
	benefitType := fs.String("type", "other", "benefit type (medical, housing, transport, other)")
	amount := fs.Float64("amount", 0, "monthly amount")
	taxable := fs.Bool("taxable", false, "benefit is taxable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *employee == 0 || *name == "" {
		return fmt.Errorf("benefit-create: -employee and -name are required")
	}

	b, err := a.client.Benefits.Create(ctx, api.Benefit{
		Employee:        *employee,
		Name:            *name,
		BenefitType:     *benefitType,
		CalculationType: "fixed",
		Amount:          api.Decimal(*amount),
		IsTaxable:       *taxable,
		IsActive:        true,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created benefit %d (%s)\n", b.ID, b.Name)
	return nil
}

func cmdBenefitDelete(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("benefit-delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "benefit id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("benefit-delete: -id is required")
	}
	if err := a.client.Benefits.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Deleted benefit %d\n", *id)
	return nil
}

func cmdRates(ctx context.Context, a *app, _ []string) error {
	rates, err := a.client.Compliance.Rates(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(rates))
	for _, r := range rates {
		rows = append(rows, []string{
			fmt.Sprint(r.ID), r.RateType, r.RateValue.String(), r.EffectiveDate,
		})
	}
	printTable([]string{"ID", "TYPE", "VALUE", "EFFECTIVE"}, rows)
	return nil
}

func cmdCurrentRates(ctx context.Context, a *app, _ []string) error {
	rates, err := a.client.Compliance.CurrentRates(ctx)
	if err != nil {
		return err
	}
	return printJSON(rates)
}

// cmdRatesUpdate takes repeated type=value pairs, e.g.
// payrollctl rates-update nssf=6 shif=2.75 paye_relief=2400
func cmdRatesUpdate(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("rates-update: at least one type=value pair is required")
	}
	updates := make(map[string]float64, len(args))
	for _, arg := range args {
		rateType, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("rates-update: %q is not a type=value pair", arg)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("rates-update: bad value in %q: %w", arg, err)
		}
		updates[rateType] = value
	}

	result, err := a.client.Compliance.BulkUpdate(ctx, updates)
	if err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}
