package fixture

import (
	"fmt"
	"sync"
	"time"

	"payrollkit/internal/api"
)

type user struct {
	ID           int64
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	Superuser    bool
	EmployeeID   int64
}

// store holds all fixture data in memory behind one lock. Amounts are
// seeded, never calculated: payroll math belongs to the real backend.
type store struct {
	mu sync.Mutex

	users      []*user
	employees  []api.Employee
	runs       []api.PayrollRun
	payslips   []api.Payslip
	leaveTypes []api.LeaveType
	balances   []api.LeaveBalance
	requests   []api.LeaveRequest
	deductions []api.VoluntaryDeduction
	benefits   []api.Benefit
	rates      []api.StatutoryRate

	lastID int64
}

func (s *store) nextID() int64 {
	s.lastID++
	return s.lastID
}

func (s *store) userByID(id int64) *user {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *store) userByEmail(email string) *user {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *store) employeeByID(id int64) (api.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return api.Employee{}, false
}

// seed populates the demo dataset: one admin, a dozen employees (enough to
// force the paginator past one page), one finished payroll run with
// payslips, the standard leave types and balances, and the statutory rates.
func (s *store) seed() error {
	adminHash, err := hashPassword("admin123")
	if err != nil {
		return err
	}
	employeeHash, err := hashPassword("password123")
	if err != nil {
		return err
	}

	s.users = append(s.users, &user{
		ID:           s.nextID(),
		Email:        "admin@example.com",
		PasswordHash: adminHash,
		FirstName:    "Amina",
		LastName:     "Mwangi",
		Superuser:    true,
	})

	firstNames := []string{"Jane", "John", "Grace", "Peter", "Mary", "David", "Faith", "James", "Lucy", "Brian", "Esther", "Samuel"}
	lastNames := []string{"Wanjiku", "Otieno", "Achieng", "Kamau", "Njeri", "Mutua", "Chebet", "Omondi", "Wairimu", "Kiprop", "Nyambura", "Maina"}
	departments := []string{"Engineering", "Finance", "Operations", "Sales"}

	for i := range firstNames {
		u := &user{
			ID:           s.nextID(),
			Email:        fmt.Sprintf("employee%d@example.com", i+1),
			PasswordHash: employeeHash,
			FirstName:    firstNames[i],
			LastName:     lastNames[i],
		}
		emp := api.Employee{
			ID:          s.nextID(),
			User:        u.ID,
			FullName:    u.FirstName + " " + u.LastName,
			Email:       u.Email,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			GrossSalary: api.Decimal(80000 + 5000*i),
			IsActive:    true,
			JobInformation: &api.JobInformation{
				CompanyEmployeeID: fmt.Sprintf("EMP-%03d", i+1),
				KRAPin:            fmt.Sprintf("A%09dZ", 100000+i),
				Department:        departments[i%len(departments)],
				Position:          "Officer",
				DateOfJoining:     "2022-03-01",
			},
		}
		u.EmployeeID = emp.ID
		s.users = append(s.users, u)
		s.employees = append(s.employees, emp)
	}

	s.leaveTypes = []api.LeaveType{
		{ID: s.nextID(), Name: "Annual Leave", Code: "AL", AnnualAllocation: 21, CarryForward: true, MaxCarryForward: 5, RequiresApproval: true, IsPaid: true, IsActive: true},
		{ID: s.nextID(), Name: "Sick Leave", Code: "SL", AnnualAllocation: 14, RequiresApproval: true, IsPaid: true, IsActive: true},
		{ID: s.nextID(), Name: "Maternity Leave", Code: "ML", AnnualAllocation: 90, RequiresApproval: true, IsPaid: true, IsActive: true},
	}

	year := time.Now().Year()
	for _, emp := range s.employees {
		for _, lt := range s.leaveTypes[:2] {
			s.balances = append(s.balances, api.LeaveBalance{
				ID:            s.nextID(),
				Employee:      emp.ID,
				EmployeeName:  emp.FullName,
				LeaveType:     lt.ID,
				Year:          year,
				AllocatedDays: api.Decimal(lt.AnnualAllocation),
				UsedDays:      2,
				AvailableDays: api.Decimal(lt.AnnualAllocation - 2),
			})
		}
	}

	run := api.PayrollRun{
		ID:              s.nextID(),
		RunDate:         "2025-09-30",
		RunBy:           s.users[0].ID,
		PeriodStartDate: "2025-09-01",
		PeriodEndDate:   "2025-09-30",
	}
	s.runs = append(s.runs, run)
	for _, emp := range s.employees {
		s.payslips = append(s.payslips, s.cannedPayslip(run, emp))
	}

	s.rates = []api.StatutoryRate{
		{ID: s.nextID(), RateType: api.RateTypeNSSF, RateValue: 0.06, Description: "NSSF tier contribution", EffectiveDate: "2024-02-01", IsActive: true},
		{ID: s.nextID(), RateType: api.RateTypeSHIF, RateValue: 0.0275, Description: "Social Health Insurance Fund", EffectiveDate: "2024-10-01", IsActive: true},
		{ID: s.nextID(), RateType: api.RateTypeAHL, RateValue: 0.015, Description: "Affordable Housing Levy", EffectiveDate: "2024-03-19", IsActive: true},
		{ID: s.nextID(), RateType: api.RateTypePAYERelief, RateValue: 2400, Description: "Monthly personal relief", EffectiveDate: "2024-01-01", IsActive: true},
	}

	s.deductions = append(s.deductions, api.VoluntaryDeduction{
		ID:              s.nextID(),
		Employee:        s.employees[0].ID,
		Name:            "Sacco Contribution",
		DeductionType:   "sacco",
		CalculationType: "fixed",
		Amount:          3000,
		IsActive:        true,
	})
	s.benefits = append(s.benefits, api.Benefit{
		ID:              s.nextID(),
		Employee:        s.employees[0].ID,
		Name:            "Medical Cover",
		BenefitType:     "insurance",
		CalculationType: "fixed",
		Amount:          4500,
		IsTaxable:       false,
		IsActive:        true,
	})

	s.requests = append(s.requests, api.LeaveRequest{
		ID:            s.nextID(),
		Employee:      s.employees[0].ID,
		EmployeeName:  s.employees[0].FullName,
		LeaveType:     s.leaveTypes[0].ID,
		LeaveTypeName: s.leaveTypes[0].Name,
		StartDate:     fmt.Sprintf("%d-12-20", year),
		EndDate:       fmt.Sprintf("%d-12-24", year),
		DaysRequested: 5,
		Reason:        "End of year break",
		Status:        api.LeaveStatusPending,
		AppliedDate:   time.Now().UTC().Format(time.RFC3339),
	})

	return nil
}

// cannedPayslip fills a payslip with fixed demo amounts. The figures are
// placeholders, not statutory calculations.
func (s *store) cannedPayslip(run api.PayrollRun, emp api.Employee) api.Payslip {
	const (
		paye = 18000
		nssf = 2160
		shif = 2750
		ahl  = 1500
	)
	gross := float64(emp.GrossSalary)
	total := float64(paye + nssf + shif + ahl)
	return api.Payslip{
		ID:               s.nextID(),
		PayrollRun:       run,
		Employee:         emp,
		GrossSalary:      emp.GrossSalary,
		TotalGrossIncome: emp.GrossSalary,
		PAYETax:          paye,
		NSSFDeduction:    nssf,
		SHIFDeduction:    shif,
		AHLDeduction:     ahl,
		TotalDeductions:  api.Decimal(total),
		NetPay:           api.Decimal(gross - total),
		Deductions: []api.PayslipDeduction{
			{ID: s.nextID(), DeductionType: "PAYE", Amount: paye, IsStatutory: true},
			{ID: s.nextID(), DeductionType: "NSSF", Amount: nssf, IsStatutory: true},
			{ID: s.nextID(), DeductionType: "SHIF", Amount: shif, IsStatutory: true},
			{ID: s.nextID(), DeductionType: "Affordable Housing Levy (AHL)", Amount: ahl, IsStatutory: true},
		},
	}
}
