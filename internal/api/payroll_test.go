package api

import "testing"

func TestPayslipFilename(t *testing.T) {
	cases := []struct {
		name string
		slip Payslip
		want string
	}{
		{
			"full fields",
			Payslip{
				Employee:   Employee{FirstName: "Jane", LastName: "Wanjiku"},
				PayrollRun: PayrollRun{PeriodStartDate: "2025-09-01"},
			},
			"payslip_Jane_Wanjiku_2025_09.pdf",
		},
		{
			"missing employee name",
			Payslip{PayrollRun: PayrollRun{PeriodStartDate: "2025-09-01"}},
			"payslip_Employee_2025_09.pdf",
		},
		{
			"missing period",
			Payslip{Employee: Employee{FirstName: "John", LastName: "Otieno"}},
			"payslip_John_Otieno_current.pdf",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PayslipFilename(tc.slip); got != tc.want {
				t.Fatalf("PayslipFilename = %q, want %q", got, tc.want)
			}
		})
	}
}
