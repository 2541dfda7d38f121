package api

import "payrollkit/internal/session"

// Models mirror the backend serializers field for field; reference data such
// as dates stays in the backend's own wire format (YYYY-MM-DD strings) since
// the client displays values, it never computes with them.

type LoginResult struct {
	Token string       `json:"token"`
	Role  session.Role `json:"role"`
}

type AccountProfile struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type JobInformation struct {
	CompanyEmployeeID string `json:"company_employee_id"`
	KRAPin            string `json:"kra_pin"`
	NSSFNumber        string `json:"nssf_number,omitempty"`
	NHIFNumber        string `json:"nhif_number,omitempty"`
	Department        string `json:"department"`
	Position          string `json:"position"`
	DateOfJoining     string `json:"date_of_joining"`
}

type Employee struct {
	ID                   int64                `json:"id"`
	User                 int64                `json:"user,omitempty"`
	FullName             string               `json:"full_name"`
	Email                string               `json:"email"`
	FirstName            string               `json:"first_name"`
	LastName             string               `json:"last_name"`
	GrossSalary          Decimal              `json:"gross_salary"`
	BankAccountNumber    string               `json:"bank_account_number,omitempty"`
	HELBMonthlyDeduction Decimal              `json:"helb_monthly_deduction,omitempty"`
	IsActive             bool                 `json:"is_active"`
	JobInformation       *JobInformation      `json:"job_information,omitempty"`
	VoluntaryDeductions  []VoluntaryDeduction `json:"voluntary_deductions,omitempty"`
	Benefits             []Benefit            `json:"benefits,omitempty"`
}

// EmployeeInput carries the writable employee fields for create and update.
type EmployeeInput struct {
	Email                string  `json:"email"`
	Password             string  `json:"password,omitempty"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	GrossSalary          Decimal `json:"gross_salary"`
	BankAccountNumber    string  `json:"bank_account_number,omitempty"`
	HELBMonthlyDeduction Decimal `json:"helb_monthly_deduction,omitempty"`
}

type PayrollRun struct {
	ID              int64  `json:"id"`
	RunDate         string `json:"run_date"`
	RunBy           int64  `json:"run_by,omitempty"`
	PeriodStartDate string `json:"period_start_date"`
	PeriodEndDate   string `json:"period_end_date"`
}

type PayrollRunInput struct {
	RunDate         string `json:"run_date,omitempty"`
	PeriodStartDate string `json:"period_start_date"`
	PeriodEndDate   string `json:"period_end_date"`
}

type PayslipDeduction struct {
	ID            int64   `json:"id"`
	DeductionType string  `json:"deduction_type"`
	Amount        Decimal `json:"amount"`
	IsStatutory   bool    `json:"is_statutory"`
}

type Payslip struct {
	ID               int64              `json:"id"`
	PayrollRun       PayrollRun         `json:"payroll_run"`
	Employee         Employee           `json:"employee"`
	GrossSalary      Decimal            `json:"gross_salary"`
	OvertimePay      Decimal            `json:"overtime_pay"`
	TotalGrossIncome Decimal            `json:"total_gross_income"`
	PAYETax          Decimal            `json:"paye_tax"`
	NSSFDeduction    Decimal            `json:"nssf_deduction"`
	SHIFDeduction    Decimal            `json:"shif_deduction"`
	AHLDeduction     Decimal            `json:"ahl_deduction"`
	HELBDeduction    Decimal            `json:"helb_deduction"`
	TotalDeductions  Decimal            `json:"total_deductions"`
	NetPay           Decimal            `json:"net_pay"`
	Deductions       []PayslipDeduction `json:"deductions,omitempty"`
}

type LeaveType struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	AnnualAllocation int    `json:"annual_allocation"`
	CarryForward     bool   `json:"carry_forward"`
	MaxCarryForward  int    `json:"max_carry_forward"`
	RequiresApproval bool   `json:"requires_approval"`
	IsPaid           bool   `json:"is_paid"`
	IsActive         bool   `json:"is_active"`
}

type LeaveBalance struct {
	ID             int64   `json:"id"`
	Employee       int64   `json:"employee"`
	EmployeeName   string  `json:"employee_name"`
	LeaveType      int64   `json:"leave_type"`
	Year           int     `json:"year"`
	AllocatedDays  Decimal `json:"allocated_days"`
	UsedDays       Decimal `json:"used_days"`
	PendingDays    Decimal `json:"pending_days"`
	CarriedForward Decimal `json:"carried_forward"`
	AvailableDays  Decimal `json:"available_days"`
}

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID              int64   `json:"id"`
	Employee        int64   `json:"employee"`
	EmployeeName    string  `json:"employee_name"`
	LeaveType       int64   `json:"leave_type"`
	LeaveTypeName   string  `json:"leave_type_name"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DaysRequested   Decimal `json:"days_requested"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	AppliedDate     string  `json:"applied_date,omitempty"`
	ApprovedBy      int64   `json:"approved_by,omitempty"`
	ApprovedByName  string  `json:"approved_by_name,omitempty"`
	ApprovedDate    string  `json:"approved_date,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	HandoverNotes   string  `json:"handover_notes,omitempty"`
}

// LeaveRequestInput is the create/update payload; the backend assigns the
// employee from the authenticated user.
type LeaveRequestInput struct {
	LeaveType        int64   `json:"leave_type"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	DaysRequested    Decimal `json:"days_requested"`
	Reason           string  `json:"reason"`
	EmergencyContact string  `json:"emergency_contact,omitempty"`
	HandoverNotes    string  `json:"handover_notes,omitempty"`
}

// LeaveDecision is the approve/reject response envelope.
type LeaveDecision struct {
	Message      string       `json:"message"`
	LeaveRequest LeaveRequest `json:"leave_request"`
}

type LeaveDashboardStats struct {
	PendingRequests       int `json:"pending_requests"`
	ApprovedToday         int `json:"approved_today"`
	EmployeesOnLeaveToday int `json:"employees_on_leave_today"`
	UpcomingLeaves        int `json:"upcoming_leaves"`
}

type VoluntaryDeduction struct {
	ID              int64   `json:"id"`
	Employee        int64   `json:"employee,omitempty"`
	Name            string  `json:"name"`
	DeductionType   string  `json:"deduction_type"`
	CalculationType string  `json:"calculation_type"`
	Amount          Decimal `json:"amount"`
	Description     string  `json:"description,omitempty"`
	StartDate       string  `json:"start_date,omitempty"`
	EndDate         string  `json:"end_date,omitempty"`
	IsActive        bool    `json:"is_active"`
}

type Benefit struct {
	ID              int64   `json:"id"`
	Employee        int64   `json:"employee,omitempty"`
	Name            string  `json:"name"`
	BenefitType     string  `json:"benefit_type"`
	CalculationType string  `json:"calculation_type"`
	Amount          Decimal `json:"amount"`
	Description     string  `json:"description,omitempty"`
	IsTaxable       bool    `json:"is_taxable"`
	IsActive        bool    `json:"is_active"`
}

const (
	RateTypeNSSF       = "nssf"
	RateTypeSHIF       = "shif"
	RateTypeAHL        = "ahl"
	RateTypePAYERelief = "paye_relief"
)

type StatutoryRate struct {
	ID            int64   `json:"id"`
	RateType      string  `json:"rate_type"`
	RateValue     Decimal `json:"rate_value"`
	Description   string  `json:"description,omitempty"`
	EffectiveDate string  `json:"effective_date"`
	IsActive      bool    `json:"is_active"`
}

// CurrentRate is the per-type entry of the current_rates action.
type CurrentRate struct {
	ID             int64   `json:"id"`
	RateValue      float64 `json:"rate_value"`
	RatePercentage float64 `json:"rate_percentage"`
	EffectiveDate  string  `json:"effective_date"`
	Description    string  `json:"description,omitempty"`
}

type CurrentRates map[string]*CurrentRate

type RateUpdateResult struct {
	Message      string `json:"message"`
	UpdatedRates []struct {
		RateType       string  `json:"rate_type"`
		RateValue      float64 `json:"rate_value"`
		RatePercentage float64 `json:"rate_percentage"`
		Created        bool    `json:"created"`
	} `json:"updated_rates"`
}
