package fixture

import (
	"net/http"

	"payrollkit/internal/api"
)

func (s *Server) handleListPayslips(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	s.store.mu.Lock()
	var visible []api.Payslip
	for _, p := range s.store.payslips {
		if u.Superuser || p.Employee.ID == u.EmployeeID {
			visible = append(visible, p)
		}
	}
	s.store.mu.Unlock()
	paginate(w, r, visible)
}

func (s *Server) handleGetPayslip(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, p := range s.store.payslips {
		if p.ID == id {
			if !u.Superuser && p.Employee.ID != u.EmployeeID {
				break
			}
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDownloadPayslipPDF(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	id := pathID(r)

	s.store.mu.Lock()
	var slip *api.Payslip
	for i := range s.store.payslips {
		p := &s.store.payslips[i]
		if p.ID == id && (u.Superuser || p.Employee.ID == u.EmployeeID) {
			slip = p
			break
		}
	}
	s.store.mu.Unlock()

	if slip == nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	data, err := renderPayslipPDF(*slip)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+api.PayslipFilename(*slip)+`"`)
	_, _ = w.Write(data)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can view payroll runs")
		return
	}
	s.store.mu.Lock()
	runs := make([]api.PayrollRun, len(s.store.runs))
	copy(runs, s.store.runs)
	s.store.mu.Unlock()
	paginate(w, r, runs)
}

// handleCreateRun records a payroll run and stamps out canned payslips for
// every active employee. No payroll arithmetic happens here.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can create payroll runs")
		return
	}
	var input api.PayrollRunInput
	if !readBody(w, r, &input) {
		return
	}
	if input.PeriodStartDate == "" || input.PeriodEndDate == "" {
		writeDetail(w, http.StatusBadRequest, "period_start_date and period_end_date are required")
		return
	}
	if input.PeriodStartDate > input.PeriodEndDate {
		writeDetail(w, http.StatusBadRequest, "Period start date cannot be after end date")
		return
	}

	s.store.mu.Lock()
	run := api.PayrollRun{
		ID:              s.store.nextID(),
		RunDate:         input.RunDate,
		RunBy:           u.ID,
		PeriodStartDate: input.PeriodStartDate,
		PeriodEndDate:   input.PeriodEndDate,
	}
	if run.RunDate == "" {
		run.RunDate = input.PeriodEndDate
	}
	s.store.runs = append(s.store.runs, run)
	for _, emp := range s.store.employees {
		if emp.IsActive {
			s.store.payslips = append(s.store.payslips, s.store.cannedPayslip(run, emp))
		}
	}
	s.store.mu.Unlock()

	writeJSON(w, http.StatusCreated, run)
}
