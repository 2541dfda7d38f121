package fixture

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"payrollkit/internal/api"
)

func (s *Server) handleLeaveTypes(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	var active []api.LeaveType
	for _, lt := range s.store.leaveTypes {
		if lt.IsActive {
			active = append(active, lt)
		}
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, active)
}

func (s *Server) handleLeaveBalances(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	s.store.mu.Lock()
	var visible []api.LeaveBalance
	for _, b := range s.store.balances {
		if u.Superuser || b.Employee == u.EmployeeID {
			visible = append(visible, b)
		}
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, visible)
}

func (s *Server) handleMyBalance(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if u.EmployeeID == 0 {
		writeError(w, http.StatusNotFound, "Employee profile not found")
		return
	}
	year := time.Now().Year()
	s.store.mu.Lock()
	var mine []api.LeaveBalance
	for _, b := range s.store.balances {
		if b.Employee == u.EmployeeID && b.Year == year {
			mine = append(mine, b)
		}
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, mine)
}

func (s *Server) handleListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	status := r.URL.Query().Get("status")
	employeeFilter, _ := strconv.ParseInt(r.URL.Query().Get("employee"), 10, 64)

	s.store.mu.Lock()
	var visible []api.LeaveRequest
	for _, lr := range s.store.requests {
		if !u.Superuser && lr.Employee != u.EmployeeID {
			continue
		}
		if status != "" && lr.Status != status {
			continue
		}
		if employeeFilter != 0 && lr.Employee != employeeFilter {
			continue
		}
		visible = append(visible, lr)
	}
	s.store.mu.Unlock()
	paginate(w, r, visible)
}

func (s *Server) handleCreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if u.EmployeeID == 0 {
		writeDetail(w, http.StatusBadRequest, "User does not have an employee profile")
		return
	}
	var input api.LeaveRequestInput
	if !readBody(w, r, &input) {
		return
	}
	if input.StartDate == "" || input.EndDate == "" || input.LeaveType == 0 {
		writeDetail(w, http.StatusBadRequest, "leave_type, start_date and end_date are required")
		return
	}
	if input.StartDate > input.EndDate {
		writeDetail(w, http.StatusBadRequest, "Start date cannot be after end date")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var typeName string
	for _, lt := range s.store.leaveTypes {
		if lt.ID == input.LeaveType {
			typeName = lt.Name
		}
	}
	if typeName == "" {
		writeDetail(w, http.StatusBadRequest, "Unknown leave type")
		return
	}
	var employeeName string
	for _, e := range s.store.employees {
		if e.ID == u.EmployeeID {
			employeeName = e.FullName
		}
	}

	req := api.LeaveRequest{
		ID:               s.store.nextID(),
		Employee:         u.EmployeeID,
		EmployeeName:     employeeName,
		LeaveType:        input.LeaveType,
		LeaveTypeName:    typeName,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		DaysRequested:    input.DaysRequested,
		Reason:           input.Reason,
		Status:           api.LeaveStatusPending,
		AppliedDate:      time.Now().UTC().Format(time.RFC3339),
		EmergencyContact: input.EmergencyContact,
		HandoverNotes:    input.HandoverNotes,
	}
	s.store.requests = append(s.store.requests, req)
	writeJSON(w, http.StatusCreated, req)
}

func (s *Server) handleUpdateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	var input api.LeaveRequestInput
	if !readBody(w, r, &input) {
		return
	}
	if input.StartDate != "" && input.EndDate != "" && input.StartDate > input.EndDate {
		writeDetail(w, http.StatusBadRequest, "Start date cannot be after end date")
		return
	}

	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, lr := range s.store.requests {
		if lr.ID != id {
			continue
		}
		if !u.Superuser && lr.Employee != u.EmployeeID {
			break
		}
		if lr.Status != api.LeaveStatusPending {
			writeDetail(w, http.StatusBadRequest, "Only pending requests can be edited")
			return
		}
		if input.StartDate != "" {
			lr.StartDate = input.StartDate
		}
		if input.EndDate != "" {
			lr.EndDate = input.EndDate
		}
		if input.DaysRequested != 0 {
			lr.DaysRequested = input.DaysRequested
		}
		if input.Reason != "" {
			lr.Reason = input.Reason
		}
		lr.EmergencyContact = input.EmergencyContact
		lr.HandoverNotes = input.HandoverNotes
		s.store.requests[i] = lr
		writeJSON(w, http.StatusOK, lr)
		return
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDeleteLeaveRequest(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, lr := range s.store.requests {
		if lr.ID != id {
			continue
		}
		if !u.Superuser && lr.Employee != u.EmployeeID {
			break
		}
		s.store.requests = append(s.store.requests[:i], s.store.requests[i+1:]...)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handlePendingRequests(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can view all pending requests")
		return
	}
	s.store.mu.Lock()
	pending := []api.LeaveRequest{}
	for _, lr := range s.store.requests {
		if lr.Status == api.LeaveStatusPending {
			pending = append(pending, lr)
		}
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, pending)
}

func (s *Server) handleApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can approve leave requests")
		return
	}
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, lr := range s.store.requests {
		if lr.ID != id {
			continue
		}
		if lr.Status != api.LeaveStatusPending {
			writeError(w, http.StatusBadRequest, "Only pending requests can be approved")
			return
		}
		for _, b := range s.store.balances {
			if b.Employee == lr.Employee && b.LeaveType == lr.LeaveType {
				if b.AvailableDays < lr.DaysRequested {
					writeError(w, http.StatusBadRequest, fmt.Sprintf(
						"Insufficient leave balance. Available: %s days, Requested: %s days",
						b.AvailableDays, lr.DaysRequested))
					return
				}
				break
			}
		}
		lr.Status = api.LeaveStatusApproved
		lr.ApprovedBy = u.ID
		lr.ApprovedByName = u.FirstName + " " + u.LastName
		lr.ApprovedDate = time.Now().UTC().Format(time.RFC3339)
		s.store.requests[i] = lr
		writeJSON(w, http.StatusOK, api.LeaveDecision{
			Message:      "Leave request approved successfully",
			LeaveRequest: lr,
		})
		return
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleRejectLeaveRequest(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can reject leave requests")
		return
	}
	var payload struct {
		RejectionReason string `json:"rejection_reason"`
	}
	if !readBody(w, r, &payload) {
		return
	}
	if payload.RejectionReason == "" {
		writeError(w, http.StatusBadRequest, "Rejection reason is required")
		return
	}

	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, lr := range s.store.requests {
		if lr.ID != id {
			continue
		}
		if lr.Status != api.LeaveStatusPending {
			writeError(w, http.StatusBadRequest, "Only pending requests can be rejected")
			return
		}
		lr.Status = api.LeaveStatusRejected
		lr.ApprovedBy = u.ID
		lr.ApprovedByName = u.FirstName + " " + u.LastName
		lr.ApprovedDate = time.Now().UTC().Format(time.RFC3339)
		lr.RejectionReason = payload.RejectionReason
		s.store.requests[i] = lr
		writeJSON(w, http.StatusOK, api.LeaveDecision{
			Message:      "Leave request rejected successfully",
			LeaveRequest: lr,
		})
		return
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can view dashboard statistics")
		return
	}
	today := time.Now().UTC().Format("2006-01-02")
	weekAhead := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")

	s.store.mu.Lock()
	stats := api.LeaveDashboardStats{}
	for _, lr := range s.store.requests {
		switch lr.Status {
		case api.LeaveStatusPending:
			stats.PendingRequests++
		case api.LeaveStatusApproved:
			if len(lr.ApprovedDate) >= 10 && lr.ApprovedDate[:10] == today {
				stats.ApprovedToday++
			}
			if lr.StartDate <= today && lr.EndDate >= today {
				stats.EmployeesOnLeaveToday++
			}
			if lr.StartDate > today && lr.StartDate <= weekAhead {
				stats.UpcomingLeaves++
			}
		}
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, stats)
}
