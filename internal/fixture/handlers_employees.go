package fixture

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"payrollkit/internal/api"
)

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	s.store.mu.Lock()
	var visible []api.Employee
	for _, e := range s.store.employees {
		if u.Superuser || e.ID == u.EmployeeID {
			visible = append(visible, e)
		}
	}
	s.store.mu.Unlock()
	paginate(w, r, visible)
}

func (s *Server) handleMyEmployee(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if emp, ok := s.store.employeeByID(u.EmployeeID); ok {
		writeJSON(w, http.StatusOK, emp)
		return
	}
	writeDetail(w, http.StatusNotFound, "Employee profile not found.")
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	emp, ok := s.store.employeeByID(pathID(r))
	if !ok || (!u.Superuser && emp.ID != u.EmployeeID) {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage employees")
		return
	}
	var input api.EmployeeInput
	if !readBody(w, r, &input) {
		return
	}
	if input.Email == "" || input.FirstName == "" || input.LastName == "" {
		writeDetail(w, http.StatusBadRequest, "email, first_name and last_name are required")
		return
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Could not store credentials.")
		return
	}

	s.store.mu.Lock()
	account := &user{
		ID:           s.store.nextID(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	emp := api.Employee{
		ID:                   s.store.nextID(),
		User:                 account.ID,
		FullName:             input.FirstName + " " + input.LastName,
		Email:                input.Email,
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		GrossSalary:          input.GrossSalary,
		BankAccountNumber:    input.BankAccountNumber,
		HELBMonthlyDeduction: input.HELBMonthlyDeduction,
		IsActive:             true,
	}
	account.EmployeeID = emp.ID
	s.store.users = append(s.store.users, account)
	s.store.employees = append(s.store.employees, emp)
	s.store.mu.Unlock()

	writeJSON(w, http.StatusCreated, emp)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage employees")
		return
	}
	var input api.EmployeeInput
	if !readBody(w, r, &input) {
		return
	}

	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, e := range s.store.employees {
		if e.ID != id {
			continue
		}
		if input.FirstName != "" {
			e.FirstName = input.FirstName
		}
		if input.LastName != "" {
			e.LastName = input.LastName
		}
		if input.Email != "" {
			e.Email = input.Email
		}
		e.FullName = e.FirstName + " " + e.LastName
		if input.GrossSalary != 0 {
			e.GrossSalary = input.GrossSalary
		}
		if input.BankAccountNumber != "" {
			e.BankAccountNumber = input.BankAccountNumber
		}
		if input.HELBMonthlyDeduction != 0 {
			e.HELBMonthlyDeduction = input.HELBMonthlyDeduction
		}
		s.store.employees[i] = e
		writeJSON(w, http.StatusOK, e)
		return
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage employees")
		return
	}
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, e := range s.store.employees {
		if e.ID == id {
			s.store.employees = append(s.store.employees[:i], s.store.employees[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}
