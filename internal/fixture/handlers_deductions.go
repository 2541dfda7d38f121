package fixture

import (
	"net/http"
	"strconv"

	"payrollkit/internal/api"
)

func (s *Server) handleListDeductions(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	filter, _ := strconv.ParseInt(r.URL.Query().Get("employee"), 10, 64)
	s.store.mu.Lock()
	visible := []api.VoluntaryDeduction{}
	for _, d := range s.store.deductions {
		if !u.Superuser && d.Employee != u.EmployeeID {
			continue
		}
		if filter != 0 && d.Employee != filter {
			continue
		}
		visible = append(visible, d)
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, visible)
}

func (s *Server) handleCreateDeduction(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage deductions")
		return
	}
	var input api.VoluntaryDeduction
	if !readBody(w, r, &input) {
		return
	}
	if input.Name == "" || input.Employee == 0 {
		writeDetail(w, http.StatusBadRequest, "name and employee are required")
		return
	}
	s.store.mu.Lock()
	input.ID = s.store.nextID()
	input.IsActive = true
	s.store.deductions = append(s.store.deductions, input)
	s.store.mu.Unlock()
	writeJSON(w, http.StatusCreated, input)
}

func (s *Server) handleUpdateDeduction(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage deductions")
		return
	}
	var input api.VoluntaryDeduction
	if !readBody(w, r, &input) {
		return
	}
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, d := range s.store.deductions {
		if d.ID == id {
			input.ID = d.ID
			if input.Employee == 0 {
				input.Employee = d.Employee
			}
			s.store.deductions[i] = input
			writeJSON(w, http.StatusOK, input)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDeleteDeduction(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage deductions")
		return
	}
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, d := range s.store.deductions {
		if d.ID == id {
			s.store.deductions = append(s.store.deductions[:i], s.store.deductions[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleListBenefits(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	filter, _ := strconv.ParseInt(r.URL.Query().Get("employee"), 10, 64)
	s.store.mu.Lock()
	visible := []api.Benefit{}
	for _, b := range s.store.benefits {
		if !u.Superuser && b.Employee != u.EmployeeID {
			continue
		}
		if filter != 0 && b.Employee != filter {
			continue
		}
		visible = append(visible, b)
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, visible)
}

func (s *Server) handleCreateBenefit(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage benefits")
		return
	}
	var input api.Benefit
	if !readBody(w, r, &input) {
		return
	}
	if input.Name == "" || input.Employee == 0 {
		writeDetail(w, http.StatusBadRequest, "name and employee are required")
		return
	}
	s.store.mu.Lock()
	input.ID = s.store.nextID()
	input.IsActive = true
	s.store.benefits = append(s.store.benefits, input)
	s.store.mu.Unlock()
	writeJSON(w, http.StatusCreated, input)
}

func (s *Server) handleUpdateBenefit(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage benefits")
		return
	}
	var input api.Benefit
	if !readBody(w, r, &input) {
		return
	}
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, b := range s.store.benefits {
		if b.ID == id {
			input.ID = b.ID
			if input.Employee == 0 {
				input.Employee = b.Employee
			}
			s.store.benefits[i] = input
			writeJSON(w, http.StatusOK, input)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func (s *Server) handleDeleteBenefit(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can manage benefits")
		return
	}
	id := pathID(r)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i, b := range s.store.benefits {
		if b.ID == id {
			s.store.benefits = append(s.store.benefits[:i], s.store.benefits[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Not found.")
}
