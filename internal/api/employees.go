package api

import (
	"context"
	"fmt"
	"net/http"
)

type EmployeesService struct {
	c *Client
}

// List returns every employee across all pages. Admin-only server side.
func (s *EmployeesService) List(ctx context.Context) ([]Employee, error) {
	return collectList[Employee](ctx, s.c, "employees/employees/", nil)
}

func (s *EmployeesService) Get(ctx context.Context, id int64) (Employee, error) {
	var emp Employee
	err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("employees/employees/%d/", id), nil, nil, &emp)
	return emp, err
}

// Me returns the employee profile bound to the authenticated user.
func (s *EmployeesService) Me(ctx context.Context) (Employee, error) {
	var emp Employee
	err := s.c.doJSON(ctx, http.MethodGet, "employees/employees/me/", nil, nil, &emp)
	return emp, err
}

func (s *EmployeesService) Create(ctx context.Context, input EmployeeInput) (Employee, error) {
	var emp Employee
	err := s.c.doJSON(ctx, http.MethodPost, "employees/employees/", nil, input, &emp)
	return emp, err
}

func (s *EmployeesService) Update(ctx context.Context, id int64, input EmployeeInput) (Employee, error) {
	var emp Employee
	err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("employees/employees/%d/", id), nil, input, &emp)
	return emp, err
}

func (s *EmployeesService) Delete(ctx context.Context, id int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("employees/employees/%d/", id), nil, nil, nil)
}
