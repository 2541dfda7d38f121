package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type DeductionsService struct {
	c *Client
}

// List returns voluntary deductions, optionally filtered to one employee
// (0 = all visible to the session).
func (s *DeductionsService) List(ctx context.Context, employeeID int64) ([]VoluntaryDeduction, error) {
	query := url.Values{}
	if employeeID != 0 {
		query.Set("employee", strconv.FormatInt(employeeID, 10))
	}
	return collectList[VoluntaryDeduction](ctx, s.c, "employees/voluntary-deductions/", query)
}

func (s *DeductionsService) Create(ctx context.Context, input VoluntaryDeduction) (VoluntaryDeduction, error) {
	var out VoluntaryDeduction
	err := s.c.doJSON(ctx, http.MethodPost, "employees/voluntary-deductions/", nil, input, &out)
	return out, err
}

func (s *DeductionsService) Update(ctx context.Context, id int64, input VoluntaryDeduction) (VoluntaryDeduction, error) {
	var out VoluntaryDeduction
	err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("employees/voluntary-deductions/%d/", id), nil, input, &out)
	return out, err
}

func (s *DeductionsService) Delete(ctx context.Context, id int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("employees/voluntary-deductions/%d/", id), nil, nil, nil)
}

type BenefitsService struct {
	c *Client
}

func (s *BenefitsService) List(ctx context.Context, employeeID int64) ([]Benefit, error) {
	query := url.Values{}
	if employeeID != 0 {
		query.Set("employee", strconv.FormatInt(employeeID, 10))
	}
	return collectList[Benefit](ctx, s.c, "employees/benefits/", query)
}

func (s *BenefitsService) Create(ctx context.Context, input Benefit) (Benefit, error) {
	var out Benefit
	err := s.c.doJSON(ctx, http.MethodPost, "employees/benefits/", nil, input, &out)
	return out, err
}

func (s *BenefitsService) Update(ctx context.Context, id int64, input Benefit) (Benefit, error) {
	var out Benefit
	err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("employees/benefits/%d/", id), nil, input, &out)
	return out, err
}

func (s *BenefitsService) Delete(ctx context.Context, id int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("employees/benefits/%d/", id), nil, nil, nil)
}
