package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type LeavesService struct {
	c *Client
}

func (s *LeavesService) Types(ctx context.Context) ([]LeaveType, error) {
	return collectList[LeaveType](ctx, s.c, "leaves/leave-types/", nil)
}

func (s *LeavesService) Balances(ctx context.Context) ([]LeaveBalance, error) {
	return collectList[LeaveBalance](ctx, s.c, "leaves/leave-balances/", nil)
}

// MyBalance returns the caller's balances for the current year.
func (s *LeavesService) MyBalance(ctx context.Context) ([]LeaveBalance, error) {
	return collectList[LeaveBalance](ctx, s.c, "leaves/leave-requests/my_balance/", nil)
}

// RequestFilter narrows Requests; zero values are omitted from the query.
type RequestFilter struct {
	Status   string
	Employee int64
}

func (s *LeavesService) Requests(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Employee != 0 {
		query.Set("employee", strconv.FormatInt(filter.Employee, 10))
	}
	return collectList[LeaveRequest](ctx, s.c, "leaves/leave-requests/", query)
}

func (s *LeavesService) CreateRequest(ctx context.Context, input LeaveRequestInput) (LeaveRequest, error) {
	var req LeaveRequest
	err := s.c.doJSON(ctx, http.MethodPost, "leaves/leave-requests/", nil, input, &req)
	return req, err
}

func (s *LeavesService) UpdateRequest(ctx context.Context, id int64, input LeaveRequestInput) (LeaveRequest, error) {
	var req LeaveRequest
	err := s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("leaves/leave-requests/%d/", id), nil, input, &req)
	return req, err
}

func (s *LeavesService) DeleteRequest(ctx context.Context, id int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("leaves/leave-requests/%d/", id), nil, nil, nil)
}

// Pending lists all pending requests. Admin-only server side.
func (s *LeavesService) Pending(ctx context.Context) ([]LeaveRequest, error) {
	return collectList[LeaveRequest](ctx, s.c, "leaves/leave-requests/pending_requests/", nil)
}

func (s *LeavesService) Approve(ctx context.Context, id int64) (LeaveDecision, error) {
	var decision LeaveDecision
	err := s.c.doJSON(ctx, http.MethodPost, fmt.Sprintf("leaves/leave-requests/%d/approve/", id), nil, nil, &decision)
	return decision, err
}

// Reject declines a pending request; the backend requires a reason.
func (s *LeavesService) Reject(ctx context.Context, id int64, reason string) (LeaveDecision, error) {
	payload := struct {
		RejectionReason string `json:"rejection_reason"`
	}{RejectionReason: reason}
	var decision LeaveDecision
	err := s.c.doJSON(ctx, http.MethodPost, fmt.Sprintf("leaves/leave-requests/%d/reject/", id), nil, payload, &decision)
	return decision, err
}

func (s *LeavesService) DashboardStats(ctx context.Context) (LeaveDashboardStats, error) {
	var stats LeaveDashboardStats
	err := s.c.doJSON(ctx, http.MethodGet, "leaves/leave-requests/dashboard_stats/", nil, nil, &stats)
	return stats, err
}
