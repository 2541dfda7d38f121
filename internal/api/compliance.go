package api

import (
	"context"
	"net/http"
)

type ComplianceService struct {
	c *Client
}

func (s *ComplianceService) Rates(ctx context.Context) ([]StatutoryRate, error) {
	return collectList[StatutoryRate](ctx, s.c, "compliance/statutory-rates/", nil)
}

// CurrentRates returns the active rate per statutory deduction type.
func (s *ComplianceService) CurrentRates(ctx context.Context) (CurrentRates, error) {
	var rates CurrentRates
	err := s.c.doJSON(ctx, http.MethodGet, "compliance/statutory-rates/current_rates/", nil, nil, &rates)
	return rates, err
}

// BulkUpdate sets several rates at once. Keys are rate types, values the
// new rate; the backend treats values above 1 as percentages. Admin-only.
func (s *ComplianceService) BulkUpdate(ctx context.Context, rates map[string]float64) (RateUpdateResult, error) {
	var result RateUpdateResult
	err := s.c.doJSON(ctx, http.MethodPost, "compliance/statutory-rates/bulk_update/", nil, rates, &result)
	return result, err
}
