package fixture

import (
	"fmt"
	"net/http"
	"time"

	"payrollkit/internal/api"
)

func (s *Server) handleListRates(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	active := []api.StatutoryRate{}
	for _, rate := range s.store.rates {
		if rate.IsActive {
			active = append(active, rate)
		}
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, active)
}

func (s *Server) handleCurrentRates(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	rates := api.CurrentRates{}
	for _, rate := range s.store.rates {
		if !rate.IsActive {
			continue
		}
		rates[rate.RateType] = &api.CurrentRate{
			ID:             rate.ID,
			RateValue:      float64(rate.RateValue),
			RatePercentage: float64(rate.RateValue) * 100,
			EffectiveDate:  rate.EffectiveDate,
			Description:    rate.Description,
		}
	}
	s.store.mu.Unlock()
	writeJSON(w, http.StatusOK, rates)
}

func (s *Server) handleBulkUpdateRates(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	if !u.Superuser {
		writeError(w, http.StatusForbidden, "Only administrators can update statutory rates")
		return
	}
	var payload map[string]float64
	if !readBody(w, r, &payload) {
		return
	}

	known := map[string]bool{
		api.RateTypeNSSF:       true,
		api.RateTypeSHIF:       true,
		api.RateTypeAHL:        true,
		api.RateTypePAYERelief: true,
	}

	type updated struct {
		RateType       string  `json:"rate_type"`
		RateValue      float64 `json:"rate_value"`
		RatePercentage float64 `json:"rate_percentage"`
		Created        bool    `json:"created"`
	}

	s.store.mu.Lock()
	var results []updated
	for rateType, value := range payload {
		if !known[rateType] {
			continue
		}
		// Values above 1 are percentages, except the flat relief amount.
		if value > 1 && rateType != api.RateTypePAYERelief {
			value = value / 100
		}
		found := false
		for i, rate := range s.store.rates {
			if rate.RateType == rateType {
				rate.RateValue = api.Decimal(value)
				rate.IsActive = true
				s.store.rates[i] = rate
				results = append(results, updated{
					RateType:       rateType,
					RateValue:      value,
					RatePercentage: value * 100,
				})
				found = true
				break
			}
		}
		if !found {
			s.store.rates = append(s.store.rates, api.StatutoryRate{
				ID:            s.store.nextID(),
				RateType:      rateType,
				RateValue:     api.Decimal(value),
				EffectiveDate: time.Now().UTC().Format("2006-01-02"),
				IsActive:      true,
			})
			results = append(results, updated{
				RateType:       rateType,
				RateValue:      value,
				RatePercentage: value * 100,
				Created:        true,
			})
		}
	}
	s.store.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"message":       fmt.Sprintf("Updated %d statutory rates", len(results)),
		"updated_rates": results,
	})
}
