// Package fixture is an in-memory stand-in for the payroll backend. It
// speaks the same wire dialect (token auth, paginated envelopes, detail and
// error bodies) so the client, the CLI, and the journey tests can run
// without the real service. All payroll figures it serves are canned.
package fixture

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	store    *store
	secret   string
	tokenTTL time.Duration
	router   chi.Router
}

func NewServer(secret string) (*Server, error) {
	s := &Server{
		store:    &store{},
		secret:   secret,
		tokenTTL: 12 * time.Hour,
	}
	if err := s.store.seed(); err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(logger)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login/", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Post("/auth/logout/", s.handleLogout)
			r.Get("/auth/profile/", s.handleProfile)

			r.Get("/employees/employees/", s.handleListEmployees)
			r.Post("/employees/employees/", s.handleCreateEmployee)
			r.Get("/employees/employees/me/", s.handleMyEmployee)
			r.Get("/employees/employees/{id}/", s.handleGetEmployee)
			r.Put("/employees/employees/{id}/", s.handleUpdateEmployee)
			r.Delete("/employees/employees/{id}/", s.handleDeleteEmployee)

			r.Get("/payroll/payslips/", s.handleListPayslips)
			r.Get("/payroll/payslips/{id}/", s.handleGetPayslip)
			r.Get("/payroll/payslips/{id}/download_pdf/", s.handleDownloadPayslipPDF)
			r.Get("/payroll/payroll-runs/", s.handleListRuns)
			r.Post("/payroll/payroll-runs/", s.handleCreateRun)

			r.Get("/leaves/leave-types/", s.handleLeaveTypes)
			r.Get("/leaves/leave-balances/", s.handleLeaveBalances)
			r.Get("/leaves/leave-requests/", s.handleListLeaveRequests)
			r.Post("/leaves/leave-requests/", s.handleCreateLeaveRequest)
			r.Get("/leaves/leave-requests/pending_requests/", s.handlePendingRequests)
			r.Get("/leaves/leave-requests/my_balance/", s.handleMyBalance)
			r.Get("/leaves/leave-requests/dashboard_stats/", s.handleDashboardStats)
			r.Put("/leaves/leave-requests/{id}/", s.handleUpdateLeaveRequest)
			r.Delete("/leaves/leave-requests/{id}/", s.handleDeleteLeaveRequest)
			r.Post("/leaves/leave-requests/{id}/approve/", s.handleApproveLeaveRequest)
			r.Post("/leaves/leave-requests/{id}/reject/", s.handleRejectLeaveRequest)

			r.Get("/employees/voluntary-deductions/", s.handleListDeductions)
			r.Post("/employees/voluntary-deductions/", s.handleCreateDeduction)
			r.Put("/employees/voluntary-deductions/{id}/", s.handleUpdateDeduction)
			r.Delete("/employees/voluntary-deductions/{id}/", s.handleDeleteDeduction)

			r.Get("/employees/benefits/", s.handleListBenefits)
			r.Post("/employees/benefits/", s.handleCreateBenefit)
			r.Put("/employees/benefits/{id}/", s.handleUpdateBenefit)
			r.Delete("/employees/benefits/{id}/", s.handleDeleteBenefit)

			r.Get("/compliance/statutory-rates/", s.handleListRates)
			r.Get("/compliance/statutory-rates/current_rates/", s.handleCurrentRates)
			r.Post("/compliance/statutory-rates/bulk_update/", s.handleBulkUpdateRates)
		})
	})

	s.router = router
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.router }
