package guard

import (
	"testing"

	"payrollkit/internal/session"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name  string
		token string
		role  session.Role
		req   Requirement
		want  Decision
	}{
		{"unauthenticated", "", "", Requirement{Role: session.RoleAdmin}, RedirectLogin},
		{"unauthenticated no requirement", "", "", Requirement{}, RedirectLogin},
		{"admin on admin route", "tok", session.RoleAdmin, Requirement{Role: session.RoleAdmin}, Allow},
		{"employee on admin route", "tok", session.RoleEmployee, Requirement{Role: session.RoleAdmin}, RedirectHome},
		{"admin on employee route", "tok", session.RoleAdmin, Requirement{Role: session.RoleEmployee}, RedirectHome},
		{"role-agnostic route", "tok", session.RoleEmployee, Requirement{}, Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := session.NewMemStore()
			if tc.token != "" {
				if err := store.Set(tc.token, tc.role); err != nil {
					t.Fatalf("set: %v", err)
				}
			}
			if got := Authorize(store, tc.req); got != tc.want {
				t.Fatalf("Authorize = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAuthorizeAfterLogout(t *testing.T) {
	store := session.NewMemStore()
	if err := store.Set("tok", session.RoleAdmin); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := Authorize(store, Requirement{Role: session.RoleAdmin}); got != RedirectLogin {
		t.Fatalf("Authorize after logout = %v, want RedirectLogin", got)
	}
}

func TestLanding(t *testing.T) {
	if Landing(session.RoleAdmin) != "/admin/dashboard" {
		t.Fatal("wrong admin landing")
	}
	if Landing(session.RoleEmployee) != "/employee/dashboard" {
		t.Fatal("wrong employee landing")
	}
}
