package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"payrollkit/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.MemStore, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := session.NewMemStore()
	client, err := New(server.URL+"/api/v1/", store, Options{HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, store, server
}

func TestLoginStoresSessionAndSetsHeader(t *testing.T) {
	var seenAuth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode creds: %v", err)
		}
		if creds.Email != "user@x.com" || creds.Password != "pw" {
			t.Fatalf("unexpected credentials: %+v", creds)
		}
		if r.Header.Get("Authorization") != "" {
			t.Fatal("login must not carry an Authorization header")
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "abc", "role": "admin"})
	})
	mux.HandleFunc("/api/v1/employees/employees/me/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		seenAuth.Store(r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(Employee{ID: 1, FullName: "Jane Doe"})
	})

	client, store, _ := newTestClient(t, mux)

	result, err := client.Auth.Login(context.Background(), "user@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token != "abc" || result.Role != session.RoleAdmin {
		t.Fatalf("unexpected login result: %+v", result)
	}
	if store.Token() != "abc" || store.Role() != session.RoleAdmin {
		t.Fatal("session not stored")
	}

	if _, err := client.Employees.Me(context.Background()); err != nil {
		t.Fatalf("me: %v", err)
	}
	if got := seenAuth.Load(); got != "Token abc" {
		t.Fatalf("Authorization = %q, want %q", got, "Token abc")
	}
}

func TestLoginFailureStoresNothing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Unable to log in with provided credentials."})
	})

	client, store, _ := newTestClient(t, mux)

	_, err := client.Auth.Login(context.Background(), "user@x.com", "wrong")
	if err == nil {
		t.Fatal("expected login failure")
	}
	if err.Error() != "Unable to log in with provided credentials." {
		t.Fatalf("message = %q", err.Error())
	}
	if store.Token() != "" || store.Role() != "" {
		t.Fatal("failed login must not store partial session")
	}
}

func TestProtectedCallWithoutTokenIssuesNoRequest(t *testing.T) {
	var requests atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	client, _, _ := newTestClient(t, handler)

	_, err := client.Employees.List(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if _, err := client.Payroll.Payslips(context.Background()); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if _, err := client.Payroll.DownloadPayslipPDF(context.Background(), 1); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if n := requests.Load(); n != 0 {
		t.Fatalf("issued %d network requests, want 0", n)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Successfully logged out."})
	})

	client, store, _ := newTestClient(t, mux)
	if err := store.Set("tok", session.RoleEmployee); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := client.Auth.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Token() != "" {
		t.Fatal("logout must clear the token")
	}

	_, err := client.Leaves.MyBalance(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err after logout = %v, want ErrUnauthenticated", err)
	}
}

func TestLogoutSurvivesServerFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client, store, _ := newTestClient(t, handler)
	if err := store.Set("tok", session.RoleAdmin); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := client.Auth.Logout(context.Background()); err != nil {
		t.Fatalf("logout must not fail on backend error: %v", err)
	}
	if store.Token() != "" {
		t.Fatal("session must be cleared regardless of backend outcome")
	}
}

func TestErrorDetailSurfacedVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/leaves/leave-requests/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid dates"})
	})

	client, store, _ := newTestClient(t, mux)
	store.Set("tok", session.RoleEmployee)

	_, err := client.Leaves.CreateRequest(context.Background(), LeaveRequestInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Invalid dates" {
		t.Fatalf("message = %q, want %q", err.Error(), "Invalid dates")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindResource || apiErr.Status != 400 {
		t.Fatalf("unexpected error shape: %+v", err)
	}
}

func TestErrorFieldFallbacks(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error": "Only administrators can approve leave requests"}`, "Only administrators can approve leave requests"},
		{"no recognized field", `{"oops": true}`, "HTTP error: 403"},
		{"non-json body", `<html>`, "HTTP error: 403"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(tc.body))
			})
			client, store, _ := newTestClient(t, handler)
			store.Set("tok", session.RoleEmployee)

			_, err := client.Leaves.Approve(context.Background(), 9)
			if err == nil || err.Error() != tc.want {
				t.Fatalf("err = %v, want message %q", err, tc.want)
			}
		})
	}
}

func TestAuthRejectionClearsSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token."})
	})
	client, store, _ := newTestClient(t, handler)
	store.Set("stale", session.RoleAdmin)

	_, err := client.Employees.List(context.Background())
	if !IsAuthRejected(err) {
		t.Fatalf("err = %v, want auth rejection", err)
	}
	if store.Token() != "" {
		t.Fatal("rejected token must be cleared from the session")
	}
}

func TestConflictKind(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Edit conflict"})
	})
	client, store, _ := newTestClient(t, handler)
	store.Set("tok", session.RoleAdmin)

	_, err := client.Employees.Update(context.Background(), 1, EmployeeInput{})
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindConflict {
		t.Fatalf("err = %v, want conflict kind", err)
	}
}

func TestNetworkFailureKind(t *testing.T) {
	store := session.NewMemStore()
	store.Set("tok", session.RoleAdmin)
	// Port is closed immediately so the dial fails.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := New(url+"/api/v1/", store, Options{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Employees.List(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindNetwork {
		t.Fatalf("err = %v, want network kind", err)
	}
}

func TestContextCancellation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	client, store, _ := newTestClient(t, handler)
	store.Set("tok", session.RoleAdmin)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Employees.List(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDownloadPayslipPDFBypassesJSON(t *testing.T) {
	raw := []byte("%PDF-1.4 payslip body")
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/payroll/payslips/7/download_pdf/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(raw)
	})
	client, store, _ := newTestClient(t, mux)
	store.Set("tok", session.RoleEmployee)

	data, err := client.Payroll.DownloadPayslipPDF(context.Background(), 7)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if string(data) != string(raw) {
		t.Fatalf("body = %q", data)
	}
}
