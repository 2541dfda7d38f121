package fixture

import (
	"net/http"

	"payrollkit/internal/api"
)

func roleOf(u *user) string {
	if u.Superuser {
		return "admin"
	}
	return "employee"
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !readBody(w, r, &creds) {
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeDetail(w, http.StatusBadRequest, "Must include 'email' and 'password'.")
		return
	}
	u := s.store.userByEmail(creds.Email)
	if u == nil || checkPassword(u.PasswordHash, creds.Password) != nil {
		writeDetail(w, http.StatusBadRequest, "Unable to log in with provided credentials.")
		return
	}
	token, err := mintToken(s.secret, u.ID, roleOf(u), s.tokenTTL)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Token generation failed.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token, "role": roleOf(u)})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are short-lived signatures; there is nothing to delete.
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out."})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	writeJSON(w, http.StatusOK, api.AccountProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
}
