// Package session holds the authenticated identity of the current user: an
// opaque bearer token and a coarse role, persisted so separate invocations
// of the tool share one login.
package session

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Store is the single source of truth for "who is logged in". Token and role
// are always written and cleared together; an empty token is the sole
// unauthenticated signal.
type Store interface {
	Token() string
	Role() Role
	Set(token string, role Role) error
	Clear() error
}

func Authenticated(s Store) bool {
	return s.Token() != ""
}

// MemStore keeps the session in memory only. Used in tests and anywhere
// persistence across processes is not wanted.
type MemStore struct {
	token string
	role  Role
}

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Token() string { return m.token }
func (m *MemStore) Role() Role    { return m.role }

func (m *MemStore) Set(token string, role Role) error {
	m.token = token
	m.role = role
	return nil
}

func (m *MemStore) Clear() error {
	m.token = ""
	m.role = ""
	return nil
}
