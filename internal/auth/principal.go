package auth

import (
	"net/http"

	"worklink_backend/internal/models"
)

// Principal is the authenticated identity handlers act on behalf of.
type Principal struct {
	UserID string
	Email  string
	Role   models.UserRole
}

// Authenticator resolves the principal for a request. Implementations must
// not touch the response; the middleware decides how failures are rendered.
type Authenticator interface {
	Authenticate(r *http.Request) (*Principal, error)
}

// StaticAuthenticator returns the same principal for every request. It backs
// the mock auth mode and the fixed-principal stubs used in tests.
type StaticAuthenticator struct {
	Principal Principal
}

func (a *StaticAuthenticator) Authenticate(_ *http.Request) (*Principal, error) {
	p := a.Principal
	return &p, nil
}
