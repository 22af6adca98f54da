package auth

import (
	"context"
	"net/http"
)

// AuthVerifier verifica un token de sesión y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionManager es el colaborador externo de sesión:
// currentUser(request), login(request, owner), logout(request).
type SessionManager interface {
	AuthVerifier

	// Token extrae el token crudo del request ("" si no hay sesión).
	Token(r *http.Request) string
	Login(w http.ResponseWriter, c Claims) error
	Logout(w http.ResponseWriter)
}

// AccountLookup confirma que el usuario de una sesión válida sigue existiendo.
type AccountLookup interface {
	Exists(ctx context.Context, userID string) (bool, error)
}
