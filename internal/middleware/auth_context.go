package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DebugUserHeader solo se respeta con DEBUG_AUTH=true.
const DebugUserHeader = "X-Debug-User-ID"

// AuthContext:
// - Si hay cookie de sesión válida y la cuenta existe => setea claims.
// - Si la cuenta ya no existe => borra la cookie y sigue como anónimo.
// - Si debug está activo y viene X-Debug-User-ID => setea claims sin verificar.
// - Si no hay claims, el request sigue igual; RequireLogin decide.
func AuthContext(sessions auth.SessionManager, accounts auth.AccountLookup, debug bool, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if debug {
				if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), auth.Claims{UserID: uid})))
					return
				}
			}

			if sessions == nil {
				next.ServeHTTP(w, r)
				return
			}

			token := sessions.Token(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := sessions.Verify(r.Context(), token)
			if err != nil {
				// cookie vencida o manipulada: se trata como anónimo
				log.Debug("session rejected", map[string]any{"error": err, "path": r.URL.Path})
				next.ServeHTTP(w, r)
				return
			}

			if accounts != nil {
				ok, err := accounts.Exists(r.Context(), claims.UserID)
				if err != nil {
					log.Error("session lookup failed", map[string]any{"error": err, "user_id": claims.UserID})
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				if !ok {
					log.Info("session for missing account", map[string]any{"user_id": claims.UserID})
					sessions.Logout(w)
					next.ServeHTTP(w, r)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireLogin redirige a la página de login con ?next=<ruta original>.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		status := http.StatusFound
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			status = http.StatusSeeOther
		}
		http.Redirect(w, r, LoginURL(r.URL.RequestURI()), status)
	})
}

func LoginURL(next string) string {
	if next == "" || next == "/" {
		return "/"
	}
	return "/?next=" + url.QueryEscape(next)
}

// SafeNext acepta solo rutas relativas del propio sitio.
func SafeNext(next, fallback string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return fallback
	}
	return next
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
