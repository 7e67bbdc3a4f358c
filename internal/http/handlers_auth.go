package httpx

import (
	"log/slog"
	"net/http"

	"github.com/espacosmart/portal-cliente/internal/session"
)

// AuthHandlers provides HTTP handlers for session establishment and teardown.
type AuthHandlers struct {
	Resolver *session.Resolver
	Logger   *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginCallback completes the external identity flow.
// GET /api/login?token=<signed token>.
//
// The external provider redirects the browser here with the signed session
// token in the query string. The token is stored in the session cookie as-is
// and only verified lazily on the next request through the session resolver;
// a bad token therefore costs one extra redirect hop, never a trusted session.
func (h *AuthHandlers) LoginCallback(w http.ResponseWriter, r *http.Request) {
	tokenValue := r.URL.Query().Get("token")
	if tokenValue == "" {
		h.logger().WarnContext(r.Context(), "login callback without token")
		http.Redirect(w, r, "/login?error=google", http.StatusFound)
		return
	}

	h.Resolver.SetSession(w, r, tokenValue)
	http.Redirect(w, r, "/home", http.StatusFound)
}

// Logout clears the session cookie and returns the user to the login page.
// POST /logout.
//
// The token is stateless, so there is nothing server-side to invalidate;
// removing the cookie ends the session.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Resolver.ClearSession(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}
