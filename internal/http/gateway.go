package httpx

import (
	"log/slog"
	"net/http"

	"github.com/espacosmart/portal-cliente/internal/backend"
	apperrors "github.com/espacosmart/portal-cliente/internal/errors"
	"github.com/espacosmart/portal-cliente/internal/session"
)

// Gateway ties the session resolver to the backend client with the portal's
// failure policy: no session means a redirect to /login without touching the
// network, and every other failure is logged server-side and degrades to a
// redirect to /home. Page handlers never see an error value, so no failure
// can leak a payload or stack trace to the user.
type Gateway struct {
	Resolver *session.Resolver
	Client   *backend.Client
	Logger   *slog.Logger
}

func (g *Gateway) logger() *slog.Logger {
	if g != nil && g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// FetchJSON resolves the session, performs the backend call with the session
// token as bearer credential, and decodes the JSON response into dst.
//
// It returns true on success. On failure the response has already been
// written (a redirect), and the caller must return without writing anything.
func (g *Gateway) FetchJSON(w http.ResponseWriter, r *http.Request, req backend.Request, dst any) bool {
	handle, ok := g.Resolver.Resolve(w, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return false
	}

	if err := g.Client.DoJSON(r.Context(), handle.Token(), req, dst); err != nil {
		g.logger().ErrorContext(r.Context(), "backend call failed",
			slog.String("endpoint", req.Endpoint),
			slog.String("code", string(apperrors.CodeOf(err))),
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.Any("error", err),
		)
		http.Redirect(w, r, "/home", http.StatusFound)
		return false
	}

	return true
}
