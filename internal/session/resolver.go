// Package session resolves the portal's session cookie into a verified token
// handle. It is the single choke point for trust decisions: everything that
// needs to know "is this request authenticated" goes through Resolver rather
// than reading the cookie itself.
package session

import (
	"net/http"

	domainauth "github.com/espacosmart/portal-cliente/internal/domain/auth"
	"github.com/espacosmart/portal-cliente/internal/token"
)

// Handle wraps a verified session token for the remainder of a request.
// It is request-scoped and never retained across requests.
type Handle struct {
	tok token.VerifiedToken
}

// Token returns the raw token value for use as a bearer credential.
func (h Handle) Token() string { return h.tok.Raw() }

// Config holds cookie attributes for the session cookie.
type Config struct {
	// CookieName is the session cookie name (normally "session").
	CookieName string
	// CookieDomain is the cookie domain; empty means the request domain.
	CookieDomain string
	// Secure forces the Secure attribute (production). Independently of this
	// flag, TLS or X-Forwarded-Proto=https on the request also sets it.
	Secure bool
}

// Resolver reads the session cookie and verifies its token.
type Resolver struct {
	codec *token.Codec
	cfg   Config
}

// NewResolver creates a Resolver over the given codec and cookie config.
func NewResolver(codec *token.Codec, cfg Config) *Resolver {
	if cfg.CookieName == "" {
		cfg.CookieName = "session"
	}
	return &Resolver{codec: codec, cfg: cfg}
}

// Resolve returns a handle for the request's session, if any.
//
// No cookie: returns no handle without touching the response. Cookie present
// but verification fails (tampered, expired, malformed): the cookie is
// cleared on the response (the only mutation this package performs) and no
// handle is returned. Cookie verifies: a handle wrapping the verified token.
func (r *Resolver) Resolve(w http.ResponseWriter, req *http.Request) (Handle, bool) {
	cookie, err := req.Cookie(r.cfg.CookieName)
	if err != nil {
		return Handle{}, false
	}

	tok, err := r.codec.Verify(cookie.Value)
	if err != nil {
		r.ClearSession(w, req)
		return Handle{}, false
	}

	return Handle{tok: tok}, true
}

// User resolves the session and decodes it into the identity projection.
// Decode only ever runs on the handle produced by a successful Resolve, so
// no unverified claims can reach callers.
func (r *Resolver) User(w http.ResponseWriter, req *http.Request) (domainauth.Identity, bool) {
	h, ok := r.Resolve(w, req)
	if !ok {
		return domainauth.Identity{}, false
	}

	identity, err := r.codec.Decode(h.tok)
	if err != nil {
		return domainauth.Identity{}, false
	}
	return identity, true
}
