package session

import (
	"net/http"
	"strings"
	"time"
)

// isSecureRequest reports whether the request arrived over TLS, directly or
// behind a terminating proxy.
func isSecureRequest(req *http.Request) bool {
	return req.TLS != nil || strings.EqualFold(req.Header.Get("X-Forwarded-Proto"), "https")
}

// SetSession writes the session cookie with the given raw token value.
//
// The value is stored as-is: verification is deferred to the next read
// through Resolve, matching the login completion flow where the external
// identity callback hands the portal an already-signed token. No Max-Age is
// set; token lifetime is enforced by the expiry claim at verify time.
func (r *Resolver) SetSession(w http.ResponseWriter, req *http.Request, raw string) {
	http.SetCookie(w, &http.Cookie{
		Name:     r.cfg.CookieName,
		Value:    raw,
		Path:     "/",
		Domain:   r.cfg.CookieDomain,
		HttpOnly: true,
		Secure:   r.cfg.Secure || isSecureRequest(req),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the session cookie on the client. It mirrors the key
// attributes used when setting the cookie to maximize deletion compatibility
// across browsers.
func (r *Resolver) ClearSession(w http.ResponseWriter, req *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     r.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   r.cfg.CookieDomain,
		HttpOnly: true,
		Secure:   r.cfg.Secure || isSecureRequest(req),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
