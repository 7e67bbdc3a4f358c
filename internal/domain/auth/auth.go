// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

// Identity is the display-oriented projection of the session token claims.
// It is constructed fresh from the token on every request and never cached
// across requests or written back anywhere.
//
// JSON tags match the claim names chosen by the external identity issuer.
type Identity struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	Foto  string `json:"foto,omitempty"`
}

// IsAdmin reports whether the identity carries the administrator flag.
// Only meaningful after the token it came from passed signature verification.
func (i Identity) IsAdmin() bool { return i.Admin }
