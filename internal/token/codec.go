// Package token verifies and decodes the signed session token carried in the
// portal's session cookie. The token is issued by the external identity flow;
// this package only checks its signature and projects its claims.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/espacosmart/portal-cliente/internal/domain/auth"
)

// ErrInvalidToken is returned by Verify for every invalid token: tampered,
// expired, malformed, or signed with an unexpected algorithm. Callers must
// not branch on the specific reason; all of them mean "no valid session".
var ErrInvalidToken = errors.New("invalid session token")

// hmacMethods restricts verification to the HMAC family the issuer uses,
// closing the usual algorithm-confusion hole.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// VerifiedToken is an opaque handle over a token whose signature has been
// checked. Codec.Verify is the only producer, and Codec.Decode the only
// consumer, so a decode of an unverified token is unrepresentable.
type VerifiedToken struct {
	raw string
}

// Raw returns the exact token string, suitable for use as a bearer credential.
func (t VerifiedToken) Raw() string { return t.raw }

// sessionClaims mirrors the issuer's claim set for the portal.
type sessionClaims struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	Foto  string `json:"foto,omitempty"`
	jwt.RegisteredClaims
}

// Codec verifies and decodes session tokens against a server-held secret.
// It is pure: no I/O, safe for concurrent use.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec for the given HMAC signing secret.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret must not be empty")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Verify checks the token's signature (and registered time claims) against
// the configured secret. It fails closed: any parse failure, signature
// mismatch, bad algorithm, or expiry collapses to ErrInvalidToken.
func (c *Codec) Verify(raw string) (VerifiedToken, error) {
	if raw == "" {
		return VerifiedToken{}, ErrInvalidToken
	}

	keyFunc := func(*jwt.Token) (any, error) { return c.secret, nil }
	parsed, err := jwt.Parse(raw, keyFunc, jwt.WithValidMethods(hmacMethods))
	if err != nil || !parsed.Valid {
		return VerifiedToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return VerifiedToken{raw: raw}, nil
}

// Decode performs a structural, non-verifying parse of a verified token into
// the identity projection. Trust was already established by Verify; Decode
// itself makes no trust decision.
func (c *Codec) Decode(t VerifiedToken) (domainauth.Identity, error) {
	var claims sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(t.raw, &claims); err != nil {
		return domainauth.Identity{}, fmt.Errorf("token: decode claims: %w", err)
	}

	return domainauth.Identity{
		ID:    claims.ID,
		Nome:  claims.Nome,
		Email: claims.Email,
		Admin: claims.Admin,
		Foto:  claims.Foto,
	}, nil
}
