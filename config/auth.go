package config

// SessionConfig groups session-cookie and token verification configuration.
//
// The portal does not issue tokens itself: the external identity flow hands a
// signed JWT to the login completion endpoint, and JWTSecret is only ever used
// to verify that signature on subsequent reads.
type SessionConfig struct {
	// JWTSecret is the HMAC secret the issuer signed session tokens with.
	JWTSecret string `env:"JWT_SECRET,required"`

	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`

	// CookieDomain is the domain for the session cookie.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}
