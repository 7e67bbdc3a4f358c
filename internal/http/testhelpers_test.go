package httpx

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/espacosmart/portal-cliente/internal/session"
	"github.com/espacosmart/portal-cliente/internal/token"
)

const testSecret = "httpx-test-secret"

func newTestResolver(t *testing.T) *session.Resolver {
	t.Helper()
	codec, err := token.NewCodec(testSecret)
	require.NoError(t, err)
	return session.NewResolver(codec, session.Config{})
}

// mintSessionToken signs a session token the way the identity flow does.
func mintSessionToken(t *testing.T, admin bool) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    int64(10),
		"nome":  "Cliente Teste",
		"email": "cliente@example.com",
		"admin": admin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func withSession(req *http.Request, raw string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "session", Value: raw})
	return req
}
