package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espacosmart/portal-cliente/internal/token"
)

const testSecret = "resolver-test-secret"

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	codec, err := token.NewCodec(testSecret)
	require.NoError(t, err)
	return NewResolver(codec, Config{})
}

func mintToken(t *testing.T, secret string, admin bool) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    int64(1),
		"nome":  "Cliente Teste",
		"email": "cliente@example.com",
		"admin": admin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestResolve_NoCookie(t *testing.T) {
	resolver := newTestResolver(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)

	_, ok := resolver.Resolve(rec, req)
	assert.False(t, ok)
	// absence of a session must not mutate the response
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestResolve_InvalidTokenClearsCookie(t *testing.T) {
	resolver := newTestResolver(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: mintToken(t, "wrong-secret", false)})

	_, ok := resolver.Resolve(rec, req)
	assert.False(t, ok)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestResolve_ValidToken(t *testing.T) {
	resolver := newTestResolver(t)
	raw := mintToken(t, testSecret, false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: raw})

	handle, ok := resolver.Resolve(rec, req)
	require.True(t, ok)
	assert.Equal(t, raw, handle.Token())
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestResolve_Idempotent(t *testing.T) {
	resolver := newTestResolver(t)
	raw := mintToken(t, testSecret, false)
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: raw})

	first, ok1 := resolver.Resolve(httptest.NewRecorder(), req)
	second, ok2 := resolver.Resolve(httptest.NewRecorder(), req)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first.Token(), second.Token())
}

func TestUser_DecodesIdentity(t *testing.T) {
	resolver := newTestResolver(t)
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: mintToken(t, testSecret, true)})

	identity, ok := resolver.User(httptest.NewRecorder(), req)
	require.True(t, ok)
	assert.Equal(t, "Cliente Teste", identity.Nome)
	assert.True(t, identity.IsAdmin())
}

func TestSetSession_CookieAttributes(t *testing.T) {
	resolver := newTestResolver(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)

	resolver.SetSession(rec, req, "abc123")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "session", c.Name)
	assert.Equal(t, "abc123", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	// token lifetime lives in the expiry claim, not the cookie
	assert.Zero(t, c.MaxAge)
}

func TestSetSession_SecureBehindProxy(t *testing.T) {
	resolver := newTestResolver(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	resolver.SetSession(rec, req, "abc123")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestSetSession_SecureForced(t *testing.T) {
	codec, err := token.NewCodec(testSecret)
	require.NoError(t, err)
	resolver := NewResolver(codec, Config{Secure: true})

	rec := httptest.NewRecorder()
	resolver.SetSession(rec, httptest.NewRequest(http.MethodGet, "/api/login", nil), "abc123")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestClearSession(t *testing.T) {
	resolver := newTestResolver(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)

	resolver.ClearSession(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "session", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Negative(t, c.MaxAge)
}

func TestNewResolver_CustomCookieName(t *testing.T) {
	codec, err := token.NewCodec(testSecret)
	require.NoError(t, err)
	resolver := NewResolver(codec, Config{CookieName: "portal_session"})

	raw := mintToken(t, testSecret, false)
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: raw})

	_, ok := resolver.Resolve(httptest.NewRecorder(), req)
	assert.True(t, ok)
}
