package bootstrap

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/cache"
	httpx "github.com/espacosmart/portal-cliente/internal/http"
	"github.com/espacosmart/portal-cliente/internal/session"
	"github.com/espacosmart/portal-cliente/internal/token"
)

func newHandlerUnderTest(t *testing.T, logger *slog.Logger) http.Handler {
	t.Helper()
	codec, err := token.NewCodec("bootstrap-test-secret")
	require.NoError(t, err)

	return buildHTTPHandler(logger, httpx.RouterServices{
		Resolver: session.NewResolver(codec, session.Config{}),
		Backend:  backend.NewClient(backend.Options{BaseURL: "http://backend.invalid"}),
		Cache:    cache.New(nil),
		Logger:   logger,
	})
}

func TestBuildHTTPHandler_AccessLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := newHandlerUnderTest(t, logger)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, id)

	var entry struct {
		Msg       string `json:"msg"`
		Path      string `json:"path"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http", entry.Msg)
	assert.Equal(t, "/healthz", entry.Path)
	assert.Equal(t, id, entry.RequestID)
}

func TestBuildHTTPHandler_AccessLogKeepsUpstreamRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := newHandlerUnderTest(t, logger)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "upstream-id")
	handler.ServeHTTP(rec, req)

	assert.Contains(t, buf.String(), `"request_id":"upstream-id"`)
}
