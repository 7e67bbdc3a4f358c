package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/session"
)

// LookupCache is the slice of the cache surface the page handlers use for
// backend lookup tables. *cache.Repo satisfies it.
type LookupCache interface {
	Enabled() bool
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
}

// UIHandlers serves the browser-facing portal pages. Every data-bearing page
// goes through Gateway for its backend calls; handlers themselves only shape
// template data.
type UIHandlers struct {
	T            *TemplateRenderer
	Gateway      *Gateway
	Resolver     *session.Resolver
	Backend      *backend.Client
	Cache        LookupCache
	LookupTTL    time.Duration
	AssetBaseURL string
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// render executes a page template, degrading to a plain 500 when rendering
// itself fails. Data failures never reach this point; the gateway already
// redirected.
func (h *UIHandlers) render(w http.ResponseWriter, page string, data TemplateData) {
	if err := h.T.Render(w, page, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Root redirects the bare origin into the portal.
// GET /.
func (h *UIHandlers) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/home", http.StatusFound)
}
