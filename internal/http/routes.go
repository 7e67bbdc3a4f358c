package httpx

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	portal "github.com/espacosmart/portal-cliente"
	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/cache"
	"github.com/espacosmart/portal-cliente/internal/session"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Resolver     *session.Resolver
	Backend      *backend.Client
	Cache        *cache.Repo
	LookupTTL    time.Duration
	AssetBaseURL string
	IsDev        bool         // Development mode flag for template hot reloading
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the portal's HTTP router.
//
// The protected set is exactly the page routes registered behind
// RequireSession/RequireAdmin; /login, /api/login, /logout, /healthz, and
// /static stay public.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	gateway := &Gateway{
		Resolver: services.Resolver,
		Client:   services.Backend,
		Logger:   services.Logger,
	}
	authHandlers := &AuthHandlers{Resolver: services.Resolver, Logger: services.Logger}
	uiHandlers := setupUIHandlers(services, gateway)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	registerAuthRoutes(mux, authHandlers)
	if uiHandlers != nil {
		registerUIRoutes(mux, uiHandlers, services.Resolver)
	}

	return mux
}

// setupUIHandlers creates UI handlers with the template renderer.
// In dev mode templates are read from disk for hot reloading; in production
// they come from the embedded FS.
func setupUIHandlers(services RouterServices, gateway *Gateway) *UIHandlers {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS("web/templates")
	} else {
		sub, err := fs.Sub(portal.TemplateFS, "web/templates")
		if err != nil {
			log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
			sub = os.DirFS("web/templates")
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		DevMode:    services.IsDev,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:            tr,
		Gateway:      gateway,
		Resolver:     services.Resolver,
		Backend:      services.Backend,
		Cache:        services.Cache,
		LookupTTL:    services.LookupTTL,
		AssetBaseURL: services.AssetBaseURL,
		Logger:       services.Logger,
	}
}

// staticHandler serves /static/* assets: from disk in dev mode, from the
// embedded FS in production.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(isDev, http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	}

	staticSub, err := fs.Sub(portal.StaticFS, "web/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return staticWithCacheHeaders(isDev, http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	}
	return staticWithCacheHeaders(isDev, http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// staticWithCacheHeaders sets cache-control headers for static assets. Asset
// names are not content-hashed, so production gets a short public max-age and
// dev mode disables caching entirely for hot reloading.
func staticWithCacheHeaders(isDev bool, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		handler.ServeHTTP(w, r)
	})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		return
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /api/login", h.LoginCallback)
	mux.HandleFunc("POST /logout", h.Logout)
}

// registerUIRoutes wires the page routes. The wrapped set here IS the
// protected route set; everything else stays public.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, resolver *session.Resolver) {
	wrap := RequireSession(resolver)
	wrapAdmin := RequireAdmin(resolver)

	mux.Handle("GET /", http.HandlerFunc(h.Root))
	mux.Handle("GET /login", http.HandlerFunc(h.Login))

	mux.Handle("GET /home", wrap(http.HandlerFunc(h.Home)))
	mux.Handle("GET /meus-dados", wrap(http.HandlerFunc(h.MeusDados)))
	mux.Handle("POST /meus-dados", wrap(http.HandlerFunc(h.MeusDadosUpdate)))
	mux.Handle("GET /sac", wrap(http.HandlerFunc(h.Sac)))
	mux.Handle("GET /sac/", wrap(http.HandlerFunc(h.Sac)))
	mux.Handle("POST /sac", wrap(http.HandlerFunc(h.SacCreate)))
	mux.Handle("GET /orcamentos", wrap(http.HandlerFunc(h.Orcamentos)))
	mux.Handle("GET /orcamentos/", wrap(http.HandlerFunc(h.Orcamentos)))
	mux.Handle("GET /projeto", wrap(http.HandlerFunc(h.Projeto)))
	mux.Handle("GET /projeto/", wrap(http.HandlerFunc(h.Projeto)))
	mux.Handle("GET /financeiro", wrap(http.HandlerFunc(h.Financeiro)))
	mux.Handle("GET /financeiro/", wrap(http.HandlerFunc(h.Financeiro)))

	mux.Handle("GET /admin", wrapAdmin(http.HandlerFunc(h.Admin)))
	mux.Handle("GET /admin/", wrapAdmin(http.HandlerFunc(h.Admin)))
}
