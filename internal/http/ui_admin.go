package httpx

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/domain/model"
	apperrors "github.com/espacosmart/portal-cliente/internal/errors"
)

// adminPageData aggregates the cross-customer listings shown on the admin
// dashboard.
type adminPageData struct {
	Usuarios   []model.Usuario
	Chamados   []model.Sac
	Orcamentos []model.Orcamento
}

// Admin renders the administrative dashboard. The listings come from
// independent backend endpoints and are fetched concurrently; any single
// failure degrades the whole page to the usual /home redirect.
// GET /admin.
func (h *UIHandlers) Admin(w http.ResponseWriter, r *http.Request) {
	user, ok := IdentityFromContext(r.Context())
	if !ok || !user.IsAdmin() {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	handle, ok := h.Resolver.Resolve(w, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var data adminPageData
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return h.Backend.DoJSON(ctx, handle.Token(), backend.Request{Endpoint: "admin/users"}, &data.Usuarios)
	})
	g.Go(func() error {
		return h.Backend.DoJSON(ctx, handle.Token(), backend.Request{Endpoint: "sac"}, &data.Chamados)
	})
	g.Go(func() error {
		return h.Backend.DoJSON(ctx, handle.Token(), backend.Request{Endpoint: "orcamentos"}, &data.Orcamentos)
	})

	if err := g.Wait(); err != nil {
		h.logger().ErrorContext(r.Context(), "admin dashboard fetch failed",
			slog.String("code", string(apperrors.CodeOf(err))),
			slog.Any("error", err),
		)
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	h.render(w, "admin", h.pageData("Portal do Cliente", "Administração", user, data))
}
