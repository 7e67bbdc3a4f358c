package httpx

import (
	"net/http"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/domain/model"
)

// Projeto renders the customer's project timeline.
// GET /projeto.
func (h *UIHandlers) Projeto(w http.ResponseWriter, r *http.Request) {
	user, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var projeto model.Projeto
	if !h.Gateway.FetchJSON(w, r, backend.Request{Endpoint: "projeto"}, &projeto) {
		return
	}

	h.render(w, "projeto", h.pageData("Portal do Cliente", "Meu Projeto", user, projeto))
}
