package httpx

import (
	"net/http"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/domain/model"
)

// Orcamentos lists the customer's construction budgets.
// GET /orcamentos.
func (h *UIHandlers) Orcamentos(w http.ResponseWriter, r *http.Request) {
	user, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var orcamentos []model.Orcamento
	if !h.Gateway.FetchJSON(w, r, backend.Request{Endpoint: "orcamentos"}, &orcamentos) {
		return
	}

	h.render(w, "orcamentos", h.pageData("Portal do Cliente", "Orçamentos", user, orcamentos))
}
