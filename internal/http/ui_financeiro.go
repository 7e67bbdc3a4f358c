package httpx

import (
	"net/http"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/domain/model"
)

// Financeiro lists the customer's financial documents.
// GET /financeiro.
func (h *UIHandlers) Financeiro(w http.ResponseWriter, r *http.Request) {
	user, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var documentos []model.Documento
	if !h.Gateway.FetchJSON(w, r, backend.Request{Endpoint: "financeiro/documentos"}, &documentos) {
		return
	}

	h.render(w, "financeiro", h.pageData("Portal do Cliente", "Financeiro", user, documentos))
}
