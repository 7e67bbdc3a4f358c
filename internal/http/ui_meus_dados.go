package httpx

import (
	"net/http"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/domain/model"
)

// MeusDados renders the personal-data page with the account as the backend
// sees it.
// GET /meus-dados.
func (h *UIHandlers) MeusDados(w http.ResponseWriter, r *http.Request) {
	user, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var dados model.Usuario
	if !h.Gateway.FetchJSON(w, r, backend.Request{Endpoint: "user/getUserData"}, &dados) {
		return
	}

	h.render(w, "meus-dados", h.pageData("Portal do Cliente", "Meus Dados", user, dados))
}

// meusDadosUpdate is the profile-update payload forwarded to the backend.
// Field validation beyond presence is the backend's responsibility.
type meusDadosUpdate struct {
	Nome    string `json:"nome"`
	Celular string `json:"celular"`
}

// MeusDadosUpdate forwards a profile update to the backend and returns the
// user to the menu, mirroring the original flow.
// POST /meus-dados.
func (h *UIHandlers) MeusDadosUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/meus-dados", http.StatusFound)
		return
	}

	update := meusDadosUpdate{
		Nome:    r.PostFormValue("nome"),
		Celular: r.PostFormValue("celular"),
	}

	req := backend.Request{
		Endpoint: "user",
		Method:   http.MethodPut,
		Body:     update,
	}
	if !h.Gateway.FetchJSON(w, r, req, nil) {
		return
	}

	http.Redirect(w, r, "/home", http.StatusFound)
}
