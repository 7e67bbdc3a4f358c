package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/domain/model"
)

// tiposSacCacheKey is the lookup-cache key for the ticket type table.
const tiposSacCacheKey = "lookup:tipos_sac"

// sacPageData feeds the SAC template.
type sacPageData struct {
	Chamados []model.Sac
	Tipos    []model.TipoSac
}

// Sac lists the customer's support tickets with the ticket-type lookup used
// by the new-ticket form.
// GET /sac.
func (h *UIHandlers) Sac(w http.ResponseWriter, r *http.Request) {
	user, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var chamados []model.Sac
	if !h.Gateway.FetchJSON(w, r, backend.Request{Endpoint: "sac"}, &chamados) {
		return
	}

	tipos, ok := h.fetchTiposSac(w, r)
	if !ok {
		return
	}

	data := sacPageData{Chamados: chamados, Tipos: tipos}
	h.render(w, "sac", h.pageData("Portal do Cliente", "SAC", user, data))
}

// fetchTiposSac returns the ticket type table, served from the lookup cache
// when a Redis client is configured. Cache failures are logged and fall
// through to the backend; only a backend failure aborts the request.
func (h *UIHandlers) fetchTiposSac(w http.ResponseWriter, r *http.Request) ([]model.TipoSac, bool) {
	if h.Cache.Enabled() {
		if raw, err := h.Cache.Get(r.Context(), tiposSacCacheKey); err != nil {
			h.logger().WarnContext(r.Context(), "lookup cache read failed", "key", tiposSacCacheKey, "error", err)
		} else if raw != nil {
			var tipos []model.TipoSac
			if err := json.Unmarshal(raw, &tipos); err == nil {
				return tipos, true
			}
			// corrupt entry, drop it and fall through to the backend
			if _, err := h.Cache.Delete(r.Context(), tiposSacCacheKey); err != nil {
				h.logger().WarnContext(r.Context(), "lookup cache delete failed", "key", tiposSacCacheKey, "error", err)
			}
		}
	}

	var tipos []model.TipoSac
	if !h.Gateway.FetchJSON(w, r, backend.Request{Endpoint: "sac/TiposSac"}, &tipos) {
		return nil, false
	}

	if h.Cache.Enabled() {
		if raw, err := json.Marshal(tipos); err == nil {
			if err := h.Cache.Set(r.Context(), tiposSacCacheKey, raw, h.LookupTTL); err != nil {
				h.logger().WarnContext(r.Context(), "lookup cache write failed", "key", tiposSacCacheKey, "error", err)
			}
		}
	}

	return tipos, true
}

// SacCreate opens a new ticket via the backend and reloads the listing.
// POST /sac.
func (h *UIHandlers) SacCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/sac", http.StatusFound)
		return
	}

	tipoID, err := strconv.ParseInt(r.PostFormValue("tipo_sac_id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/sac", http.StatusFound)
		return
	}

	create := model.CreateSacRequest{
		Mensagem:  r.PostFormValue("mensagem"),
		TipoSacID: tipoID,
	}

	req := backend.Request{
		Endpoint: "sac",
		Method:   http.MethodPost,
		Body:     create,
	}
	if !h.Gateway.FetchJSON(w, r, req, nil) {
		return
	}

	http.Redirect(w, r, "/sac", http.StatusFound)
}
