package httpx

import (
	"net/http"
)

// loginPageData feeds the login template.
type loginPageData struct {
	GoogleLoginURL string
}

// Login renders the public login page.
// GET /login?error=google.
//
// The page links out to the backend's external identity flow; on success the
// provider bounces the browser back to /api/login with the signed token.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	data := TemplateData{
		Title:        "Portal do Cliente",
		Subtitle:     "Entrar",
		AssetBaseURL: h.AssetBaseURL,
		Data: loginPageData{
			GoogleLoginURL: h.Backend.BaseURL() + "/auth/google",
		},
	}

	if r.URL.Query().Get("error") == "google" {
		data.Error = "Não foi possível entrar com o Google. Tente novamente."
	}

	h.render(w, "login", data)
}
