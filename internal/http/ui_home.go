package httpx

import (
	"net/http"
)

// MenuItem is one card on the home screen.
type MenuItem struct {
	Title       string
	Description string
	Link        string
	Tags        []string
	Admin       bool
	Unlocked    bool
}

// menuItems is the portal's navigation catalog. Locked cards render as
// "em construção" and are not clickable.
func menuItems() []MenuItem {
	return []MenuItem{
		{
			Title:       "Orçamentos",
			Description: "Acompanhe seus orçamentos de obra e condições de pagamento",
			Link:        "/orcamentos",
			Tags:        []string{"orçamento", "obra", "valores"},
			Unlocked:    true,
		},
		{
			Title:       "Meu Projeto",
			Description: "Cronograma e etapas do seu projeto em andamento",
			Link:        "/projeto",
			Tags:        []string{"projeto", "cronograma", "etapas"},
			Unlocked:    true,
		},
		{
			Title:       "SAC",
			Description: "Abra e acompanhe chamados de atendimento",
			Link:        "/sac",
			Tags:        []string{"atendimento", "chamado", "suporte"},
			Unlocked:    true,
		},
		{
			Title:       "Financeiro",
			Description: "Notas fiscais, recibos e documentos financeiros",
			Link:        "/financeiro",
			Tags:        []string{"financeiro", "documentos", "notas"},
			Unlocked:    true,
		},
		{
			Title:       "Meus Dados",
			Description: "Atualize seus dados cadastrais",
			Link:        "/meus-dados",
			Tags:        []string{"cadastro", "perfil"},
			Unlocked:    true,
		},
		{
			Title:       "Administração",
			Description: "Gestão geral do sistema",
			Link:        "/admin",
			Tags:        []string{"admin", "usuários", "gestão"},
			Admin:       true,
			Unlocked:    true,
		},
	}
}

// homePageData feeds the home template.
type homePageData struct {
	UserItems  []MenuItem
	AdminItems []MenuItem
}

// Home renders the menu page.
// GET /home.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	user, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	data := homePageData{}
	for _, item := range menuItems() {
		if item.Admin {
			if user.IsAdmin() {
				data.AdminItems = append(data.AdminItems, item)
			}
			continue
		}
		data.UserItems = append(data.UserItems, item)
	}

	h.render(w, "home", h.pageData("Portal do Cliente", "Menu", user, data))
}
