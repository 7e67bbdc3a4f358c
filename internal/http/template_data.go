package httpx

import (
	domainauth "github.com/espacosmart/portal-cliente/internal/domain/auth"
)

// TemplateData is the envelope every page template receives. User is nil on
// public pages (login); behind the guard it always carries the identity
// decoded from the verified session token.
type TemplateData struct {
	Title        string
	Subtitle     string
	User         *domainauth.Identity
	AssetBaseURL string
	Error        string
	Data         any
}

// pageData builds the envelope for an authenticated page.
func (h *UIHandlers) pageData(title, subtitle string, user domainauth.Identity, data any) TemplateData {
	return TemplateData{
		Title:        title,
		Subtitle:     subtitle,
		User:         &user,
		AssetBaseURL: h.AssetBaseURL,
		Data:         data,
	}
}
