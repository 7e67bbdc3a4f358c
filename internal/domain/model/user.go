// Package model holds typed projections of the payloads the backend API
// returns. The portal never persists any of these; they exist so templates
// render strongly-typed data instead of raw JSON.
package model

// Usuario is a customer account as returned by the backend
// (user/getUserData and admin/users).
type Usuario struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Admin     bool    `json:"admin"`
	Celular   *string `json:"celular,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
}
