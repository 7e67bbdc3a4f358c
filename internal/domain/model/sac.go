package model

import "time"

// Sac is a customer support ticket ("Serviço de Atendimento ao Cliente").
type Sac struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	User      Usuario   `json:"user"`
	Mensagem  string    `json:"mensagem"`
	TipoSacID int64     `json:"tipo_sac_id"`
	StatusID  int64     `json:"status_id"`
	StatusSac StatusSac `json:"status_sac"`
	TipoSac   TipoSac   `json:"tipo_sac"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusSac is the ticket status lookup row.
type StatusSac struct {
	ID        int64  `json:"id"`
	Descricao string `json:"descricao"`
}

// TipoSac is the ticket type lookup row (sac/TiposSac).
type TipoSac struct {
	ID        int64  `json:"id"`
	Descricao string `json:"descricao"`
}

// CreateSacRequest is the payload for opening a new ticket.
type CreateSacRequest struct {
	Mensagem  string `json:"mensagem"`
	TipoSacID int64  `json:"tipo_sac_id"`
}
