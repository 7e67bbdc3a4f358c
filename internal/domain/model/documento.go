package model

// Documento is a financial document (invoice, receipt, contract) available
// to the customer under /financeiro.
type Documento struct {
	ID          int64         `json:"id"`
	TipoID      int64         `json:"tipo_id"`
	UserID      int64         `json:"user_id"`
	Nome        string        `json:"nome"`
	URL         string        `json:"url"`
	DataCriacao string        `json:"data_criacao"`
	ExtraInfo   *string       `json:"extra_info,omitempty"`
	Tipo        TipoDocumento `json:"tipo"`
}

// TipoDocumento is the document type lookup row.
type TipoDocumento struct {
	ID        string `json:"id,omitempty"`
	Descricao string `json:"descricao"`
}
