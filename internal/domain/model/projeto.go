package model

// StatusProjeto enumerates project lifecycle states.
type StatusProjeto string

const (
	ProjetoOrcamento   StatusProjeto = "orcamento"
	ProjetoAprovado    StatusProjeto = "aprovado"
	ProjetoEmAndamento StatusProjeto = "em_andamento"
	ProjetoPausado     StatusProjeto = "pausado"
	ProjetoConcluido   StatusProjeto = "concluido"
	ProjetoCancelado   StatusProjeto = "cancelado"
)

// StatusEtapa enumerates timeline stage states.
type StatusEtapa string

const (
	EtapaPendente    StatusEtapa = "pendente"
	EtapaEmAndamento StatusEtapa = "em_andamento"
	EtapaConcluida   StatusEtapa = "concluida"
	EtapaAtrasada    StatusEtapa = "atrasada"
)

// Etapa is a single stage of a project timeline.
type Etapa struct {
	ID            string      `json:"id"`
	Nome          string      `json:"nome"`
	Descricao     string      `json:"descricao"`
	Status        StatusEtapa `json:"status"`
	DataInicio    string      `json:"dataInicio,omitempty"`
	DataPrevisao  string      `json:"dataPrevisao"`
	DataConclusao string      `json:"dataConclusao,omitempty"`
	Progresso     float64     `json:"progresso"`
	Responsavel   string      `json:"responsavel,omitempty"`
	Observacoes   string      `json:"observacoes,omitempty"`
}

// Projeto is a customer's construction project with its timeline.
type Projeto struct {
	ID            string        `json:"id"`
	Nome          string        `json:"nome"`
	Descricao     string        `json:"descricao,omitempty"`
	Status        StatusProjeto `json:"status"`
	DataInicio    string        `json:"dataInicio,omitempty"`
	DataPrevisao  string        `json:"dataPrevisao,omitempty"`
	Progresso     float64       `json:"progresso"`
	Etapas        []Etapa       `json:"etapas"`
	Responsavel   string        `json:"responsavel,omitempty"`
	UltimaAtualizacao string    `json:"ultimaAtualizacao,omitempty"`
}
