package model

// StatusOrcamento enumerates budget lifecycle states.
type StatusOrcamento string

const (
	OrcamentoRascunho  StatusOrcamento = "rascunho"
	OrcamentoEnviado   StatusOrcamento = "enviado"
	OrcamentoEmAnalise StatusOrcamento = "em_analise"
	OrcamentoAprovado  StatusOrcamento = "aprovado"
	OrcamentoRejeitado StatusOrcamento = "rejeitado"
	OrcamentoExpirado  StatusOrcamento = "expirado"
)

// ItemOrcamento is a single budget line item.
type ItemOrcamento struct {
	ID            string  `json:"id"`
	Codigo        string  `json:"codigo,omitempty"`
	Descricao     string  `json:"descricao"`
	Categoria     string  `json:"categoria"`
	Unidade       string  `json:"unidade"`
	Quantidade    float64 `json:"quantidade"`
	ValorUnitario float64 `json:"valorUnitario"`
	ValorTotal    float64 `json:"valorTotal"`
	Observacoes   string  `json:"observacoes,omitempty"`
}

// TotalizadorCategoria aggregates item totals per category.
type TotalizadorCategoria struct {
	Categoria     string  `json:"categoria"`
	NomeCategoria string  `json:"nomeCategoria"`
	Quantidade    float64 `json:"quantidade"`
	ValorTotal    float64 `json:"valorTotal"`
	Percentual    float64 `json:"percentual"`
}

// CondicoesPagamento describes payment terms for a budget.
type CondicoesPagamento struct {
	Entrada        float64 `json:"entrada,omitempty"`
	ValorEntrada   float64 `json:"valorEntrada,omitempty"`
	NumeroParcelas int     `json:"numeroParcelas"`
	ValorParcela   float64 `json:"valorParcela"`
	Observacoes    string  `json:"observacoes,omitempty"`
}

// Orcamento is a construction budget as returned by the backend.
type Orcamento struct {
	ID                 string                 `json:"id"`
	Numero             string                 `json:"numero"`
	Titulo             string                 `json:"titulo"`
	Descricao          string                 `json:"descricao,omitempty"`
	DataEmissao        string                 `json:"dataEmissao"`
	DataValidade       string                 `json:"dataValidade"`
	DataAprovacao      string                 `json:"dataAprovacao,omitempty"`
	Status             StatusOrcamento        `json:"status"`
	AreaConstruida     float64                `json:"areaConstruida,omitempty"`
	Tipologia          string                 `json:"tipologia,omitempty"`
	PrazoExecucao      int                    `json:"prazoExecucao,omitempty"`
	Itens              []ItemOrcamento        `json:"itens"`
	Totalizadores      []TotalizadorCategoria `json:"totalizadores"`
	Subtotal           float64                `json:"subtotal"`
	ValorTotal         float64                `json:"valorTotal"`
	CondicoesPagamento *CondicoesPagamento    `json:"condicoesPagamento,omitempty"`
	Responsavel        string                 `json:"responsavel,omitempty"`
	UltimaAtualizacao  string                 `json:"ultimaAtualizacao"`
}
