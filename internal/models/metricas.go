package models

// MetricasDashboard reúne os totais exibidos na tela inicial.
type MetricasDashboard struct {
	TotalPropostas     int     `json:"totalPropostas"`
	TotalPremio        float64 `json:"totalPremio"`
	TotalComissao      float64 `json:"totalComissao"`
	ComissaoRecebida   float64 `json:"comissaoRecebida"`
	ComissaoPendente   float64 `json:"comissaoPendente"`
	PropostasNovas     int     `json:"propostasNovas"`
	PropostasRenovacao int     `json:"propostasRenovacao"`
}

// DadosGrafico é um ponto da série mensal, separado por tipo de proposta.
type DadosGrafico struct {
	Mes       string  `json:"mes"` // rótulo "Jan/25"
	Novo      float64 `json:"novo"`
	Renovacao float64 `json:"renovacao"`
	Total     float64 `json:"total"`
}

// CategoriaValor é uma fatia de um agrupamento por categoria (ramo, seguradora).
type CategoriaValor struct {
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
}
