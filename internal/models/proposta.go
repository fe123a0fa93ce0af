package models

// Tipos de proposta aceitos pelo sistema.
const (
	TipoNovo      = "NOVO"
	TipoRenovacao = "RENOVACAO"
)

// Status da proposta junto à seguradora.
const (
	PropostaEmitida   = "EMITIDA"
	PropostaPaga      = "PAGA"
	PropostaCancelada = "CANCELADA"
)

// Proposta representa uma apólice vendida, acompanhada para fins de comissão.
// ComissaoValor é o teto de tudo que pode ser pago ao corretor por ela.
type Proposta struct {
	ID                 string  `json:"id"`
	DataCadastro       Data    `json:"dataCadastro"`
	Segurado           string  `json:"segurado"`
	CpfCnpj            string  `json:"cpfCnpj"`
	Produtor           string  `json:"produtor"`
	Seguradora         string  `json:"seguradora"`
	Tipo               string  `json:"tipo"` // "NOVO" ou "RENOVACAO"
	Ramo               string  `json:"ramo"`
	PropostaNumero     string  `json:"propostaNumero"`
	DataTransmissao    Data    `json:"dataTransmissao"`
	PremioLiquido      float64 `json:"premioLiquido"`
	ComissaoPercentual float64 `json:"comissaoPercentual"`
	ComissaoValor      float64 `json:"comissaoValor"`
	Status             string  `json:"status"`
	Observacoes        string  `json:"observacoes,omitempty"`
}
