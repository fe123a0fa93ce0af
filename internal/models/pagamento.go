package models

// Status de conciliação da comissão de uma proposta.
const (
	ComissaoPendente = "PENDENTE"
	ComissaoParcial  = "PARCIAL"
	ComissaoPaga     = "PAGO"
)

// PagamentoComissao é um repasse avulso de comissão aplicado contra uma proposta.
// Referencia segue o ciclo quinzenal da corretora: "05/MM/AAAA" ou "20/MM/AAAA".
type PagamentoComissao struct {
	ID            string  `json:"id"`
	PropostaID    string  `json:"propostaId"`
	DataPagamento Data    `json:"dataPagamento"`
	ValorPago     float64 `json:"valorPago"`
	Referencia    string  `json:"referencia"`
}

// ComissaoProposta é o resultado da conciliação de uma proposta com seus
// pagamentos. Derivado, nunca persistido.
type ComissaoProposta struct {
	Proposta       Proposta            `json:"proposta"`
	Pagamentos     []PagamentoComissao `json:"pagamentos"`
	TotalPago      float64             `json:"totalPago"`
	SaldoDevedor   float64             `json:"saldoDevedor"`
	PercentualPago float64             `json:"percentualPago"`
	Status         string              `json:"status"`
}
