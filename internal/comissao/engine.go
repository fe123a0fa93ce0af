// internal/comissao/engine.go
package comissao

import (
	"errors"
	"fmt"

	"github.com/IgoSeguros/api-corretora/internal/models"
	"github.com/google/uuid"
)

// ErrPagamentoExcedente indica que o pagamento ultrapassaria o teto da comissão.
var ErrPagamentoExcedente = errors.New("valor do pagamento excede a comissão total")

// FiltrarPorProposta devolve apenas os pagamentos da proposta informada,
// preservando a ordem da coleção.
func FiltrarPorProposta(pagamentos []models.PagamentoComissao, propostaID string) []models.PagamentoComissao {
	var filtrados []models.PagamentoComissao
	for _, p := range pagamentos {
		if p.PropostaID == propostaID {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}

// TotalPago soma os valores pagos de uma lista de pagamentos já filtrada.
func TotalPago(pagamentos []models.PagamentoComissao) float64 {
	var total float64
	for _, p := range pagamentos {
		total += p.ValorPago
	}
	return total
}

// Conciliar calcula a situação da comissão de uma proposta a partir da coleção
// completa de pagamentos. Função pura: não altera nada e não depende de ordem.
//
// Regra de status:
//   - totalPago == 0                      → PENDENTE
//   - 0 < totalPago < comissaoValor      → PARCIAL
//   - totalPago >= comissaoValor         → PAGO
//
// Com comissaoValor == 0 o percentual é definido como 0 (nunca NaN).
func Conciliar(proposta models.Proposta, pagamentos []models.PagamentoComissao) models.ComissaoProposta {
	daProposta := FiltrarPorProposta(pagamentos, proposta.ID)
	totalPago := TotalPago(daProposta)
	saldoDevedor := proposta.ComissaoValor - totalPago

	var percentualPago float64
	if proposta.ComissaoValor > 0 {
		percentualPago = totalPago / proposta.ComissaoValor * 100
	}

	status := models.ComissaoPendente
	switch {
	case totalPago == 0:
		status = models.ComissaoPendente
	case totalPago >= proposta.ComissaoValor:
		status = models.ComissaoPaga
	default:
		status = models.ComissaoParcial
	}

	return models.ComissaoProposta{
		Proposta:       proposta,
		Pagamentos:     daProposta,
		TotalPago:      totalPago,
		SaldoDevedor:   saldoDevedor,
		PercentualPago: percentualPago,
		Status:         status,
	}
}

// ValidarPagamento verifica o teto: a soma dos pagamentos já aceitos da
// proposta mais o novo valor não pode passar de ComissaoValor.
func ValidarPagamento(proposta models.Proposta, pagamentos []models.PagamentoComissao, valor float64) error {
	if valor <= 0 {
		return fmt.Errorf("valor do pagamento deve ser positivo, recebido %.2f", valor)
	}
	totalPago := TotalPago(FiltrarPorProposta(pagamentos, proposta.ID))
	if totalPago+valor > proposta.ComissaoValor {
		return ErrPagamentoExcedente
	}
	return nil
}

// Referencia deriva a quinzena de repasse a partir da data do pagamento:
// dia <= 15 cai no repasse "05" do mesmo mês, senão no "20".
// O corte no dia 15 é regra fixa da corretora.
func Referencia(data models.Data) string {
	ciclo := "20"
	if data.Day() <= 15 {
		ciclo = "05"
	}
	return fmt.Sprintf("%s/%02d/%04d", ciclo, int(data.Month()), data.Year())
}

// NovoPagamento valida e constrói um pagamento contra a proposta, com id novo
// e referência derivada da data. Não persiste nada; quem chama é responsável
// por anexar o resultado à coleção.
func NovoPagamento(proposta models.Proposta, pagamentos []models.PagamentoComissao, valor float64, data models.Data) (models.PagamentoComissao, error) {
	if err := ValidarPagamento(proposta, pagamentos, valor); err != nil {
		return models.PagamentoComissao{}, err
	}
	return models.PagamentoComissao{
		ID:            uuid.NewString(),
		PropostaID:    proposta.ID,
		DataPagamento: data,
		ValorPago:     valor,
		Referencia:    Referencia(data),
	}, nil
}
