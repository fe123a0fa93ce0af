package comissao

import (
	"testing"
	"time"

	"github.com/IgoSeguros/api-corretora/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propostaComComissao(valor float64) models.Proposta {
	return models.Proposta{
		ID:            "prop-1",
		Segurado:      "João Silva",
		Seguradora:    "Porto Seguro",
		Tipo:          models.TipoNovo,
		ComissaoValor: valor,
	}
}

func pagamento(propostaID string, valor float64, dia int) models.PagamentoComissao {
	return models.PagamentoComissao{
		ID:            "pag",
		PropostaID:    propostaID,
		DataPagamento: models.NovaData(2025, time.January, dia),
		ValorPago:     valor,
	}
}

func TestConciliarSemPagamentos(t *testing.T) {
	c := Conciliar(propostaComComissao(700), nil)

	assert.Equal(t, models.ComissaoPendente, c.Status)
	assert.Equal(t, 0.0, c.TotalPago)
	assert.Equal(t, 700.0, c.SaldoDevedor)
	assert.Equal(t, 0.0, c.PercentualPago)
}

func TestConciliarParcial(t *testing.T) {
	p := propostaComComissao(700)
	c := Conciliar(p, []models.PagamentoComissao{pagamento(p.ID, 350, 10)})

	assert.Equal(t, models.ComissaoParcial, c.Status)
	assert.Equal(t, 350.0, c.TotalPago)
	assert.Equal(t, 350.0, c.SaldoDevedor)
	assert.Equal(t, 50.0, c.PercentualPago)
}

func TestConciliarQuitada(t *testing.T) {
	p := propostaComComissao(700)
	c := Conciliar(p, []models.PagamentoComissao{
		pagamento(p.ID, 350, 10),
		pagamento(p.ID, 350, 20),
	})

	assert.Equal(t, models.ComissaoPaga, c.Status)
	assert.Equal(t, 700.0, c.TotalPago)
	assert.Equal(t, 0.0, c.SaldoDevedor)
	assert.Equal(t, 100.0, c.PercentualPago)
}

func TestConciliarIgnoraPagamentosDeOutrasPropostas(t *testing.T) {
	p := propostaComComissao(700)
	c := Conciliar(p, []models.PagamentoComissao{
		pagamento("outra", 500, 5),
		pagamento(p.ID, 100, 5),
	})

	assert.Equal(t, 100.0, c.TotalPago)
	require.Len(t, c.Pagamentos, 1)
	assert.Equal(t, p.ID, c.Pagamentos[0].PropostaID)
}

// Comissão zerada nunca pode gerar divisão por zero.
func TestConciliarComissaoZerada(t *testing.T) {
	p := propostaComComissao(0)

	c := Conciliar(p, nil)
	assert.Equal(t, models.ComissaoPendente, c.Status)
	assert.Equal(t, 0.0, c.PercentualPago)

	// Qualquer pago positivo com teto zero cai na regra >= e vira PAGO.
	c = Conciliar(p, []models.PagamentoComissao{pagamento(p.ID, 10, 1)})
	assert.Equal(t, models.ComissaoPaga, c.Status)
	assert.Equal(t, 0.0, c.PercentualPago)
}

// O status só anda para frente conforme os pagamentos se acumulam e, ao sair
// do zero com saldo restante, obrigatoriamente passa por PARCIAL.
func TestStatusProgrideSemVoltar(t *testing.T) {
	p := propostaComComissao(1000)
	valores := []float64{100, 250, 150, 400, 100}
	ordem := map[string]int{
		models.ComissaoPendente: 0,
		models.ComissaoParcial:  1,
		models.ComissaoPaga:     2,
	}

	var pagos []models.PagamentoComissao
	anterior := Conciliar(p, pagos).Status
	require.Equal(t, models.ComissaoPendente, anterior)

	for i, v := range valores {
		novo, err := NovoPagamento(p, pagos, v, models.NovaData(2025, time.March, 1+i))
		require.NoError(t, err)
		pagos = append(pagos, novo)

		atual := Conciliar(p, pagos).Status
		assert.GreaterOrEqual(t, ordem[atual], ordem[anterior])
		anterior = atual
	}
	assert.Equal(t, models.ComissaoPaga, anterior)
}

func TestValidarPagamentoRespeitaTeto(t *testing.T) {
	p := propostaComComissao(700)
	pagos := []models.PagamentoComissao{pagamento(p.ID, 350, 10)}

	assert.NoError(t, ValidarPagamento(p, pagos, 350))
	assert.ErrorIs(t, ValidarPagamento(p, pagos, 350.01), ErrPagamentoExcedente)
	assert.Error(t, ValidarPagamento(p, pagos, 0))
	assert.Error(t, ValidarPagamento(p, pagos, -10))
}

func TestReferenciaQuinzena(t *testing.T) {
	casos := []struct {
		dia      int
		mes      time.Month
		esperado string
	}{
		{1, time.January, "05/01/2025"},
		{15, time.January, "05/01/2025"},
		{16, time.January, "20/01/2025"},
		{31, time.December, "20/12/2025"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, Referencia(models.NovaData(2025, c.mes, c.dia)))
	}
}

// Cenário completo da regra de negócio: comissão de 700 quitada em duas
// parcelas de 350, com terceira tentativa recusada.
func TestFluxoCompletoDePagamentos(t *testing.T) {
	p := propostaComComissao(700)
	var pagos []models.PagamentoComissao

	primeiro, err := NovoPagamento(p, pagos, 350, models.NovaData(2025, time.January, 10))
	require.NoError(t, err)
	assert.Equal(t, "05/01/2025", primeiro.Referencia)
	pagos = append(pagos, primeiro)

	c := Conciliar(p, pagos)
	assert.Equal(t, models.ComissaoParcial, c.Status)
	assert.Equal(t, 350.0, c.SaldoDevedor)
	assert.Equal(t, 50.0, c.PercentualPago)

	segundo, err := NovoPagamento(p, pagos, 350, models.NovaData(2025, time.January, 20))
	require.NoError(t, err)
	assert.Equal(t, "20/01/2025", segundo.Referencia)
	pagos = append(pagos, segundo)

	c = Conciliar(p, pagos)
	assert.Equal(t, models.ComissaoPaga, c.Status)
	assert.Equal(t, 0.0, c.SaldoDevedor)
	assert.Equal(t, 100.0, c.PercentualPago)

	_, err = NovoPagamento(p, pagos, 0.01, models.NovaData(2025, time.February, 1))
	assert.ErrorIs(t, err, ErrPagamentoExcedente)

	assert.NotEqual(t, primeiro.ID, segundo.ID)
}
