package corretora

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IgoSeguros/api-corretora/internal/armazenamento"
	"github.com/IgoSeguros/api-corretora/internal/comissao"
	"github.com/IgoSeguros/api-corretora/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoServicoVazio(t *testing.T) (*Servico, *armazenamento.Memoria) {
	t.Helper()
	ctx := context.Background()
	store := armazenamento.NovaMemoria()
	// sementes gravadas como listas vazias para os testes partirem do zero
	require.NoError(t, store.Salvar(ctx, armazenamento.ChavePropostas, []byte(`[]`)))
	require.NoError(t, store.Salvar(ctx, armazenamento.ChavePagamentos, []byte(`[]`)))
	return NovoServico(ctx, store), store
}

func criarPropostaSimples(t *testing.T, s *Servico, valorComissao float64) models.Proposta {
	t.Helper()
	return s.CriarProposta(context.Background(), NovaProposta{
		Segurado:      "Segurado Teste",
		Seguradora:    "Porto Seguro",
		Tipo:          models.TipoNovo,
		Ramo:          "Automóvel",
		ComissaoValor: valorComissao,
	})
}

func TestNovoServicoUsaSementesQuandoVazio(t *testing.T) {
	s := NovoServico(context.Background(), armazenamento.NovaMemoria())

	assert.Len(t, s.ListarPropostas(), len(PropostasSemente()))
	assert.Len(t, s.ListarPagamentos(), len(PagamentosSemente()))
}

func TestNovoServicoUsaSementesComPayloadCorrompido(t *testing.T) {
	ctx := context.Background()
	store := armazenamento.NovaMemoria()
	require.NoError(t, store.Salvar(ctx, armazenamento.ChavePropostas, []byte(`{"nao":"é array"`)))
	require.NoError(t, store.Salvar(ctx, armazenamento.ChavePagamentos, []byte(`corrompido`)))

	s := NovoServico(ctx, store)

	assert.Len(t, s.ListarPropostas(), len(PropostasSemente()))
	assert.Len(t, s.ListarPagamentos(), len(PagamentosSemente()))
}

func TestCriarPropostaCalculaComissaoQuandoZerada(t *testing.T) {
	s, _ := novoServicoVazio(t)

	p := s.CriarProposta(context.Background(), NovaProposta{
		Segurado:           "João Silva",
		PremioLiquido:      3500,
		ComissaoPercentual: 20,
	})

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 700.0, p.ComissaoValor)
	assert.Equal(t, models.PropostaEmitida, p.Status)
	assert.Equal(t, models.Hoje(), p.DataCadastro)
}

func TestCriarPropostaMantemComissaoExplicita(t *testing.T) {
	s, _ := novoServicoVazio(t)

	p := s.CriarProposta(context.Background(), NovaProposta{
		PremioLiquido:      3500,
		ComissaoPercentual: 20,
		ComissaoValor:      650, // valor negociado à parte
	})

	assert.Equal(t, 650.0, p.ComissaoValor)
}

func TestCriarPropostaPersisteNoStore(t *testing.T) {
	s, store := novoServicoVazio(t)
	ctx := context.Background()

	p := criarPropostaSimples(t, s, 500)

	bruto, err := store.Carregar(ctx, armazenamento.ChavePropostas)
	require.NoError(t, err)
	var gravadas []models.Proposta
	require.NoError(t, json.Unmarshal(bruto, &gravadas))
	require.Len(t, gravadas, 1)
	assert.Equal(t, p.ID, gravadas[0].ID)
}

func TestEditarPropostaAplicaPatchParcial(t *testing.T) {
	s, _ := novoServicoVazio(t)
	ctx := context.Background()
	p := criarPropostaSimples(t, s, 500)

	segurado := "Maria Santos"
	obs := "renegociado"
	editada, err := s.EditarProposta(ctx, p.ID, EdicaoProposta{
		Segurado:    &segurado,
		Observacoes: &obs,
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Santos", editada.Segurado)
	assert.Equal(t, "renegociado", editada.Observacoes)
	// campos não citados no patch ficam como estavam
	assert.Equal(t, "Porto Seguro", editada.Seguradora)
	assert.Equal(t, p.ID, editada.ID)
	assert.Equal(t, p.DataCadastro, editada.DataCadastro)
}

func TestEditarPropostaRecalculaComissao(t *testing.T) {
	s, _ := novoServicoVazio(t)
	ctx := context.Background()

	p := s.CriarProposta(ctx, NovaProposta{PremioLiquido: 1000, ComissaoPercentual: 10})
	require.Equal(t, 100.0, p.ComissaoValor)

	// mexer no prêmio recalcula a comissão pela fórmula
	premio := 2000.0
	editada, err := s.EditarProposta(ctx, p.ID, EdicaoProposta{PremioLiquido: &premio})
	require.NoError(t, err)
	assert.Equal(t, 200.0, editada.ComissaoValor)

	// mexer no percentual também
	percentual := 25.0
	editada, err = s.EditarProposta(ctx, p.ID, EdicaoProposta{ComissaoPercentual: &percentual})
	require.NoError(t, err)
	assert.Equal(t, 500.0, editada.ComissaoValor)

	// comissão explícita no patch vence a fórmula
	valor := 450.0
	editada, err = s.EditarProposta(ctx, p.ID, EdicaoProposta{ComissaoValor: &valor})
	require.NoError(t, err)
	assert.Equal(t, 450.0, editada.ComissaoValor)
}

func TestEditarPropostaInexistente(t *testing.T) {
	s, _ := novoServicoVazio(t)

	_, err := s.EditarProposta(context.Background(), "nao-existe", EdicaoProposta{})
	assert.ErrorIs(t, err, ErrPropostaNaoEncontrada)
}

func TestRegistrarPagamentoRespeitaTetoEmSequencia(t *testing.T) {
	s, _ := novoServicoVazio(t)
	ctx := context.Background()
	p := criarPropostaSimples(t, s, 700)

	primeiro, err := s.RegistrarPagamento(ctx, p.ID, 350, models.NovaData(2025, time.January, 10))
	require.NoError(t, err)
	assert.Equal(t, "05/01/2025", primeiro.Referencia)

	segundo, err := s.RegistrarPagamento(ctx, p.ID, 350, models.NovaData(2025, time.January, 20))
	require.NoError(t, err)
	assert.Equal(t, "20/01/2025", segundo.Referencia)

	// terceiro estoura o teto e não pode deixar rastro na coleção
	antes := s.ListarPagamentos()
	_, err = s.RegistrarPagamento(ctx, p.ID, 1, models.NovaData(2025, time.February, 1))
	assert.ErrorIs(t, err, comissao.ErrPagamentoExcedente)
	assert.Equal(t, antes, s.ListarPagamentos())

	c, err := s.ConciliarProposta(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComissaoPaga, c.Status)
	assert.Equal(t, 700.0, c.TotalPago)
}

func TestRegistrarPagamentoPropostaInexistente(t *testing.T) {
	s, _ := novoServicoVazio(t)

	_, err := s.RegistrarPagamento(context.Background(), "fantasma", 100, models.Hoje())
	assert.ErrorIs(t, err, ErrPropostaNaoEncontrada)
	assert.Empty(t, s.ListarPagamentos())
}

func TestExcluirPropostaCascateiaPagamentos(t *testing.T) {
	s, store := novoServicoVazio(t)
	ctx := context.Background()

	alvo := criarPropostaSimples(t, s, 1000)
	outra := criarPropostaSimples(t, s, 1000)

	_, err := s.RegistrarPagamento(ctx, alvo.ID, 100, models.NovaData(2025, time.March, 1))
	require.NoError(t, err)
	_, err = s.RegistrarPagamento(ctx, alvo.ID, 200, models.NovaData(2025, time.March, 2))
	require.NoError(t, err)
	sobrevivente, err := s.RegistrarPagamento(ctx, outra.ID, 300, models.NovaData(2025, time.March, 3))
	require.NoError(t, err)

	s.ExcluirProposta(ctx, alvo.ID)

	require.Len(t, s.ListarPropostas(), 1)
	restantes := s.ListarPagamentos()
	require.Len(t, restantes, 1)
	assert.Equal(t, sobrevivente.ID, restantes[0].ID)

	// o cascateamento chega ao armazenamento
	bruto, err := store.Carregar(ctx, armazenamento.ChavePagamentos)
	require.NoError(t, err)
	var gravados []models.PagamentoComissao
	require.NoError(t, json.Unmarshal(bruto, &gravados))
	assert.Len(t, gravados, 1)
}

func TestExcluirPropostaInexistenteENoOp(t *testing.T) {
	s, _ := novoServicoVazio(t)
	criarPropostaSimples(t, s, 100)

	s.ExcluirProposta(context.Background(), "fantasma")
	assert.Len(t, s.ListarPropostas(), 1)
}

func TestExcluirPagamentoIdempotente(t *testing.T) {
	s, _ := novoServicoVazio(t)
	ctx := context.Background()
	p := criarPropostaSimples(t, s, 500)

	pg, err := s.RegistrarPagamento(ctx, p.ID, 200, models.NovaData(2025, time.April, 1))
	require.NoError(t, err)

	s.ExcluirPagamento(ctx, pg.ID)
	assert.Empty(t, s.ListarPagamentos())

	// repetir não dá erro nem muda nada
	s.ExcluirPagamento(ctx, pg.ID)
	assert.Empty(t, s.ListarPagamentos())

	c, err := s.ConciliarProposta(p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComissaoPendente, c.Status)
}

func TestConciliarTodasSegueOrdemDaColecao(t *testing.T) {
	s := NovoServico(context.Background(), armazenamento.NovaMemoria())

	comissoes := s.ConciliarTodas()
	propostas := s.ListarPropostas()
	require.Len(t, comissoes, len(propostas))
	for i := range comissoes {
		assert.Equal(t, propostas[i].ID, comissoes[i].Proposta.ID)
	}
}

func TestMetricasSobreSementes(t *testing.T) {
	s := NovoServico(context.Background(), armazenamento.NovaMemoria())

	m := s.Metricas()
	assert.Equal(t, 8, m.TotalPropostas)
	assert.Equal(t, 51900.0, m.TotalPremio)
	assert.Equal(t, 8235.0, m.TotalComissao)
	assert.Equal(t, 5223.5, m.ComissaoRecebida)
	assert.Equal(t, m.TotalComissao-m.ComissaoRecebida, m.ComissaoPendente)
	assert.Equal(t, 5, m.PropostasNovas)
	assert.Equal(t, 3, m.PropostasRenovacao)
}

func TestGraficosSobreSementes(t *testing.T) {
	s := NovoServico(context.Background(), armazenamento.NovaMemoria())

	mensal := s.GraficoMensal()
	require.Len(t, mensal, 1) // sementes são todas de janeiro/2025
	assert.Equal(t, "Jan/25", mensal[0].Mes)
	assert.Equal(t, 8235.0, mensal[0].Total)

	porRamo := s.GraficoPorRamo()
	require.NotEmpty(t, porRamo)
	assert.Equal(t, "Riscos Diversos", porRamo[0].Categoria)
	assert.Equal(t, 2212.0, porRamo[0].Valor)

	seguradoras := s.GraficoPorSeguradora()
	assert.Len(t, seguradoras, 5)
	for i := 1; i < len(seguradoras); i++ {
		assert.GreaterOrEqual(t, seguradoras[i-1].Valor, seguradoras[i].Valor)
	}
	assert.Equal(t, "HDI Seguros", seguradoras[0].Categoria)
}
