// internal/corretora/servico.go
package corretora

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/IgoSeguros/api-corretora/internal/armazenamento"
	"github.com/IgoSeguros/api-corretora/internal/comissao"
	"github.com/IgoSeguros/api-corretora/internal/metricas"
	"github.com/IgoSeguros/api-corretora/internal/models"
	"github.com/google/uuid"
)

// ErrPropostaNaoEncontrada indica referência a uma proposta que não existe.
var ErrPropostaNaoEncontrada = errors.New("proposta não encontrada")

// Servico é o dono das duas coleções (propostas e pagamentos). Toda mutação
// atualiza a memória e em seguida persiste a coleção inteira no Store;
// falha de gravação é registrada em log e nunca sobe para quem chamou.
//
// Sessão única: não há proteção contra escrita concorrente.
type Servico struct {
	store      armazenamento.Store
	propostas  []models.Proposta
	pagamentos []models.PagamentoComissao
}

// NovoServico carrega as coleções do Store. Chave ausente ou payload que não
// seja um array JSON válido cai na semente correspondente: dado local
// corrompido reinicia o sistema, nunca o derruba.
func NovoServico(ctx context.Context, store armazenamento.Store) *Servico {
	s := &Servico{store: store}
	s.propostas = carregarLista(ctx, store, armazenamento.ChavePropostas, PropostasSemente())
	s.pagamentos = carregarLista(ctx, store, armazenamento.ChavePagamentos, PagamentosSemente())
	return s
}

func carregarLista[T any](ctx context.Context, store armazenamento.Store, chave string, semente []T) []T {
	bruto, err := store.Carregar(ctx, chave)
	if err != nil {
		if !errors.Is(err, armazenamento.ErrChaveInexistente) {
			log.Printf("falha ao carregar %s, usando semente: %v", chave, err)
		}
		return semente
	}
	var lista []T
	if err := json.Unmarshal(bruto, &lista); err != nil {
		log.Printf("payload corrompido em %s, usando semente: %v", chave, err)
		return semente
	}
	if lista == nil {
		lista = []T{}
	}
	return lista
}

func (s *Servico) persistir(ctx context.Context, chave string, lista any) {
	bruto, err := json.Marshal(lista)
	if err != nil {
		log.Printf("falha ao serializar %s: %v", chave, err)
		return
	}
	if err := s.store.Salvar(ctx, chave, bruto); err != nil {
		log.Printf("falha ao salvar %s: %v", chave, err)
	}
}

// ListarPropostas devolve uma cópia da coleção, na ordem de cadastro.
func (s *Servico) ListarPropostas() []models.Proposta {
	return append([]models.Proposta{}, s.propostas...)
}

// ListarPagamentos devolve uma cópia da coleção de pagamentos.
func (s *Servico) ListarPagamentos() []models.PagamentoComissao {
	return append([]models.PagamentoComissao{}, s.pagamentos...)
}

// BuscarProposta localiza uma proposta pelo id.
func (s *Servico) BuscarProposta(id string) (models.Proposta, error) {
	for _, p := range s.propostas {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Proposta{}, ErrPropostaNaoEncontrada
}

// ConciliarTodas devolve uma conciliação por proposta, na ordem da coleção.
func (s *Servico) ConciliarTodas() []models.ComissaoProposta {
	comissoes := make([]models.ComissaoProposta, 0, len(s.propostas))
	for _, p := range s.propostas {
		comissoes = append(comissoes, comissao.Conciliar(p, s.pagamentos))
	}
	return comissoes
}

// ConciliarProposta concilia uma única proposta.
func (s *Servico) ConciliarProposta(id string) (models.ComissaoProposta, error) {
	p, err := s.BuscarProposta(id)
	if err != nil {
		return models.ComissaoProposta{}, err
	}
	return comissao.Conciliar(p, s.pagamentos), nil
}

// NovaProposta carrega os campos editáveis de criação de uma proposta.
type NovaProposta struct {
	Segurado           string      `json:"segurado"`
	CpfCnpj            string      `json:"cpfCnpj"`
	Produtor           string      `json:"produtor"`
	Seguradora         string      `json:"seguradora"`
	Tipo               string      `json:"tipo"`
	Ramo               string      `json:"ramo"`
	PropostaNumero     string      `json:"propostaNumero"`
	DataTransmissao    models.Data `json:"dataTransmissao"`
	PremioLiquido      float64     `json:"premioLiquido"`
	ComissaoPercentual float64     `json:"comissaoPercentual"`
	ComissaoValor      float64     `json:"comissaoValor"`
	Status             string      `json:"status"`
	Observacoes        string      `json:"observacoes"`
}

// CriarProposta insere uma proposta com id novo e data de cadastro de hoje.
// ComissaoValor zerado é recalculado de prêmio × percentual; um valor
// explícito do chamador é mantido.
func (s *Servico) CriarProposta(ctx context.Context, dados NovaProposta) models.Proposta {
	if dados.Status == "" {
		dados.Status = models.PropostaEmitida
	}
	if dados.ComissaoValor == 0 {
		dados.ComissaoValor = dados.PremioLiquido * dados.ComissaoPercentual / 100
	}
	p := models.Proposta{
		ID:                 uuid.NewString(),
		DataCadastro:       models.Hoje(),
		Segurado:           dados.Segurado,
		CpfCnpj:            dados.CpfCnpj,
		Produtor:           dados.Produtor,
		Seguradora:         dados.Seguradora,
		Tipo:               dados.Tipo,
		Ramo:               dados.Ramo,
		PropostaNumero:     dados.PropostaNumero,
		DataTransmissao:    dados.DataTransmissao,
		PremioLiquido:      dados.PremioLiquido,
		ComissaoPercentual: dados.ComissaoPercentual,
		ComissaoValor:      dados.ComissaoValor,
		Status:             dados.Status,
		Observacoes:        dados.Observacoes,
	}
	s.propostas = append(s.propostas, p)
	s.persistir(ctx, armazenamento.ChavePropostas, s.propostas)
	return p
}

// EdicaoProposta é o patch parcial de uma proposta: cada campo só é aplicado
// quando presente. ID e DataCadastro não aparecem aqui por serem imutáveis.
type EdicaoProposta struct {
	Segurado           *string      `json:"segurado"`
	CpfCnpj            *string      `json:"cpfCnpj"`
	Produtor           *string      `json:"produtor"`
	Seguradora         *string      `json:"seguradora"`
	Tipo               *string      `json:"tipo"`
	Ramo               *string      `json:"ramo"`
	PropostaNumero     *string      `json:"propostaNumero"`
	DataTransmissao    *models.Data `json:"dataTransmissao"`
	PremioLiquido      *float64     `json:"premioLiquido"`
	ComissaoPercentual *float64     `json:"comissaoPercentual"`
	ComissaoValor      *float64     `json:"comissaoValor"`
	Status             *string      `json:"status"`
	Observacoes        *string      `json:"observacoes"`
}

// EditarProposta aplica o patch sobre a proposta existente. Quando o patch
// mexe em prêmio ou percentual sem fixar ComissaoValor explicitamente, o
// valor da comissão é recalculado para não dessincronizar da fórmula.
func (s *Servico) EditarProposta(ctx context.Context, id string, patch EdicaoProposta) (models.Proposta, error) {
	indice := -1
	for i, p := range s.propostas {
		if p.ID == id {
			indice = i
			break
		}
	}
	if indice < 0 {
		return models.Proposta{}, ErrPropostaNaoEncontrada
	}

	p := s.propostas[indice]
	if patch.Segurado != nil {
		p.Segurado = *patch.Segurado
	}
	if patch.CpfCnpj != nil {
		p.CpfCnpj = *patch.CpfCnpj
	}
	if patch.Produtor != nil {
		p.Produtor = *patch.Produtor
	}
	if patch.Seguradora != nil {
		p.Seguradora = *patch.Seguradora
	}
	if patch.Tipo != nil {
		p.Tipo = *patch.Tipo
	}
	if patch.Ramo != nil {
		p.Ramo = *patch.Ramo
	}
	if patch.PropostaNumero != nil {
		p.PropostaNumero = *patch.PropostaNumero
	}
	if patch.DataTransmissao != nil {
		p.DataTransmissao = *patch.DataTransmissao
	}
	if patch.PremioLiquido != nil {
		p.PremioLiquido = *patch.PremioLiquido
	}
	if patch.ComissaoPercentual != nil {
		p.ComissaoPercentual = *patch.ComissaoPercentual
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Observacoes != nil {
		p.Observacoes = *patch.Observacoes
	}

	switch {
	case patch.ComissaoValor != nil:
		p.ComissaoValor = *patch.ComissaoValor
	case patch.PremioLiquido != nil || patch.ComissaoPercentual != nil:
		p.ComissaoValor = p.PremioLiquido * p.ComissaoPercentual / 100
	}

	s.propostas[indice] = p
	s.persistir(ctx, armazenamento.ChavePropostas, s.propostas)
	return p, nil
}

// ExcluirProposta remove a proposta e varre todos os pagamentos dela.
// Id inexistente é no-op.
func (s *Servico) ExcluirProposta(ctx context.Context, id string) {
	restantes := s.propostas[:0]
	removeu := false
	for _, p := range s.propostas {
		if p.ID == id {
			removeu = true
			continue
		}
		restantes = append(restantes, p)
	}
	if !removeu {
		return
	}
	s.propostas = restantes

	pagos := s.pagamentos[:0]
	for _, pg := range s.pagamentos {
		if pg.PropostaID != id {
			pagos = append(pagos, pg)
		}
	}
	s.pagamentos = pagos

	s.persistir(ctx, armazenamento.ChavePropostas, s.propostas)
	s.persistir(ctx, armazenamento.ChavePagamentos, s.pagamentos)
}

// RegistrarPagamento valida o teto e anexa o pagamento à coleção. Nada é
// alterado quando a validação falha.
func (s *Servico) RegistrarPagamento(ctx context.Context, propostaID string, valor float64, data models.Data) (models.PagamentoComissao, error) {
	p, err := s.BuscarProposta(propostaID)
	if err != nil {
		return models.PagamentoComissao{}, err
	}
	pagamento, err := comissao.NovoPagamento(p, s.pagamentos, valor, data)
	if err != nil {
		return models.PagamentoComissao{}, err
	}
	s.pagamentos = append(s.pagamentos, pagamento)
	s.persistir(ctx, armazenamento.ChavePagamentos, s.pagamentos)
	return pagamento, nil
}

// ExcluirPagamento remove um pagamento pelo id; no-op quando ausente.
func (s *Servico) ExcluirPagamento(ctx context.Context, id string) {
	restantes := s.pagamentos[:0]
	removeu := false
	for _, pg := range s.pagamentos {
		if pg.ID == id {
			removeu = true
			continue
		}
		restantes = append(restantes, pg)
	}
	if !removeu {
		return
	}
	s.pagamentos = restantes
	s.persistir(ctx, armazenamento.ChavePagamentos, s.pagamentos)
}

// Metricas calcula os totais do dashboard sobre o estado corrente.
func (s *Servico) Metricas() models.MetricasDashboard {
	return metricas.Calcular(s.propostas, s.ConciliarTodas())
}

// GraficoMensal é a série de comissão por mês de cadastro.
func (s *Servico) GraficoMensal() []models.DadosGrafico {
	return metricas.PorMes(s.propostas, func(p models.Proposta) float64 {
		return p.ComissaoValor
	})
}

// GraficoPorRamo agrupa a comissão por ramo, do maior para o menor.
func (s *Servico) GraficoPorRamo() []models.CategoriaValor {
	return metricas.PorCategoria(s.propostas,
		func(p models.Proposta) string { return p.Ramo },
		func(p models.Proposta) float64 { return p.ComissaoValor }, 0)
}

// GraficoPorSeguradora agrupa a comissão pelas cinco maiores seguradoras.
func (s *Servico) GraficoPorSeguradora() []models.CategoriaValor {
	return metricas.PorCategoria(s.propostas,
		func(p models.Proposta) string { return p.Seguradora },
		func(p models.Proposta) float64 { return p.ComissaoValor }, 5)
}
