// internal/metricas/metricas.go
package metricas

import (
	"fmt"
	"sort"

	"github.com/IgoSeguros/api-corretora/internal/models"
)

var nomesMeses = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// Calcular produz os totais do dashboard a partir das propostas e das
// conciliações já derivadas delas.
func Calcular(propostas []models.Proposta, comissoes []models.ComissaoProposta) models.MetricasDashboard {
	m := models.MetricasDashboard{TotalPropostas: len(propostas)}
	for _, p := range propostas {
		m.TotalPremio += p.PremioLiquido
		m.TotalComissao += p.ComissaoValor
		if p.Tipo == models.TipoNovo {
			m.PropostasNovas++
		}
		if p.Tipo == models.TipoRenovacao {
			m.PropostasRenovacao++
		}
	}
	for _, c := range comissoes {
		m.ComissaoRecebida += c.TotalPago
	}
	m.ComissaoPendente = m.TotalComissao - m.ComissaoRecebida
	return m
}

// PorMes agrupa as propostas pelo ano-mês da data de cadastro, somando
// selecionar(p) separadamente para NOVO e RENOVACAO. A saída sai em ordem
// cronológica crescente mesmo com entrada embaralhada.
func PorMes(propostas []models.Proposta, selecionar func(models.Proposta) float64) []models.DadosGrafico {
	type acumulado struct {
		novo      float64
		renovacao float64
	}
	meses := map[string]*acumulado{}

	for _, p := range propostas {
		chave := fmt.Sprintf("%04d-%02d", p.DataCadastro.Year(), int(p.DataCadastro.Month()))
		ac := meses[chave]
		if ac == nil {
			ac = &acumulado{}
			meses[chave] = ac
		}
		if p.Tipo == models.TipoNovo {
			ac.novo += selecionar(p)
		} else {
			ac.renovacao += selecionar(p)
		}
	}

	chaves := make([]string, 0, len(meses))
	for chave := range meses {
		chaves = append(chaves, chave)
	}
	// "AAAA-MM" com zeros à esquerda ordena cronologicamente por texto.
	sort.Strings(chaves)

	serie := make([]models.DadosGrafico, 0, len(chaves))
	for _, chave := range chaves {
		var ano, mes int
		fmt.Sscanf(chave, "%d-%d", &ano, &mes)
		ac := meses[chave]
		serie = append(serie, models.DadosGrafico{
			Mes:       fmt.Sprintf("%s/%02d", nomesMeses[mes-1], ano%100),
			Novo:      ac.novo,
			Renovacao: ac.renovacao,
			Total:     ac.novo + ac.renovacao,
		})
	}
	return serie
}

// PorCategoria agrupa as propostas por uma categoria textual (ramo,
// seguradora) somando valor(p), em ordem decrescente de soma. Empates mantêm
// a ordem de primeira aparição na entrada. topN > 0 trunca o resultado.
func PorCategoria(propostas []models.Proposta, categoria func(models.Proposta) string, valor func(models.Proposta) float64, topN int) []models.CategoriaValor {
	somas := map[string]float64{}
	var ordem []string

	for _, p := range propostas {
		cat := categoria(p)
		if _, visto := somas[cat]; !visto {
			ordem = append(ordem, cat)
		}
		somas[cat] += valor(p)
	}

	fatias := make([]models.CategoriaValor, 0, len(ordem))
	for _, cat := range ordem {
		fatias = append(fatias, models.CategoriaValor{Categoria: cat, Valor: somas[cat]})
	}
	sort.SliceStable(fatias, func(i, j int) bool {
		return fatias[i].Valor > fatias[j].Valor
	})

	if topN > 0 && len(fatias) > topN {
		fatias = fatias[:topN]
	}
	return fatias
}
