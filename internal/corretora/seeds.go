// internal/corretora/seeds.go
package corretora

import (
	"time"

	"github.com/IgoSeguros/api-corretora/internal/models"
)

// PropostasSemente é a carteira de exemplo usada quando o armazenamento está
// vazio ou corrompido. Cada chamada devolve uma fatia nova.
func PropostasSemente() []models.Proposta {
	return []models.Proposta{
		{
			ID:                 "1",
			DataCadastro:       models.NovaData(2025, time.January, 10),
			Segurado:           "João Silva",
			CpfCnpj:            "123.456.789-00",
			Produtor:           "IGO MATOS",
			Seguradora:         "Porto Seguro",
			Tipo:               models.TipoNovo,
			Ramo:               "Automóvel",
			PropostaNumero:     "123456789",
			DataTransmissao:    models.NovaData(2025, time.January, 10),
			PremioLiquido:      3500,
			ComissaoPercentual: 20,
			ComissaoValor:      700,
			Status:             models.PropostaEmitida,
			Observacoes:        "Cliente indicado pelo Carlos",
		},
		{
			ID:                 "2",
			DataCadastro:       models.NovaData(2025, time.January, 12),
			Segurado:           "Maria Santos",
			CpfCnpj:            "987.654.321-00",
			Produtor:           "IGO MATOS",
			Seguradora:         "Bradesco Seguros",
			Tipo:               models.TipoRenovacao,
			Ramo:               "Residencial",
			PropostaNumero:     "987654321",
			DataTransmissao:    models.NovaData(2025, time.January, 12),
			PremioLiquido:      1800,
			ComissaoPercentual: 18,
			ComissaoValor:      324,
			Status:             models.PropostaEmitida,
		},
		{
			ID:                 "3",
			DataCadastro:       models.NovaData(2025, time.January, 15),
			Segurado:           "Empresa ABC Ltda",
			CpfCnpj:            "12.345.678/0001-90",
			Produtor:           "IGO MATOS",
			Seguradora:         "SulAmérica",
			Tipo:               models.TipoNovo,
			Ramo:               "Empresarial",
			PropostaNumero:     "456789123",
			DataTransmissao:    models.NovaData(2025, time.January, 15),
			PremioLiquido:      12500,
			ComissaoPercentual: 15,
			ComissaoValor:      1875,
			Status:             models.PropostaEmitida,
			Observacoes:        "Seguro empresarial completo",
		},
		{
			ID:                 "4",
			DataCadastro:       models.NovaData(2025, time.January, 18),
			Segurado:           "Pedro Oliveira",
			CpfCnpj:            "456.789.123-00",
			Produtor:           "IGO MATOS",
			Seguradora:         "Tokio Marine",
			Tipo:               models.TipoNovo,
			Ramo:               "Vida",
			PropostaNumero:     "789123456",
			DataTransmissao:    models.NovaData(2025, time.January, 18),
			PremioLiquido:      2400,
			ComissaoPercentual: 25,
			ComissaoValor:      600,
			Status:             models.PropostaEmitida,
		},
		{
			ID:                 "5",
			DataCadastro:       models.NovaData(2025, time.January, 20),
			Segurado:           "Ana Costa",
			CpfCnpj:            "789.123.456-00",
			Produtor:           "IGO MATOS",
			Seguradora:         "Mapfre",
			Tipo:               models.TipoRenovacao,
			Ramo:               "Automóvel",
			PropostaNumero:     "321654987",
			DataTransmissao:    models.NovaData(2025, time.January, 20),
			PremioLiquido:      4200,
			ComissaoPercentual: 20,
			ComissaoValor:      840,
			Status:             models.PropostaEmitida,
		},
		{
			ID:                 "6",
			DataCadastro:       models.NovaData(2025, time.January, 22),
			Segurado:           "Carlos Ferreira",
			CpfCnpj:            "321.654.987-00",
			Produtor:           "IGO MATOS",
			Seguradora:         "Liberty Seguros",
			Tipo:               models.TipoNovo,
			Ramo:               "Saúde",
			PropostaNumero:     "654987321",
			DataTransmissao:    models.NovaData(2025, time.January, 22),
			PremioLiquido:      8900,
			ComissaoPercentual: 12,
			ComissaoValor:      1068,
			Status:             models.PropostaEmitida,
		},
		{
			ID:                 "7",
			DataCadastro:       models.NovaData(2025, time.January, 25),
			Segurado:           "Construtora XYZ",
			CpfCnpj:            "98.765.432/0001-10",
			Produtor:           "IGO MATOS",
			Seguradora:         "HDI Seguros",
			Tipo:               models.TipoRenovacao,
			Ramo:               "Riscos Diversos",
			PropostaNumero:     "147258369",
			DataTransmissao:    models.NovaData(2025, time.January, 25),
			PremioLiquido:      15800,
			ComissaoPercentual: 14,
			ComissaoValor:      2212,
			Status:             models.PropostaEmitida,
		},
		{
			ID:                 "8",
			DataCadastro:       models.NovaData(2025, time.January, 28),
			Segurado:           "Fernanda Lima",
			CpfCnpj:            "147.258.369-00",
			Produtor:           "IGO MATOS",
			Seguradora:         "Azul Seguros",
			Tipo:               models.TipoNovo,
			Ramo:               "Automóvel",
			PropostaNumero:     "369258147",
			DataTransmissao:    models.NovaData(2025, time.January, 28),
			PremioLiquido:      2800,
			ComissaoPercentual: 22,
			ComissaoValor:      616,
			Status:             models.PropostaEmitida,
		},
	}
}

// PagamentosSemente acompanha PropostasSemente.
func PagamentosSemente() []models.PagamentoComissao {
	return []models.PagamentoComissao{
		{ID: "p1", PropostaID: "1", DataPagamento: models.NovaData(2025, time.January, 20), ValorPago: 350, Referencia: "20/01/2025"},
		{ID: "p2", PropostaID: "2", DataPagamento: models.NovaData(2025, time.January, 20), ValorPago: 324, Referencia: "20/01/2025"},
		{ID: "p3", PropostaID: "3", DataPagamento: models.NovaData(2025, time.January, 20), ValorPago: 937.5, Referencia: "20/01/2025"},
		{ID: "p4", PropostaID: "3", DataPagamento: models.NovaData(2025, time.February, 5), ValorPago: 500, Referencia: "05/02/2025"},
		{ID: "p5", PropostaID: "5", DataPagamento: models.NovaData(2025, time.January, 20), ValorPago: 400, Referencia: "20/01/2025"},
		{ID: "p6", PropostaID: "6", DataPagamento: models.NovaData(2025, time.January, 20), ValorPago: 500, Referencia: "20/01/2025"},
		{ID: "p7", PropostaID: "7", DataPagamento: models.NovaData(2025, time.January, 20), ValorPago: 1106, Referencia: "20/01/2025"},
		{ID: "p8", PropostaID: "7", DataPagamento: models.NovaData(2025, time.February, 5), ValorPago: 1106, Referencia: "05/02/2025"},
	}
}
