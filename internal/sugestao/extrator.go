// internal/sugestao/extrator.go
package sugestao

import (
	"regexp"
	"strconv"
	"strings"
)

// DadosSugeridos são os campos que o extrator conseguiu adivinhar num texto
// de apólice. Tudo aqui é sugestão de preenchimento: o usuário revisa e pode
// sobrescrever qualquer campo antes de criar a proposta. Nada vai direto
// para a coleção.
type DadosSugeridos struct {
	Segurado           string  `json:"segurado,omitempty"`
	CpfCnpj            string  `json:"cpfCnpj,omitempty"`
	Seguradora         string  `json:"seguradora,omitempty"`
	Ramo               string  `json:"ramo,omitempty"`
	PropostaNumero     string  `json:"propostaNumero,omitempty"`
	PremioLiquido      float64 `json:"premioLiquido,omitempty"`
	ComissaoPercentual float64 `json:"comissaoPercentual,omitempty"`
}

// Palavras-chave de reconhecimento das seguradoras com que a corretora opera.
var seguradorasPalavras = []struct {
	nome     string
	palavras []string
}{
	{"Porto Seguro", []string{"porto seguro", "portoseguro"}},
	{"Bradesco Seguros", []string{"bradesco", "bradesco seguros"}},
	{"SulAmérica", []string{"sulamerica", "sulamérica", "sul américa"}},
	{"Tokio Marine", []string{"tokio marine", "tokiomarine"}},
	{"Mapfre", []string{"mapfre"}},
	{"Liberty Seguros", []string{"liberty", "liberty seguros"}},
	{"HDI Seguros", []string{"hdi", "hdi seguros"}},
	{"Azul Seguros", []string{"azul seguros", "azulseguro"}},
	{"Sompo Seguros", []string{"sompo", "sompo seguros"}},
	{"Mitsui Sumitomo", []string{"mitsui", "sumitomo", "mitsui sumitomo"}},
}

var ramosPalavras = []struct {
	nome     string
	palavras []string
}{
	{"Automóvel", []string{"automóvel", "automovel", "veiculo", "veículo", "auto"}},
	{"Residencial", []string{"residencial", "casa", "apartamento", "imovel", "imóvel"}},
	{"Empresarial", []string{"empresarial", "empresa", "comercial"}},
	{"Vida", []string{"seguro de vida", "vida individual", "vida"}},
	{"Saúde", []string{"saúde", "saude", "plano de saude", "plano de saúde"}},
	{"Transporte", []string{"transporte", "carga", "rcm"}},
	{"Riscos Diversos", []string{"riscos diversos", "equipamento"}},
	{"Responsabilidade Civil", []string{"responsabilidade civil", "rc profissional"}},
}

var (
	reCPF      = regexp.MustCompile(`\d{3}[.\s]?\d{3}[.\s]?\d{3}[-\s]?\d{2}`)
	reCNPJ     = regexp.MustCompile(`\d{2}[.\s]?\d{3}[.\s]?\d{3}[/\s]?\d{4}[-\s]?\d{2}`)
	reProposta = regexp.MustCompile(`(?i)(?:proposta|ap[óo]lice)\s*(?:n[º°o.]*\s*)?[:\s]\s*(\d[\d.\-/]{4,20})`)
	rePremio   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)pr[êe]mio\s*l[íi]quido[:\s]*R?\$?\s*([\d.]+,?\d{0,2})`),
		regexp.MustCompile(`(?i)pr[êe]mio[:\s]*R?\$?\s*([\d.]+,?\d{0,2})`),
		regexp.MustCompile(`(?i)valor[:\s]*R?\$?\s*([\d.]+,?\d{0,2})`),
		regexp.MustCompile(`(?i)total[:\s]*R?\$?\s*([\d.]+,?\d{0,2})`),
	}
	reComissao = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2}[,.]?\d{0,2})\s*%\s*(?:de\s*)?comiss[ãa]o`),
		regexp.MustCompile(`(?i)comiss[ãa]o[:\s]*(\d{1,2}[,.]?\d{0,2})\s*%`),
	}
	reSegurado = []*regexp.Regexp{
		regexp.MustCompile(`(?i)segurado[:\s]+([^\n\r]{3,50})`),
		regexp.MustCompile(`(?i)contratante[:\s]+([^\n\r]{3,50})`),
		regexp.MustCompile(`(?i)tomador[:\s]+([^\n\r]{3,50})`),
	}
	reNomeValido = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚãõÃÕâêôÂÊÔçÇ\s]+$`)
)

// Extrair varre o texto de uma apólice ou proposta e devolve os campos que
// reconheceu. Heurística de melhor esforço, sem qualquer garantia de formato:
// campo não reconhecido simplesmente fica de fora.
func Extrair(texto string) DadosSugeridos {
	dados := DadosSugeridos{}
	textoMinusculo := strings.ToLower(texto)

	// CNPJ primeiro: um CNPJ contém dígitos suficientes para o padrão de CPF
	// casar por engano no meio dele.
	if m := reCNPJ.FindString(texto); m != "" {
		dados.CpfCnpj = strings.TrimSpace(m)
	} else if m := reCPF.FindString(texto); m != "" {
		dados.CpfCnpj = strings.TrimSpace(m)
	}

	for _, s := range seguradorasPalavras {
		for _, palavra := range s.palavras {
			if strings.Contains(textoMinusculo, palavra) {
				dados.Seguradora = s.nome
				break
			}
		}
		if dados.Seguradora != "" {
			break
		}
	}

	for _, r := range ramosPalavras {
		for _, palavra := range r.palavras {
			if strings.Contains(textoMinusculo, palavra) {
				dados.Ramo = r.nome
				break
			}
		}
		if dados.Ramo != "" {
			break
		}
	}

	if m := reProposta.FindStringSubmatch(texto); m != nil {
		dados.PropostaNumero = strings.TrimSpace(m[1])
	}

	for _, re := range rePremio {
		if m := re.FindStringSubmatch(texto); m != nil {
			dados.PremioLiquido = parseValorBR(m[1])
			break
		}
	}

	for _, re := range reComissao {
		if m := re.FindStringSubmatch(texto); m != nil {
			dados.ComissaoPercentual = parseValorBR(m[1])
			break
		}
	}

	for _, re := range reSegurado {
		m := re.FindStringSubmatch(texto)
		if m == nil {
			continue
		}
		nome := strings.TrimSpace(m[1])
		// só aceita o que parece um nome: duas ou mais palavras, sem dígitos
		if len(strings.Fields(nome)) >= 2 && reNomeValido.MatchString(nome) {
			dados.Segurado = nome
			break
		}
	}

	return dados
}

// parseValorBR converte "12.500,50" para 12500.50. Ponto é separador de
// milhar e vírgula é decimal, exceto quando só há ponto e ele se comporta
// como decimal ("3500.00").
func parseValorBR(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if pontos := strings.Count(s, "."); pontos == 1 {
		if resto := s[strings.Index(s, ".")+1:]; len(resto) == 3 {
			// "12.500" é milhar, não decimal
			s = strings.ReplaceAll(s, ".", "")
		}
	} else if pontos > 1 {
		s = strings.ReplaceAll(s, ".", "")
	}
	valor, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return valor
}
