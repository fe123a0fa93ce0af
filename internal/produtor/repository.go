// internal/produtor/repository.go
package produtor

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/IgoSeguros/api-corretora/internal/armazenamento"
)

// ProdutoresPadrao é a lista semente de produtores da corretora, usada quando
// o armazenamento está vazio ou ilegível.
var ProdutoresPadrao = []string{
	"IGO",
	"RAQUEL",
	"VICTOR",
	"JAN",
	"VINICIUS",
	"THAIS",
	"PROD.01",
	"PROD.02",
	"PROD.03",
}

// Repository guarda a lista de nomes de produtores usada no formulário de
// proposta. Configuração periférica: uma lista de strings sob a própria chave.
type Repository struct {
	store armazenamento.Store
}

// NewRepository instancia o repositório sobre o Store informado.
func NewRepository(store armazenamento.Store) *Repository {
	return &Repository{store: store}
}

// Listar devolve a lista corrente, caindo na semente quando a chave não
// existe ou o payload não é um array JSON.
func (r *Repository) Listar(ctx context.Context) []string {
	bruto, err := r.store.Carregar(ctx, armazenamento.ChaveProdutores)
	if err != nil {
		if !errors.Is(err, armazenamento.ErrChaveInexistente) {
			log.Printf("falha ao carregar produtores, usando padrão: %v", err)
		}
		return append([]string{}, ProdutoresPadrao...)
	}
	var lista []string
	if err := json.Unmarshal(bruto, &lista); err != nil {
		log.Printf("lista de produtores corrompida, usando padrão: %v", err)
		return append([]string{}, ProdutoresPadrao...)
	}
	return lista
}

// Substituir grava a lista inteira, normalizando espaços e descartando vazios.
func (r *Repository) Substituir(ctx context.Context, nomes []string) ([]string, error) {
	limpos := make([]string, 0, len(nomes))
	for _, nome := range nomes {
		nome = strings.TrimSpace(nome)
		if nome != "" {
			limpos = append(limpos, nome)
		}
	}
	bruto, err := json.Marshal(limpos)
	if err != nil {
		return nil, err
	}
	if err := r.store.Salvar(ctx, armazenamento.ChaveProdutores, bruto); err != nil {
		return nil, err
	}
	return limpos, nil
}

// Adicionar inclui um nome no fim da lista; nome já presente é no-op.
func (r *Repository) Adicionar(ctx context.Context, nome string) ([]string, error) {
	nome = strings.TrimSpace(nome)
	lista := r.Listar(ctx)
	for _, existente := range lista {
		if strings.EqualFold(existente, nome) {
			return lista, nil
		}
	}
	return r.Substituir(ctx, append(lista, nome))
}

// Remover tira um nome da lista; nome ausente é no-op.
func (r *Repository) Remover(ctx context.Context, nome string) ([]string, error) {
	lista := r.Listar(ctx)
	restantes := make([]string, 0, len(lista))
	for _, existente := range lista {
		if !strings.EqualFold(existente, nome) {
			restantes = append(restantes, existente)
		}
	}
	return r.Substituir(ctx, restantes)
}
