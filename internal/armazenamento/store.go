// internal/armazenamento/store.go
package armazenamento

import (
	"context"
	"errors"
)

// Chaves usadas pelo sistema, herdadas do formato antigo de armazenamento.
const (
	ChavePropostas  = "igo.propostas.v1"
	ChavePagamentos = "igo.pagamentos.v1"
	ChaveProdutores = "igo.produtores.v1"
)

// ErrChaveInexistente indica que a chave nunca foi gravada.
var ErrChaveInexistente = errors.New("chave não encontrada no armazenamento")

// Store é o colaborador de persistência: um armazém chave-valor de blobs
// JSON. Quem consome decide o que fazer com dados ausentes ou corrompidos;
// nenhuma implementação interpreta o conteúdo.
type Store interface {
	Carregar(ctx context.Context, chave string) ([]byte, error)
	Salvar(ctx context.Context, chave string, valor []byte) error
	Remover(ctx context.Context, chave string) error
}
