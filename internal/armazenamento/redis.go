// internal/armazenamento/redis.go
package armazenamento

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implementa Store sobre um servidor Redis. Os blobs ficam sem
// expiração: isto é o armazenamento primário, não um cache.
type Redis struct {
	cliente *redis.Client
}

// NovoRedis conecta usando uma URL redis:// e valida a conexão com PING.
func NovoRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("URL do redis inválida: %w", err)
	}

	cliente := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cliente.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no redis: %w", err)
	}

	log.Println("Redis conectado")
	return &Redis{cliente: cliente}, nil
}

// NovoRedisComCliente embrulha um cliente já criado (testes com miniredis).
func NovoRedisComCliente(cliente *redis.Client) *Redis {
	return &Redis{cliente: cliente}
}

// Fechar encerra a conexão.
func (r *Redis) Fechar() error {
	return r.cliente.Close()
}

// Carregar busca o blob pela chave.
func (r *Redis) Carregar(ctx context.Context, chave string) ([]byte, error) {
	valor, err := r.cliente.Get(ctx, chave).Bytes()
	if err == redis.Nil {
		return nil, ErrChaveInexistente
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler chave %s: %w", chave, err)
	}
	return valor, nil
}

// Salvar grava o blob sem expiração.
func (r *Redis) Salvar(ctx context.Context, chave string, valor []byte) error {
	return r.cliente.Set(ctx, chave, valor, 0).Err()
}

// Remover apaga a chave; chave ausente não é erro.
func (r *Redis) Remover(ctx context.Context, chave string) error {
	return r.cliente.Del(ctx, chave).Err()
}
