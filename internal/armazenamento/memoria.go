// internal/armazenamento/memoria.go
package armazenamento

import "context"

// Memoria implementa Store num mapa em memória. Serve para testes e para
// rodar o sistema sem backend nenhum (os dados evaporam ao encerrar).
type Memoria struct {
	dados map[string][]byte
}

// NovaMemoria cria o store vazio.
func NovaMemoria() *Memoria {
	return &Memoria{dados: map[string][]byte{}}
}

func (m *Memoria) Carregar(_ context.Context, chave string) ([]byte, error) {
	valor, ok := m.dados[chave]
	if !ok {
		return nil, ErrChaveInexistente
	}
	copia := make([]byte, len(valor))
	copy(copia, valor)
	return copia, nil
}

func (m *Memoria) Salvar(_ context.Context, chave string, valor []byte) error {
	copia := make([]byte, len(valor))
	copy(copia, valor)
	m.dados[chave] = copia
	return nil
}

func (m *Memoria) Remover(_ context.Context, chave string) error {
	delete(m.dados, chave)
	return nil
}
