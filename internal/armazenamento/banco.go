// internal/armazenamento/banco.go
package armazenamento

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Registro é a linha da tabela chave-valor usada pelo Banco.
type Registro struct {
	Chave string `gorm:"primaryKey;size:255"`
	Valor []byte `gorm:"not null"`
}

// Banco implementa Store sobre uma tabela chave-valor em banco relacional.
type Banco struct {
	DB *gorm.DB
}

// NovoBanco abre a conexão Postgres pela DSN e garante a tabela.
func NovoBanco(dsn string) (*Banco, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no banco: %w", err)
	}
	return NovoBancoComDB(db)
}

// NovoBancoComDB embrulha um *gorm.DB já aberto (testes usam sqlite em memória).
func NovoBancoComDB(db *gorm.DB) (*Banco, error) {
	if err := db.AutoMigrate(&Registro{}); err != nil {
		return nil, fmt.Errorf("falha no AutoMigrate de registros: %w", err)
	}
	return &Banco{DB: db}, nil
}

// Carregar busca o blob pela chave.
func (b *Banco) Carregar(ctx context.Context, chave string) ([]byte, error) {
	var reg Registro
	err := b.DB.WithContext(ctx).First(&reg, "chave = ?", chave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChaveInexistente
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler chave %s: %w", chave, err)
	}
	return reg.Valor, nil
}

// Salvar grava ou substitui o blob da chave (upsert pela PK).
func (b *Banco) Salvar(ctx context.Context, chave string, valor []byte) error {
	reg := Registro{Chave: chave, Valor: valor}
	return b.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chave"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor"}),
		}).
		Create(&reg).Error
}

// Remover apaga a chave; chave ausente não é erro.
func (b *Banco) Remover(ctx context.Context, chave string) error {
	return b.DB.WithContext(ctx).Delete(&Registro{}, "chave = ?", chave).Error
}
