package models

import (
	"fmt"
	"strings"
	"time"
)

const layoutData = "2006-01-02"

// Data é uma data de calendário (sem hora) serializada como "AAAA-MM-DD",
// o formato que o armazenamento sempre usou para propostas e pagamentos.
type Data struct {
	time.Time
}

// NovaData cria uma Data a partir de ano, mês e dia.
func NovaData(ano int, mes time.Month, dia int) Data {
	return Data{time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// ParseData interpreta uma string "AAAA-MM-DD".
func ParseData(s string) (Data, error) {
	t, err := time.Parse(layoutData, s)
	if err != nil {
		return Data{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return Data{t}, nil
}

// Hoje retorna a data corrente em UTC.
func Hoje() Data {
	agora := time.Now().UTC()
	return NovaData(agora.Year(), agora.Month(), agora.Day())
}

// String formata como "AAAA-MM-DD".
func (d Data) String() string {
	return d.Format(layoutData)
}

// MarshalJSON serializa como string "AAAA-MM-DD".
func (d Data) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(layoutData) + `"`), nil
}

// UnmarshalJSON aceita "AAAA-MM-DD" e, por tolerância a dados antigos,
// timestamps RFC3339 completos (só a parte da data é mantida).
func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Data{}
		return nil
	}
	if len(s) > len(layoutData) {
		s = s[:len(layoutData)]
	}
	parsed, err := ParseData(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
