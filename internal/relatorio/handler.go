// internal/relatorio/handler.go
package relatorio

import (
	"encoding/json"
	"net/http"

	"github.com/IgoSeguros/api-corretora/internal/corretora"
)

// Handler expõe as métricas do dashboard e as séries dos gráficos.
type Handler struct {
	Servico *corretora.Servico
}

// NewHandler cria um novo handler de relatórios.
func NewHandler(servico *corretora.Servico) *Handler {
	return &Handler{Servico: servico}
}

// Metricas trata GET /dashboard/metricas.
func (h *Handler) Metricas(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Servico.Metricas())
}

// GraficoMensal trata GET /graficos/mensal: comissão por mês de cadastro,
// separada entre propostas novas e renovações.
func (h *Handler) GraficoMensal(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Servico.GraficoMensal())
}

// GraficoPorRamo trata GET /graficos/ramos.
func (h *Handler) GraficoPorRamo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Servico.GraficoPorRamo())
}

// GraficoPorSeguradora trata GET /graficos/seguradoras (cinco maiores).
func (h *Handler) GraficoPorSeguradora(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Servico.GraficoPorSeguradora())
}
