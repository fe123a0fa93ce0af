// internal/pagamento/handler.go
package pagamento

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IgoSeguros/api-corretora/internal/comissao"
	"github.com/IgoSeguros/api-corretora/internal/corretora"
	"github.com/IgoSeguros/api-corretora/internal/models"
	"github.com/gorilla/mux"
)

// Handler expõe o registro e a exclusão de pagamentos de comissão.
type Handler struct {
	Servico *corretora.Servico
}

// NewHandler cria um novo handler de pagamentos.
func NewHandler(servico *corretora.Servico) *Handler {
	return &Handler{Servico: servico}
}

type registrarPagamentoRequest struct {
	PropostaID    string      `json:"propostaId"`
	ValorPago     float64     `json:"valorPago"`
	DataPagamento models.Data `json:"dataPagamento"`
}

// Registrar trata POST /pagamentos. Pagamento que estoura o teto da comissão
// volta como 422 sem alterar nada.
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req registrarPagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	pg, err := h.Servico.RegistrarPagamento(r.Context(), req.PropostaID, req.ValorPago, req.DataPagamento)
	switch {
	case errors.Is(err, corretora.ErrPropostaNaoEncontrada):
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	case errors.Is(err, comissao.ErrPagamentoExcedente):
		http.Error(w, "Valor do pagamento excede a comissão total", http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(pg)
}

// Listar trata GET /pagamentos.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Servico.ListarPagamentos())
}

// Deletar trata DELETE /pagamentos/{id}. Sempre 204, remoção idempotente.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	h.Servico.ExcluirPagamento(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}
