// internal/proposta/handler.go
package proposta

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IgoSeguros/api-corretora/internal/corretora"
	"github.com/gorilla/mux"
)

// Handler expõe o CRUD de propostas sobre o serviço da corretora.
type Handler struct {
	Servico *corretora.Servico
}

// NewHandler cria um novo handler de propostas.
func NewHandler(servico *corretora.Servico) *Handler {
	return &Handler{Servico: servico}
}

// Criar trata POST /propostas.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dados corretora.NovaProposta
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	p := h.Servico.CriarProposta(r.Context(), dados)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// Listar trata GET /propostas.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Servico.ListarPropostas())
}

// BuscarPorID trata GET /propostas/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	p, err := h.Servico.BuscarProposta(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /propostas/{id} com patch parcial: só os campos
// presentes no corpo são alterados; id e data de cadastro nunca mudam.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var patch corretora.EdicaoProposta
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Servico.EditarProposta(r.Context(), mux.Vars(r)["id"], patch)
	if errors.Is(err, corretora.ErrPropostaNaoEncontrada) {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao atualizar proposta", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Deletar trata DELETE /propostas/{id}. Sempre 204: remoção é idempotente e
// cascateia os pagamentos da proposta.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	h.Servico.ExcluirProposta(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

// Comissao trata GET /propostas/{id}/comissao com a conciliação da proposta.
func (h *Handler) Comissao(w http.ResponseWriter, r *http.Request) {
	c, err := h.Servico.ConciliarProposta(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// ListarComissoes trata GET /comissoes: uma conciliação por proposta, na
// ordem da coleção.
func (h *Handler) ListarComissoes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Servico.ConciliarTodas())
}
