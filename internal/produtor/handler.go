// internal/produtor/handler.go
package produtor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/IgoSeguros/api-corretora/internal/armazenamento"
	"github.com/gorilla/mux"
)

// Handler expõe a lista de produtores para a tela de configurações.
type Handler struct {
	Repository *Repository
}

// NewHandler cria o handler sobre o Store informado.
func NewHandler(store armazenamento.Store) *Handler {
	return &Handler{Repository: NewRepository(store)}
}

type adicionarProdutorRequest struct {
	Nome string `json:"nome"`
}

// Listar trata GET /produtores.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Repository.Listar(r.Context()))
}

// Substituir trata PUT /produtores com a lista inteira no corpo.
func (h *Handler) Substituir(w http.ResponseWriter, r *http.Request) {
	var nomes []string
	if err := json.NewDecoder(r.Body).Decode(&nomes); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	lista, err := h.Repository.Substituir(r.Context(), nomes)
	if err != nil {
		http.Error(w, "Erro ao salvar produtores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lista)
}

// Adicionar trata POST /produtores.
func (h *Handler) Adicionar(w http.ResponseWriter, r *http.Request) {
	var req adicionarProdutorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "Nome do produtor é obrigatório", http.StatusBadRequest)
		return
	}
	lista, err := h.Repository.Adicionar(r.Context(), req.Nome)
	if err != nil {
		http.Error(w, "Erro ao salvar produtores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(lista)
}

// Remover trata DELETE /produtores/{nome}.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	nome := mux.Vars(r)["nome"]
	if _, err := h.Repository.Remover(r.Context(), nome); err != nil {
		http.Error(w, "Erro ao salvar produtores", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
