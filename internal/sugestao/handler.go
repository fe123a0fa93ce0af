// internal/sugestao/handler.go
package sugestao

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Handler expõe o extrator como pré-preenchimento do formulário de proposta.
type Handler struct{}

// NewHandler cria o handler de sugestões.
func NewHandler() *Handler {
	return &Handler{}
}

type extrairRequest struct {
	Texto string `json:"texto"`
}

// Extrair trata POST /sugestoes: recebe o texto da apólice e devolve os
// campos sugeridos. Nunca grava nada.
func (h *Handler) Extrair(w http.ResponseWriter, r *http.Request) {
	var req extrairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Texto) == "" {
		http.Error(w, "Texto da apólice é obrigatório", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Extrair(req.Texto))
}
