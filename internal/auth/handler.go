// internal/auth/handler.go
package auth

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/IgoSeguros/api-corretora/internal/utils"
)

// Handler trata o login da conta única do corretor. Credenciais vêm do
// ambiente: AUTH_USUARIO e AUTH_SENHA_HASH (bcrypt).
type Handler struct{}

// NewHandler cria o handler de autenticação.
func NewHandler() *Handler {
	return &Handler{}
}

type loginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
}

// Login trata POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	usuario := os.Getenv("AUTH_USUARIO")
	hash := os.Getenv("AUTH_SENHA_HASH")
	if usuario == "" || hash == "" {
		http.Error(w, "Autenticação não configurada", http.StatusInternalServerError)
		return
	}
	if req.Usuario != usuario || !utils.VerificarSenha(hash, req.Senha) {
		http.Error(w, "Usuário ou senha incorretos", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(usuario)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{Token: token, Usuario: usuario})
}
