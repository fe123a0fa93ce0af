package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/IgoSeguros/api-corretora/internal/armazenamento"
	"github.com/IgoSeguros/api-corretora/internal/auth"
	"github.com/IgoSeguros/api-corretora/internal/corretora"
	"github.com/IgoSeguros/api-corretora/internal/pagamento"
	"github.com/IgoSeguros/api-corretora/internal/produtor"
	"github.com/IgoSeguros/api-corretora/internal/proposta"
	"github.com/IgoSeguros/api-corretora/internal/relatorio"
	"github.com/IgoSeguros/api-corretora/internal/sugestao"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func abrirStore() armazenamento.Store {
	switch os.Getenv("STORE") {
	case "redis":
		url := os.Getenv("REDIS_URL")
		if url == "" {
			url = "redis://localhost:6379/0"
		}
		store, err := armazenamento.NovoRedis(url)
		if err != nil {
			log.Fatal("Erro ao conectar no Redis: ", err)
		}
		return store
	case "postgres":
		dsn := os.Getenv("DATABASE_DSN")
		if dsn == "" {
			dsn = "host=localhost user=postgres password=postgres dbname=corretora port=5432 sslmode=disable"
		}
		store, err := armazenamento.NovoBanco(dsn)
		if err != nil {
			log.Fatal("Erro ao conectar no banco: ", err)
		}
		return store
	default:
		log.Println("STORE não definido, usando armazenamento em memória")
		return armazenamento.NovaMemoria()
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Sem arquivo .env, usando variáveis do ambiente")
	}

	store := abrirStore()
	servico := corretora.NovoServico(context.Background(), store)

	// Handlers
	authHandler := auth.NewHandler()
	propostaHandler := proposta.NewHandler(servico)
	pagamentoHandler := pagamento.NewHandler(servico)
	relatorioHandler := relatorio.NewHandler(servico)
	produtorHandler := produtor.NewHandler(store)
	sugestaoHandler := sugestao.NewHandler()

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de propostas
	api.HandleFunc("/propostas", propostaHandler.Criar).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.Listar).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/propostas/{id}", propostaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/propostas/{id}/comissao", propostaHandler.Comissao).Methods("GET")
	api.HandleFunc("/comissoes", propostaHandler.ListarComissoes).Methods("GET")

	// Rotas de pagamentos
	api.HandleFunc("/pagamentos", pagamentoHandler.Registrar).Methods("POST")
	api.HandleFunc("/pagamentos", pagamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/pagamentos/{id}", pagamentoHandler.Deletar).Methods("DELETE")

	// Rotas de relatórios
	api.HandleFunc("/dashboard/metricas", relatorioHandler.Metricas).Methods("GET")
	api.HandleFunc("/graficos/mensal", relatorioHandler.GraficoMensal).Methods("GET")
	api.HandleFunc("/graficos/ramos", relatorioHandler.GraficoPorRamo).Methods("GET")
	api.HandleFunc("/graficos/seguradoras", relatorioHandler.GraficoPorSeguradora).Methods("GET")

	// Rotas de produtores
	api.HandleFunc("/produtores", produtorHandler.Listar).Methods("GET")
	api.HandleFunc("/produtores", produtorHandler.Substituir).Methods("PUT")
	api.HandleFunc("/produtores", produtorHandler.Adicionar).Methods("POST")
	api.HandleFunc("/produtores/{nome}", produtorHandler.Remover).Methods("DELETE")

	// Pré-preenchimento do formulário a partir do texto da apólice
	api.HandleFunc("/sugestoes", sugestaoHandler.Extrair).Methods("POST")

	porta := os.Getenv("PORTA")
	if porta == "" {
		porta = "8080"
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
