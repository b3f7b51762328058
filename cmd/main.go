package main

import (
	"fmt"
	"net/http"

	"github.com/InstitutoAvance/api-comercial/internal/agendamento"
	"github.com/InstitutoAvance/api-comercial/internal/auth"
	"github.com/InstitutoAvance/api-comercial/internal/comissao"
	"github.com/InstitutoAvance/api-comercial/internal/config"
	"github.com/InstitutoAvance/api-comercial/internal/dashboard"
	"github.com/InstitutoAvance/api-comercial/internal/lead"
	"github.com/InstitutoAvance/api-comercial/internal/nivel"
	"github.com/InstitutoAvance/api-comercial/internal/notificacao"
	"github.com/InstitutoAvance/api-comercial/internal/relatorio"
	"github.com/InstitutoAvance/api-comercial/internal/usuario"
	"github.com/InstitutoAvance/api-comercial/internal/venda"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	config.CarregarEnv()
	config.ConfigurarLogger()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.Env("DB_HOST", "localhost"),
		config.Env("DB_USER", "postgres"),
		config.Env("DB_PASSWORD", "postgres"),
		config.Env("DB_NAME", "comercial"),
		config.Env("DB_PORT", "5432"),
		config.Env("DB_SSL_MODE", "disable"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&nivel.Nivel{},
		&lead.Lead{},
		&venda.Venda{},
		&agendamento.Agendamento{},
		&comissao.HistoricoMultiplicador{},
	); err != nil {
		logrus.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Dados de referência: níveis padrão quando a tabela está vazia
	nivelRepo := nivel.NewRepository(db)
	if err := nivelRepo.SeedPadrao(); err != nil {
		logrus.WithError(err).Fatal("erro ao semear níveis padrão")
	}

	politica := usuario.NovaPoliticaVisibilidade(config.EnvLista("DASHBOARD_ADMINS"))
	notificador := notificacao.NovoNotificador(config.Env("WEBHOOK_URL", ""))
	painel := dashboard.NovoServico(db)

	// Handlers
	usuarioHandler := usuario.NewHandler(db)
	nivelHandler := nivel.NewHandler(nivelRepo)
	leadHandler := lead.NewHandler(lead.NewRepository(db))
	vendaHandler := venda.NewHandler(venda.NewRepository(db))
	agendamentoHandler := agendamento.NewHandler(agendamento.NewRepository(db), lead.NewRepository(db), notificador)
	dashboardHandler := dashboard.NewHandler(painel, politica)
	relatorioHandler := relatorio.NewHandler(painel)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de usuários
	api.HandleFunc("/usuarios", usuarioHandler.ListarUsuarios).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.AtualizarUsuario).Methods("PUT")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	// Rotas de níveis (escrita restrita a admin)
	api.HandleFunc("/niveis", nivelHandler.Listar).Methods("GET")
	api.HandleFunc("/niveis/{id}", nivelHandler.BuscarPorID).Methods("GET")
	api.Handle("/niveis", auth.RequireAdmin(http.HandlerFunc(nivelHandler.Criar))).Methods("POST")
	api.Handle("/niveis/{id}", auth.RequireAdmin(http.HandlerFunc(nivelHandler.Atualizar))).Methods("PUT")
	api.Handle("/niveis/{id}", auth.RequireAdmin(http.HandlerFunc(nivelHandler.Deletar))).Methods("DELETE")

	// Rotas de leads
	api.HandleFunc("/leads", leadHandler.Criar).Methods("POST")
	api.HandleFunc("/leads", leadHandler.Listar).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/leads/{id}", leadHandler.Deletar).Methods("DELETE")

	// Rotas de vendas
	api.HandleFunc("/vendas", vendaHandler.Criar).Methods("POST")
	api.HandleFunc("/vendas", vendaHandler.Listar).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.BuscarPorID).Methods("GET")
	api.Handle("/vendas/{id}/status", auth.RequireAdmin(http.HandlerFunc(vendaHandler.AtualizarStatus))).Methods("PATCH")
	api.Handle("/vendas/{id}", auth.RequireAdmin(http.HandlerFunc(vendaHandler.Deletar))).Methods("DELETE")

	// Rotas de agendamentos
	api.HandleFunc("/agendamentos", agendamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/agendamentos", agendamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/agendamentos/{id}/resultado", agendamentoHandler.AtualizarResultado).Methods("PATCH")
	api.HandleFunc("/agendamentos/{id}", agendamentoHandler.Deletar).Methods("DELETE")

	// Painel e relatórios
	api.HandleFunc("/dashboard/comissoes", dashboardHandler.Comissoes).Methods("GET")
	api.HandleFunc("/dashboard/ranking", dashboardHandler.Ranking).Methods("GET")
	api.HandleFunc("/dashboard/supervisores", dashboardHandler.Supervisores).Methods("GET")
	api.HandleFunc("/dashboard/pendencias", dashboardHandler.Pendencias).Methods("GET")
	api.HandleFunc("/relatorios/comissoes.xlsx", relatorioHandler.ComissoesXLSX).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: config.EnvLista("CORS_ORIGINS"),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := config.Env("PORT", "8080")
	logrus.WithField("porta", porta).Info("servidor rodando")
	logrus.Fatal(http.ListenAndServe(":"+porta, handler))
}
