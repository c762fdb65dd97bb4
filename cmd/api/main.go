package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/msantana/advocacia-pro/internal/application/auth"
	"github.com/msantana/advocacia-pro/internal/application/ports"
	"github.com/msantana/advocacia-pro/internal/application/session"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	infraai "github.com/msantana/advocacia-pro/internal/infrastructure/ai"
	"github.com/msantana/advocacia-pro/internal/infrastructure/docstore"
	"github.com/msantana/advocacia-pro/internal/infrastructure/identity"
	httpRouter "github.com/msantana/advocacia-pro/internal/interfaces/http"
	"github.com/msantana/advocacia-pro/internal/store"
	"github.com/msantana/advocacia-pro/internal/store/memory"
	storepg "github.com/msantana/advocacia-pro/internal/store/postgres"
	"github.com/msantana/advocacia-pro/pkg/config"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Armazém de documentos: PostgreSQL quando configurado, memória caso
	// contrário (desenvolvimento sem banco).
	var st store.Store
	dsn := cfg.DB.ConnectionString()
	if dsn == "" {
		log.Warn().Msg("sem banco configurado; usando armazém em memória")
		st = memory.New()
	} else {
		if err := storepg.Migrate(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrações do banco")
		}
		pool, err := storepg.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
		}
		defer pool.Close()

		// Redis propaga mudanças entre instâncias; sem ele o realtime
		// funciona apenas dentro da instância local.
		var notifier *storepg.Notifier
		if cfg.Redis.URL != "" {
			notifier, err = storepg.NewNotifier(ctx, cfg.Redis.URL, log)
			if err != nil {
				log.Fatal().Err(err).Msg("conexão ao Redis")
			}
		}
		pgStore := storepg.New(pool, notifier, log)
		defer pgStore.Close(ctx)
		st = pgStore
	}

	accountRepo := docstore.NewAccountRepository(st)
	invitationRepo := docstore.NewInvitationRepository(st)
	contactRepo := docstore.NewContactRepository(st)
	clientRepo := docstore.NewClientRepository(st)
	caseRepo := docstore.NewCaseRepository(st)

	identityProvider := identity.NewProvider(st, log)

	observer := session.NewObserver(identityProvider, accountRepo, log)
	go observer.Run(ctx)

	authUC := auth.NewAuthUseCase(identityProvider, accountRepo, invitationRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	contactUC := usecase.NewContactUseCase(contactRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	caseUC := usecase.NewCaseUseCase(caseRepo, clientRepo)
	invitationUC := usecase.NewInvitationUseCase(invitationRepo, accountRepo)
	teamUC := usecase.NewTeamUseCase(accountRepo, invitationRepo)

	var llm ports.LLMService
	if cfg.AI.Provider == "anthropic" {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	} else {
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	aiUC := usecase.NewAIUseCase(llm)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Advocacia Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ContactUC:    contactUC,
		ClientUC:     clientUC,
		CaseUC:       caseUC,
		InvitationUC: invitationUC,
		TeamUC:       teamUC,
		AIUC:         aiUC,
		Store:        st,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	stop()
	<-observer.Done()

	log.Info().Msg("aplicação encerrada")
}
