package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msantana/advocacia-pro/internal/application/auth"
	"github.com/msantana/advocacia-pro/internal/application/usecase"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/store"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ContactUC    *usecase.ContactUseCase
	ClientUC     *usecase.ClientUseCase
	CaseUC       *usecase.CaseUseCase
	InvitationUC *usecase.InvitationUseCase
	TeamUC       *usecase.TeamUseCase
	AIUC         *usecase.AIUseCase
	Store        store.Store
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Formulário de contato do site (público)
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contacts", contactHandler.Submit)

	// Realtime (token via query string, validado no Upgrade)
	realtimeHandler := NewRealtimeHandler(deps.Store, deps.JWTSecret, deps.Log)
	api.Get("/realtime/:collection", realtimeHandler.Upgrade, realtimeHandler.Handler())

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sessão
	protected.Get("/auth/session", authHandler.Session)
	protected.Post("/auth/logout", authHandler.Logout)

	// Caixa de entrada de contatos
	protected.Get("/contacts", contactHandler.List)
	protected.Delete("/contacts/:id", contactHandler.Delete)

	// Clientes; exclusão restrita a main_admin
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleMainAdmin), clientHandler.Delete)

	// Processos; exclusão restrita a main_admin
	cases := protected.Group("/cases")
	caseHandler := NewCaseHandler(deps.CaseUC)
	cases.Post("/", caseHandler.Create)
	cases.Get("/", caseHandler.List)
	cases.Get("/:id", caseHandler.GetByID)
	cases.Put("/:id", caseHandler.Update)
	cases.Delete("/:id", RequireRole(entity.RoleMainAdmin), caseHandler.Delete)

	// Equipe e convites (apenas main_admin)
	teamHandler := NewTeamHandler(deps.TeamUC, deps.InvitationUC)
	protected.Get("/users", RequireRole(entity.RoleMainAdmin), teamHandler.List)
	protected.Post("/invitations", RequireRole(entity.RoleMainAdmin), teamHandler.Invite)
	protected.Delete("/invitations/:email", RequireRole(entity.RoleMainAdmin), teamHandler.Revoke)

	// Análise de texto assistida por IA
	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ai/analyze", aiHandler.Analyze)
}
