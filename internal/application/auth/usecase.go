package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/application/ports"
	"github.com/msantana/advocacia-pro/internal/domain"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
	"github.com/msantana/advocacia-pro/pkg/jwt"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro, login, logout e sessão.
type AuthUseCase struct {
	identity       ports.IdentityProvider
	accountRepo    repository.AccountRepository
	invitationRepo repository.InvitationRepository
	jwtCfg         JWTConfig
	log            *logger.Logger
}

// NewAuthUseCase constrói o caso de uso de autenticação.
func NewAuthUseCase(
	identity ports.IdentityProvider,
	accountRepo repository.AccountRepository,
	invitationRepo repository.InvitationRepository,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		identity:       identity,
		accountRepo:    accountRepo,
		invitationRepo: invitationRepo,
		jwtCfg:         jwtCfg,
		log:            log,
	}
}

// Register executa o protocolo de cadastro:
//
//  1. Cria a credencial no provedor de identidade. Falha aqui aborta tudo.
//  2. Se o registro de contas está vazio, a conta vira main_admin (bootstrap
//     do primeiro usuário).
//  3. Caso contrário, o email precisa de um convite pendente; sem convite a
//     credencial recém-criada é removida (compensação) e o cadastro é
//     rejeitado.
//  4. A conta é gravada no registro e o convite, se houver, é consumido.
//
// A verificação de registro vazio não é atômica com a criação da conta: dois
// cadastros simultâneos num registro vazio podem ambos virar main_admin. Com
// um único fundador fazendo o bootstrap isso não ocorre na prática.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	uid, err := uc.identity.CreateCredential(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	role, invited, err := uc.resolveRole(ctx, email)
	if err != nil {
		uc.compensate(ctx, uid, email)
		return nil, err
	}

	account := &entity.Account{
		UID:       uid,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		uc.compensate(ctx, uid, email)
		return nil, fmt.Errorf("gravar conta: %w", err)
	}

	if invited {
		// Consumo idempotente: um convite já removido não é erro.
		if err := uc.invitationRepo.Delete(ctx, email); err != nil {
			uc.log.Warn().Err(err).Str("email", email).Msg("falha ao consumir convite")
		}
	}

	return uc.respond(account)
}

// resolveRole decide o papel da conta nova: main_admin no bootstrap, o papel
// do convite quando há convite, e rejeição caso contrário.
func (uc *AuthUseCase) resolveRole(ctx context.Context, email string) (string, bool, error) {
	any, err := uc.accountRepo.Any(ctx)
	if err != nil {
		return "", false, fmt.Errorf("consultar registro de contas: %w", err)
	}
	if !any {
		return entity.RoleMainAdmin, false, nil
	}

	inv, err := uc.invitationRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", false, fmt.Errorf("consultar convites: %w", err)
	}
	if inv == nil {
		return "", false, domain.ErrRegistroNaoAutorizado
	}
	return inv.Role, true, nil
}

// compensate desfaz a credencial quando o cadastro da conta falha depois de
// a credencial já existir.
func (uc *AuthUseCase) compensate(ctx context.Context, uid, email string) {
	if err := uc.identity.DeleteCredential(ctx, uid); err != nil {
		// Credencial órfã: sem conta no registro, o login dela cai em
		// ErrContaSemRegistro e a sessão é encerrada à força.
		uc.log.Error().Err(err).Str("email", email).Msg("falha ao remover credencial órfã")
	}
}

// Login valida a credencial e exige conta correspondente no registro.
// Credencial válida sem conta registrada tem a sessão encerrada à força.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	uid, err := uc.identity.SignIn(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("consultar conta: %w", err)
	}
	if account == nil {
		if err := uc.identity.SignOut(ctx, uid); err != nil {
			uc.log.Warn().Err(err).Str("uid", uid).Msg("falha ao encerrar sessão sem registro")
		}
		return nil, domain.ErrContaSemRegistro
	}

	return uc.respond(account)
}

// Logout encerra a sessão da credencial.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.identity.SignOut(ctx, uid); err != nil {
		return fmt.Errorf("encerrar sessão: %w", err)
	}
	return nil
}

// CurrentAccount resolve a conta de um token já validado. Usado pela rota de
// sessão para restaurar o estado do painel após recarga.
func (uc *AuthUseCase) CurrentAccount(ctx context.Context, uid string) (*dto.SessionResponse, error) {
	account, err := uc.accountRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("consultar conta: %w", err)
	}
	if account == nil {
		return nil, domain.ErrContaSemRegistro
	}
	return &dto.SessionResponse{
		State: "authorized",
		UID:   account.UID,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

func (uc *AuthUseCase) respond(account *entity.Account) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.UID, account.Email, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("gerar token: %w", err)
	}
	return &dto.AuthResponse{
		Token: token,
		UID:   account.UID,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

// IsCredentialErr indica se o erro deve ser apresentado como falha genérica
// de credenciais, sem vazar se o email existe.
func IsCredentialErr(err error) bool {
	return errors.Is(err, domain.ErrCredencial) || errors.Is(err, domain.ErrContaSemRegistro)
}
