package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/msantana/advocacia-pro/internal/application/ports"
	"github.com/msantana/advocacia-pro/internal/domain"
	"github.com/msantana/advocacia-pro/internal/store"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

// minPasswordLen é o mínimo aceito para senhas novas.
const minPasswordLen = 6

var _ ports.IdentityProvider = (*Provider)(nil)

// Provider implementa o serviço de credenciais sobre a coleção credentials.
// As senhas são guardadas como hash bcrypt; os eventos de autenticação saem
// por um canal bufferizado consumido pelo monitor de sessão.
type Provider struct {
	st     store.Store
	events chan ports.AuthEvent
	log    *logger.Logger
}

// NewProvider constrói o provedor de identidade.
func NewProvider(st store.Store, log *logger.Logger) *Provider {
	return &Provider{
		st:     st,
		events: make(chan ports.AuthEvent, 64),
		log:    log,
	}
}

// CreateCredential cria a credencial com email único e abre sessão.
func (p *Provider) CreateCredential(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("email inválido: %w", domain.ErrCredencial)
	}
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("senha muito curta: %w", domain.ErrCredencial)
	}

	existing, err := p.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("email já possui credencial: %w", domain.ErrCredencial)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("gerar hash da senha: %w", err)
	}

	uid := uuid.New().String()
	err = p.st.Set(ctx, store.ColCredentials, uid, map[string]any{
		"email":        email,
		"passwordHash": string(hash),
		"createdAt":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("criar credencial: %w", err)
	}

	p.emit(ports.AuthEvent{Kind: ports.EventSignedIn, UID: uid, Email: email})
	return uid, nil
}

// SignIn valida a senha contra o hash guardado e abre sessão.
func (p *Provider) SignIn(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	doc, err := p.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", fmt.Errorf("credencial não encontrada: %w", domain.ErrCredencial)
	}
	hash, _ := doc.Data["passwordHash"].(string)
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", fmt.Errorf("senha incorreta: %w", domain.ErrCredencial)
	}

	p.emit(ports.AuthEvent{Kind: ports.EventSignedIn, UID: doc.ID, Email: email})
	return doc.ID, nil
}

// SignOut encerra a sessão da credencial.
func (p *Provider) SignOut(ctx context.Context, uid string) error {
	doc, err := p.st.Get(ctx, store.ColCredentials, uid)
	if err != nil {
		return fmt.Errorf("buscar credencial: %w", err)
	}
	email := ""
	if doc != nil {
		email, _ = doc.Data["email"].(string)
	}
	p.emit(ports.AuthEvent{Kind: ports.EventSignedOut, UID: uid, Email: email})
	return nil
}

// DeleteCredential remove a credencial. Remoção é idempotente.
func (p *Provider) DeleteCredential(ctx context.Context, uid string) error {
	if err := p.st.Delete(ctx, store.ColCredentials, uid); err != nil {
		return fmt.Errorf("remover credencial: %w", err)
	}
	p.emit(ports.AuthEvent{Kind: ports.EventSignedOut, UID: uid})
	return nil
}

// Events expõe o canal de eventos de autenticação.
func (p *Provider) Events() <-chan ports.AuthEvent {
	return p.events
}

func (p *Provider) findByEmail(ctx context.Context, email string) (*store.Document, error) {
	snap, err := p.st.Query(ctx, store.Query{
		Collection: store.ColCredentials,
		Filters:    []store.Filter{{Field: "email", Op: store.OpEq, Value: email}},
	})
	if err != nil {
		return nil, fmt.Errorf("consultar credenciais: %w", err)
	}
	if len(snap) == 0 {
		return nil, nil
	}
	doc := snap[0]
	return &doc, nil
}

// emit envia sem bloquear; se ninguém drena o canal, o evento mais antigo
// pendente é menos importante que travar o fluxo de autenticação.
func (p *Provider) emit(ev ports.AuthEvent) {
	select {
	case p.events <- ev:
	default:
		p.log.Warn().Str("uid", ev.UID).Str("kind", string(ev.Kind)).
			Msg("canal de eventos de autenticação cheio; evento descartado")
	}
}
