package session

import (
	"context"
	"sync"

	"github.com/msantana/advocacia-pro/internal/application/ports"
	"github.com/msantana/advocacia-pro/internal/domain/repository"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

// State estados possíveis da sessão observada.
type State string

const (
	// StateUnknown antes do primeiro evento de autenticação.
	StateUnknown State = "unknown"
	// StateAnonymous sem credencial com sessão ativa.
	StateAnonymous State = "anonymous"
	// StateAuthorizing credencial ativa, papel ainda sendo resolvido.
	StateAuthorizing State = "authorizing"
	// StateAuthorized credencial ativa com conta registrada.
	StateAuthorized State = "authorized"
	// StateDenied credencial ativa sem conta registrada; transitório, a
	// sessão é encerrada à força em seguida.
	StateDenied State = "denied"
)

// Snapshot visão imutável da sessão num instante.
type Snapshot struct {
	State State
	UID   string
	Email string
	Role  string
}

// Observer consome os eventos do provedor de identidade e mantém a sessão
// corrente: a cada login resolve a conta no registro; credencial sem conta é
// negada e desconectada à força.
type Observer struct {
	identity    ports.IdentityProvider
	accountRepo repository.AccountRepository
	log         *logger.Logger

	mu   sync.RWMutex
	cur  Snapshot
	gen  uint64 // incrementa a cada evento; invalida resoluções em voo
	done chan struct{}
}

// NewObserver constrói o monitor de sessão no estado Unknown.
func NewObserver(identity ports.IdentityProvider, accountRepo repository.AccountRepository, log *logger.Logger) *Observer {
	return &Observer{
		identity:    identity,
		accountRepo: accountRepo,
		log:         log,
		cur:         Snapshot{State: StateUnknown},
		done:        make(chan struct{}),
	}
}

// Run consome eventos até o contexto encerrar. Deve rodar numa goroutine.
func (o *Observer) Run(ctx context.Context) {
	defer close(o.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-o.identity.Events():
			if !ok {
				return
			}
			o.handle(ctx, ev)
		}
	}
}

// Done fecha quando o Run encerra.
func (o *Observer) Done() <-chan struct{} {
	return o.done
}

// Current devolve o snapshot corrente da sessão.
func (o *Observer) Current() Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.cur
}

func (o *Observer) handle(ctx context.Context, ev ports.AuthEvent) {
	switch ev.Kind {
	case ports.EventSignedIn:
		gen := o.transition(Snapshot{State: StateAuthorizing, UID: ev.UID, Email: ev.Email})
		// A resolução corre fora do loop de eventos; um evento mais novo
		// avança a geração e o resultado atrasado é descartado.
		go o.resolve(ctx, gen, ev)
	case ports.EventSignedOut:
		o.transition(Snapshot{State: StateAnonymous})
	}
}

// transition troca o snapshot e devolve a nova geração.
func (o *Observer) transition(s Snapshot) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.gen++
	o.cur = s
	return o.gen
}

// resolve busca a conta e aplica o resultado, descartando-o se outro evento
// já avançou a geração enquanto a consulta corria.
func (o *Observer) resolve(ctx context.Context, gen uint64, ev ports.AuthEvent) {
	account, err := o.accountRepo.GetByUID(ctx, ev.UID)
	if err != nil {
		o.log.Error().Err(err).Str("uid", ev.UID).Msg("falha ao resolver conta da sessão")
		o.apply(gen, Snapshot{State: StateDenied, UID: ev.UID, Email: ev.Email})
		o.forceSignOut(ctx, gen, ev.UID)
		return
	}
	if account == nil {
		o.apply(gen, Snapshot{State: StateDenied, UID: ev.UID, Email: ev.Email})
		o.forceSignOut(ctx, gen, ev.UID)
		return
	}
	o.apply(gen, Snapshot{
		State: StateAuthorized,
		UID:   account.UID,
		Email: account.Email,
		Role:  account.Role,
	})
}

// apply grava o snapshot somente se a geração ainda é a corrente.
func (o *Observer) apply(gen uint64, s Snapshot) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.gen != gen {
		return false
	}
	o.cur = s
	return true
}

// forceSignOut encerra a sessão negada; o EventSignedOut resultante leva o
// estado a Anonymous.
func (o *Observer) forceSignOut(ctx context.Context, gen uint64, uid string) {
	o.mu.RLock()
	stale := o.gen != gen
	o.mu.RUnlock()
	if stale {
		return
	}
	if err := o.identity.SignOut(ctx, uid); err != nil {
		o.log.Warn().Err(err).Str("uid", uid).Msg("falha ao encerrar sessão negada")
	}
}
