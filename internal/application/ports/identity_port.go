package ports

import "context"

// AuthEventKind distingue os eventos emitidos pelo provedor de identidade.
type AuthEventKind string

const (
	// EventSignedIn indica que uma credencial passou a ter sessão ativa.
	EventSignedIn AuthEventKind = "signed_in"
	// EventSignedOut indica o encerramento da sessão de uma credencial.
	EventSignedOut AuthEventKind = "signed_out"
)

// AuthEvent é o fato bruto de autenticação observado pelo monitor de sessão.
// Carrega apenas a identidade da credencial; o papel e demais dados de conta
// são resolvidos depois, contra o registro de contas.
type AuthEvent struct {
	Kind  AuthEventKind
	UID   string
	Email string
}

// IdentityProvider define o porto do serviço de credenciais. Cuida apenas de
// email+senha e sessões; não sabe nada sobre papéis nem sobre o registro de
// contas da aplicação.
type IdentityProvider interface {
	// CreateCredential cria a credencial e abre sessão para ela, emitindo um
	// evento EventSignedIn. Devolve domain.ErrCredencial quando o email já
	// existe ou a senha é fraca.
	CreateCredential(ctx context.Context, email, password string) (string, error)

	// SignIn valida email+senha e abre sessão, emitindo EventSignedIn.
	// Devolve domain.ErrCredencial quando a credencial não confere.
	SignIn(ctx context.Context, email, password string) (string, error)

	// SignOut encerra a sessão da credencial, emitindo EventSignedOut.
	SignOut(ctx context.Context, uid string) error

	// DeleteCredential remove a credencial recém-criada. Usado como
	// compensação quando o cadastro da conta é rejeitado.
	DeleteCredential(ctx context.Context, uid string) error

	// Events expõe o fluxo de eventos de autenticação consumido pelo
	// monitor de sessão.
	Events() <-chan AuthEvent
}
