package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	// ErrCredencial cobre email já em uso e senha fraca ao criar a credencial.
	// A mensagem concreta vem embrulhada pelo provedor de identidade.
	ErrCredencial = errors.New("credencial inválida ou já em uso")

	// ErrRegistroNaoAutorizado: registro sem convite pendente com registro de contas não vazio.
	// A credencial recém-criada é removida antes de devolver este erro.
	ErrRegistroNaoAutorizado = errors.New("registro não autorizado: é necessário um convite")

	ErrConviteDuplicado = errors.New("já existe um convite pendente para este email")
	ErrEmailJaRegistrado = errors.New("já existe uma conta com este email")

	// ErrContaSemRegistro: identidade autenticada sem registro de conta correspondente.
	// Nunca é exibido ao usuário; dispara sign-out forçado silencioso.
	ErrContaSemRegistro = errors.New("conta autenticada sem registro correspondente")

	ErrNaoEncontrado   = errors.New("recurso não encontrado")
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrNaoAutorizado   = errors.New("não autorizado")
	ErrPermissaoNegada = errors.New("permissão negada")
)
