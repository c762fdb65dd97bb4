// Package store define o porto do armazém de documentos consumido pela
// aplicação: coleções de documentos JSON com CRUD, consultas filtradas e
// subscrições em tempo real. As implementações ficam em store/postgres
// (produção) e store/memory (testes e desenvolvimento sem banco).
package store

import "context"

// Nomes das coleções persistidas.
const (
	ColUsers       = "users"
	ColInvitations = "invitations"
	ColContacts    = "contacts"
	ColClients     = "clients"
	ColCases       = "cases"
	ColCredentials = "credentials"
)

// Document é um documento de uma coleção: id opaco + campos JSON.
type Document struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// Op operadores de filtro suportados.
type Op string

const (
	OpEq Op = "=="
)

// Filter restringe uma consulta a documentos cujo campo casa com o valor.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Order ordena o resultado por um campo.
type Order struct {
	Field string
	Desc  bool
}

// Query descreve uma consulta sobre uma coleção.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    *Order
}

// Snapshot é o resultado completo de uma consulta num instante.
type Snapshot []Document

// Subscription é um fluxo cancelável de snapshots. C entrega um snapshot
// inicial e depois um novo a cada mudança na coleção; consumidores lentos
// recebem snapshots coalescidos (o mais recente vence). Unsubscribe fecha C;
// nunca deixar uma subscrição viva ao abandonar a vista.
type Subscription struct {
	C      <-chan Snapshot
	cancel func()
}

// NewSubscription monta uma subscrição a partir do canal e da função de cancelamento.
func NewSubscription(c <-chan Snapshot, cancel func()) *Subscription {
	return &Subscription{C: c, cancel: cancel}
}

// Unsubscribe cancela a subscrição e libera os recursos associados. Idempotente.
func (s *Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Store é o porto do armazém de documentos (espelha a interface do backend
// gerenciado: create/set/get/update/delete/query/subscribe).
type Store interface {
	// Create insere um documento com id gerado e o devolve.
	Create(ctx context.Context, collection string, data map[string]any) (string, error)
	// Set grava o documento com o id dado, substituindo-o se existir.
	Set(ctx context.Context, collection, id string, data map[string]any) error
	// Get devolve o documento ou (nil, nil) se ausente.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Update aplica um patch parcial (merge raso de campos); erro se o documento não existe.
	Update(ctx context.Context, collection, id string, partial map[string]any) error
	// Delete remove o documento; idempotente (ausente não é erro).
	Delete(ctx context.Context, collection, id string) error
	// Query executa a consulta e devolve o snapshot.
	Query(ctx context.Context, q Query) (Snapshot, error)
	// Subscribe entrega snapshots da consulta até Unsubscribe (ou cancelamento do ctx).
	Subscribe(ctx context.Context, q Query) (*Subscription, error)
}
