// Package postgres implementa o porto store.Store sobre uma única tabela
// documents (collection, id, data JSONB). Cada escrita confirmada publica a
// coleção alterada num barramento de mudanças; as subscrições reexecutam a
// própria consulta ao receber o aviso. O barramento é local à instância e,
// quando há Redis configurado, propagado entre instâncias via pub/sub.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msantana/advocacia-pro/internal/store"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

var _ store.Store = (*Store)(nil)

// Store adaptador de persistência do armazém de documentos.
type Store struct {
	pool     *pgxpool.Pool
	hub      *store.Hub
	notifier *Notifier
	log      *logger.Logger
}

// New constrói o adaptador. notifier pode ser nil (sem Redis: avisos apenas locais).
func New(pool *pgxpool.Pool, n *Notifier, log *logger.Logger) *Store {
	s := &Store{pool: pool, hub: store.NewHub(), notifier: n, log: log}
	if n != nil {
		n.onRemote = s.hub.Notify
	}
	return s
}

// Create insere um documento com id novo.
func (s *Store) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Set grava o documento, substituindo-o se existir.
func (s *Store) Set(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	query := `
		INSERT INTO documents (collection, id, data, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := s.pool.Exec(ctx, query, collection, id, raw); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	s.changed(ctx, collection)
	return nil
}

// Get devolve o documento ou (nil, nil) se ausente.
func (s *Store) Get(ctx context.Context, collection, id string) (*store.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	doc := &store.Document{ID: id}
	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return nil, fmt.Errorf("deserializar %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Update aplica um merge raso dos campos do patch (operador || do JSONB).
func (s *Store) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	raw, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("serializar patch: %w", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET data = data || $3, updated_at = now()
		 WHERE collection = $1 AND id = $2`,
		collection, id, raw,
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update %s/%s: documento inexistente", collection, id)
	}
	s.changed(ctx, collection)
	return nil
}

// Delete remove o documento; ausente não é erro.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() > 0 {
		s.changed(ctx, collection)
	}
	return nil
}

// Query executa a consulta e devolve o snapshot.
func (s *Store) Query(ctx context.Context, q store.Query) (store.Snapshot, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{q.Collection}

	for _, f := range q.Filters {
		if f.Op != store.OpEq {
			return nil, fmt.Errorf("query %s: operador não suportado %q", q.Collection, f.Op)
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("query %s: serializar filtro: %w", q.Collection, err)
		}
		// comparação JSONB: preserva o tipo do valor (string, número, bool)
		sb.WriteString(fmt.Sprintf(" AND data -> $%d = $%d::jsonb", len(args)+1, len(args)+2))
		args = append(args, f.Field, string(val))
	}

	if q.OrderBy != nil {
		dir := "ASC"
		if q.OrderBy.Desc {
			dir = "DESC"
		}
		sb.WriteString(fmt.Sprintf(" ORDER BY data ->> $%d %s", len(args)+1, dir))
		args = append(args, q.OrderBy.Field)
	} else {
		sb.WriteString(" ORDER BY id")
	}

	rows, err := s.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.Collection, err)
	}
	defer rows.Close()

	var snap store.Snapshot
	for rows.Next() {
		var doc store.Document
		var raw []byte
		if err := rows.Scan(&doc.ID, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.Collection, err)
		}
		if err := json.Unmarshal(raw, &doc.Data); err != nil {
			return nil, fmt.Errorf("deserializar %s/%s: %w", q.Collection, doc.ID, err)
		}
		snap = append(snap, doc)
	}
	return snap, rows.Err()
}

// Subscribe entrega snapshots da consulta até Unsubscribe. Um erro de
// reconsulta desativa apenas esta subscrição (registrado em log).
func (s *Store) Subscribe(ctx context.Context, q store.Query) (*store.Subscription, error) {
	onErr := func(err error) {
		s.log.Error().Err(err).Str("collection", q.Collection).Msg("subscrição desativada por erro de consulta")
	}
	return store.Serve(ctx, q, s.Query, s.hub, onErr), nil
}

// changed avisa as subscrições locais e, se houver Redis, as demais instâncias.
func (s *Store) changed(ctx context.Context, collection string) {
	s.hub.Notify(collection)
	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, collection); err != nil {
			// melhor esforço: a instância local já foi avisada
			s.log.Warn().Err(err).Str("collection", collection).Msg("publicar mudança no Redis")
		}
	}
}

// Close encerra o barramento remoto (o pool é fechado pelo chamador).
func (s *Store) Close(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Close(ctx)
	}
}
