// Package memory implementa o porto store.Store inteiramente em memória.
// Usado nos testes e em desenvolvimento sem banco configurado. A semântica de
// filtros, ordenação e subscrições espelha a do adaptador PostgreSQL: os
// documentos são normalizados via JSON para que comparações se comportem como
// no JSONB (números viram float64, tempos viram strings RFC3339).
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/msantana/advocacia-pro/internal/store"
)

var _ store.Store = (*Store)(nil)

// Store armazém de documentos em memória, seguro para uso concorrente.
type Store struct {
	mu   sync.RWMutex
	cols map[string]map[string]map[string]any
	hub  *store.Hub
}

// New cria um armazém vazio.
func New() *Store {
	return &Store{
		cols: make(map[string]map[string]map[string]any),
		hub:  store.NewHub(),
	}
}

// Create insere o documento com id novo.
func (s *Store) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Set grava o documento, substituindo-o se existir.
func (s *Store) Set(_ context.Context, collection, id string, data map[string]any) error {
	norm, err := normalize(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	col := s.cols[collection]
	if col == nil {
		col = make(map[string]map[string]any)
		s.cols[collection] = col
	}
	col[id] = norm
	s.mu.Unlock()
	s.hub.Notify(collection)
	return nil
}

// Get devolve o documento ou (nil, nil) se ausente.
func (s *Store) Get(_ context.Context, collection, id string) (*store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.cols[collection][id]
	if !ok {
		return nil, nil
	}
	return &store.Document{ID: id, Data: copyMap(data)}, nil
}

// Update aplica um merge raso dos campos do patch.
func (s *Store) Update(_ context.Context, collection, id string, partial map[string]any) error {
	norm, err := normalize(partial)
	if err != nil {
		return err
	}
	s.mu.Lock()
	data, ok := s.cols[collection][id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("update %s/%s: documento inexistente", collection, id)
	}
	for k, v := range norm {
		data[k] = v
	}
	s.mu.Unlock()
	s.hub.Notify(collection)
	return nil
}

// Delete remove o documento; ausente não é erro.
func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	col, ok := s.cols[collection]
	existed := false
	if ok {
		_, existed = col[id]
		delete(col, id)
	}
	s.mu.Unlock()
	if existed {
		s.hub.Notify(collection)
	}
	return nil
}

// Query executa a consulta sobre o estado atual.
func (s *Store) Query(_ context.Context, q store.Query) (store.Snapshot, error) {
	s.mu.RLock()
	var snap store.Snapshot
	for id, data := range s.cols[q.Collection] {
		if matches(data, q.Filters) {
			snap = append(snap, store.Document{ID: id, Data: copyMap(data)})
		}
	}
	s.mu.RUnlock()

	if q.OrderBy != nil {
		field, desc := q.OrderBy.Field, q.OrderBy.Desc
		sort.SliceStable(snap, func(i, j int) bool {
			c := compare(snap[i].Data[field], snap[j].Data[field])
			if desc {
				return c > 0
			}
			return c < 0
		})
	} else {
		// ordem estável por id para resultados determinísticos
		sort.Slice(snap, func(i, j int) bool { return snap[i].ID < snap[j].ID })
	}
	return snap, nil
}

// Subscribe entrega snapshots da consulta até Unsubscribe.
func (s *Store) Subscribe(ctx context.Context, q store.Query) (*store.Subscription, error) {
	return store.Serve(ctx, q, s.Query, s.hub, nil), nil
}

func matches(data map[string]any, filters []store.Filter) bool {
	for _, f := range filters {
		if f.Op != store.OpEq {
			return false
		}
		want, err := normalizeValue(f.Value)
		if err != nil {
			return false
		}
		if !reflect.DeepEqual(data[f.Field], want) {
			return false
		}
	}
	return true
}

// compare ordena valores JSON heterogêneos: números antes como float64,
// strings byte a byte (tempos RFC3339 em UTC ordenam cronologicamente assim,
// igual ao ORDER BY data->>campo do adaptador PostgreSQL).
func compare(a, b any) int {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// normalize passa o mapa por um ciclo JSON para reproduzir a representação
// que o JSONB devolveria (float64, string, bool, nil, mapas e slices).
func normalize(data map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("normalizar documento: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("normalizar documento: %w", err)
	}
	return out, nil
}

func normalizeValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
