package store

import "sync"

// Hub faz o fan-out de avisos de mudança por coleção para as subscrições
// ativas da instância. O aviso não carrega o dado: o assinante reexecuta a
// própria consulta ao recebê-lo. Canais com capacidade 1 coalescem avisos
// para consumidores lentos.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]*hubSub
}

type hubSub struct {
	collection string
	ch         chan struct{}
}

// NewHub cria um hub vazio.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]*hubSub)}
}

// Listen registra interesse em mudanças da coleção. Devolve o canal de aviso
// e uma função de remoção.
func (h *Hub) Listen(collection string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	s := &hubSub{collection: collection, ch: make(chan struct{}, 1)}
	h.subs[id] = s
	return s.ch, func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Notify avisa todos os ouvintes da coleção. Nunca bloqueia: se o canal já
// tem um aviso pendente, o novo é coalescido com ele.
func (h *Hub) Notify(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.subs {
		if s.collection != collection {
			continue
		}
		select {
		case s.ch <- struct{}{}:
		default:
		}
	}
}
