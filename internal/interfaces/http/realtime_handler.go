package http

import (
	"context"
	"sort"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/msantana/advocacia-pro/internal/application/dto"
	"github.com/msantana/advocacia-pro/internal/domain/entity"
	"github.com/msantana/advocacia-pro/internal/infrastructure/docstore"
	"github.com/msantana/advocacia-pro/internal/store"
	"github.com/msantana/advocacia-pro/pkg/jwt"
	"github.com/msantana/advocacia-pro/pkg/logger"
)

// realtimeMessage é o quadro enviado ao painel a cada snapshot.
type realtimeMessage struct {
	Collection string        `json:"collection"`
	Documents  []realtimeDoc `json:"documents"`
}

type realtimeDoc struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// RealtimeHandler entrega snapshots ao vivo das coleções do painel por
// WebSocket. Cada conexão mantém uma subscrição; o snapshot inteiro é
// reenviado a cada mudança, como o painel espera.
type RealtimeHandler struct {
	st        store.Store
	jwtSecret string
	coll      *collate.Collator
	log       *logger.Logger
}

// NewRealtimeHandler constrói o handler.
func NewRealtimeHandler(st store.Store, jwtSecret string, log *logger.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		st:        st,
		jwtSecret: jwtSecret,
		coll:      collate.New(language.BrazilianPortuguese, collate.IgnoreCase),
		log:       log,
	}
}

// Upgrade valida o token e a coleção antes do upgrade para WebSocket.
// Navegadores não enviam headers em conexões WS, então o token vem em
// ?token=; o papel é guardado nos locals para o handler da conexão.
func (h *RealtimeHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(dto.ErrorResponse{Code: "UPGRADE_REQUIRED", Message: "conexão WebSocket esperada"})
	}
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "parâmetro token obrigatório"})
	}
	uid, _, role, err := jwt.Parse(h.jwtSecret, token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
	}

	collection := c.Params("collection")
	if _, ok := h.query(collection); !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_COLLECTION", Message: "coleção não disponível em tempo real"})
	}
	// A lista de contas expõe a equipe inteira; só o main_admin vê.
	if collection == store.ColUsers && role != entity.RoleMainAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta coleção"})
	}

	c.Locals(LocalUID, uid)
	c.Locals(LocalRole, role)
	return c.Next()
}

// Handler devolve o handler WebSocket da rota /api/realtime/:collection.
func (h *RealtimeHandler) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		collection := conn.Params("collection")
		q, ok := h.query(collection)
		if !ok {
			_ = conn.Close()
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub, err := h.st.Subscribe(ctx, q)
		if err != nil {
			h.log.Error().Err(err).Str("collection", collection).Msg("falha ao abrir subscrição realtime")
			_ = conn.Close()
			return
		}
		defer sub.Unsubscribe()

		// Leitura apenas para detectar o fechamento da conexão.
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-sub.C:
				if !ok {
					return
				}
				if err := conn.WriteJSON(h.message(collection, snap)); err != nil {
					return
				}
			}
		}
	})
}

// query devolve a consulta canônica da coleção, se suportada.
func (h *RealtimeHandler) query(collection string) (store.Query, bool) {
	switch collection {
	case store.ColContacts:
		return docstore.ContactsQuery(), true
	case store.ColClients:
		return docstore.ClientsQuery(), true
	case store.ColCases:
		return docstore.CasesQuery(), true
	case store.ColUsers:
		return store.Query{Collection: store.ColUsers}, true
	default:
		return store.Query{}, false
	}
}

// message monta o quadro do snapshot. Clientes saem em ordem alfabética
// pt-BR, a mesma da listagem REST.
func (h *RealtimeHandler) message(collection string, snap store.Snapshot) realtimeMessage {
	docs := make([]realtimeDoc, 0, len(snap))
	for _, d := range snap {
		docs = append(docs, realtimeDoc{ID: d.ID, Data: d.Data})
	}
	if collection == store.ColClients {
		sort.SliceStable(docs, func(i, j int) bool {
			ni, _ := docs[i].Data["name"].(string)
			nj, _ := docs[j].Data["name"].(string)
			return h.coll.CompareString(ni, nj) < 0
		})
	}
	return realtimeMessage{Collection: collection, Documents: docs}
}
