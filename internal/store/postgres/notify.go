package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/msantana/advocacia-pro/pkg/logger"
)

const changesChannel = "docstore:changes"

// changeMessage é o payload publicado no canal de mudanças.
// Instance evita que uma instância reaja às próprias escritas (o hub local
// já foi avisado de forma síncrona).
type changeMessage struct {
	Instance   string `json:"instance"`
	Collection string `json:"collection"`
}

// Notifier propaga avisos de mudança entre instâncias via Redis pub/sub.
type Notifier struct {
	client   *redis.Client
	instance string
	onRemote func(collection string)
	sub      *redis.PubSub
	log      *logger.Logger
}

// NewNotifier conecta ao Redis e começa a escutar mudanças de outras instâncias.
func NewNotifier(ctx context.Context, redisURL string, log *logger.Logger) (*Notifier, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping Redis: %w", err)
	}

	n := &Notifier{
		client:   client,
		instance: uuid.New().String(),
		log:      log,
	}
	n.sub = client.Subscribe(ctx, changesChannel)
	go n.listen()
	return n, nil
}

// Publish avisa as demais instâncias de que a coleção mudou.
func (n *Notifier) Publish(ctx context.Context, collection string) error {
	raw, err := json.Marshal(changeMessage{Instance: n.instance, Collection: collection})
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, changesChannel, raw).Err()
}

// listen consome mensagens do canal e repassa ao hub local as de outras instâncias.
func (n *Notifier) listen() {
	for msg := range n.sub.Channel() {
		var cm changeMessage
		if err := json.Unmarshal([]byte(msg.Payload), &cm); err != nil {
			n.log.Warn().Err(err).Msg("mensagem de mudança malformada")
			continue
		}
		if cm.Instance == n.instance {
			continue
		}
		if n.onRemote != nil {
			n.onRemote(cm.Collection)
		}
	}
}

// Close encerra a escuta e a conexão.
func (n *Notifier) Close(_ context.Context) {
	if n.sub != nil {
		_ = n.sub.Close()
	}
	_ = n.client.Close()
}
