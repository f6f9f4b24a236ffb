package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sagedo/config"
	"sagedo/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const historyKeyPrefix = "chat:history:"

// redisHistoryStore keeps conversation history in a redis list per
// conversation, trimmed to historyLimit and expiring after the TTL.
type redisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

type storedMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newRedisHistoryStore(client *redis.Client, ttl time.Duration) *redisHistoryStore {
	if ttl <= 0 {
		ttl = defaultHistoryTTL
	}

	return &redisHistoryStore{client: client, ttl: ttl}
}

func (s *redisHistoryStore) Load(ctx context.Context, conversationID string) ([]service.ChatMessage, error) {
	raw, err := s.client.LRange(ctx, historyKeyPrefix+conversationID, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "load chat history")
	}

	messages := make([]service.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var stored storedMessage
		if err := json.Unmarshal([]byte(item), &stored); err != nil {
			continue
		}
		messages = append(messages, service.ChatMessage{
			Role:    service.ChatRole(stored.Role),
			Content: stored.Content,
		})
	}

	return messages, nil
}

func (s *redisHistoryStore) Append(ctx context.Context, conversationID string, messages ...service.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		encoded, err := json.Marshal(storedMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
		if err != nil {
			return errors.Wrap(err, "encode chat message")
		}
		values = append(values, encoded)
	}

	key := historyKeyPrefix + conversationID
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -historyLimit, -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "append chat history")
	}

	return nil
}

// HistoryStoreParams defines the parameters required for the history store.
type HistoryStoreParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// NewHistoryStore selects the history backend: redis when configured,
// otherwise the in-process TTL store.
func NewHistoryStore(params HistoryStoreParams) (service.ChatHistoryStore, error) {
	ttl := params.Config.Assistant.HistoryTTL

	if params.Config.Redis == nil {
		store := NewMemoryHistoryStore(ttl)
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				store.Close()

				return nil
			},
		})

		return store, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Chat history backed by redis", slog.String("addr", params.Config.Redis.Addr))

	return newRedisHistoryStore(client, ttl), nil
}
