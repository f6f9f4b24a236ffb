package chat

import (
	"context"
	"sync"
	"time"

	"sagedo/internal/domain/service"
)

const (
	// historyLimit caps how many turns a conversation keeps. Older turns
	// are dropped from the front.
	historyLimit = 20

	defaultHistoryTTL = 30 * time.Minute
	janitorInterval   = time.Minute
)

type conversation struct {
	messages  []service.ChatMessage
	expiresAt time.Time
}

// memoryHistoryStore keeps conversation history in-process with a TTL. It is
// the default store when no redis connection is configured.
type memoryHistoryStore struct {
	mu            sync.Mutex
	conversations map[string]*conversation
	ttl           time.Duration
	done          chan struct{}
}

// NewMemoryHistoryStore builds an in-process history store and starts its
// expiry janitor. Close stops the janitor.
func NewMemoryHistoryStore(ttl time.Duration) *memoryHistoryStore {
	if ttl <= 0 {
		ttl = defaultHistoryTTL
	}

	store := &memoryHistoryStore{
		conversations: make(map[string]*conversation),
		ttl:           ttl,
		done:          make(chan struct{}),
	}
	go store.janitor()

	return store
}

func (s *memoryHistoryStore) Load(_ context.Context, conversationID string) ([]service.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok || time.Now().After(conv.expiresAt) {
		return nil, nil
	}

	out := make([]service.ChatMessage, len(conv.messages))
	copy(out, conv.messages)

	return out, nil
}

func (s *memoryHistoryStore) Append(_ context.Context, conversationID string, messages ...service.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok || time.Now().After(conv.expiresAt) {
		conv = &conversation{}
		s.conversations[conversationID] = conv
	}

	conv.messages = append(conv.messages, messages...)
	if len(conv.messages) > historyLimit {
		conv.messages = conv.messages[len(conv.messages)-historyLimit:]
	}
	conv.expiresAt = time.Now().Add(s.ttl)

	return nil
}

// Close stops the expiry janitor.
func (s *memoryHistoryStore) Close() {
	close(s.done)
}

func (s *memoryHistoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, conv := range s.conversations {
				if now.After(conv.expiresAt) {
					delete(s.conversations, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
