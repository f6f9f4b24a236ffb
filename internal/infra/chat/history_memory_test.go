package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sagedo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistoryStore_AppendAndLoad(t *testing.T) {
	store := NewMemoryHistoryStore(time.Minute)
	defer store.Close()

	ctx := context.Background()

	err := store.Append(ctx, "conv-1",
		service.ChatMessage{Role: service.ChatRoleUser, Content: "hello"},
		service.ChatMessage{Role: service.ChatRoleAssistant, Content: "Namaste!"},
	)
	require.NoError(t, err)

	history, err := store.Load(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, service.ChatRoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, "Namaste!", history[1].Content)
}

func TestMemoryHistoryStore_UnknownConversation(t *testing.T) {
	store := NewMemoryHistoryStore(time.Minute)
	defer store.Close()

	history, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryHistoryStore_CapsHistory(t *testing.T) {
	store := NewMemoryHistoryStore(time.Minute)
	defer store.Close()

	ctx := context.Background()

	for i := 0; i < historyLimit+5; i++ {
		err := store.Append(ctx, "conv-1", service.ChatMessage{
			Role:    service.ChatRoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	history, err := store.Load(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, history, historyLimit)
	// The oldest messages fell off the front.
	assert.Equal(t, "message 5", history[0].Content)
	assert.Equal(t, fmt.Sprintf("message %d", historyLimit+4), history[len(history)-1].Content)
}

func TestMemoryHistoryStore_Expiry(t *testing.T) {
	store := NewMemoryHistoryStore(20 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()

	err := store.Append(ctx, "conv-1", service.ChatMessage{Role: service.ChatRoleUser, Content: "hello"})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	history, err := store.Load(ctx, "conv-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryHistoryStore_AppendRefreshesExpiry(t *testing.T) {
	store := NewMemoryHistoryStore(60 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv-1", service.ChatMessage{Role: service.ChatRoleUser, Content: "one"}))
	time.Sleep(40 * time.Millisecond)
	require.NoError(t, store.Append(ctx, "conv-1", service.ChatMessage{Role: service.ChatRoleAssistant, Content: "two"}))
	time.Sleep(40 * time.Millisecond)

	// 80ms after the first write but only 40ms after the refresh.
	history, err := store.Load(ctx, "conv-1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
