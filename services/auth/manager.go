package auth

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Manager hands out session stores bound to per-portal-session persisted
// storage. The HTTP layer is stateless: each request rebuilds the store from
// Redis through Initialize, which is exactly the hydrate-once semantics the
// store guarantees.
type Manager struct {
	api    API
	client *redis.Client
}

// NewManager creates a session manager over the given auth API and Redis
// client used for persisted storage.
func NewManager(api API, client *redis.Client) *Manager {
	return &Manager{api: api, client: client}
}

// Session returns the initialized session store for a portal session ID. An
// empty ID yields a store with no storage backend, which settles immediately
// as unauthenticated.
func (m *Manager) Session(ctx context.Context, sessionID string) *SessionStore {
	var storage Storage
	if sessionID != "" && m.client != nil {
		storage = NewRedisStorage(m.client, sessionID)
	}
	store := NewSessionStore(m.api, storage)
	store.Initialize(ctx)
	return store
}
