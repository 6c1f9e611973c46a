// File: services/booking/store.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberbook/models"

	"github.com/go-redis/redis/v8"
)

// FormPrefix namespaces wizard sessions in Redis.
const FormPrefix = "bookingForm:"

// formTTL bounds how long an abandoned wizard session survives.
const formTTL = 30 * time.Minute

// WizardSession is one customer's in-progress trip through the booking
// wizard, held server-side between requests.
type WizardSession struct {
	SessionID string             `json:"sessionId"`
	UserID    string             `json:"userId"`
	Form      models.BookingForm `json:"form"`
}

// FormStore persists wizard sessions between requests.
type FormStore interface {
	Get(ctx context.Context, sessionID string) (*WizardSession, error)
	Save(ctx context.Context, session *WizardSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisFormStore implements FormStore as JSON blobs with a TTL.
type RedisFormStore struct {
	client *redis.Client
}

// NewRedisFormStore creates a FormStore over the given Redis client.
func NewRedisFormStore(client *redis.Client) *RedisFormStore {
	return &RedisFormStore{client: client}
}

// Get retrieves a wizard session, or ErrSessionNotFound when it expired.
func (s *RedisFormStore) Get(ctx context.Context, sessionID string) (*WizardSession, error) {
	data, err := s.client.Get(ctx, FormPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// Save stores a wizard session, refreshing its TTL.
func (s *RedisFormStore) Save(ctx context.Context, session *WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, FormPrefix+session.SessionID, data, formTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// Delete removes a wizard session.
func (s *RedisFormStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, FormPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
