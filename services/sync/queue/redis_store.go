package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/kurirmed/dispatch/internal/pkg/constants"
	"github.com/kurirmed/dispatch/internal/pkg/database"
	"github.com/kurirmed/dispatch/internal/pkg/models"
)

// RedisStore persists a device's pending actions in a Redis list, oldest at
// the head
type RedisStore struct {
	redis *database.RedisClient
}

// NewRedisStore creates a Redis-backed action store
func NewRedisStore(redis *database.RedisClient) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) key(deviceID string) string {
	return fmt.Sprintf(constants.KeySyncQueue, deviceID)
}

// Append adds an action to the tail of the device's queue
func (s *RedisStore) Append(ctx context.Context, deviceID string, action models.QueuedAction) error {
	raw, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal action: %w", err)
	}
	return s.redis.RPush(ctx, s.key(deviceID), raw)
}

// List returns the device's pending actions, oldest first
func (s *RedisStore) List(ctx context.Context, deviceID string) ([]models.QueuedAction, error) {
	entries, err := s.redis.LRange(ctx, s.key(deviceID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	actions := make([]models.QueuedAction, 0, len(entries))
	for _, raw := range entries {
		var action models.QueuedAction
		if err := json.Unmarshal([]byte(raw), &action); err != nil {
			return nil, fmt.Errorf("corrupt queued action: %w", err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// Remove deletes the queued action with the given client action ID
func (s *RedisStore) Remove(ctx context.Context, deviceID string, clientActionID uuid.UUID) error {
	entries, err := s.redis.LRange(ctx, s.key(deviceID), 0, -1)
	if err != nil {
		return fmt.Errorf("failed to list actions: %w", err)
	}

	for _, raw := range entries {
		var action models.QueuedAction
		if err := json.Unmarshal([]byte(raw), &action); err != nil {
			continue
		}
		if action.ClientActionID == clientActionID {
			return s.redis.LRem(ctx, s.key(deviceID), 1, raw)
		}
	}
	return nil
}

// Len returns the number of pending actions
func (s *RedisStore) Len(ctx context.Context, deviceID string) (int, error) {
	n, err := s.redis.LLen(ctx, s.key(deviceID))
	if err != nil {
		return 0, fmt.Errorf("failed to read queue length: %w", err)
	}
	return int(n), nil
}
