package navigationRepository

import (
	"PaperPath/internal/entity"
	"PaperPath/pkg/redis"
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// ErrStateNotFound means the session is unknown or has expired.
var ErrStateNotFound = errors.New("navigation state not found")

const sessionKeyPrefix = "navigation:session:"

func (r *repository) GetState(ctx context.Context, sessionID string) (*entity.NavigationState, error) {
	data, err := r.store.Get(ctx, sessionKeyPrefix+sessionID)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load navigation state")
		return nil, err
	}

	var state entity.NavigationState
	if err := jsoniter.Unmarshal(data, &state); err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Discarding unreadable navigation state")
		return nil, ErrStateNotFound
	}

	return &state, nil
}

func (r *repository) SaveState(ctx context.Context, state entity.NavigationState) error {
	data, err := jsoniter.Marshal(state)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, sessionKeyPrefix+state.SessionID, data, r.ttl); err != nil {
		r.log.WithFields(logrus.Fields{
			"session_id": state.SessionID,
			"error":      err.Error(),
		}).Error("Failed to save navigation state")
		return err
	}

	return nil
}
