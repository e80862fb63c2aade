package navigationRepository

import (
	"PaperPath/internal/entity"
	"PaperPath/pkg/redis"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Repository interface {
	GetState(ctx context.Context, sessionID string) (*entity.NavigationState, error)
	SaveState(ctx context.Context, state entity.NavigationState) error
}

type repository struct {
	store redis.IRedis
	log   *logrus.Logger
	ttl   time.Duration
}

func New(store redis.IRedis, log *logrus.Logger, ttl time.Duration) Repository {
	return &repository{
		store: store,
		log:   log,
		ttl:   ttl,
	}
}
