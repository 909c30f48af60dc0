package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eudiwallet/internal/catalog/models"
	"eudiwallet/pkg/platform/sentinel"
)

const keyPrefix = "catalog:markers:"

// RedisStore keeps one JSON document of markers per wallet.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

// WithTTL expires a wallet's markers when they are not saved again within ttl.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

func NewRedis(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func markerKey(walletID string) string {
	return keyPrefix + walletID
}

func (s *RedisStore) Load(ctx context.Context, walletID string) (models.Markers, error) {
	raw, err := s.client.Get(ctx, markerKey(walletID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewMarkers(), nil
	}
	if err != nil {
		return models.Markers{}, fmt.Errorf("load markers: %w: %w", sentinel.ErrUnavailable, err)
	}

	markers := models.NewMarkers()
	if err := json.Unmarshal(raw, &markers); err != nil {
		return models.Markers{}, fmt.Errorf("decode markers for wallet %s: %w", walletID, err)
	}
	if markers.Pending == nil {
		markers.Pending = make(map[models.DocumentID]models.FormatType)
	}
	if markers.Failed == nil {
		markers.Failed = make(map[models.DocumentID]models.FormatType)
	}
	return markers, nil
}

// Save overwrites the wallet's markers. Empty markers delete the key.
func (s *RedisStore) Save(ctx context.Context, walletID string, markers models.Markers) error {
	if markers.IsEmpty() {
		return s.Delete(ctx, walletID)
	}
	raw, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("encode markers: %w", err)
	}
	if err := s.client.Set(ctx, markerKey(walletID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save markers: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, walletID string) error {
	if err := s.client.Del(ctx, markerKey(walletID)).Err(); err != nil {
		return fmt.Errorf("delete markers: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}
