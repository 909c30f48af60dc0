package store

import (
	"context"
	"errors"
	"log/slog"

	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
	"eudiwallet/pkg/platform/circuit"
)

// FallbackStore writes through to a local store and reads from the primary
// until the primary keeps failing, then serves the local copy until the
// primary recovers.
type FallbackStore struct {
	primary  ports.MarkerStore
	fallback ports.MarkerStore
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

type FallbackOption func(*FallbackStore)

func WithBreaker(b *circuit.Breaker) FallbackOption {
	return func(s *FallbackStore) {
		s.breaker = b
	}
}

func WithLogger(logger *slog.Logger) FallbackOption {
	return func(s *FallbackStore) {
		s.logger = logger
	}
}

func NewFallback(primary, fallback ports.MarkerStore, opts ...FallbackOption) (*FallbackStore, error) {
	if primary == nil {
		return nil, errors.New("primary marker store is required")
	}
	if fallback == nil {
		return nil, errors.New("fallback marker store is required")
	}
	s := &FallbackStore{
		primary:  primary,
		fallback: fallback,
		breaker:  circuit.New("marker-store"),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *FallbackStore) Load(ctx context.Context, walletID string) (models.Markers, error) {
	markers, err := s.primary.Load(ctx, walletID)
	if err != nil {
		if !s.recordFailure(ctx, err) {
			return models.Markers{}, err
		}
		return s.fallback.Load(ctx, walletID)
	}
	if !s.recordSuccess(ctx) {
		return s.fallback.Load(ctx, walletID)
	}
	return markers, nil
}

func (s *FallbackStore) Save(ctx context.Context, walletID string, markers models.Markers) error {
	if err := s.fallback.Save(ctx, walletID, markers); err != nil {
		return err
	}
	if err := s.primary.Save(ctx, walletID, markers); err != nil {
		if !s.recordFailure(ctx, err) {
			return err
		}
		return nil
	}
	s.recordSuccess(ctx)
	return nil
}

func (s *FallbackStore) Delete(ctx context.Context, walletID string) error {
	if err := s.fallback.Delete(ctx, walletID); err != nil {
		return err
	}
	if err := s.primary.Delete(ctx, walletID); err != nil {
		if !s.recordFailure(ctx, err) {
			return err
		}
		return nil
	}
	s.recordSuccess(ctx)
	return nil
}

func (s *FallbackStore) recordFailure(ctx context.Context, err error) (useFallback bool) {
	useFallback, change := s.breaker.RecordFailure()
	if change.Opened {
		s.logger.WarnContext(ctx, "marker store circuit opened, serving local markers",
			"breaker", s.breaker.Name(), "error", err)
	}
	return useFallback
}

func (s *FallbackStore) recordSuccess(ctx context.Context) (usePrimary bool) {
	usePrimary, change := s.breaker.RecordSuccess()
	if change.Closed {
		s.logger.InfoContext(ctx, "marker store circuit closed", "breaker", s.breaker.Name())
	}
	return usePrimary
}
