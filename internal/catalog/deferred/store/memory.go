// Package store persists deferred-issuance markers per wallet.
package store

import (
	"context"
	"maps"
	"sync"

	"eudiwallet/internal/catalog/models"
)

// InMemoryStore keeps markers for the life of the process.
type InMemoryStore struct {
	mu      sync.RWMutex
	markers map[string]models.Markers
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{markers: make(map[string]models.Markers)}
}

// Load returns the wallet's markers, or empty markers for an unknown wallet.
func (s *InMemoryStore) Load(_ context.Context, walletID string) (models.Markers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.markers[walletID]
	if !ok {
		return models.NewMarkers(), nil
	}
	return cloneMarkers(m), nil
}

func (s *InMemoryStore) Save(_ context.Context, walletID string, markers models.Markers) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if markers.IsEmpty() {
		delete(s.markers, walletID)
		return nil
	}
	s.markers[walletID] = cloneMarkers(markers)
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, walletID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.markers, walletID)
	return nil
}

func cloneMarkers(m models.Markers) models.Markers {
	out := models.NewMarkers()
	maps.Copy(out.Pending, m.Pending)
	maps.Copy(out.Failed, m.Failed)
	return out
}
