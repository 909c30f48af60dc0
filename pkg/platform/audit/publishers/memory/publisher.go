// Package memory keeps audit events in process, for the daemon's default
// wiring and for tests.
package memory

import (
	"context"
	"sync"

	audit "eudiwallet/pkg/platform/audit"
)

// DefaultCapacity bounds the events kept per wallet.
const DefaultCapacity = 1000

type Publisher struct {
	mu       sync.RWMutex
	capacity int
	events   map[string][]audit.Event
}

type Option func(*Publisher)

// WithCapacity sets how many events are kept per wallet. Older events are
// dropped first. Non-positive values keep the default.
func WithCapacity(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.capacity = n
		}
	}
}

func NewPublisher(opts ...Option) *Publisher {
	p := &Publisher{
		capacity: DefaultCapacity,
		events:   make(map[string][]audit.Event),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Publisher) Emit(_ context.Context, event audit.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := append(p.events[event.WalletID], event)
	if over := len(events) - p.capacity; over > 0 {
		events = append(events[:0:0], events[over:]...)
	}
	p.events[event.WalletID] = events
	return nil
}

func (p *Publisher) ListByWallet(_ context.Context, walletID string) ([]audit.Event, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]audit.Event{}, p.events[walletID]...), nil
}

// ListRecent returns up to limit of the latest events of a wallet, oldest first.
func (p *Publisher) ListRecent(_ context.Context, walletID string, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		return []audit.Event{}, nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	events := p.events[walletID]
	start := max(len(events)-limit, 0)
	return append([]audit.Event{}, events[start:]...), nil
}
