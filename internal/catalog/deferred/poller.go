package deferred

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eudiwallet/internal/catalog/metrics"
	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
	dErrors "eudiwallet/pkg/domain-errors"
)

// DefaultDelay is the wait between scheduling a cycle and querying the engine.
const DefaultDelay = 5 * time.Second

type State uint8

const (
	StateIdle State = iota
	StateWaiting
	StatePolling
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePolling:
		return "polling"
	default:
		return "idle"
	}
}

// Outcome is the committed result of one poll cycle.
type Outcome struct {
	CycleID      string
	Succeeded    []models.DeferredDocument
	StillPending map[models.DocumentID]models.FormatType
	Failed       map[models.DocumentID]models.FormatType
}

// CycleHandler receives cycle results on the cycle goroutine. Implementations
// may call Start from inside a callback.
type CycleHandler interface {
	HandleCycle(ctx context.Context, outcome Outcome)
	HandleQueryFailure(ctx context.Context, err error)
}

// Poller runs at most one deferred-issuance cycle at a time. Starting a new
// cycle cancels the previous one.
type Poller struct {
	controller ports.DocumentsController
	handler    CycleHandler
	delay      time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer

	markers *tracker

	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc
}

type Option func(*Poller)

func WithDelay(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.delay = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) {
		p.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Poller) {
		p.metrics = m
	}
}

func WithHandler(h CycleHandler) Option {
	return func(p *Poller) {
		p.handler = h
	}
}

func NewPoller(controller ports.DocumentsController, opts ...Option) (*Poller, error) {
	if controller == nil {
		return nil, errors.New("documents controller is required")
	}
	p := &Poller{
		controller: controller,
		delay:      DefaultDelay,
		logger:     slog.Default(),
		tracer:     otel.Tracer("eudiwallet/catalog/deferred"),
		markers:    newTracker(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Handle controls one started cycle.
type Handle struct {
	done   chan struct{}
	cancel func()
}

// Done is closed once the cycle goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel stops the cycle if it is still the current one.
func (h *Handle) Cancel() {
	h.cancel()
}

// Start cancels any running cycle, tracks refs as pending and schedules a
// query after the configured delay. ctx bounds the whole cycle, including
// follow-up rounds for documents that stay pending. Empty refs clear the
// pending set and leave the poller idle.
func (p *Poller) Start(ctx context.Context, refs map[models.DocumentID]models.FormatType) *Handle {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	batch := maps.Clone(refs)
	p.markers.track(batch)
	p.reportTracked()
	if len(batch) == 0 {
		done := make(chan struct{})
		close(done)
		return &Handle{done: done, cancel: func() {}}
	}

	cycleCtx, cancel := context.WithCancel(ctx)
	p.generation++
	gen := p.generation
	p.cancel = cancel
	p.state = StateWaiting

	done := make(chan struct{})
	go p.run(cycleCtx, cancel, gen, batch, done)

	return &Handle{done: done, cancel: func() { p.cancelGeneration(gen) }}
}

// Cancel stops any running cycle. Nothing from an interrupted cycle is committed.
func (p *Poller) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Pending returns the documents whose issuance is still outstanding.
func (p *Poller) Pending() map[models.DocumentID]models.FormatType {
	return p.markers.snapshot().Pending
}

// Failed returns the documents whose last cycle did not complete issuance.
func (p *Poller) Failed() map[models.DocumentID]models.FormatType {
	return p.markers.snapshot().Failed
}

// ClearFailed drops failed markers for ids, or all of them when none are
// given, and returns what was dropped.
func (p *Poller) ClearFailed(ids ...models.DocumentID) map[models.DocumentID]models.FormatType {
	cleared := p.markers.clearFailed(ids...)
	p.reportTracked()
	return cleared
}

// Forget drops every marker for id, e.g. after the document was deleted.
func (p *Poller) Forget(id models.DocumentID) {
	p.markers.forget(id)
	p.reportTracked()
}

func (p *Poller) Snapshot() models.Markers {
	return p.markers.snapshot()
}

// Restore replaces the markers, typically with state loaded from a store.
func (p *Poller) Restore(m models.Markers) {
	p.markers.restore(m)
	p.reportTracked()
}

func (p *Poller) cancelGeneration(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation == gen {
		p.cancelLocked()
	}
}

func (p *Poller) cancelLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	p.state = StateIdle
}

// transition moves the machine to s if gen is still current.
func (p *Poller) transition(gen uint64, s State) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation != gen {
		return false
	}
	p.state = s
	return true
}

func (p *Poller) run(ctx context.Context, cancel context.CancelFunc, gen uint64, batch map[models.DocumentID]models.FormatType, done chan struct{}) {
	defer close(done)
	defer cancel()

	for len(batch) > 0 {
		if !p.transition(gen, StateWaiting) {
			return
		}
		timer := time.NewTimer(p.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			p.metrics.IncPollCycle("canceled")
			return
		case <-timer.C:
		}
		if !p.transition(gen, StatePolling) {
			return
		}

		cycleID := uuid.NewString()
		result, err := p.query(ctx, cycleID, batch)
		if ctx.Err() != nil {
			p.metrics.IncPollCycle("canceled")
			return
		}

		if err != nil {
			if !p.finish(gen) {
				return
			}
			p.metrics.IncPollCycle("query_failed")
			p.logger.WarnContext(ctx, "deferred issuance query failed",
				"cycle_id", cycleID, "documents", len(batch), "error", err)
			if p.handler != nil {
				p.handler.HandleQueryFailure(ctx, dErrors.Wrap(err, dErrors.CodePollQueryFailed, "deferred issuance query failed"))
			}
			return
		}

		outcome, ok := p.commit(gen, batch, result)
		if !ok {
			return
		}
		outcome.CycleID = cycleID
		p.metrics.IncPollCycle("completed")
		p.logger.InfoContext(ctx, "deferred issuance cycle completed",
			"cycle_id", cycleID,
			"succeeded", len(outcome.Succeeded),
			"still_pending", len(outcome.StillPending),
			"failed", len(outcome.Failed),
		)
		if p.handler != nil {
			p.handler.HandleCycle(ctx, outcome)
		}
		batch = outcome.StillPending
	}
}

func (p *Poller) query(ctx context.Context, cycleID string, batch map[models.DocumentID]models.FormatType) (models.RetryResult, error) {
	ctx, span := p.tracer.Start(ctx, "deferred.RetryIssuance", trace.WithAttributes(
		attribute.String("cycle_id", cycleID),
		attribute.Int("documents", len(batch)),
	))
	defer span.End()

	result, err := p.controller.RetryIssuance(ctx, maps.Clone(batch))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "retry issuance failed")
	}
	return result, err
}

// commit applies a cycle result atomically with respect to Start and Cancel.
func (p *Poller) commit(gen uint64, batch map[models.DocumentID]models.FormatType, result models.RetryResult) (Outcome, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation != gen {
		return Outcome{}, false
	}
	outcome := p.markers.commit(batch, result)
	if len(outcome.StillPending) > 0 {
		p.state = StateWaiting
	} else {
		p.state = StateIdle
		p.cancel = nil
	}
	p.reportTracked()
	return outcome, true
}

// finish returns the machine to idle after a failed query, leaving markers as they were.
func (p *Poller) finish(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation != gen {
		return false
	}
	p.state = StateIdle
	p.cancel = nil
	return true
}

func (p *Poller) reportTracked() {
	m := p.markers.snapshot()
	p.metrics.SetTracked(len(m.Pending), len(m.Failed))
}
