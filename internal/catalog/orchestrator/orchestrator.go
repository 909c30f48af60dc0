// Package orchestrator composes the document catalog: it loads documents from
// the wallet engine, overlays deferred-issuance state, applies search and
// filters, and keeps the deferred poller running while the catalog is open.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eudiwallet/internal/catalog/deferred"
	"eudiwallet/internal/catalog/filter"
	"eudiwallet/internal/catalog/metrics"
	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
	"eudiwallet/internal/catalog/session"
	dErrors "eudiwallet/pkg/domain-errors"
	"eudiwallet/pkg/platform/audit"
	"eudiwallet/pkg/requestcontext"
)

// Orchestrator owns one catalog session. All methods are safe for concurrent
// use; poll results arrive on the poller's goroutine.
type Orchestrator struct {
	controller ports.DocumentsController
	text       ports.TextProvider
	logger     *slog.Logger
	auditor    ports.AuditPublisher
	metrics    *metrics.Metrics
	store      ports.MarkerStore
	walletID   string
	pollDelay  time.Duration
	listener   func(Event)
	clock      func() time.Time
	tracer     trace.Tracer

	reconciler *deferred.Reconciler
	poller     *deferred.Poller

	lifecycle context.Context
	stop      context.CancelFunc

	mu           sync.Mutex
	session      *session.Manager[attrs, models.DocumentItem]
	all          models.Collection
	query        string
	readyShowing bool
	restored     bool
	fetchGen     uint64
	fetchCancel  context.CancelFunc
}

type Option func(*Orchestrator)

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(o *Orchestrator) {
		o.auditor = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// WithMarkerStore persists deferred markers for walletID across restarts.
func WithMarkerStore(store ports.MarkerStore, walletID string) Option {
	return func(o *Orchestrator) {
		o.store = store
		o.walletID = walletID
	}
}

func WithPollDelay(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.pollDelay = d
	}
}

// WithListener receives catalog events. It is called without internal locks
// held and may call back into the orchestrator.
func WithListener(fn func(Event)) Option {
	return func(o *Orchestrator) {
		o.listener = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.clock = now
	}
}

func New(controller ports.DocumentsController, text ports.TextProvider, opts ...Option) (*Orchestrator, error) {
	if controller == nil {
		return nil, errors.New("documents controller is required")
	}
	if text == nil {
		return nil, errors.New("text provider is required")
	}

	o := &Orchestrator{
		controller: controller,
		text:       text,
		logger:     slog.Default(),
		clock:      time.Now,
		pollDelay:  deferred.DefaultDelay,
		tracer:     otel.Tracer("eudiwallet/catalog/orchestrator"),
	}
	for _, opt := range opts {
		opt(o)
	}

	defaults, err := o.defaultFilters()
	if err != nil {
		return nil, err
	}
	o.session = session.New[attrs, models.DocumentItem](defaults)
	o.all = filter.NewCollection[attrs, models.DocumentItem]()

	o.reconciler, err = deferred.NewReconciler(text)
	if err != nil {
		return nil, err
	}
	o.poller, err = deferred.NewPoller(controller,
		deferred.WithDelay(o.pollDelay),
		deferred.WithLogger(o.logger),
		deferred.WithMetrics(o.metrics),
		deferred.WithHandler(o),
	)
	if err != nil {
		return nil, err
	}

	o.lifecycle, o.stop = context.WithCancel(requestcontext.WithWalletID(context.Background(), o.walletID))
	return o, nil
}

// Load fetches every document, rebuilds the catalog view and restarts the
// deferred poller for documents still pending. A Load superseded by a newer
// one returns a canceled error and changes nothing.
func (o *Orchestrator) Load(ctx context.Context) (View, error) {
	view, err := o.load(ctx, true)
	if err == nil {
		ports.LogAudit(ctx, o.logger, o.auditor, audit.EventDocumentsLoaded,
			"documents", len(view.Documents))
	}
	return view, err
}

// Resume reloads the catalog after Pause.
func (o *Orchestrator) Resume(ctx context.Context) (View, error) {
	return o.Load(ctx)
}

// Pause stops polling and any in-flight fetch while the catalog is not shown.
func (o *Orchestrator) Pause() {
	o.poller.Cancel()
	o.mu.Lock()
	o.cancelFetchLocked()
	o.mu.Unlock()
}

// Close releases the session. The orchestrator must not be used afterwards.
func (o *Orchestrator) Close() {
	o.Pause()
	o.stop()
}

func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewLocked()
}

func (o *Orchestrator) load(ctx context.Context, startPolling bool) (View, error) {
	start := time.Now()
	ctx, span := o.tracer.Start(ctx, "catalog.Load", trace.WithAttributes(
		attribute.Bool("start_polling", startPolling),
	))
	defer span.End()

	o.restoreMarkers(ctx)

	fetchCtx, gen := o.beginFetch(ctx)
	docs, err := o.controller.GetAllDocuments(fetchCtx)

	o.mu.Lock()
	if gen != o.fetchGen {
		o.mu.Unlock()
		o.metrics.ObserveLoad("superseded", time.Since(start))
		return View{}, dErrors.New(dErrors.CodeCanceled, "load superseded by a newer load")
	}
	o.cancelFetchLocked()
	if err != nil {
		o.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch documents failed")
		o.metrics.ObserveLoad("failed", time.Since(start))
		if ctx.Err() != nil {
			return View{}, dErrors.Wrap(err, dErrors.CodeCanceled, "load canceled")
		}
		o.logger.ErrorContext(ctx, "failed to fetch documents", "error", err)
		return View{}, dErrors.Wrap(err, dErrors.CodeFetchFailed, "failed to fetch documents")
	}

	view, pending, err := o.applyLocked(docs)
	total := o.all.Len()
	o.mu.Unlock()
	if err != nil {
		o.metrics.ObserveLoad("failed", time.Since(start))
		return View{}, err
	}

	if startPolling {
		o.poller.Start(o.lifecycle, pending)
		view.Deferred = o.deferredView()
	}
	o.persistMarkers(ctx)

	span.SetAttributes(
		attribute.Int("documents", total),
		attribute.Int("pending", len(pending)),
	)
	o.metrics.ObserveLoad("success", time.Since(start))
	o.metrics.SetShown(len(view.Documents))
	o.logger.DebugContext(ctx, "catalog loaded",
		"documents", total,
		"shown", len(view.Documents),
		"pending", len(pending),
	)
	o.emit(DocumentsRefreshed{View: view})
	return view, nil
}

// refresh rebuilds the catalog after a poll cycle. It never cancels a user
// load: while one is fetching, that load picks up the committed markers, and
// a load started during the refresh fetch wins over its result.
func (o *Orchestrator) refresh(ctx context.Context) error {
	o.mu.Lock()
	if o.fetchCancel != nil {
		o.mu.Unlock()
		o.logger.DebugContext(ctx, "catalog refresh left to in-flight load")
		return nil
	}
	gen := o.fetchGen
	o.mu.Unlock()

	ctx, span := o.tracer.Start(ctx, "catalog.Refresh")
	defer span.End()

	docs, err := o.controller.GetAllDocuments(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch documents failed")
		if ctx.Err() != nil {
			return dErrors.Wrap(err, dErrors.CodeCanceled, "refresh canceled")
		}
		return dErrors.Wrap(err, dErrors.CodeFetchFailed, "failed to fetch documents")
	}

	o.mu.Lock()
	if gen != o.fetchGen {
		o.mu.Unlock()
		o.logger.DebugContext(ctx, "catalog refresh superseded by a load")
		return nil
	}
	view, _, err := o.applyLocked(docs)
	o.mu.Unlock()
	if err != nil {
		return err
	}

	o.metrics.SetShown(len(view.Documents))
	o.emit(DocumentsRefreshed{View: view})
	return nil
}

// applyLocked folds fetched documents and the committed failure markers into
// the session. Callers hold o.mu.
func (o *Orchestrator) applyLocked(docs []models.Document) (View, map[models.DocumentID]models.FormatType, error) {
	c := o.reconciler.MarkFailed(o.toCollection(docs), o.poller.Failed())
	pending := deferred.ExtractPending(c)
	if err := o.session.ReplaceGroupItems(GroupIssuer, o.issuerItems(c)); err != nil {
		return View{}, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to rebuild issuer filter")
	}
	o.all = c
	o.session.SetSource(filter.Search(c, o.query))
	return o.viewLocked(), pending, nil
}

// beginFetch cancels any running fetch and returns a context for a new one.
func (o *Orchestrator) beginFetch(ctx context.Context) (context.Context, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancelFetchLocked()
	fetchCtx, cancel := context.WithCancel(ctx)
	o.fetchCancel = cancel
	return fetchCtx, o.fetchGen
}

func (o *Orchestrator) cancelFetchLocked() {
	if o.fetchCancel != nil {
		o.fetchCancel()
		o.fetchCancel = nil
	}
	o.fetchGen++
}

// restoreMarkers loads persisted markers once per session.
func (o *Orchestrator) restoreMarkers(ctx context.Context) {
	if o.store == nil {
		return
	}
	o.mu.Lock()
	if o.restored {
		o.mu.Unlock()
		return
	}
	o.restored = true
	o.mu.Unlock()

	markers, err := o.store.Load(ctx, o.walletID)
	if err != nil {
		o.logger.WarnContext(ctx, "failed to load deferred markers", "error", err)
		return
	}
	if !markers.IsEmpty() {
		o.poller.Restore(markers)
	}
}

func (o *Orchestrator) persistMarkers(ctx context.Context) {
	if o.store == nil {
		return
	}
	if err := o.store.Save(ctx, o.walletID, o.poller.Snapshot()); err != nil {
		o.logger.WarnContext(ctx, "failed to persist deferred markers", "error", err)
	}
}

func (o *Orchestrator) emit(e Event) {
	if o.listener != nil {
		o.listener(e)
	}
}
