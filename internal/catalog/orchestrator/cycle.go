package orchestrator

import (
	"context"
	"maps"

	"golang.org/x/sync/errgroup"

	"eudiwallet/internal/catalog/deferred"
	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
	dErrors "eudiwallet/pkg/domain-errors"
	"eudiwallet/pkg/platform/audit"
)

const readyLookupLimit = 4

var _ deferred.CycleHandler = (*Orchestrator)(nil)

// HandleCycle folds a committed poll cycle into the catalog. The poller keeps
// running for documents that are still pending.
func (o *Orchestrator) HandleCycle(ctx context.Context, outcome deferred.Outcome) {
	o.persistMarkers(ctx)
	for _, doc := range outcome.Succeeded {
		ports.LogAudit(ctx, o.logger, o.auditor, audit.EventDeferredIssued,
			"document_id", doc.ID.String(), "cycle_id", outcome.CycleID)
	}
	for id := range outcome.Failed {
		ports.LogAudit(ctx, o.logger, o.auditor, audit.EventDeferredFailed,
			"document_id", id.String(), "cycle_id", outcome.CycleID)
	}

	if err := o.refresh(ctx); err != nil && !dErrors.HasCode(err, dErrors.CodeCanceled) {
		o.logger.WarnContext(ctx, "failed to refresh catalog after poll cycle",
			"cycle_id", outcome.CycleID, "error", err)
	}
	if len(outcome.Succeeded) > 0 {
		o.notifyReady(ctx, outcome.Succeeded)
	}
}

func (o *Orchestrator) HandleQueryFailure(ctx context.Context, err error) {
	o.logger.WarnContext(ctx, "deferred issuance poll failed", "error", err)
	ports.LogAudit(ctx, o.logger, o.auditor, audit.EventPollQueryFailed,
		"reason", dErrors.MessageOf(err))
	o.emit(PollFailed{Err: err})
}

// notifyReady resolves succeeded documents and emits DeferredReady unless a
// ready notification is already showing. Lookups that fail are skipped.
func (o *Orchestrator) notifyReady(ctx context.Context, succeeded []models.DeferredDocument) {
	o.mu.Lock()
	showing := o.readyShowing
	o.mu.Unlock()
	if showing {
		return
	}

	found := make([]*models.Document, len(succeeded))
	var g errgroup.Group
	g.SetLimit(readyLookupLimit)
	for i, d := range succeeded {
		g.Go(func() error {
			doc, err := o.controller.GetDocumentByID(ctx, d.ID)
			if err != nil {
				o.logger.DebugContext(ctx, "skipping unresolved deferred document",
					"document_id", d.ID.String(), "error", err)
				return nil
			}
			found[i] = &doc
			return nil
		})
	}
	_ = g.Wait()

	var docs []models.Document
	for _, doc := range found {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	if len(docs) == 0 {
		return
	}

	o.mu.Lock()
	if o.readyShowing {
		o.mu.Unlock()
		return
	}
	o.readyShowing = true
	o.mu.Unlock()
	o.emit(DeferredReady{Documents: docs})
}

// DismissReady clears the ready notification so the next completed cycle can
// show a new one.
func (o *Orchestrator) DismissReady() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.readyShowing = false
	return o.viewLocked()
}

// RetryIssuance clears failed markers for ids (all of them when none are
// given) and starts a cycle for those documents and everything still pending.
func (o *Orchestrator) RetryIssuance(ctx context.Context, ids ...models.DocumentID) (View, error) {
	cleared := o.poller.ClearFailed(ids...)
	if len(ids) > 0 && len(cleared) == 0 {
		return o.View(), dErrors.New(dErrors.CodeNotFound, "no failed deferred document matches")
	}

	refs := o.poller.Pending()
	maps.Copy(refs, cleared)
	o.poller.Start(o.lifecycle, refs)
	for id := range cleared {
		ports.LogAudit(ctx, o.logger, o.auditor, audit.EventDeferredRetried, "document_id", id.String())
	}

	view, err := o.load(ctx, false)
	if err != nil {
		o.persistMarkers(ctx)
		return View{}, err
	}
	return view, nil
}
