package orchestrator

import (
	"context"

	"eudiwallet/internal/catalog/filter"
	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
	dErrors "eudiwallet/pkg/domain-errors"
	"eudiwallet/pkg/platform/audit"
)

// DeleteOutcome reports a deletion. AllDeleted means the wallet holds no
// documents anymore and the catalog was reset.
type DeleteOutcome struct {
	AllDeleted bool `json:"all_deleted"`
	View       View `json:"view"`
}

// Search narrows the catalog to entries whose tags contain query. An empty
// query shows everything.
func (o *Orchestrator) Search(query string) View {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.query = query
	o.session.SetSource(filter.Search(o.all, query))
	return o.shownLocked()
}

// BeginFilterEdit starts editing a copy of the applied filters.
func (o *Orchestrator) BeginFilterEdit() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.BeginEdit()
	return o.viewLocked()
}

func (o *Orchestrator) ToggleFilter(groupID, itemID string) (View, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.session.ToggleSelection(groupID, itemID); err != nil {
		return View{}, err
	}
	return o.viewLocked(), nil
}

func (o *Orchestrator) SetSortDirection(dir filter.Direction) View {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.SetDirection(dir)
	return o.viewLocked()
}

// ApplyFilters makes the working copy the applied configuration.
func (o *Orchestrator) ApplyFilters(ctx context.Context) View {
	o.mu.Lock()
	editing := o.session.Editing()
	o.session.Apply()
	view := o.shownLocked()
	o.mu.Unlock()

	if editing {
		ports.LogAudit(ctx, o.logger, o.auditor, audit.EventFiltersApplied,
			"shown", len(view.Documents), "filtering_active", view.FilteringActive)
	}
	return view
}

// RevertFilters discards the working copy.
func (o *Orchestrator) RevertFilters() View {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session.Revert()
	return o.viewLocked()
}

// ResetFilters restores and applies the default filters.
func (o *Orchestrator) ResetFilters(ctx context.Context) View {
	o.mu.Lock()
	o.session.ResetToDefaults()
	view := o.shownLocked()
	o.mu.Unlock()

	ports.LogAudit(ctx, o.logger, o.auditor, audit.EventFiltersReset)
	return view
}

// DeleteDocument removes a document from the wallet. Deleting the last one
// resets the catalog and emits CatalogEmptied; otherwise the catalog reloads.
func (o *Orchestrator) DeleteDocument(ctx context.Context, id models.DocumentID) (DeleteOutcome, error) {
	result, err := o.controller.DeleteDocument(ctx, id)
	if err != nil {
		o.metrics.IncDeletion("failed")
		o.logger.ErrorContext(ctx, "failed to delete document", "document_id", id.String(), "error", err)
		return DeleteOutcome{}, dErrors.Wrap(err, dErrors.CodeDeletionFailed, "failed to delete document")
	}
	o.metrics.IncDeletion("deleted")
	o.poller.Forget(id)
	ports.LogAudit(ctx, o.logger, o.auditor, audit.EventDocumentDeleted, "document_id", id.String())

	if result.AllDeleted {
		return DeleteOutcome{AllDeleted: true, View: o.empty(ctx)}, nil
	}

	view, err := o.load(ctx, true)
	if err != nil {
		return DeleteOutcome{}, err
	}
	return DeleteOutcome{View: view}, nil
}

// empty resets the session after the wallet was emptied.
func (o *Orchestrator) empty(ctx context.Context) View {
	o.poller.Cancel()
	o.poller.Restore(models.NewMarkers())

	o.mu.Lock()
	o.cancelFetchLocked()
	o.all = filter.NewCollection[attrs, models.DocumentItem]()
	o.query = ""
	o.readyShowing = false
	if err := o.session.ReplaceGroupItems(GroupIssuer, o.issuerItems(o.all)); err != nil {
		o.logger.WarnContext(ctx, "failed to reset issuer filter", "error", err)
	}
	view := o.shownLocked()
	o.mu.Unlock()

	if o.store != nil {
		if err := o.store.Delete(ctx, o.walletID); err != nil {
			o.logger.WarnContext(ctx, "failed to delete deferred markers", "error", err)
		}
	}
	ports.LogAudit(ctx, o.logger, o.auditor, audit.EventCatalogEmptied)
	o.emit(CatalogEmptied{})
	return view
}

// shownLocked renders the view and records how many documents it shows.
// Callers hold o.mu.
func (o *Orchestrator) shownLocked() View {
	view := o.viewLocked()
	o.metrics.SetShown(len(view.Documents))
	return view
}
