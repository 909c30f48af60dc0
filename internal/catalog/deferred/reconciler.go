// Package deferred tracks documents whose issuance completes asynchronously:
// it overlays failure state onto catalog entries and runs the cancellable
// poll cycle that re-queries the wallet engine for them.
package deferred

import (
	"errors"

	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
)

// TextDeferredFailed is the supporting text shown on entries whose deferred
// issuance failed.
const TextDeferredFailed = "dashboard_document_deferred_failed"

// Reconciler overlays deferred-issuance markers onto catalog entries.
type Reconciler struct {
	text ports.TextProvider
}

func NewReconciler(text ports.TextProvider) (*Reconciler, error) {
	if text == nil {
		return nil, errors.New("text provider is required")
	}
	return &Reconciler{text: text}, nil
}

// MarkFailed returns a collection where entries listed in failed carry the
// Failed state and the failed supporting text. Other entries are unchanged.
func (r *Reconciler) MarkFailed(c models.Collection, failed map[models.DocumentID]models.FormatType) models.Collection {
	if len(failed) == 0 {
		return c
	}
	label := r.text.GetString(TextDeferredFailed)
	return c.Map(func(e models.Entry) models.Entry {
		if _, ok := failed[models.DocumentID(e.ID)]; !ok {
			return e
		}
		e.Attributes.IssuanceState = models.IssuanceFailed
		e.Payload.IssuanceState = models.IssuanceFailed
		e.Payload.SupportingText = label
		return e
	})
}

// ExtractPending returns the entries still waiting on issuance, keyed by id.
func ExtractPending(c models.Collection) map[models.DocumentID]models.FormatType {
	pending := make(map[models.DocumentID]models.FormatType)
	for _, e := range c.Items() {
		if e.Payload.IssuanceState == models.IssuancePending {
			pending[models.DocumentID(e.ID)] = e.Payload.Document.FormatType
		}
	}
	return pending
}
