package orchestrator

import "eudiwallet/internal/catalog/models"

// Event is delivered to the listener configured with WithListener.
type Event interface {
	eventName() string
}

// DocumentsRefreshed carries the view after every successful load.
type DocumentsRefreshed struct {
	View View
}

// DeferredReady lists documents whose deferred issuance just completed.
// At most one is outstanding until DismissReady.
type DeferredReady struct {
	Documents []models.Document
}

// PollFailed reports that the engine could not be queried for deferred
// documents. Markers are left as they were.
type PollFailed struct {
	Err error
}

// CatalogEmptied is emitted when the last document was deleted. Clients reset
// their wallet state.
type CatalogEmptied struct{}

func (DocumentsRefreshed) eventName() string { return "documents_refreshed" }
func (DeferredReady) eventName() string      { return "deferred_ready" }
func (PollFailed) eventName() string         { return "poll_failed" }
func (CatalogEmptied) eventName() string     { return "catalog_emptied" }

// EventName returns a stable identifier for e.
func EventName(e Event) string {
	return e.eventName()
}
