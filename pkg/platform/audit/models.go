package audit

import (
	"time"
)

// EventCategory classifies audit events by their primary purpose so sinks can
// route and retain them differently.
type EventCategory string

const (
	// CategoryCompliance covers events that change what the wallet holds.
	CategoryCompliance EventCategory = "compliance"
	// CategoryOperations covers routine catalog activity.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from catalog logic to capture key actions. Keep it
// transport-agnostic so publishers can fan out.
type Event struct {
	ID        string        `json:"id"`
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	WalletID  string        `json:"wallet_id,omitempty"`
	// Subject is the document the action touched, when there is one.
	Subject   string `json:"subject,omitempty"`
	Action    string `json:"action"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type AuditEvent string

const (
	EventDocumentsLoaded AuditEvent = "documents_loaded"
	EventDocumentDeleted AuditEvent = "document_deleted"
	EventCatalogEmptied  AuditEvent = "catalog_emptied"
	EventDeferredIssued  AuditEvent = "deferred_issued"
	EventDeferredFailed  AuditEvent = "deferred_failed"
	EventDeferredRetried AuditEvent = "deferred_retried"
	EventPollQueryFailed AuditEvent = "poll_query_failed"
	EventFiltersApplied  AuditEvent = "filters_applied"
	EventFiltersReset    AuditEvent = "filters_reset"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventDocumentDeleted: CategoryCompliance,
	EventCatalogEmptied:  CategoryCompliance,
	EventDeferredIssued:  CategoryCompliance,
	EventDeferredFailed:  CategoryCompliance,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

func (e AuditEvent) String() string {
	return string(e)
}
