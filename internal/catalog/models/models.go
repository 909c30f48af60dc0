// Package models holds the catalog's document shapes as exchanged with the
// wallet engine and as carried through the filter engine.
package models

import (
	"strings"
	"time"

	"eudiwallet/internal/catalog/filter"
)

// DocumentID identifies a document in the wallet engine.
type DocumentID string

func (id DocumentID) String() string {
	return string(id)
}

// FormatType is the credential format a document was issued in; the engine
// needs it to re-query a deferred issuance.
type FormatType string

const (
	FormatMsoMdoc FormatType = "mso_mdoc"
	FormatSdJwtVc FormatType = "dc+sd-jwt"
)

type IssuanceState string

const (
	IssuanceIssued  IssuanceState = "issued"
	IssuancePending IssuanceState = "pending"
	IssuanceFailed  IssuanceState = "failed"
)

func (s IssuanceState) IsValid() bool {
	switch s {
	case IssuanceIssued, IssuancePending, IssuanceFailed:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryGovernment     Category = "government"
	CategoryTravel         Category = "travel"
	CategoryFinance        Category = "finance"
	CategoryEducation      Category = "education"
	CategoryHealth         Category = "health"
	CategorySocialSecurity Category = "social_security"
	CategoryRetail         Category = "retail"
	CategoryOther          Category = "other"
)

// Document is a document as reported by the wallet engine.
type Document struct {
	ID            DocumentID    `json:"id"`
	Name          string        `json:"name"`
	Issuer        string        `json:"issuer,omitempty"`
	FormatType    FormatType    `json:"format_type"`
	Category      Category      `json:"category,omitempty"`
	IssuedAt      *time.Time    `json:"issued_at,omitempty"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`
	IssuanceState IssuanceState `json:"issuance_state"`
}

// Attributes is what the catalog filters and sorts on.
type Attributes struct {
	Name          string
	Issuer        string
	IssuedAt      *time.Time
	ExpiresAt     *time.Time
	IssuanceState IssuanceState
	Tags          []string
}

// AttributesOf derives the filterable attributes of a document.
func AttributesOf(doc Document) Attributes {
	tags := []string{doc.Name}
	if doc.Issuer != "" {
		tags = append(tags, doc.Issuer)
	}
	return Attributes{
		Name:          doc.Name,
		Issuer:        doc.Issuer,
		IssuedAt:      doc.IssuedAt,
		ExpiresAt:     doc.ExpiresAt,
		IssuanceState: doc.IssuanceState,
		Tags:          tags,
	}
}

func (a Attributes) SearchTags() []string {
	return a.Tags
}

// LowerName is the default sort key.
func (a Attributes) LowerName() string {
	return strings.ToLower(a.Name)
}

// Expired reports whether the document expired before now. Documents without
// an expiry never expire.
func (a Attributes) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && a.ExpiresAt.Before(now)
}

// ExpiresWithin reports whether expiry falls in [now, now+days].
func (a Attributes) ExpiresWithin(now time.Time, days int) bool {
	if a.ExpiresAt == nil || a.ExpiresAt.Before(now) {
		return false
	}
	return !a.ExpiresAt.After(now.AddDate(0, 0, days))
}

// ExpiresBeyond reports whether expiry is later than now+days.
func (a Attributes) ExpiresBeyond(now time.Time, days int) bool {
	return a.ExpiresAt != nil && a.ExpiresAt.After(now.AddDate(0, 0, days))
}

// DocumentItem is the payload shown for one catalog entry.
type DocumentItem struct {
	Document       Document      `json:"document"`
	IssuanceState  IssuanceState `json:"issuance_state"`
	SupportingText string        `json:"supporting_text,omitempty"`
}

// Entry is one catalog entry as carried through the filter engine.
type Entry = filter.Filterable[Attributes, DocumentItem]

// Collection is the catalog's document list.
type Collection = filter.Collection[Attributes, DocumentItem]

// DeferredDocument names one document of a deferred-issuance batch.
type DeferredDocument struct {
	ID         DocumentID `json:"id"`
	Name       string     `json:"name,omitempty"`
	FormatType FormatType `json:"format_type"`
}

// RetryResult partitions a retried batch.
type RetryResult struct {
	Succeeded    []DeferredDocument `json:"succeeded"`
	StillPending []DeferredDocument `json:"still_pending"`
	Failed       []DeferredDocument `json:"failed"`
}

// DeleteResult reports whether a deletion left the wallet empty.
type DeleteResult struct {
	AllDeleted bool `json:"all_deleted"`
}

type DeferredState string

const (
	DeferredPending DeferredState = "pending"
	DeferredFailed  DeferredState = "failed"
)

// DeferredRef tracks one document whose issuance has not completed.
type DeferredRef struct {
	DocumentID DocumentID    `json:"document_id"`
	FormatType FormatType    `json:"format_type"`
	State      DeferredState `json:"state"`
}

// Markers is the persisted deferred-issuance tracking state of one wallet.
type Markers struct {
	Pending map[DocumentID]FormatType `json:"pending"`
	Failed  map[DocumentID]FormatType `json:"failed"`
}

func NewMarkers() Markers {
	return Markers{
		Pending: make(map[DocumentID]FormatType),
		Failed:  make(map[DocumentID]FormatType),
	}
}

func (m Markers) IsEmpty() bool {
	return len(m.Pending) == 0 && len(m.Failed) == 0
}

// Refs flattens the markers, pending first.
func (m Markers) Refs() []DeferredRef {
	refs := make([]DeferredRef, 0, len(m.Pending)+len(m.Failed))
	for id, f := range m.Pending {
		refs = append(refs, DeferredRef{DocumentID: id, FormatType: f, State: DeferredPending})
	}
	for id, f := range m.Failed {
		refs = append(refs, DeferredRef{DocumentID: id, FormatType: f, State: DeferredFailed})
	}
	return refs
}
