package orchestrator

import (
	"time"

	"eudiwallet/internal/catalog/deferred"
	"eudiwallet/internal/catalog/filter"
	"eudiwallet/internal/catalog/models"
	pstrings "eudiwallet/pkg/platform/strings"
)

// Filter group and item ids exposed to clients.
const (
	GroupExpiryPeriod = "expiry_period"
	GroupSort         = "sort"
	GroupIssuer       = "issuer"
	GroupState        = "state"

	ItemExpiresNext7    = "next_7"
	ItemExpiresNext30   = "next_30"
	ItemExpiresBeyond30 = "beyond_30"
	ItemExpired         = "expired"

	ItemSortDefault    = "default"
	ItemSortDateIssued = "date_issued"
	ItemSortExpiryDate = "expiry_date"

	ItemIssuerAll = "issuer_all"

	ItemStateValid   = "valid"
	ItemStateExpired = "expired"
)

// Text keys used for catalog labels.
const (
	textPending        = "dashboard_document_deferred_pending"
	textExpired        = "dashboard_document_has_expired"
	textExpiresOn      = "dashboard_document_expires_on"
	textExpiryPeriod   = "documents_screen_filters_filter_by_expiry_period"
	textExpiryNext7    = "documents_screen_filters_filter_by_expiry_period_1"
	textExpiryNext30   = "documents_screen_filters_filter_by_expiry_period_2"
	textExpiryBeyond30 = "documents_screen_filters_filter_by_expiry_period_3"
	textExpiryExpired  = "documents_screen_filters_filter_by_expiry_period_4"
	textSortBy         = "documents_screen_filters_sort_by"
	textSortDefault    = "documents_screen_filters_sort_default"
	textSortDateIssued = "documents_screen_filters_sort_date_issued"
	textSortExpiryDate = "documents_screen_filters_sort_expiry_date"
	textIssuer         = "documents_screen_filters_filter_by_issuer"
	textIssuerAll      = "documents_screen_filters_filter_by_issuer_all"
	textState          = "documents_screen_filters_filter_by_state"
	textStateValid     = "documents_screen_filters_filter_by_state_valid"
	textStateExpired   = "documents_screen_filters_filter_by_state_expired"
	expiryDateFormat   = "02 Jan 2006"
	nextWeekDays       = 7
	nextMonthDays      = 30
)

type attrs = models.Attributes

// defaultFilters builds the initial catalog configuration: nothing filtered,
// sorted by name ascending. The issuer group is filled from loaded data.
func (o *Orchestrator) defaultFilters() (filter.Configuration[attrs], error) {
	now := o.clock
	expiry := func(id, key string, match func(a attrs, t time.Time) bool) filter.Item[attrs] {
		return filter.Item[attrs]{
			ID:     id,
			Name:   o.text.GetString(key),
			Action: filter.Predicate(func(a attrs) bool { return match(a, now()) }),
		}
	}

	return filter.NewConfiguration(filter.Ascending,
		filter.NewFilterGroup(GroupExpiryPeriod, o.text.GetString(textExpiryPeriod),
			expiry(ItemExpiresNext7, textExpiryNext7, func(a attrs, t time.Time) bool { return a.ExpiresWithin(t, nextWeekDays) }),
			expiry(ItemExpiresNext30, textExpiryNext30, func(a attrs, t time.Time) bool { return a.ExpiresWithin(t, nextMonthDays) }),
			expiry(ItemExpiresBeyond30, textExpiryBeyond30, func(a attrs, t time.Time) bool { return a.ExpiresBeyond(t, nextMonthDays) }),
			expiry(ItemExpired, textExpiryExpired, func(a attrs, t time.Time) bool { return a.Expired(t) }),
		),
		filter.NewSortGroup(GroupSort, o.text.GetString(textSortBy),
			filter.Item[attrs]{
				ID:       ItemSortDefault,
				Name:     o.text.GetString(textSortDefault),
				Selected: true,
				Action:   filter.SortKey(func(a attrs) filter.Key { return filter.String(a.LowerName()) }),
			},
			filter.Item[attrs]{
				ID:     ItemSortDateIssued,
				Name:   o.text.GetString(textSortDateIssued),
				Action: filter.SortKey(func(a attrs) filter.Key { return filter.TimeOf(a.IssuedAt) }),
			},
			filter.Item[attrs]{
				ID:     ItemSortExpiryDate,
				Name:   o.text.GetString(textSortExpiryDate),
				Action: filter.SortKey(func(a attrs) filter.Key { return filter.TimeOf(a.ExpiresAt) }),
			},
		),
		filter.NewFilterGroup(GroupIssuer, o.text.GetString(textIssuer), o.issuerSentinel()),
		filter.NewFilterGroup(GroupState, o.text.GetString(textState),
			expiry(ItemStateValid, textStateValid, func(a attrs, t time.Time) bool { return a.ExpiresAt != nil && !a.Expired(t) }),
			expiry(ItemStateExpired, textStateExpired, func(a attrs, t time.Time) bool { return a.Expired(t) }),
		),
	)
}

func (o *Orchestrator) issuerSentinel() filter.Item[attrs] {
	return filter.NewSentinel[attrs](ItemIssuerAll, o.text.GetString(textIssuerAll))
}

// issuerItems derives one issuer option per distinct issuer in c, after the
// "all" sentinel.
func (o *Orchestrator) issuerItems(c models.Collection) []filter.Item[attrs] {
	var names []string
	for _, e := range c.Items() {
		names = append(names, e.Attributes.Issuer)
	}
	items := []filter.Item[attrs]{o.issuerSentinel()}
	for _, issuer := range pstrings.DistinctTrimmed(names) {
		items = append(items, filter.Item[attrs]{
			ID:     issuer,
			Name:   issuer,
			Action: filter.Predicate(func(a attrs) bool { return a.Issuer == issuer }),
		})
	}
	return items
}

// toCollection maps engine documents to catalog entries with their display text.
func (o *Orchestrator) toCollection(docs []models.Document) models.Collection {
	now := o.clock()
	entries := make([]models.Entry, 0, len(docs))
	for _, doc := range docs {
		a := models.AttributesOf(doc)
		entries = append(entries, models.Entry{
			ID:         doc.ID.String(),
			Attributes: a,
			Payload: models.DocumentItem{
				Document:       doc,
				IssuanceState:  doc.IssuanceState,
				SupportingText: o.supportingText(doc, a, now),
			},
		})
	}
	return filter.NewCollection(entries...)
}

func (o *Orchestrator) supportingText(doc models.Document, a attrs, now time.Time) string {
	switch doc.IssuanceState {
	case models.IssuancePending:
		return o.text.GetString(textPending)
	case models.IssuanceFailed:
		return o.text.GetString(deferred.TextDeferredFailed)
	}
	switch {
	case a.Expired(now):
		return o.text.GetString(textExpired)
	case a.ExpiresAt != nil:
		return o.text.GetString(textExpiresOn, "Date", a.ExpiresAt.Format(expiryDateFormat))
	default:
		return ""
	}
}
