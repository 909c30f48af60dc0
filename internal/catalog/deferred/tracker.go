package deferred

import (
	"maps"
	"sync"

	"eudiwallet/internal/catalog/models"
)

// tracker holds the pending and failed markers. A document is in at most one
// of the two sets.
type tracker struct {
	mu      sync.Mutex
	pending map[models.DocumentID]models.FormatType
	failed  map[models.DocumentID]models.FormatType
}

func newTracker() *tracker {
	return &tracker{
		pending: make(map[models.DocumentID]models.FormatType),
		failed:  make(map[models.DocumentID]models.FormatType),
	}
}

func (t *tracker) snapshot() models.Markers {
	t.mu.Lock()
	defer t.mu.Unlock()
	return models.Markers{Pending: maps.Clone(t.pending), Failed: maps.Clone(t.failed)}
}

func (t *tracker) restore(m models.Markers) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = make(map[models.DocumentID]models.FormatType, len(m.Pending))
	t.failed = make(map[models.DocumentID]models.FormatType, len(m.Failed))
	maps.Copy(t.failed, m.Failed)
	for id, f := range m.Pending {
		if _, failed := t.failed[id]; !failed {
			t.pending[id] = f
		}
	}
}

// track replaces the pending set with refs.
func (t *tracker) track(refs map[models.DocumentID]models.FormatType) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = maps.Clone(refs)
	for id := range refs {
		delete(t.failed, id)
	}
}

func (t *tracker) clearFailed(ids ...models.DocumentID) map[models.DocumentID]models.FormatType {
	t.mu.Lock()
	defer t.mu.Unlock()
	cleared := make(map[models.DocumentID]models.FormatType)
	if len(ids) == 0 {
		cleared = t.failed
		t.failed = make(map[models.DocumentID]models.FormatType)
		return cleared
	}
	for _, id := range ids {
		if f, ok := t.failed[id]; ok {
			cleared[id] = f
			delete(t.failed, id)
		}
	}
	return cleared
}

func (t *tracker) forget(id models.DocumentID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, id)
	delete(t.failed, id)
}

// commit folds a cycle result for batch into the markers. Succeeded refs are
// dropped, still-pending refs stay pending, and refs reported failed or left
// unaccounted for become failed.
func (t *tracker) commit(batch map[models.DocumentID]models.FormatType, result models.RetryResult) Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := Outcome{
		StillPending: make(map[models.DocumentID]models.FormatType),
		Failed:       make(map[models.DocumentID]models.FormatType),
	}
	settled := make(map[models.DocumentID]struct{}, len(batch))

	for _, doc := range result.Succeeded {
		if _, ok := batch[doc.ID]; !ok {
			continue
		}
		settled[doc.ID] = struct{}{}
		out.Succeeded = append(out.Succeeded, doc)
		delete(t.pending, doc.ID)
		delete(t.failed, doc.ID)
	}
	for _, doc := range result.StillPending {
		f, ok := batch[doc.ID]
		if !ok {
			continue
		}
		if _, done := settled[doc.ID]; done {
			continue
		}
		settled[doc.ID] = struct{}{}
		out.StillPending[doc.ID] = f
		t.pending[doc.ID] = f
	}
	for id, f := range batch {
		if _, done := settled[id]; done {
			continue
		}
		out.Failed[id] = f
		delete(t.pending, id)
		t.failed[id] = f
	}
	return out
}
