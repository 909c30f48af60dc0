package orchestrator

import (
	"slices"

	"eudiwallet/internal/catalog/filter"
	"eudiwallet/internal/catalog/models"
)

// View is the derived catalog state a client renders.
type View struct {
	Documents       []models.DocumentItem `json:"documents"`
	Query           string                `json:"query"`
	Filters         []FilterGroup         `json:"filters"`
	Direction       string                `json:"direction"`
	FilteringActive bool                  `json:"filtering_active"`
	Editing         bool                  `json:"editing"`
	ReadyShowing    bool                  `json:"ready_showing"`
	Deferred        DeferredView          `json:"deferred"`
}

type FilterGroup struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Kind  string       `json:"kind"`
	Items []FilterItem `json:"items"`
}

type FilterItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// DeferredView summarises deferred issuance tracking.
type DeferredView struct {
	State   string              `json:"state"`
	Pending []models.DocumentID `json:"pending"`
	Failed  []models.DocumentID `json:"failed"`
}

// viewLocked renders the current session. Filters show the working copy
// while an edit is pending. Callers hold o.mu.
func (o *Orchestrator) viewLocked() View {
	cfg := o.session.Applied()
	working, editing := o.session.Working()
	if editing {
		cfg = working
	}

	items := o.session.View().Items()
	docs := make([]models.DocumentItem, len(items))
	for i, e := range items {
		docs[i] = e.Payload
	}

	return View{
		Documents:       docs,
		Query:           o.query,
		Filters:         filterGroups(cfg),
		Direction:       cfg.Direction().String(),
		FilteringActive: o.session.FilteringActive(),
		Editing:         editing,
		ReadyShowing:    o.readyShowing,
		Deferred:        o.deferredView(),
	}
}

func (o *Orchestrator) deferredView() DeferredView {
	m := o.poller.Snapshot()
	return DeferredView{
		State:   o.poller.State().String(),
		Pending: sortedIDs(m.Pending),
		Failed:  sortedIDs(m.Failed),
	}
}

func filterGroups(cfg filter.Configuration[attrs]) []FilterGroup {
	groups := cfg.Groups()
	out := make([]FilterGroup, len(groups))
	for i, g := range groups {
		fg := FilterGroup{ID: g.ID, Name: g.Name, Kind: g.Kind.String()}
		for _, item := range g.Items() {
			fg.Items = append(fg.Items, FilterItem{ID: item.ID, Name: item.Name, Selected: item.Selected})
		}
		out[i] = fg
	}
	return out
}

func sortedIDs(m map[models.DocumentID]models.FormatType) []models.DocumentID {
	ids := make([]models.DocumentID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
