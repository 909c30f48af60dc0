package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"eudiwallet/internal/catalog/deferred/store"
	"eudiwallet/internal/catalog/filter"
	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports/mocks"
	dErrors "eudiwallet/pkg/domain-errors"
	"eudiwallet/pkg/platform/audit"
	auditmemory "eudiwallet/pkg/platform/audit/publishers/memory"
	"eudiwallet/pkg/platform/sentinel"
	"eudiwallet/pkg/requestcontext"
)

const (
	testWallet = "wallet-1"
	testDelay  = 10 * time.Millisecond
	waitFor    = 2 * time.Second
	tick       = 5 * time.Millisecond
)

var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

// keyText echoes keys so assertions do not depend on translations.
type keyText struct{}

func (keyText) GetString(key string, args ...any) string {
	if len(args) >= 2 {
		return fmt.Sprintf("%s:%v", key, args[1])
	}
	return key
}

// engine is a mutable stand-in for the wallet's document store.
type engine struct {
	mu   sync.Mutex
	docs []models.Document
}

func (e *engine) all(context.Context) ([]models.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.docs), nil
}

func (e *engine) get(_ context.Context, id models.DocumentID) (models.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range e.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Document{}, sentinel.ErrNotFound
}

func (e *engine) issue(id models.DocumentID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.docs {
		if e.docs[i].ID == id {
			e.docs[i].IssuanceState = models.IssuanceIssued
		}
	}
}

func (e *engine) remove(id models.DocumentID) models.DeleteResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.docs = slices.DeleteFunc(e.docs, func(d models.Document) bool { return d.ID == id })
	return models.DeleteResult{AllDeleted: len(e.docs) == 0}
}

func days(n int) *time.Time {
	t := testNow.AddDate(0, 0, n)
	return &t
}

func issued(id, name, issuer string, expires *time.Time) models.Document {
	return models.Document{
		ID:            models.DocumentID(id),
		Name:          name,
		Issuer:        issuer,
		FormatType:    models.FormatMsoMdoc,
		IssuedAt:      days(-100),
		ExpiresAt:     expires,
		IssuanceState: models.IssuanceIssued,
	}
}

func pending(id, name string) models.Document {
	return models.Document{
		ID:            models.DocumentID(id),
		Name:          name,
		Issuer:        "Issuer",
		FormatType:    models.FormatMsoMdoc,
		IssuanceState: models.IssuancePending,
	}
}

func deferredDocs(ids ...string) []models.DeferredDocument {
	out := make([]models.DeferredDocument, len(ids))
	for i, id := range ids {
		out[i] = models.DeferredDocument{ID: models.DocumentID(id), FormatType: models.FormatMsoMdoc}
	}
	return out
}

func ids(v View) []models.DocumentID {
	out := make([]models.DocumentID, len(v.Documents))
	for i, d := range v.Documents {
		out[i] = d.Document.ID
	}
	return out
}

// =============================================================================
// Orchestrator Test Suite
// =============================================================================
// Justification: The orchestrator is where loading, deferred polling and
// filtering meet. These tests drive it end to end against a mocked engine
// and check the derived view, events, audit trail and persisted markers.

type OrchestratorSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	controller *mocks.MockDocumentsController
	engine     *engine
	store      *store.InMemoryStore
	auditor    *auditmemory.Publisher

	mu     sync.Mutex
	events []Event

	orch *Orchestrator
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}

func (s *OrchestratorSuite) SetupTest() {
	s.ctx = requestcontext.WithWalletID(context.Background(), testWallet)
	s.ctrl = gomock.NewController(s.T())
	s.controller = mocks.NewMockDocumentsController(s.ctrl)
	s.engine = &engine{}
	s.store = store.NewInMemory()
	s.auditor = auditmemory.NewPublisher()
	s.events = nil

	s.controller.EXPECT().GetAllDocuments(gomock.Any()).DoAndReturn(s.engine.all).AnyTimes()
	s.controller.EXPECT().GetDocumentByID(gomock.Any(), gomock.Any()).DoAndReturn(s.engine.get).AnyTimes()

	s.orch = s.newOrchestrator(testDelay)
}

func (s *OrchestratorSuite) TearDownTest() {
	s.orch.Close()
	s.ctrl.Finish()
}

func (s *OrchestratorSuite) newOrchestrator(delay time.Duration) *Orchestrator {
	o, err := New(s.controller, keyText{},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(s.auditor),
		WithMarkerStore(s.store, testWallet),
		WithPollDelay(delay),
		WithClock(func() time.Time { return testNow }),
		WithListener(s.record),
	)
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorSuite) record(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *OrchestratorSuite) recorded() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

func (s *OrchestratorSuite) readyEvents() []DeferredReady {
	var out []DeferredReady
	for _, e := range s.recorded() {
		if r, ok := e.(DeferredReady); ok {
			out = append(out, r)
		}
	}
	return out
}

// waitRefresh waits for a DocumentsRefreshed event whose view satisfies match.
func (s *OrchestratorSuite) waitRefresh(match func(View) bool) View {
	s.T().Helper()
	var found View
	s.Require().Eventually(func() bool {
		for _, e := range s.recorded() {
			if r, ok := e.(DocumentsRefreshed); ok && match(r.View) {
				found = r.View
				return true
			}
		}
		return false
	}, waitFor, tick)
	return found
}

func (s *OrchestratorSuite) auditActions() []string {
	events, err := s.auditor.ListByWallet(s.ctx, testWallet)
	s.Require().NoError(err)
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Action
	}
	return out
}

func (s *OrchestratorSuite) seedCatalog() {
	s.engine.docs = []models.Document{
		issued("d-c", "Charlie", "X", days(5)),
		issued("d-b", "beta", "Y", days(-1)),
		issued("d-a", "Alpha", "X", days(60)),
	}
}

func (s *OrchestratorSuite) TestNew() {
	s.Run("nil controller returns error", func() {
		_, err := New(nil, keyText{})
		s.ErrorContains(err, "documents controller is required")
	})

	s.Run("nil text provider returns error", func() {
		_, err := New(s.controller, nil)
		s.ErrorContains(err, "text provider is required")
	})

	s.Run("default filters are exposed before the first load", func() {
		view := s.orch.View()
		s.Empty(view.Documents)
		s.Equal("ascending", view.Direction)
		s.False(view.FilteringActive)

		var groupIDs []string
		for _, g := range view.Filters {
			groupIDs = append(groupIDs, g.ID)
		}
		s.Equal([]string{GroupExpiryPeriod, GroupSort, GroupIssuer, GroupState}, groupIDs)
	})
}

// =============================================================================
// Loading and Filtering
// =============================================================================

func (s *OrchestratorSuite) TestLoad() {
	s.seedCatalog()

	view, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)

	s.Run("sorts by lower-cased name by default", func() {
		s.Equal([]models.DocumentID{"d-a", "d-b", "d-c"}, ids(view))
	})

	s.Run("derives supporting text from expiry", func() {
		s.Equal("dashboard_document_expires_on:"+days(60).Format(expiryDateFormat), view.Documents[0].SupportingText)
		s.Equal(textExpired, view.Documents[1].SupportingText)
	})

	s.Run("rebuilds the issuer group from loaded documents", func() {
		var issuer FilterGroup
		for _, g := range view.Filters {
			if g.ID == GroupIssuer {
				issuer = g
			}
		}
		s.Require().Len(issuer.Items, 3)
		s.Equal(ItemIssuerAll, issuer.Items[0].ID)
		s.True(issuer.Items[0].Selected)
		s.Equal("X", issuer.Items[1].ID)
		s.Equal("Y", issuer.Items[2].ID)
	})

	s.Run("emits a refresh and an audit event", func() {
		s.NotEmpty(s.recorded())
		s.Contains(s.auditActions(), string(audit.EventDocumentsLoaded))
	})

	s.Run("stays idle without pending documents", func() {
		s.Equal("idle", view.Deferred.State)
		s.Empty(view.Deferred.Pending)
	})
}

func (s *OrchestratorSuite) TestLoadFetchFailure() {
	ctrl := gomock.NewController(s.T())
	controller := mocks.NewMockDocumentsController(ctrl)
	controller.EXPECT().GetAllDocuments(gomock.Any()).Return(nil, errors.New("engine offline"))

	o, err := New(controller, keyText{}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
	defer o.Close()

	_, err = o.Load(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeFetchFailed))
}

func (s *OrchestratorSuite) TestLoadSupersededByNewerLoad() {
	ctrl := gomock.NewController(s.T())
	controller := mocks.NewMockDocumentsController(ctrl)
	started := make(chan struct{})
	gomock.InOrder(
		controller.EXPECT().GetAllDocuments(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Document, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}),
		controller.EXPECT().GetAllDocuments(gomock.Any()).Return([]models.Document{issued("d-a", "Alpha", "X", nil)}, nil),
	)

	o, err := New(controller, keyText{}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
	defer o.Close()

	firstErr := make(chan error, 1)
	go func() {
		_, err := o.Load(s.ctx)
		firstErr <- err
	}()
	<-started

	view, err := o.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.DocumentID{"d-a"}, ids(view))

	select {
	case err := <-firstErr:
		s.True(dErrors.HasCode(err, dErrors.CodeCanceled))
	case <-time.After(waitFor):
		s.FailNow("superseded load did not return")
	}
	s.Equal([]models.DocumentID{"d-a"}, ids(o.View()))
}

func (s *OrchestratorSuite) TestPollRefreshDoesNotCancelUserLoad() {
	ctrl := gomock.NewController(s.T())
	controller := mocks.NewMockDocumentsController(ctrl)
	docs := []models.Document{pending("p1", "Pending One")}

	fetching := make(chan struct{})
	release := make(chan struct{})
	var fetches, retries atomic.Int32

	controller.EXPECT().GetAllDocuments(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Document, error) {
		if fetches.Add(1) != 2 {
			return slices.Clone(docs), nil
		}
		close(fetching)
		select {
		case <-release:
			return slices.Clone(docs), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}).AnyTimes()
	controller.EXPECT().RetryIssuance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, map[models.DocumentID]models.FormatType) (models.RetryResult, error) {
			switch retries.Add(1) {
			case 1:
				// the first cycle completes while the second load is fetching
				<-fetching
			case 2:
				close(release)
			}
			return models.RetryResult{StillPending: deferredDocs("p1")}, nil
		}).AnyTimes()

	o, err := New(controller, keyText{},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithPollDelay(testDelay),
	)
	s.Require().NoError(err)
	defer o.Close()

	_, err = o.Load(s.ctx)
	s.Require().NoError(err)

	view, err := o.Load(s.ctx)
	s.Require().NoError(err, "a completed poll cycle must not cancel the user load")
	s.Equal([]models.DocumentID{"p1"}, view.Deferred.Pending)
	s.NotEqual("idle", view.Deferred.State)
	s.GreaterOrEqual(retries.Load(), int32(2))
}

func (s *OrchestratorSuite) TestIssuerFilterAndNameSort() {
	s.seedCatalog()
	_, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)

	s.orch.BeginFilterEdit()
	view, err := s.orch.ToggleFilter(GroupIssuer, "X")
	s.Require().NoError(err)
	s.True(view.Editing)
	s.Len(view.Documents, 3, "edits do not change the view until applied")

	view = s.orch.ApplyFilters(s.ctx)
	s.Equal([]models.DocumentID{"d-a", "d-c"}, ids(view))
	s.True(view.FilteringActive)
	s.False(view.Editing)

	s.orch.BeginFilterEdit()
	s.orch.SetSortDirection(filter.Descending)
	view = s.orch.ApplyFilters(s.ctx)
	s.Equal([]models.DocumentID{"d-c", "d-a"}, ids(view))
	s.Equal("descending", view.Direction)

	view = s.orch.ResetFilters(s.ctx)
	s.Equal([]models.DocumentID{"d-a", "d-b", "d-c"}, ids(view))
	s.False(view.FilteringActive)

	s.Contains(s.auditActions(), string(audit.EventFiltersApplied))
	s.Contains(s.auditActions(), string(audit.EventFiltersReset))
}

func (s *OrchestratorSuite) TestExpiryAndStateFilters() {
	s.seedCatalog()
	_, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)

	s.Run("next seven days", func() {
		s.orch.BeginFilterEdit()
		_, err := s.orch.ToggleFilter(GroupExpiryPeriod, ItemExpiresNext7)
		s.Require().NoError(err)
		s.Equal([]models.DocumentID{"d-c"}, ids(s.orch.ApplyFilters(s.ctx)))
		s.orch.ResetFilters(s.ctx)
	})

	s.Run("beyond thirty days or expired", func() {
		s.orch.BeginFilterEdit()
		_, err := s.orch.ToggleFilter(GroupExpiryPeriod, ItemExpiresBeyond30)
		s.Require().NoError(err)
		_, err = s.orch.ToggleFilter(GroupExpiryPeriod, ItemExpired)
		s.Require().NoError(err)
		s.Equal([]models.DocumentID{"d-a", "d-b"}, ids(s.orch.ApplyFilters(s.ctx)))
		s.orch.ResetFilters(s.ctx)
	})

	s.Run("valid state", func() {
		s.orch.BeginFilterEdit()
		_, err := s.orch.ToggleFilter(GroupState, ItemStateValid)
		s.Require().NoError(err)
		s.Equal([]models.DocumentID{"d-a", "d-c"}, ids(s.orch.ApplyFilters(s.ctx)))
		s.orch.ResetFilters(s.ctx)
	})

	s.Run("sort by expiry date", func() {
		s.orch.BeginFilterEdit()
		_, err := s.orch.ToggleFilter(GroupSort, ItemSortExpiryDate)
		s.Require().NoError(err)
		s.Equal([]models.DocumentID{"d-b", "d-c", "d-a"}, ids(s.orch.ApplyFilters(s.ctx)))
		s.orch.ResetFilters(s.ctx)
	})

	s.Run("revert discards the edit", func() {
		s.orch.BeginFilterEdit()
		_, err := s.orch.ToggleFilter(GroupState, ItemStateExpired)
		s.Require().NoError(err)
		view := s.orch.RevertFilters()
		s.False(view.Editing)
		s.Len(view.Documents, 3)
	})

	s.Run("unknown item returns not found", func() {
		s.orch.BeginFilterEdit()
		_, err := s.orch.ToggleFilter(GroupIssuer, "nobody")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.orch.RevertFilters()
	})
}

func (s *OrchestratorSuite) TestSearch() {
	s.seedCatalog()
	_, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)

	view := s.orch.Search("x")
	s.Equal([]models.DocumentID{"d-a", "d-c"}, ids(view))
	s.Equal("x", view.Query)

	s.Run("search survives a reload", func() {
		view, err := s.orch.Load(s.ctx)
		s.Require().NoError(err)
		s.Equal([]models.DocumentID{"d-a", "d-c"}, ids(view))
	})

	s.Run("blank query shows everything", func() {
		s.Len(s.orch.Search("  ").Documents, 3)
	})
}

// =============================================================================
// Deferred Issuance
// =============================================================================

func (s *OrchestratorSuite) TestDeferredPollingLifecycle() {
	s.engine.docs = []models.Document{pending("p1", "Pending One"), pending("p2", "Pending Two")}

	gomock.InOrder(
		s.controller.EXPECT().RetryIssuance(gomock.Any(), gomock.Len(2)).
			DoAndReturn(func(context.Context, map[models.DocumentID]models.FormatType) (models.RetryResult, error) {
				s.engine.issue("p1")
				return models.RetryResult{Succeeded: deferredDocs("p1"), StillPending: deferredDocs("p2")}, nil
			}),
		s.controller.EXPECT().RetryIssuance(gomock.Any(), gomock.Len(1)).
			Return(models.RetryResult{Failed: deferredDocs("p2")}, nil),
	)

	view, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.DocumentID{"p1", "p2"}, view.Deferred.Pending)
	s.Equal(textPending, view.Documents[0].SupportingText)

	s.Run("still-pending documents stay pending after the first cycle", func() {
		v := s.waitRefresh(func(v View) bool {
			return slices.Equal(v.Deferred.Pending, []models.DocumentID{"p2"})
		})
		s.Empty(v.Deferred.Failed)
		s.Equal(models.IssuanceIssued, v.Documents[0].IssuanceState)
	})

	s.Run("succeeded documents are announced once", func() {
		s.Require().Eventually(func() bool { return len(s.readyEvents()) == 1 }, waitFor, tick)
		s.Equal(models.DocumentID("p1"), s.readyEvents()[0].Documents[0].ID)
	})

	s.Run("unresolved documents end up failed", func() {
		v := s.waitRefresh(func(v View) bool {
			return slices.Equal(v.Deferred.Failed, []models.DocumentID{"p2"})
		})
		s.Empty(v.Deferred.Pending)
		s.Equal(models.IssuanceFailed, v.Documents[1].IssuanceState)
		s.Equal("dashboard_document_deferred_failed", v.Documents[1].SupportingText)
	})

	s.Run("markers and audit trail are persisted", func() {
		s.Require().Eventually(func() bool {
			m, _ := s.store.Load(s.ctx, testWallet)
			_, failed := m.Failed["p2"]
			return failed && len(m.Pending) == 0
		}, waitFor, tick)
		actions := s.auditActions()
		s.Contains(actions, string(audit.EventDeferredIssued))
		s.Contains(actions, string(audit.EventDeferredFailed))
	})
}

func (s *OrchestratorSuite) TestReadyNotificationSuppressedUntilDismissed() {
	s.engine.docs = []models.Document{pending("p1", "Pending One"), pending("p2", "Pending Two")}

	gomock.InOrder(
		s.controller.EXPECT().RetryIssuance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, map[models.DocumentID]models.FormatType) (models.RetryResult, error) {
				s.engine.issue("p1")
				return models.RetryResult{Succeeded: deferredDocs("p1"), StillPending: deferredDocs("p2")}, nil
			}),
		s.controller.EXPECT().RetryIssuance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, map[models.DocumentID]models.FormatType) (models.RetryResult, error) {
				s.engine.issue("p2")
				return models.RetryResult{Succeeded: deferredDocs("p2")}, nil
			}),
	)

	_, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)

	s.waitRefresh(func(v View) bool {
		return len(v.Deferred.Pending) == 0 && len(v.Documents) == 2 &&
			v.Documents[1].IssuanceState == models.IssuanceIssued
	})
	s.Require().Eventually(func() bool { return len(s.readyEvents()) == 1 }, waitFor, tick)
	s.Never(func() bool { return len(s.readyEvents()) > 1 }, 50*time.Millisecond, tick)
	s.True(s.orch.View().ReadyShowing)

	s.False(s.orch.DismissReady().ReadyShowing)
}

func (s *OrchestratorSuite) TestPollQueryFailureKeepsMarkers() {
	s.engine.docs = []models.Document{pending("p1", "Pending One")}
	s.controller.EXPECT().RetryIssuance(gomock.Any(), gomock.Any()).
		Return(models.RetryResult{}, errors.New("issuer unreachable"))

	_, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)

	var failed PollFailed
	s.Require().Eventually(func() bool {
		for _, e := range s.recorded() {
			if f, ok := e.(PollFailed); ok {
				failed = f
				return true
			}
		}
		return false
	}, waitFor, tick)

	s.True(dErrors.HasCode(failed.Err, dErrors.CodePollQueryFailed))
	view := s.orch.View()
	s.Equal([]models.DocumentID{"p1"}, view.Deferred.Pending)
	s.Empty(view.Deferred.Failed)
	s.Equal("idle", view.Deferred.State)
	s.Contains(s.auditActions(), string(audit.EventPollQueryFailed))
}

func (s *OrchestratorSuite) TestRetryIssuance() {
	s.Run("unknown failed id returns not found", func() {
		_, err := s.orch.RetryIssuance(s.ctx, "missing")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("restored failure is retried on request", func() {
		s.engine.docs = []models.Document{pending("p1", "Pending One")}
		s.Require().NoError(s.store.Save(s.ctx, testWallet, models.Markers{
			Pending: map[models.DocumentID]models.FormatType{},
			Failed:  map[models.DocumentID]models.FormatType{"p1": models.FormatMsoMdoc},
		}))
		s.controller.EXPECT().RetryIssuance(gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(context.Context, map[models.DocumentID]models.FormatType) (models.RetryResult, error) {
				s.engine.issue("p1")
				return models.RetryResult{Succeeded: deferredDocs("p1")}, nil
			})

		view, err := s.orch.Load(s.ctx)
		s.Require().NoError(err)
		s.Equal([]models.DocumentID{"p1"}, view.Deferred.Failed)
		s.Equal(models.IssuanceFailed, view.Documents[0].IssuanceState)

		view, err = s.orch.RetryIssuance(s.ctx, "p1")
		s.Require().NoError(err)
		s.Empty(view.Deferred.Failed)

		s.Require().Eventually(func() bool { return len(s.readyEvents()) == 1 }, waitFor, tick)
		s.Contains(s.auditActions(), string(audit.EventDeferredRetried))
	})
}

func (s *OrchestratorSuite) TestPauseStopsPolling() {
	o := s.newOrchestrator(time.Hour)
	defer o.Close()
	s.engine.docs = []models.Document{pending("p1", "Pending One")}

	view, err := o.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("waiting", view.Deferred.State)

	o.Pause()
	view = o.View()
	s.Equal("idle", view.Deferred.State)
	s.Equal([]models.DocumentID{"p1"}, view.Deferred.Pending)

	view, err = o.Resume(s.ctx)
	s.Require().NoError(err)
	s.Equal("waiting", view.Deferred.State)
}

// =============================================================================
// Deletion
// =============================================================================

func (s *OrchestratorSuite) TestDeleteDocument() {
	s.engine.docs = []models.Document{
		issued("d-a", "Alpha", "X", days(60)),
		issued("d-b", "beta", "Y", days(60)),
	}
	s.controller.EXPECT().DeleteDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id models.DocumentID) (models.DeleteResult, error) {
			return s.engine.remove(id), nil
		}).Times(2)

	_, err := s.orch.Load(s.ctx)
	s.Require().NoError(err)

	s.Run("single deletion reloads", func() {
		out, err := s.orch.DeleteDocument(s.ctx, "d-a")
		s.Require().NoError(err)
		s.False(out.AllDeleted)
		s.Equal([]models.DocumentID{"d-b"}, ids(out.View))
	})

	s.Run("deleting the last document empties the catalog", func() {
		s.orch.Search("beta")
		out, err := s.orch.DeleteDocument(s.ctx, "d-b")
		s.Require().NoError(err)
		s.True(out.AllDeleted)
		s.Empty(out.View.Documents)
		s.Empty(out.View.Query)

		s.Contains(s.recorded(), Event(CatalogEmptied{}))
		s.Contains(s.auditActions(), string(audit.EventCatalogEmptied))
		m, err := s.store.Load(s.ctx, testWallet)
		s.Require().NoError(err)
		s.True(m.IsEmpty())
	})
}

func (s *OrchestratorSuite) TestDeleteDocumentFailure() {
	s.controller.EXPECT().DeleteDocument(gomock.Any(), models.DocumentID("d-a")).
		Return(models.DeleteResult{}, errors.New("keystore locked"))

	_, err := s.orch.DeleteDocument(s.ctx, "d-a")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeDeletionFailed))
	s.NotContains(s.auditActions(), string(audit.EventDocumentDeleted))
}
