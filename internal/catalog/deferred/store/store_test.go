package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/ports"
	"eudiwallet/internal/catalog/ports/mocks"
	"eudiwallet/pkg/platform/circuit"
	"eudiwallet/pkg/platform/sentinel"
)

func sampleMarkers() models.Markers {
	m := models.NewMarkers()
	m.Pending["pid-1"] = models.FormatMsoMdoc
	m.Failed["mdl-2"] = models.FormatSdJwtVc
	return m
}

// =============================================================================
// Marker Store Contract
// =============================================================================
// Justification: both backends must agree on miss semantics and on empty
// markers deleting the wallet entry, since the orchestrator saves after
// every cycle.

type storeContract struct {
	suite.Suite
	newStore func() ports.MarkerStore
}

func (s *storeContract) TestRoundTrip() {
	ctx := context.Background()
	st := s.newStore()

	s.Require().NoError(st.Save(ctx, "w1", sampleMarkers()))

	got, err := st.Load(ctx, "w1")
	s.Require().NoError(err)
	s.Equal(sampleMarkers(), got)
}

func (s *storeContract) TestUnknownWalletLoadsEmpty() {
	got, err := s.newStore().Load(context.Background(), "nobody")
	s.Require().NoError(err)
	s.True(got.IsEmpty())
	s.NotNil(got.Pending)
	s.NotNil(got.Failed)
}

func (s *storeContract) TestSavingEmptyMarkersDeletes() {
	ctx := context.Background()
	st := s.newStore()
	s.Require().NoError(st.Save(ctx, "w1", sampleMarkers()))

	s.Require().NoError(st.Save(ctx, "w1", models.NewMarkers()))

	got, err := st.Load(ctx, "w1")
	s.Require().NoError(err)
	s.True(got.IsEmpty())
}

func (s *storeContract) TestDeleteAndIsolation() {
	ctx := context.Background()
	st := s.newStore()
	s.Require().NoError(st.Save(ctx, "w1", sampleMarkers()))
	s.Require().NoError(st.Save(ctx, "w2", sampleMarkers()))

	s.Require().NoError(st.Delete(ctx, "w1"))

	w1, err := st.Load(ctx, "w1")
	s.Require().NoError(err)
	s.True(w1.IsEmpty())
	w2, err := st.Load(ctx, "w2")
	s.Require().NoError(err)
	s.Equal(sampleMarkers(), w2)
}

func (s *storeContract) TestLoadedMarkersAreCopies() {
	ctx := context.Background()
	st := s.newStore()
	s.Require().NoError(st.Save(ctx, "w1", sampleMarkers()))

	got, err := st.Load(ctx, "w1")
	s.Require().NoError(err)
	got.Pending["mutated"] = models.FormatMsoMdoc

	again, err := st.Load(ctx, "w1")
	s.Require().NoError(err)
	s.NotContains(again.Pending, models.DocumentID("mutated"))
}

type InMemoryStoreSuite struct{ storeContract }

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &InMemoryStoreSuite{storeContract{newStore: func() ports.MarkerStore { return NewInMemory() }}})
}

type RedisStoreSuite struct {
	storeContract
	mr *miniredis.Miniredis
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.newStore = func() ports.MarkerStore {
		return NewRedis(redis.NewClient(&redis.Options{Addr: s.mr.Addr()}), WithTTL(time.Hour))
	}
}

func (s *RedisStoreSuite) TestTTLIsApplied() {
	st := s.newStore()
	s.Require().NoError(st.Save(context.Background(), "w1", sampleMarkers()))

	s.Equal(time.Hour, s.mr.TTL(markerKey("w1")))
	s.mr.FastForward(2 * time.Hour)

	got, err := st.Load(context.Background(), "w1")
	s.Require().NoError(err)
	s.True(got.IsEmpty())
}

func (s *RedisStoreSuite) TestUnavailableServerIsSentinel() {
	st := s.newStore()
	s.mr.Close()

	_, err := st.Load(context.Background(), "w1")
	s.ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *RedisStoreSuite) TestCorruptValue() {
	s.Require().NoError(s.mr.Set(markerKey("w1"), "{not json"))

	_, err := s.newStore().Load(context.Background(), "w1")
	s.ErrorContains(err, "decode markers")
}

// =============================================================================
// Fallback Store
// =============================================================================

type FallbackStoreSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	primary  *mocks.MockMarkerStore
	fallback *InMemoryStore
	store    *FallbackStore
}

func TestFallbackStoreSuite(t *testing.T) {
	suite.Run(t, new(FallbackStoreSuite))
}

func (s *FallbackStoreSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.primary = mocks.NewMockMarkerStore(s.ctrl)
	s.fallback = NewInMemory()
	var err error
	s.store, err = NewFallback(s.primary, s.fallback,
		WithBreaker(circuit.New("test", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1))),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)
}

func (s *FallbackStoreSuite) TestNewFallbackRequiresStores() {
	_, err := NewFallback(nil, s.fallback)
	s.ErrorContains(err, "primary marker store is required")
	_, err = NewFallback(s.primary, nil)
	s.ErrorContains(err, "fallback marker store is required")
}

func (s *FallbackStoreSuite) TestHealthyPrimaryServesReads() {
	ctx := context.Background()
	s.primary.EXPECT().Save(ctx, "w1", sampleMarkers()).Return(nil)
	s.primary.EXPECT().Load(ctx, "w1").Return(sampleMarkers(), nil)

	s.Require().NoError(s.store.Save(ctx, "w1", sampleMarkers()))
	got, err := s.store.Load(ctx, "w1")
	s.Require().NoError(err)
	s.Equal(sampleMarkers(), got)

	local, _ := s.fallback.Load(ctx, "w1")
	s.Equal(sampleMarkers(), local, "writes go through to the local store")
}

func (s *FallbackStoreSuite) TestFailuresBelowThresholdSurface() {
	ctx := context.Background()
	s.primary.EXPECT().Load(ctx, "w1").Return(models.Markers{}, sentinel.ErrUnavailable)

	_, err := s.store.Load(ctx, "w1")
	s.ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *FallbackStoreSuite) TestOpenCircuitServesLocalCopyUntilRecovery() {
	ctx := context.Background()
	down := errors.New("connection refused")
	s.primary.EXPECT().Save(ctx, "w1", gomock.Any()).Return(down).Times(2)
	s.primary.EXPECT().Load(ctx, "w1").Return(sampleMarkers(), nil)

	s.Error(s.store.Save(ctx, "w1", sampleMarkers()), "first failure is below threshold")
	s.NoError(s.store.Save(ctx, "w1", sampleMarkers()), "second failure opens the circuit")

	got, err := s.store.Load(ctx, "w1")
	s.Require().NoError(err)
	s.Equal(sampleMarkers(), got)
	s.Equal(circuit.StateClosed, s.store.breaker.State(), "one success closes with threshold 1")
}

func (s *FallbackStoreSuite) TestPrimaryResumesAfterSuccessThreshold() {
	ctx := context.Background()
	st, err := NewFallback(s.primary, s.fallback,
		WithBreaker(circuit.New("test", circuit.WithFailureThreshold(1), circuit.WithSuccessThreshold(2))),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)

	local := models.NewMarkers()
	local.Pending["pid-1"] = models.FormatMsoMdoc
	remote := sampleMarkers()

	gomock.InOrder(
		s.primary.EXPECT().Save(ctx, "w1", local).Return(errors.New("connection refused")),
		s.primary.EXPECT().Load(ctx, "w1").Return(remote, nil).Times(2),
	)

	s.Require().NoError(st.Save(ctx, "w1", local), "an open circuit absorbs the primary failure")
	s.Require().True(st.breaker.IsOpen())

	got, err := st.Load(ctx, "w1")
	s.Require().NoError(err)
	s.Equal(local, got, "the first success while open still serves the local copy")
	s.True(st.breaker.IsOpen())

	got, err = st.Load(ctx, "w1")
	s.Require().NoError(err)
	s.Equal(remote, got, "the primary serves reads again once the breaker closes")
	s.Equal(circuit.StateClosed, st.breaker.State())
}
