package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "eudiwallet/pkg/domain-errors"
)

func selected(t *testing.T, cfg Configuration[doc], groupID string) []string {
	t.Helper()
	g, ok := cfg.Group(groupID)
	require.True(t, ok)
	return g.SelectedIDs()
}

func TestToggleSentinelGroup(t *testing.T) {
	base := catalogConfig(t, Ascending)

	t.Run("selecting a specific item deselects the sentinel", func(t *testing.T) {
		cfg, err := base.WithSelectionToggled("issuer", "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, selected(t, cfg, "issuer"))
	})

	t.Run("selecting the sentinel deselects all others", func(t *testing.T) {
		cfg, err := base.WithSelectionToggled("issuer", "A")
		require.NoError(t, err)
		cfg, err = cfg.WithSelectionToggled("issuer", "B")
		require.NoError(t, err)
		cfg, err = cfg.WithSelectionToggled("issuer", "all")
		require.NoError(t, err)
		assert.Equal(t, []string{"all"}, selected(t, cfg, "issuer"))
	})

	t.Run("deselecting the last specific item reselects the sentinel", func(t *testing.T) {
		cfg, err := base.WithSelectionToggled("issuer", "A")
		require.NoError(t, err)
		cfg, err = cfg.WithSelectionToggled("issuer", "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"all"}, selected(t, cfg, "issuer"))
	})

	t.Run("toggling the selected sentinel is a no-op", func(t *testing.T) {
		cfg, err := base.WithSelectionToggled("issuer", "all")
		require.NoError(t, err)
		assert.Equal(t, []string{"all"}, selected(t, cfg, "issuer"))
	})

	t.Run("sentinel exclusivity holds across any toggle sequence", func(t *testing.T) {
		cfg := base
		for _, id := range []string{"A", "B", "all", "B", "A", "B", "A", "all", "A"} {
			var err error
			cfg, err = cfg.WithSelectionToggled("issuer", id)
			require.NoError(t, err)

			sel := selected(t, cfg, "issuer")
			require.NotEmpty(t, sel)
			if sel[0] == "all" {
				assert.Len(t, sel, 1)
			}
		}
	})

	t.Run("the original value never changes", func(t *testing.T) {
		_, err := base.WithSelectionToggled("issuer", "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"all"}, selected(t, base, "issuer"))
	})
}

func TestToggleSortGroup(t *testing.T) {
	base := catalogConfig(t, Ascending)

	cfg, err := base.WithSelectionToggled("sort", "expiry")
	require.NoError(t, err)
	assert.Equal(t, []string{"expiry"}, selected(t, cfg, "sort"))

	cfg, err = cfg.WithSelectionToggled("sort", "expiry")
	require.NoError(t, err)
	assert.Equal(t, []string{"expiry"}, selected(t, cfg, "sort"))
}

func TestToggleGroupWithoutSentinel(t *testing.T) {
	cfg, err := NewConfiguration(Ascending, NewFilterGroup("issuer", "Issuer", issuerItem("A"), issuerItem("B")))
	require.NoError(t, err)

	cfg, err = cfg.WithSelectionToggled("issuer", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, selected(t, cfg, "issuer"))

	cfg, err = cfg.WithSelectionToggled("issuer", "A")
	require.NoError(t, err)
	assert.Empty(t, selected(t, cfg, "issuer"))
}

func TestToggleUnknownTargets(t *testing.T) {
	base := catalogConfig(t, Ascending)

	_, err := base.WithSelectionToggled("missing", "A")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = base.WithSelectionToggled("issuer", "missing")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestWithGroupItemsKeepsSelection(t *testing.T) {
	cfg, err := catalogConfig(t, Ascending).WithSelectionToggled("issuer", "A")
	require.NoError(t, err)

	t.Run("surviving ids keep their selection", func(t *testing.T) {
		next, err := cfg.WithGroupItems("issuer", []Item[doc]{
			NewSentinel[doc]("all", "All"), issuerItem("A"), issuerItem("C"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, selected(t, next, "issuer"))
	})

	t.Run("removed selection falls back to the sentinel", func(t *testing.T) {
		next, err := cfg.WithGroupItems("issuer", []Item[doc]{
			NewSentinel[doc]("all", "All"), issuerItem("C"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"all"}, selected(t, next, "issuer"))
	})
}

func TestSelectionEqual(t *testing.T) {
	a := catalogConfig(t, Ascending)
	b := catalogConfig(t, Ascending)
	assert.True(t, a.SelectionEqual(b))
	assert.False(t, a.SelectionEqual(a.WithDirection(Descending)))

	toggled, err := a.WithSelectionToggled("issuer", "B")
	require.NoError(t, err)
	assert.False(t, a.SelectionEqual(toggled))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("desc")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	_, err = ParseDirection("sideways")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
