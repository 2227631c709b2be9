package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogResolve(t *testing.T) {
	catalog := NewToolCatalog()

	tool, ok := catalog.Resolve("signal-analyzer")
	require.True(t, ok)
	assert.Equal(t, "Signal Analyzer Pro", tool.Name)
	assert.True(t, tool.IsPremium)
	assert.Equal(t, 75, tool.PointsRequired)

	_, ok = catalog.Resolve("no-such-tool")
	assert.False(t, ok)
}

func TestCatalogListPremiumFilter(t *testing.T) {
	catalog := NewToolCatalog()

	all := catalog.List(nil)
	assert.Len(t, all, 6)

	premium := true
	for _, tool := range catalog.List(&premium) {
		assert.True(t, tool.IsPremium)
		assert.Greater(t, tool.PointsRequired, 0)
	}
	assert.Len(t, catalog.List(&premium), 3)

	free := false
	assert.Len(t, catalog.List(&free), 3)
}

func TestCatalogComponentLookup(t *testing.T) {
	catalog := NewToolCatalog()

	for _, id := range []string{"aspect-ratio", "btu-calculator", "video-bandwidth-calculator"} {
		widget := catalog.Component(id)
		require.NotNil(t, widget, id)
		assert.Equal(t, id, widget.ToolID())
	}

	// Premium tools have catalog entries but no loadable unit yet.
	assert.Nil(t, catalog.Component("advanced-room-designer"))
	assert.Nil(t, catalog.Component("no-such-tool"))
}

func TestCatalogIDs(t *testing.T) {
	catalog := NewToolCatalog()
	ids := catalog.IDs()
	assert.Len(t, ids, 6)
	assert.Equal(t, "aspect-ratio", ids[0])
}
