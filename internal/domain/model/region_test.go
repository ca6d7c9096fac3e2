package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion_StoresLonLat(t *testing.T) {
	r := NewRegion("Paris", 48.8566, 2.3522, "French")
	assert.Equal(t, 48.8566, r.Latitude())
	assert.Equal(t, 2.3522, r.Longitude())
	assert.Equal(t, 2.3522, r.Coordinates[0])
}

func TestNewRegionCatalog(t *testing.T) {
	t.Run("空のカタログはエラー", func(t *testing.T) {
		_, err := NewRegionCatalog(nil)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("方言が空ならエラー", func(t *testing.T) {
		_, err := NewRegionCatalog([]Region{NewRegion("Nowhere", 0, 0, "")})
		assert.Error(t, err)
	})

	t.Run("名前が空ならエラー", func(t *testing.T) {
		_, err := NewRegionCatalog([]Region{NewRegion("", 0, 0, "French")})
		assert.Error(t, err)
	})

	t.Run("元のスライスを変更しても影響しない", func(t *testing.T) {
		regions := []Region{NewRegion("Paris", 48.8566, 2.3522, "French")}
		catalog, err := NewRegionCatalog(regions)
		require.NoError(t, err)

		regions[0].Dialect = "Spanish"
		assert.Equal(t, "French", catalog.At(0).Dialect)

		all := catalog.All()
		all[0].Dialect = "German"
		assert.Equal(t, "French", catalog.At(0).Dialect)
	})
}

func TestRegionCatalog_Lookup(t *testing.T) {
	catalog, err := NewRegionCatalog([]Region{
		NewRegion("London", 51.505, -0.09, "British English"),
		NewRegion("Tokyo", 35.6895, 139.6917, "Japanese"),
	})
	require.NoError(t, err)

	tokyo, ok := catalog.FindByName("Tokyo")
	require.True(t, ok)
	assert.True(t, catalog.Contains(tokyo))
	assert.False(t, catalog.Contains(NewRegion("Tokyo", 0, 0, "Japanese")))

	_, ok = catalog.FindByName("Berlin")
	assert.False(t, ok)
	assert.Equal(t, 2, catalog.Len())
}

func TestMarkerModeIsValid(t *testing.T) {
	assert.True(t, MarkerModeTrail.IsValid())
	assert.True(t, MarkerModeLatest.IsValid())
	assert.False(t, MarkerMode("bogus").IsValid())
	assert.False(t, MarkerMode("").IsValid())
}
