package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageByID(t *testing.T) {
	pkg, err := PackageByID("deluxe")
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Package", pkg.Name)
	assert.Equal(t, 800, pkg.Price)

	starter, err := PackageByID("starter")
	require.NoError(t, err)
	assert.Equal(t, 245, starter.Price)
}

func TestPackageByIDUnknown(t *testing.T) {
	_, err := PackageByID("mega")
	require.Error(t, err)

	var unknown *UnknownIDError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "package", unknown.Kind)
	assert.Equal(t, "mega", unknown.ID)
}

func TestAddOnByID(t *testing.T) {
	haybale, err := AddOnByID(AddOnHaybale)
	require.NoError(t, err)
	assert.Equal(t, 35, haybale.Price)
	assert.True(t, haybale.PerUnit)

	removal, err := AddOnByID(AddOnRemoval)
	require.NoError(t, err)
	assert.True(t, removal.NeedsWeek)

	_, err = AddOnByID("fog-machine")
	assert.Error(t, err)
}

func TestZoneFees(t *testing.T) {
	cases := map[string]int{"free": 0, "standard": 25, "extended": 50}
	for id, fee := range cases {
		zone, err := ZoneByID(id)
		require.NoError(t, err, id)
		assert.Equal(t, fee, zone.Fee, id)
	}

	_, err := ZoneByID("mars")
	assert.Error(t, err)
}

func TestWeekValidators(t *testing.T) {
	assert.True(t, ValidDeliveryWeek("oct-week1"))
	assert.False(t, ValidDeliveryWeek("sep-week1"))
	assert.True(t, ValidRemovalWeek("nov-week4"))
	assert.False(t, ValidRemovalWeek("oct-week1"))
	assert.True(t, ValidTimePreference("evening"))
	assert.False(t, ValidTimePreference("midnight"))
}

func TestDefaultsExistInCatalogs(t *testing.T) {
	_, err := PackageByID(DefaultPackageID)
	assert.NoError(t, err)
	assert.True(t, ValidTimePreference(DefaultTimePreference))
}
