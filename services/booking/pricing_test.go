package booking

import (
	"testing"

	"porchly/catalog"
	"porchly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The catalogs are small enough to price every combination of package, zone
// and add-on subset and compare against the closed-form sum.
func TestComputeTotalMatchesClosedForm(t *testing.T) {
	addOns := catalog.AddOns()
	zoneIDs := []string{""}
	for _, z := range catalog.Zones() {
		zoneIDs = append(zoneIDs, z.ID)
	}

	for _, pkg := range catalog.Packages() {
		for _, zoneID := range zoneIDs {
			for mask := 0; mask < 1<<len(addOns); mask++ {
				for _, qty := range []int{1, 2, 5} {
					cfg := NewConfiguration()
					cfg.PackageID = pkg.ID
					cfg.DeliveryZoneID = zoneID
					cfg.HaybaleQuantity = qty

					expected := pkg.Price
					cfg.AddOns = nil
					for i, a := range addOns {
						if mask&(1<<i) == 0 {
							continue
						}
						cfg.AddOns = append(cfg.AddOns, a.ID)
						if a.PerUnit {
							expected += a.Price * qty
						} else {
							expected += a.Price
						}
					}
					if zoneID != "" {
						zone, err := catalog.ZoneByID(zoneID)
						require.NoError(t, err)
						expected += zone.Fee
					}

					total, err := ComputeTotal(cfg)
					require.NoError(t, err)
					assert.Equal(t, expected, total,
						"package=%s zone=%s mask=%b qty=%d", pkg.ID, zoneID, mask, qty)
				}
			}
		}
	}
}

func TestComputeTotalDeluxeExample(t *testing.T) {
	cfg := NewConfiguration()
	require.NoError(t, SetPackage(&cfg, "deluxe"))
	require.NoError(t, SetDeliveryZone(&cfg, "standard"))
	require.NoError(t, ToggleAddOn(&cfg, catalog.AddOnHaybale))
	SetHaybaleQuantity(&cfg, 3)

	total, err := ComputeTotal(cfg)
	require.NoError(t, err)
	assert.Equal(t, 930, total) // 800 + 25 + 35*3
}

func TestComputeTotalStarterExample(t *testing.T) {
	cfg := NewConfiguration()
	require.NoError(t, SetPackage(&cfg, "starter"))
	require.NoError(t, SetDeliveryZone(&cfg, "free"))

	total, err := ComputeTotal(cfg)
	require.NoError(t, err)
	assert.Equal(t, 245, total)
}

func TestComputeTotalIdempotent(t *testing.T) {
	cfg := NewConfiguration()
	require.NoError(t, SetPackage(&cfg, "standard"))
	require.NoError(t, ToggleAddOn(&cfg, catalog.AddOnDesign))

	first, err := ComputeTotal(cfg)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeTotal(cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeTotalAfterReset(t *testing.T) {
	cfg := NewConfiguration()
	require.NoError(t, SetPackage(&cfg, "custom"))
	require.NoError(t, SetDeliveryZone(&cfg, "extended"))
	require.NoError(t, ToggleAddOn(&cfg, catalog.AddOnBackyard))

	Reset(&cfg)

	total, err := ComputeTotal(cfg)
	require.NoError(t, err)

	defaultPkg, err := catalog.PackageByID(catalog.DefaultPackageID)
	require.NoError(t, err)
	assert.Equal(t, defaultPkg.Price, total)
}

func TestBuildQuoteRejectsUnknownIDs(t *testing.T) {
	cfg := NewConfiguration()
	cfg.PackageID = "mega"
	_, err := BuildQuote(cfg)
	var unknown *catalog.UnknownIDError
	assert.ErrorAs(t, err, &unknown)

	cfg = NewConfiguration()
	cfg.AddOns = []string{"fog-machine"}
	_, err = BuildQuote(cfg)
	assert.ErrorAs(t, err, &unknown)

	cfg = NewConfiguration()
	cfg.DeliveryZoneID = "mars"
	_, err = BuildQuote(cfg)
	assert.ErrorAs(t, err, &unknown)
}

func TestBuildQuoteLines(t *testing.T) {
	cfg := NewConfiguration()
	require.NoError(t, SetPackage(&cfg, "deluxe"))
	require.NoError(t, SetDeliveryZone(&cfg, "standard"))
	require.NoError(t, ToggleAddOn(&cfg, catalog.AddOnHaybale))
	SetHaybaleQuantity(&cfg, 3)

	quote, err := BuildQuote(cfg)
	require.NoError(t, err)
	require.Len(t, quote.Lines, 3)

	assert.Equal(t, models.QuoteLine{Kind: "package", ID: "deluxe", Label: "Deluxe Package", Quantity: 1, Amount: 800}, quote.Lines[0])
	assert.Equal(t, models.QuoteLine{Kind: "addon", ID: "haybale", Label: "Haybale", Quantity: 3, Amount: 105}, quote.Lines[1])
	assert.Equal(t, models.QuoteLine{Kind: "delivery", ID: "standard", Label: "Standard Delivery", Quantity: 1, Amount: 25}, quote.Lines[2])
	assert.Equal(t, 930, quote.Total)
}
