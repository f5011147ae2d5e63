package assets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdeel-pulse/internal/finance"
	"tabdeel-pulse/internal/models"
)

func TestSerialToDate(t *testing.T) {
	// Serial 45000 is 2023-03-15 in Excel's calendar.
	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), serialToDate(45000))
	// Serial 61 is the first day after Excel's phantom 1900 leap day.
	assert.Equal(t, time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC), serialToDate(61))
}

func TestImportBatch(t *testing.T) {
	t.Run("should create valid rows and skip invalid ones", func(t *testing.T) {
		m, _ := newManagerFixture(t)

		result, err := m.ImportBatch([]ImportRow{
			{
				Name:             "Dell Latitude 5440",
				Category:         string(models.CategoryIT),
				PurchaseDate:     float64(45000),
				PurchaseCost:     float64(4200),
				DepreciationRate: float64(0.33),
			},
			{
				Name:             "",
				Category:         string(models.CategoryOffice),
				PurchaseDate:     "2023-06-01",
				PurchaseCost:     float64(1500),
				DepreciationRate: float64(0.20),
			},
			{
				Name:             "Makita Drill Set",
				Category:         string(models.CategoryProject),
				PurchaseDate:     "2023-06-01",
				PurchaseCost:     float64(900),
				DepreciationRate: float64(0.25),
			},
		}, "user-admin")
		require.NoError(t, err)

		require.Len(t, result.Created, 2)
		require.Len(t, result.Rejected, 1)
		assert.Equal(t, 2, result.Rejected[0].Row)
		assert.Contains(t, result.Rejected[0].Errors, "Asset Name is missing.")

		assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), result.Created[0].PurchaseDate)
		assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), result.Created[1].PurchaseDate)
	})

	t.Run("should report every problem on a bad row", func(t *testing.T) {
		m, _ := newManagerFixture(t)

		result, err := m.ImportBatch([]ImportRow{
			{
				Name:             "Mystery Item",
				Category:         "Furniture",
				PurchaseDate:     "15/03/2023",
				PurchaseCost:     "four thousand",
				DepreciationRate: float64(1.5),
			},
		}, "user-admin")
		require.NoError(t, err)

		require.Len(t, result.Rejected, 1)
		errs := result.Rejected[0].Errors
		assert.Contains(t, errs, "Purchase Cost must be a number.")
		assert.Contains(t, errs, "Depreciation Rate must be a number between 0.0 and 1.0.")
		assert.Contains(t, errs, "Invalid Purchase Date format.")
		assert.Contains(t, errs, "Invalid Category. Must be one of: Office Equipment, Project Machinery, Common Area, IT Hardware.")
	})

	t.Run("should reject a negative purchase cost", func(t *testing.T) {
		m, _ := newManagerFixture(t)

		result, err := m.ImportBatch([]ImportRow{{
			Name:             "Refund Entry",
			Category:         string(models.CategoryOffice),
			PurchaseDate:     "2023-01-01",
			PurchaseCost:     float64(-100),
			DepreciationRate: float64(0.20),
		}}, "user-admin")
		require.NoError(t, err)

		assert.Empty(t, result.Created)
		require.Len(t, result.Rejected, 1)
		assert.Contains(t, result.Rejected[0].Errors, "Purchase Cost must not be negative.")
	})

	t.Run("should accept a zero rate and still price the asset", func(t *testing.T) {
		m, _ := newManagerFixture(t)

		result, err := m.ImportBatch([]ImportRow{{
			Name:             "Donated Generator",
			Category:         string(models.CategoryProject),
			PurchaseDate:     "2023-01-01",
			PurchaseCost:     float64(1000),
			DepreciationRate: float64(0),
		}}, "user-admin")
		require.NoError(t, err)
		require.Len(t, result.Created, 1)

		var res finance.DepreciationResult
		assert.NotPanics(t, func() {
			res = finance.ComputeDepreciation(&result.Created[0], m.now())
		})
		assert.True(t, res.CurrentBookValue.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("should flag missing fields by name", func(t *testing.T) {
		m, _ := newManagerFixture(t)

		result, err := m.ImportBatch([]ImportRow{{Name: "Bare Row", Category: string(models.CategoryCommon)}}, "user-admin")
		require.NoError(t, err)

		require.Len(t, result.Rejected, 1)
		errs := result.Rejected[0].Errors
		assert.Contains(t, errs, "Purchase Date is missing.")
		assert.Contains(t, errs, "Purchase Cost is missing.")
		assert.Contains(t, errs, "Depreciation Rate is missing.")
	})

	t.Run("should log one entry for the whole batch", func(t *testing.T) {
		m, mem := newManagerFixture(t)

		_, err := m.ImportBatch([]ImportRow{
			{Name: "Ladder A", Category: string(models.CategoryCommon), PurchaseDate: "2024-01-05", PurchaseCost: float64(300), DepreciationRate: float64(0.10)},
			{Name: "Ladder B", Category: string(models.CategoryCommon), PurchaseDate: "2024-01-05", PurchaseCost: float64(300), DepreciationRate: float64(0.10)},
		}, "user-admin")
		require.NoError(t, err)

		entries, err := mem.Activity(5)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].Action, "batch imported 2 new assets.")
	})

	t.Run("should log nothing when every row fails", func(t *testing.T) {
		m, mem := newManagerFixture(t)

		result, err := m.ImportBatch([]ImportRow{{}}, "user-admin")
		require.NoError(t, err)
		assert.Empty(t, result.Created)

		entries, err := mem.Activity(5)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
