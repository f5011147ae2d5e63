package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tabdeel-pulse/internal/models"
)

func yearsBefore(t time.Time, years float64) time.Time {
	return t.Add(-time.Duration(years * hoursPerYear * float64(time.Hour)))
}

func TestComputeDepreciation(t *testing.T) {
	asOf := time.Date(2023, time.October, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should depreciate straight-line over the useful life", func(t *testing.T) {
		// 10,000 at 20%/year: useful life 5y, salvage 1,000, 1,800/year.
		a := &models.Asset{
			Status:           models.AssetActive,
			PurchaseDate:     yearsBefore(asOf, 3),
			PurchaseCost:     decimal.NewFromInt(10000),
			DepreciationRate: 0.20,
		}
		res := ComputeDepreciation(a, asOf)
		assert.True(t, res.AccumulatedDepreciation.Equal(decimal.NewFromInt(5400)),
			"accumulated = %s", res.AccumulatedDepreciation)
		assert.True(t, res.CurrentBookValue.Equal(decimal.NewFromInt(4600)),
			"book value = %s", res.CurrentBookValue)
		assert.True(t, res.SalvageValue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, res.UsefulLife.Equal(decimal.NewFromInt(5)))
	})

	t.Run("should floor book value at salvage value", func(t *testing.T) {
		a := &models.Asset{
			Status:           models.AssetActive,
			PurchaseDate:     yearsBefore(asOf, 20),
			PurchaseCost:     decimal.NewFromInt(10000),
			DepreciationRate: 0.20,
		}
		res := ComputeDepreciation(a, asOf)
		assert.True(t, res.CurrentBookValue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, res.AccumulatedDepreciation.Equal(decimal.NewFromInt(9000)))
	})

	t.Run("should not depreciate a future purchase", func(t *testing.T) {
		a := &models.Asset{
			Status:           models.AssetActive,
			PurchaseDate:     asOf.AddDate(1, 0, 0),
			PurchaseCost:     decimal.NewFromInt(5000),
			DepreciationRate: 0.25,
		}
		res := ComputeDepreciation(a, asOf)
		assert.True(t, res.AccumulatedDepreciation.IsZero())
		assert.True(t, res.CurrentBookValue.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("should force a full write-off for disposed assets", func(t *testing.T) {
		a := &models.Asset{
			Status:           models.AssetDisposed,
			PurchaseDate:     asOf.AddDate(0, -6, 0),
			PurchaseCost:     decimal.NewFromInt(120000),
			DepreciationRate: 0.15,
		}
		res := ComputeDepreciation(a, asOf)
		assert.True(t, res.CurrentBookValue.IsZero())
		assert.True(t, res.AccumulatedDepreciation.Equal(decimal.NewFromInt(120000)))
	})

	t.Run("should treat a zero rate as never depreciating", func(t *testing.T) {
		// Batch import accepts a zero rate, so the calculator must not
		// divide by it.
		a := &models.Asset{
			Status:           models.AssetActive,
			PurchaseDate:     yearsBefore(asOf, 10),
			PurchaseCost:     decimal.NewFromInt(1000),
			DepreciationRate: 0,
		}
		var res DepreciationResult
		assert.NotPanics(t, func() { res = ComputeDepreciation(a, asOf) })
		assert.True(t, res.AccumulatedDepreciation.IsZero())
		assert.True(t, res.CurrentBookValue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, res.UsefulLife.IsZero())
	})

	t.Run("should write off a disposed zero-rate asset", func(t *testing.T) {
		a := &models.Asset{
			Status:           models.AssetDisposed,
			PurchaseDate:     yearsBefore(asOf, 2),
			PurchaseCost:     decimal.NewFromInt(1000),
			DepreciationRate: 0,
		}
		res := ComputeDepreciation(a, asOf)
		assert.True(t, res.CurrentBookValue.IsZero())
		assert.True(t, res.AccumulatedDepreciation.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("should be deterministic for a fixed asOf", func(t *testing.T) {
		a := &models.Asset{
			Status:           models.AssetActive,
			PurchaseDate:     yearsBefore(asOf, 1.5),
			PurchaseCost:     decimal.NewFromInt(8000),
			DepreciationRate: 0.20,
		}
		first := ComputeDepreciation(a, asOf)
		second := ComputeDepreciation(a, asOf)
		assert.Equal(t, first, second)
	})

	t.Run("should keep book value between salvage and cost while active", func(t *testing.T) {
		a := &models.Asset{
			Status:           models.AssetActive,
			PurchaseDate:     time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
			PurchaseCost:     decimal.NewFromInt(150000),
			DepreciationRate: 0.10,
		}
		for months := 0; months < 180; months += 6 {
			res := ComputeDepreciation(a, a.PurchaseDate.AddDate(0, months, 0))
			assert.True(t, res.CurrentBookValue.GreaterThanOrEqual(res.SalvageValue))
			assert.True(t, res.CurrentBookValue.LessThanOrEqual(a.PurchaseCost))
		}
	})

	t.Run("should never increase book value as time advances", func(t *testing.T) {
		a := &models.Asset{
			Status:           models.AssetActive,
			PurchaseDate:     time.Date(2021, time.May, 20, 0, 0, 0, 0, time.UTC),
			PurchaseCost:     decimal.NewFromInt(8000),
			DepreciationRate: 0.20,
		}
		prev := a.PurchaseCost
		for months := 1; months <= 96; months++ {
			res := ComputeDepreciation(a, a.PurchaseDate.AddDate(0, months, 0))
			assert.True(t, res.CurrentBookValue.LessThanOrEqual(prev),
				"book value rose from %s to %s at month %d", prev, res.CurrentBookValue, months)
			prev = res.CurrentBookValue
		}
		assert.True(t, prev.Equal(decimal.NewFromInt(800)), "long-run book value = %s", prev)
	})
}
