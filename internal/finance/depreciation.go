// Package finance holds the money rules: straight-line depreciation
// and the payment/account approval flows.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"tabdeel-pulse/internal/models"
)

// Salvage value is fixed company policy: 10% of purchase cost.
var salvageRate = decimal.NewFromFloat(0.10)

const hoursPerYear = 24 * 365.25

type DepreciationResult struct {
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	CurrentBookValue        decimal.Decimal `json:"currentBookValue"`
	SalvageValue            decimal.Decimal `json:"salvageValue"`
	UsefulLife              decimal.Decimal `json:"usefulLife"`
}

// ComputeDepreciation returns the straight-line depreciation state of
// an asset as of the given instant. Pure and deterministic; monetary
// outputs are rounded to 2 decimal places at this boundary only.
//
// The manager validates the rate into (0, 1] on create, but batch
// import accepts a zero rate; such an asset never depreciates and its
// useful life is reported as 0.
func ComputeDepreciation(a *models.Asset, asOf time.Time) DepreciationResult {
	salvage := a.PurchaseCost.Mul(salvageRate)

	usefulLife := 0.0
	accumulated := decimal.Zero
	bookValue := a.PurchaseCost

	if a.DepreciationRate > 0 {
		usefulLife = 1 / a.DepreciationRate

		yearsOwned := asOf.Sub(a.PurchaseDate).Hours() / hoursPerYear
		if yearsOwned > usefulLife {
			yearsOwned = usefulLife
		}

		depreciableBase := a.PurchaseCost.Sub(salvage)
		yearly := depreciableBase.Div(decimal.NewFromFloat(usefulLife))
		accumulated = yearly.Mul(decimal.NewFromFloat(yearsOwned))
		// Future purchase dates depreciate nothing, not a negative amount.
		if accumulated.IsNegative() {
			accumulated = decimal.Zero
		}

		bookValue = a.PurchaseCost.Sub(accumulated)
		if bookValue.LessThan(salvage) {
			bookValue = salvage
		}
	}

	// Disposal forces a full write-off regardless of the formula.
	if a.Status == models.AssetDisposed {
		bookValue = decimal.Zero
		accumulated = a.PurchaseCost
	}

	return DepreciationResult{
		AccumulatedDepreciation: accumulated.Round(2),
		CurrentBookValue:        bookValue.Round(2),
		SalvageValue:            salvage.Round(2),
		UsefulLife:              decimal.NewFromFloat(usefulLife).Round(2),
	}
}
