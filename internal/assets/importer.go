package assets

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tabdeel-pulse/internal/models"
)

// ImportRow is one spreadsheet row. PurchaseDate, PurchaseCost and
// DepreciationRate are typed any because exported sheets
// deliver dates either as ISO strings or as Excel serial numbers, and
// a non-numeric cost must surface as a row error, not a bind failure.
type ImportRow struct {
	Name             string `json:"Name"`
	Description      string `json:"Description"`
	Category         string `json:"Category"`
	PurchaseDate     any    `json:"PurchaseDate"`
	PurchaseCost     any    `json:"PurchaseCost"`
	DepreciationRate any    `json:"DepreciationRate"`
}

type RowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

type ImportResult struct {
	Created  []models.Asset `json:"created"`
	Rejected []RowError     `json:"rejected"`
}

// Excel day 1 is 1900-01-01, but Excel also believes 1900 was a leap
// year. Anchoring day N at 1899-12-31 + (N-1) days reproduces Excel's
// calendar for everything after February 1900, which is all we import.
var serialEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

func serialToDate(n int) time.Time {
	return serialEpoch.AddDate(0, 0, n-1)
}

func parsePurchaseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case float64:
		return serialToDate(int(d)), true
	case string:
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validateRow(row ImportRow) ([]string, *models.Asset) {
	var errs []string

	if row.Name == "" {
		errs = append(errs, "Asset Name is missing.")
	}
	if row.Category == "" {
		errs = append(errs, "Category is missing.")
	} else if !models.ValidCategory(row.Category) {
		errs = append(errs, fmt.Sprintf("Invalid Category. Must be one of: %s, %s, %s, %s.",
			models.CategoryOffice, models.CategoryProject, models.CategoryCommon, models.CategoryIT))
	}
	if row.PurchaseDate == nil {
		errs = append(errs, "Purchase Date is missing.")
	}
	if row.PurchaseCost == nil {
		errs = append(errs, "Purchase Cost is missing.")
	}
	if row.DepreciationRate == nil {
		errs = append(errs, "Depreciation Rate is missing.")
	}

	cost, costOK := row.PurchaseCost.(float64)
	if row.PurchaseCost != nil && !costOK {
		errs = append(errs, "Purchase Cost must be a number.")
	} else if costOK && cost < 0 {
		errs = append(errs, "Purchase Cost must not be negative.")
	}
	rate, rateOK := row.DepreciationRate.(float64)
	if row.DepreciationRate != nil && (!rateOK || rate < 0 || rate > 1) {
		errs = append(errs, "Depreciation Rate must be a number between 0.0 and 1.0.")
	}

	var purchaseDate time.Time
	if row.PurchaseDate != nil {
		var ok bool
		purchaseDate, ok = parsePurchaseDate(row.PurchaseDate)
		if !ok {
			errs = append(errs, "Invalid Purchase Date format.")
		}
	}

	if len(errs) > 0 {
		return errs, nil
	}

	return nil, &models.Asset{
		Name:             row.Name,
		Description:      row.Description,
		Category:         models.AssetCategory(row.Category),
		Status:           models.AssetActive,
		PurchaseDate:     purchaseDate,
		PurchaseCost:     decimal.NewFromFloat(cost),
		DepreciationRate: rate,
		AssignedTo:       models.Assignee{Kind: models.Unassigned},
	}
}

// ImportBatch validates each row independently and creates the valid
// ones. The batch is not atomic: invalid rows are reported and skipped
// while the rest go through.
func (m *Manager) ImportBatch(rows []ImportRow, actorID string) (*ImportResult, error) {
	result := &ImportResult{}
	now := m.now()

	for i, row := range rows {
		errs, asset := validateRow(row)
		if len(errs) > 0 {
			result.Rejected = append(result.Rejected, RowError{Row: i + 1, Errors: errs})
			continue
		}
		asset.ID = uuid.NewString()
		asset.CreatedTimestamp = now
		asset.UpdatedTimestamp = now
		if err := m.store.SaveAsset(asset); err != nil {
			return nil, err
		}
		result.Created = append(result.Created, *asset)
	}

	if len(result.Created) > 0 {
		m.log.Record(actorID, fmt.Sprintf("batch imported %d new assets.", len(result.Created)))
	}
	return result, nil
}
