package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/assets"
	"tabdeel-pulse/internal/finance"
	"tabdeel-pulse/internal/middleware"
	"tabdeel-pulse/internal/models"
)

type assetRequest struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Status           string           `json:"status"`
	PurchaseDate     string           `json:"purchaseDate"`
	PurchaseCost     decimal.Decimal  `json:"purchaseCost"`
	DepreciationRate float64          `json:"depreciationRate"`
	AssignedTo       *models.Assignee `json:"assignedTo"`
}

func (r assetRequest) toModel() (*models.Asset, error) {
	purchaseDate, err := parseDate(r.PurchaseDate)
	if err != nil {
		return nil, apperr.Validation("invalid purchase date")
	}
	a := &models.Asset{
		Name:             r.Name,
		Description:      r.Description,
		Category:         models.AssetCategory(r.Category),
		Status:           models.AssetStatus(r.Status),
		PurchaseDate:     purchaseDate,
		PurchaseCost:     r.PurchaseCost,
		DepreciationRate: r.DepreciationRate,
	}
	if r.AssignedTo != nil {
		a.AssignedTo = *r.AssignedTo
	}
	return a, nil
}

func (h *Handlers) ListAssets(c *gin.Context) {
	list, err := h.Assets.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handlers) GetAsset(c *gin.Context) {
	asset, err := h.Assets.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// GetAssetDepreciation returns the book-value view of an asset, as of
// now or an explicit ?asOf=YYYY-MM-DD.
func (h *Handlers) GetAssetDepreciation(c *gin.Context) {
	asset, err := h.Assets.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	asOf := time.Now()
	if q := c.Query("asOf"); q != "" {
		asOf, err = parseDate(q)
		if err != nil {
			fail(c, apperr.Validation("invalid asOf date"))
			return
		}
	}
	c.JSON(http.StatusOK, finance.ComputeDepreciation(asset, asOf))
}

func (h *Handlers) CreateAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	asset, err := req.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	created, err := h.Assets.Create(asset, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) UpdateAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	asset, err := req.toModel()
	if err != nil {
		fail(c, err)
		return
	}
	asset.ID = c.Param("id")
	updated, err := h.Assets.Update(asset, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type movementRequest struct {
	MovementDate string           `json:"movementDate"`
	MovementType string           `json:"movementType"`
	From         string           `json:"from"`
	To           string           `json:"to"`
	Reason       string           `json:"reason"`
	DocumentURL  string           `json:"documentUrl"`
	NewAssignee  *models.Assignee `json:"newAssignee"`
	NewStatus    string           `json:"newStatus"`
}

func (h *Handlers) RecordAssetMovement(c *gin.Context) {
	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	movementDate, err := parseDate(req.MovementDate)
	if err != nil {
		fail(c, apperr.Validation("invalid movement date"))
		return
	}
	movement := models.AssetMovement{
		MovementDate: movementDate,
		MovementType: models.MovementType(req.MovementType),
		From:         req.From,
		To:           req.To,
		Reason:       req.Reason,
		DocumentURL:  req.DocumentURL,
	}
	updated, err := h.Assets.RecordMovement(c.Param("id"), movement,
		req.NewAssignee, models.AssetStatus(req.NewStatus), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type disposeRequest struct {
	Reason       string `json:"reason"`
	DisposalDate string `json:"disposalDate"`
	DocumentURL  string `json:"documentUrl"`
}

func (h *Handlers) DisposeAsset(c *gin.Context) {
	var req disposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	disposalDate, err := parseDate(req.DisposalDate)
	if err != nil {
		fail(c, apperr.Validation("invalid disposal date"))
		return
	}
	updated, err := h.Assets.Dispose(c.Param("id"), req.Reason, disposalDate,
		middleware.UserID(c), req.DocumentURL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) ImportAssets(c *gin.Context) {
	var rows []assets.ImportRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		fail(c, apperr.Validation("invalid import payload"))
		return
	}
	result, err := h.Assets.ImportBatch(rows, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
