// Package assets owns the asset lifecycle: creation, updates, the
// movement trail, disposal, and spreadsheet import.
package assets

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tabdeel-pulse/internal/activity"
	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

// DisposalSentinel is the destination recorded on a disposal movement.
const DisposalSentinel = "Disposed"

type Manager struct {
	store store.Store
	log   *activity.Logger
	now   func() time.Time
}

func NewManager(s store.Store, log *activity.Logger) *Manager {
	return &Manager{store: s, log: log, now: time.Now}
}

func (m *Manager) List() ([]models.Asset, error) {
	return m.store.Assets()
}

func (m *Manager) Get(id string) (*models.Asset, error) {
	return m.store.Asset(id)
}

func validateAsset(a *models.Asset) error {
	var details []string
	if strings.TrimSpace(a.Name) == "" {
		details = append(details, "name is required")
	}
	if !models.ValidCategory(string(a.Category)) {
		details = append(details, "unknown category")
	}
	if a.DepreciationRate <= 0 || a.DepreciationRate > 1 {
		details = append(details, "depreciation rate must be in (0, 1]")
	}
	if a.PurchaseCost.IsNegative() {
		details = append(details, "purchase cost must not be negative")
	}
	if len(details) > 0 {
		return apperr.Validation("invalid asset", details...)
	}
	return nil
}

// Create registers a new asset with an empty movement list.
func (m *Manager) Create(a *models.Asset, actorID string) (*models.Asset, error) {
	if err := validateAsset(a); err != nil {
		return nil, err
	}
	now := m.now()
	a.ID = uuid.NewString()
	a.Movements = nil
	if a.Status == "" {
		a.Status = models.AssetActive
	}
	if a.AssignedTo.Kind == "" {
		a.AssignedTo.Kind = models.Unassigned
	}
	a.CreatedTimestamp = now
	a.UpdatedTimestamp = now
	if err := m.store.SaveAsset(a); err != nil {
		return nil, err
	}
	m.log.Record(actorID, fmt.Sprintf("added a new asset: %q.", a.Name))
	return a, nil
}

// Update replaces the stored record. Disposed assets are immutable.
func (m *Manager) Update(a *models.Asset, actorID string) (*models.Asset, error) {
	existing, err := m.store.Asset(a.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == models.AssetDisposed {
		return nil, apperr.InvalidState("disposed assets cannot be modified")
	}
	if err := validateAsset(a); err != nil {
		return nil, err
	}
	a.CreatedTimestamp = existing.CreatedTimestamp
	a.UpdatedTimestamp = m.now()
	if err := m.store.SaveAsset(a); err != nil {
		return nil, err
	}
	m.log.Record(actorID, fmt.Sprintf("updated details for asset %q.", a.Name))
	return m.store.Asset(a.ID)
}

// RecordMovement appends to the movement trail and, in the same call,
// optionally reassigns the asset and changes its status. The movement
// is the audit record; assignee and status reflect current state.
func (m *Manager) RecordMovement(assetID string, movement models.AssetMovement, newAssignee *models.Assignee, newStatus models.AssetStatus, actorID string) (*models.Asset, error) {
	asset, err := m.store.Asset(assetID)
	if err != nil {
		return nil, err
	}

	movement.ID = uuid.NewString()
	if err := m.store.AddMovement(assetID, &movement); err != nil {
		return nil, err
	}

	if newAssignee != nil {
		asset.AssignedTo = *newAssignee
	}
	if newStatus != "" {
		asset.Status = newStatus
	}
	asset.UpdatedTimestamp = m.now()
	if err := m.store.SaveAsset(asset); err != nil {
		return nil, err
	}

	m.log.Record(actorID, fmt.Sprintf("logged a movement for asset %q from %s to %s.", asset.Name, movement.From, movement.To))
	return m.store.Asset(assetID)
}

// Dispose writes the asset off: status becomes Disposed and an
// external movement to the disposal sentinel is appended. Disposing an
// already-disposed asset fails rather than duplicating the movement.
func (m *Manager) Dispose(assetID, reason string, disposalDate time.Time, actorID, documentURL string) (*models.Asset, error) {
	asset, err := m.store.Asset(assetID)
	if err != nil {
		return nil, err
	}
	if asset.Status == models.AssetDisposed {
		return nil, apperr.InvalidState("asset is already disposed")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, apperr.Validation("a disposal reason is required")
	}

	movement := models.AssetMovement{
		MovementDate: disposalDate,
		MovementType: models.MovementExternal,
		From:         asset.AssignedTo.String(),
		To:           DisposalSentinel,
		Reason:       reason,
		DocumentURL:  documentURL,
	}

	updated, err := m.RecordMovement(assetID, movement,
		&models.Assignee{Kind: models.AssignedDisposed}, models.AssetDisposed, actorID)
	if err != nil {
		return nil, err
	}

	m.log.Record(actorID, fmt.Sprintf("disposed asset %q for reason: %s.", asset.Name, reason))
	return updated, nil
}
