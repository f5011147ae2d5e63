package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetCategory string

const (
	CategoryOffice  AssetCategory = "Office Equipment"
	CategoryProject AssetCategory = "Project Machinery"
	CategoryCommon  AssetCategory = "Common Area"
	CategoryIT      AssetCategory = "IT Hardware"
)

func ValidCategory(s string) bool {
	switch AssetCategory(s) {
	case CategoryOffice, CategoryProject, CategoryCommon, CategoryIT:
		return true
	}
	return false
}

type AssetStatus string

const (
	AssetActive   AssetStatus = "Active"
	AssetInRepair AssetStatus = "In Repair"
	AssetDisposed AssetStatus = "Disposed"
)

type MovementType string

const (
	MovementInternal MovementType = "Internal Transfer"
	MovementExternal MovementType = "External Movement"
)

// AssigneeKind tags what an asset assignment points at, replacing the
// single polymorphic id string of older imports.
type AssigneeKind string

const (
	AssignedToUser     AssigneeKind = "user"
	AssignedToProject  AssigneeKind = "project"
	AssignedToLocation AssigneeKind = "location"
	AssignedDisposed   AssigneeKind = "disposed"
	Unassigned         AssigneeKind = "unassigned"
)

type Assignee struct {
	Kind AssigneeKind `gorm:"type:varchar(20)" json:"kind"`
	Ref  string       `gorm:"size:255" json:"ref"`
}

func (a Assignee) String() string {
	switch a.Kind {
	case AssignedDisposed:
		return "Disposed"
	case Unassigned, "":
		return "Unassigned"
	}
	return a.Ref
}

type Asset struct {
	ID               string          `gorm:"primaryKey;size:36" json:"id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description"`
	Category         AssetCategory   `gorm:"type:varchar(50);not null" json:"category"`
	Status           AssetStatus     `gorm:"type:varchar(20);not null" json:"status"`
	PurchaseDate     time.Time       `json:"purchaseDate"`
	PurchaseCost     decimal.Decimal `gorm:"type:numeric(14,2)" json:"purchaseCost"`
	DepreciationRate float64         `json:"depreciationRate"`
	AssignedTo       Assignee        `gorm:"embedded;embeddedPrefix:assigned_" json:"assignedTo"`
	Movements        []AssetMovement `gorm:"foreignKey:AssetID" json:"movements"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
	UpdatedTimestamp time.Time       `json:"updatedTimestamp"`
}

// AssetMovement is the append-only relocation trail of an asset.
// Records are created once and never edited or deleted.
type AssetMovement struct {
	ID           string       `gorm:"primaryKey;size:36" json:"id"`
	AssetID      string       `gorm:"size:36;not null;index" json:"-"`
	MovementDate time.Time    `json:"movementDate"`
	MovementType MovementType `gorm:"type:varchar(30);not null" json:"movementType"`
	From         string       `gorm:"column:from_location;size:255" json:"from"`
	To           string       `gorm:"column:to_location;size:255" json:"to"`
	Reason       string       `gorm:"type:text" json:"reason"`
	DocumentURL  string       `gorm:"size:512" json:"documentUrl,omitempty"`
}
