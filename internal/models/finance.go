package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentApproved PaymentStatus = "Approved"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRejected PaymentStatus = "Rejected"
)

type PaymentInstruction struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"`
	Payee             string          `gorm:"size:255;not null" json:"payee"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Currency          string          `gorm:"size:3;not null" json:"currency"`
	Date              time.Time       `json:"date"`
	Status            PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	IsRecurring       bool            `json:"isRecurring"`
	CreatedTimestamp  time.Time       `json:"createdTimestamp"`
	RejectionReason   string          `gorm:"type:text" json:"rejectionReason,omitempty"`
	ApproverID        string          `gorm:"size:36" json:"approverId,omitempty"`
	ApprovalTimestamp *time.Time      `json:"approvalTimestamp,omitempty"`
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

type AccountHead struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	BankName         string         `gorm:"size:255" json:"bankName"`
	AccountNumber    string         `gorm:"size:50" json:"accountNumber"`
	ApprovalStatus   ApprovalStatus `gorm:"type:varchar(20);not null" json:"approvalStatus"`
	RejectionReason  string         `gorm:"type:text" json:"rejectionReason,omitempty"`
	CreatedTimestamp time.Time      `json:"createdTimestamp"`
}

type Collection struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"`
	ProjectID         string          `gorm:"size:36;index" json:"projectId"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	OutstandingAmount decimal.Decimal `gorm:"type:numeric(14,2)" json:"outstandingAmount"`
	ReceivedDate      time.Time       `json:"receivedDate"`
	PaymentMethod     string          `gorm:"size:20" json:"paymentMethod"`
	CreatedTimestamp  time.Time       `json:"createdTimestamp"`
}

type Deposit struct {
	ID               string          `gorm:"primaryKey;size:36" json:"id"`
	AccountID        string          `gorm:"size:36;index" json:"accountId"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	DepositDate      time.Time       `json:"depositDate"`
	SlipURL          string          `gorm:"size:512" json:"slipUrl,omitempty"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
}
