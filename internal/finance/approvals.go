package finance

import (
	"fmt"
	"strings"
	"time"

	"tabdeel-pulse/internal/activity"
	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

// Approvals owns the payment-instruction and account-head approval
// transitions. Rejections require a reason before anything is written.
type Approvals struct {
	store store.Store
	log   *activity.Logger
	now   func() time.Time
}

func NewApprovals(s store.Store, log *activity.Logger) *Approvals {
	return &Approvals{store: s, log: log, now: time.Now}
}

func (a *Approvals) Payments() ([]models.PaymentInstruction, error) {
	return a.store.Payments()
}

// UpdatePayment applies a status transition. The approver and approval
// time are stamped server-side; callers cannot forge them.
func (a *Approvals) UpdatePayment(p *models.PaymentInstruction, actorID string) (*models.PaymentInstruction, error) {
	old, err := a.store.Payment(p.ID)
	if err != nil {
		return nil, err
	}

	if old.Status != p.Status {
		if p.Status == models.PaymentRejected && strings.TrimSpace(p.RejectionReason) == "" {
			return nil, apperr.Validation("a rejection reason is required")
		}
		now := a.now()
		p.ApproverID = actorID
		p.ApprovalTimestamp = &now

		if p.Status == models.PaymentRejected {
			a.log.Record(actorID, fmt.Sprintf("rejected a payment for %q. Reason: %s", p.Payee, p.RejectionReason))
		} else {
			a.log.Record(actorID, fmt.Sprintf("changed the status of payment for %q to %s.", p.Payee, p.Status))
		}
	}

	if err := a.store.SavePayment(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *Approvals) Accounts() ([]models.AccountHead, error) {
	return a.store.Accounts()
}

func (a *Approvals) UpdateAccount(acc *models.AccountHead, actorID string) (*models.AccountHead, error) {
	old, err := a.store.Account(acc.ID)
	if err != nil {
		return nil, err
	}

	if old.ApprovalStatus != acc.ApprovalStatus {
		switch acc.ApprovalStatus {
		case models.ApprovalApproved:
			a.log.Record(actorID, fmt.Sprintf("approved the account head %q.", acc.Name))
		case models.ApprovalRejected:
			if strings.TrimSpace(acc.RejectionReason) == "" {
				return nil, apperr.Validation("a rejection reason is required")
			}
			a.log.Record(actorID, fmt.Sprintf("rejected the account head %q. Reason: %s", acc.Name, acc.RejectionReason))
		}
	}

	if err := a.store.SaveAccount(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (a *Approvals) Collections() ([]models.Collection, error) {
	return a.store.Collections()
}

func (a *Approvals) Deposits() ([]models.Deposit, error) {
	return a.store.Deposits()
}
