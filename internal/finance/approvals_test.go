package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdeel-pulse/internal/activity"
	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

func newApprovalsFixture(t *testing.T) (*Approvals, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	require.NoError(t, mem.SavePayment(&models.PaymentInstruction{
		ID:       "pay-1",
		Payee:    "SKM Air Conditioning",
		Amount:   decimal.NewFromInt(82000),
		Currency: "AED",
		Status:   models.PaymentPending,
	}))
	require.NoError(t, mem.SaveAccount(&models.AccountHead{
		ID:             "acc-1",
		Name:           "Petty Cash DIB",
		ApprovalStatus: models.ApprovalPending,
	}))
	return NewApprovals(mem, activity.NewLogger(mem)), mem
}

func TestUpdatePayment(t *testing.T) {
	t.Run("should require a reason to reject", func(t *testing.T) {
		svc, mem := newApprovalsFixture(t)

		_, err := svc.UpdatePayment(&models.PaymentInstruction{
			ID:     "pay-1",
			Payee:  "SKM Air Conditioning",
			Status: models.PaymentRejected,
		}, "user-1")

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)

		stored, err := mem.Payment("pay-1")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPending, stored.Status)
	})

	t.Run("should stamp the approver on a status change", func(t *testing.T) {
		svc, mem := newApprovalsFixture(t)

		updated, err := svc.UpdatePayment(&models.PaymentInstruction{
			ID:     "pay-1",
			Payee:  "SKM Air Conditioning",
			Status: models.PaymentApproved,
		}, "user-2")
		require.NoError(t, err)

		assert.Equal(t, "user-2", updated.ApproverID)
		require.NotNil(t, updated.ApprovalTimestamp)

		entries, err := mem.Activity(10)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].Action, "changed the status of payment")
	})

	t.Run("should record the rejection reason in the activity trail", func(t *testing.T) {
		svc, mem := newApprovalsFixture(t)

		_, err := svc.UpdatePayment(&models.PaymentInstruction{
			ID:              "pay-1",
			Payee:           "SKM Air Conditioning",
			Status:          models.PaymentRejected,
			RejectionReason: "Invoice does not match PO.",
		}, "user-2")
		require.NoError(t, err)

		entries, err := mem.Activity(10)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].Action, "rejected a payment")
		assert.Contains(t, entries[0].Action, "Invoice does not match PO.")
	})

	t.Run("should fail for an unknown payment", func(t *testing.T) {
		svc, _ := newApprovalsFixture(t)
		_, err := svc.UpdatePayment(&models.PaymentInstruction{ID: "pay-404"}, "user-1")
		var nf *apperr.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("should require a reason to reject an account head", func(t *testing.T) {
		svc, _ := newApprovalsFixture(t)
		_, err := svc.UpdateAccount(&models.AccountHead{
			ID:             "acc-1",
			Name:           "Petty Cash DIB",
			ApprovalStatus: models.ApprovalRejected,
		}, "user-1")
		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("should log an approval", func(t *testing.T) {
		svc, mem := newApprovalsFixture(t)
		_, err := svc.UpdateAccount(&models.AccountHead{
			ID:             "acc-1",
			Name:           "Petty Cash DIB",
			ApprovalStatus: models.ApprovalApproved,
		}, "user-1")
		require.NoError(t, err)

		entries, err := mem.Activity(10)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].Action, "approved the account head")
	})
}
