package jobs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdeel-pulse/internal/activity"
	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

// notificationFailStore simulates a store whose notification writes
// fail while everything else works.
type notificationFailStore struct {
	*store.Memory
}

func (s *notificationFailStore) SaveNotification(*models.Notification) error {
	return errors.New("notification write failed")
}

func newServiceFixture(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := NewService(mem, activity.NewLogger(mem))
	svc.now = func() time.Time { return sweepAsOf }
	return svc, mem
}

func TestCreateJob(t *testing.T) {
	t.Run("should reject a blank title", func(t *testing.T) {
		svc, _ := newServiceFixture(t)
		_, err := svc.Create(&models.ServiceJob{Title: "  "}, "user-admin")
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("should start open and unescalated", func(t *testing.T) {
		svc, _ := newServiceFixture(t)
		created, err := svc.Create(&models.ServiceJob{
			Title:           "Replace AHU filters",
			AssignedToID:    "user-tech",
			Priority:        models.PriorityMedium,
			EscalationLevel: models.EscalationAdmin,
		}, "user-admin")
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.JobOpen, created.Status)
		assert.Equal(t, models.EscalationNone, created.EscalationLevel)
	})
}

func TestUpdateJob(t *testing.T) {
	seed := func(t *testing.T, svc *Service) *models.ServiceJob {
		t.Helper()
		created, err := svc.Create(&models.ServiceJob{
			Title:        "Chiller inspection",
			AssignedToID: "user-tech",
			Priority:     models.PriorityHigh,
			DueDate:      sweepAsOf.AddDate(0, 0, 7),
		}, "user-admin")
		require.NoError(t, err)
		return created
	}

	t.Run("should keep the server-owned escalation level", func(t *testing.T) {
		svc, mem := newServiceFixture(t)
		created := seed(t, svc)

		ok, err := mem.EscalateJob(created.ID, models.EscalationManager)
		require.NoError(t, err)
		require.True(t, ok)

		created.EscalationLevel = models.EscalationNone
		created.Description = "Pressure readings attached"
		updated, err := svc.Update(created, "user-admin")
		require.NoError(t, err)
		assert.Equal(t, models.EscalationManager, updated.EscalationLevel)
	})

	t.Run("should log a status change", func(t *testing.T) {
		svc, mem := newServiceFixture(t)
		created := seed(t, svc)

		created.Status = models.JobCompleted
		_, err := svc.Update(created, "user-admin")
		require.NoError(t, err)

		entries, err := mem.Activity(5)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].Action, `updated the status of job "Chiller inspection" to Completed.`)
	})

	t.Run("should notify the new assignee on reassignment", func(t *testing.T) {
		svc, mem := newServiceFixture(t)
		created := seed(t, svc)

		created.AssignedToID = "user-other"
		_, err := svc.Update(created, "user-admin")
		require.NoError(t, err)

		notes, err := mem.NotificationsForUser("user-other")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "The service job 'Chiller inspection' has been reassigned to you.", notes[0].Message)
	})

	t.Run("should not notify when reassigning to oneself", func(t *testing.T) {
		svc, mem := newServiceFixture(t)
		created := seed(t, svc)

		created.AssignedToID = "user-admin"
		_, err := svc.Update(created, "user-admin")
		require.NoError(t, err)

		notes, err := mem.NotificationsForUser("user-admin")
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("should surface a failed reassignment notification", func(t *testing.T) {
		mem := store.NewMemory()
		failing := &notificationFailStore{Memory: mem}
		svc := NewService(failing, activity.NewLogger(mem))
		svc.now = func() time.Time { return sweepAsOf }

		created, err := svc.Create(&models.ServiceJob{
			Title:        "Chiller inspection",
			AssignedToID: "user-tech",
		}, "user-admin")
		require.NoError(t, err)

		created.AssignedToID = "user-other"
		_, err = svc.Update(created, "user-admin")
		require.Error(t, err)

		// The record was not saved, so the stored job keeps its assignee.
		stored, err := mem.Job(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "user-tech", stored.AssignedToID)
	})

	t.Run("should fail for an unknown job", func(t *testing.T) {
		svc, _ := newServiceFixture(t)
		_, err := svc.Update(&models.ServiceJob{ID: "job-missing", Title: "Ghost"}, "user-admin")
		var nfe *apperr.NotFoundError
		require.ErrorAs(t, err, &nfe)
	})
}

func TestAddComment(t *testing.T) {
	t.Run("should append a comment and bump the job", func(t *testing.T) {
		svc, mem := newServiceFixture(t)
		created, err := svc.Create(&models.ServiceJob{Title: "Leak at pump room"}, "user-admin")
		require.NoError(t, err)

		later := sweepAsOf.Add(2 * time.Hour)
		svc.now = func() time.Time { return later }

		updated, err := svc.AddComment(created.ID, "user-tech", "Isolated the supply line.")
		require.NoError(t, err)

		require.Len(t, updated.Comments, 1)
		assert.Equal(t, "user-tech", updated.Comments[0].AuthorID)
		assert.Equal(t, later, updated.UpdatedDate)

		entries, err := mem.Activity(5)
		require.NoError(t, err)
		assert.Contains(t, entries[0].Action, "added a comment to job")
	})

	t.Run("should reject empty content", func(t *testing.T) {
		svc, _ := newServiceFixture(t)
		created, err := svc.Create(&models.ServiceJob{Title: "Leak at pump room"}, "user-admin")
		require.NoError(t, err)

		_, err = svc.AddComment(created.ID, "user-tech", "   ")
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}
