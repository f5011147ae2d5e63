package jobs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

var sweepAsOf = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

func newEngineFixture(t *testing.T) (*Engine, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()

	require.NoError(t, mem.SaveRole(&models.Role{ID: "role-admin", Name: models.RoleAdministrator, IsDefault: true}))
	require.NoError(t, mem.SaveRole(&models.Role{ID: "role-mgr", Name: models.RoleManager}))
	require.NoError(t, mem.SaveRole(&models.Role{ID: "role-tech", Name: models.RoleTechnician}))

	require.NoError(t, mem.SaveUser(&models.User{ID: "user-admin", Name: "Huda", Email: "huda@tabdeel.ae", RoleID: "role-admin", Status: models.UserActive}))
	require.NoError(t, mem.SaveUser(&models.User{ID: "user-mgr", Name: "Saeed", Email: "saeed@tabdeel.ae", RoleID: "role-mgr", Status: models.UserActive}))
	require.NoError(t, mem.SaveUser(&models.User{ID: "user-tech", Name: "Nouman", Email: "nouman@tabdeel.ae", RoleID: "role-tech", Status: models.UserActive}))

	e := NewEngine(mem)
	e.now = func() time.Time { return sweepAsOf }
	e.dispatcher.now = e.now
	return e, mem
}

func seedJob(t *testing.T, mem *store.Memory, id string, status models.JobStatus, level int, dueDate time.Time) {
	t.Helper()
	require.NoError(t, mem.SaveJob(&models.ServiceJob{
		ID:              id,
		Title:           "AC repair at " + id,
		AssignedToID:    "user-tech",
		Status:          status,
		Priority:        models.PriorityHigh,
		CreatedDate:     dueDate.AddDate(0, 0, -7),
		UpdatedDate:     dueDate.AddDate(0, 0, -7),
		DueDate:         dueDate,
		EscalationLevel: level,
	}))
}

func TestSweep(t *testing.T) {
	t.Run("should not touch jobs due today or later", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobOpen, models.EscalationNone, sweepAsOf)
		seedJob(t, mem, "job-2", models.JobOpen, models.EscalationNone, sweepAsOf.AddDate(0, 0, 3))

		n, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)
		assert.Zero(t, n)

		job, err := mem.Job("job-1")
		require.NoError(t, err)
		assert.Equal(t, models.EscalationNone, job.EscalationLevel)
	})

	t.Run("should escalate a two-day-overdue job to level one only", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobOpen, models.EscalationNone, sweepAsOf.AddDate(0, 0, -2))

		n, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		job, err := mem.Job("job-1")
		require.NoError(t, err)
		assert.Equal(t, models.EscalationManager, job.EscalationLevel)

		notes, err := mem.NotificationsForUser("user-mgr")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Job 'AC repair at job-1' assigned to Nouman is now 2 day(s) overdue.", notes[0].Message)

		adminNotes, err := mem.NotificationsForUser("user-admin")
		require.NoError(t, err)
		assert.Empty(t, adminNotes)
	})

	t.Run("should run both transitions in one pass for a five-day-overdue job", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobOpen, models.EscalationNone, sweepAsOf.AddDate(0, 0, -5))

		n, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		job, err := mem.Job("job-1")
		require.NoError(t, err)
		assert.Equal(t, models.EscalationAdmin, job.EscalationLevel)

		mgrNotes, err := mem.NotificationsForUser("user-mgr")
		require.NoError(t, err)
		require.Len(t, mgrNotes, 1)
		assert.Contains(t, mgrNotes[0].Message, "5 day(s) overdue")

		adminNotes, err := mem.NotificationsForUser("user-admin")
		require.NoError(t, err)
		require.Len(t, adminNotes, 1)
		assert.Equal(t, "URGENT: Job 'AC repair at job-1' is now 5 days overdue. Escalated to administrators.", adminNotes[0].Message)
	})

	t.Run("should escalate a level-one job past the admin threshold", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobInProgress, models.EscalationManager, sweepAsOf.AddDate(0, 0, -4))

		n, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		job, err := mem.Job("job-1")
		require.NoError(t, err)
		assert.Equal(t, models.EscalationAdmin, job.EscalationLevel)

		mgrNotes, err := mem.NotificationsForUser("user-mgr")
		require.NoError(t, err)
		assert.Empty(t, mgrNotes)
	})

	t.Run("should freeze completed and cancelled jobs", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobCompleted, models.EscalationNone, sweepAsOf.AddDate(0, 0, -10))
		seedJob(t, mem, "job-2", models.JobCancelled, models.EscalationManager, sweepAsOf.AddDate(0, 0, -10))

		n, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)
		assert.Zero(t, n)

		for _, id := range []string{"job-1", "job-2"} {
			job, err := mem.Job(id)
			require.NoError(t, err)
			assert.LessOrEqual(t, job.EscalationLevel, models.EscalationManager)
		}
	})

	t.Run("should be idempotent across repeated sweeps", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobOpen, models.EscalationNone, sweepAsOf.AddDate(0, 0, -5))

		n, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		for i := 0; i < 3; i++ {
			n, err = e.Sweep(sweepAsOf.Add(time.Duration(i) * time.Hour))
			require.NoError(t, err)
			assert.Zero(t, n)
		}

		mgrNotes, err := mem.NotificationsForUser("user-mgr")
		require.NoError(t, err)
		assert.Len(t, mgrNotes, 1)
		adminNotes, err := mem.NotificationsForUser("user-admin")
		require.NoError(t, err)
		assert.Len(t, adminNotes, 1)
	})

	t.Run("should never double-escalate under concurrent sweeps", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobOpen, models.EscalationNone, sweepAsOf.AddDate(0, 0, -2))

		var wg sync.WaitGroup
		total := make([]int, 8)
		for i := range total {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				n, err := e.Sweep(sweepAsOf)
				assert.NoError(t, err)
				total[i] = n
			}(i)
		}
		wg.Wait()

		sum := 0
		for _, n := range total {
			sum += n
		}
		assert.Equal(t, 1, sum)

		job, err := mem.Job("job-1")
		require.NoError(t, err)
		assert.Equal(t, models.EscalationManager, job.EscalationLevel)
	})

	t.Run("should reuse the job thread and widen its participants", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		seedJob(t, mem, "job-1", models.JobOpen, models.EscalationNone, sweepAsOf.AddDate(0, 0, -5))

		_, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)

		thread, err := mem.Thread(ThreadIDForJob("job-1"))
		require.NoError(t, err)
		assert.Equal(t, "Overdue Job: AC repair at job-1", thread.Title)
		assert.ElementsMatch(t, []string{"user-tech", "user-mgr", "user-admin"}, thread.Participants)

		threads, err := mem.ThreadsForUser("user-admin")
		require.NoError(t, err)
		assert.Len(t, threads, 1)
	})

	t.Run("should fall back to a generic assignee name", func(t *testing.T) {
		e, mem := newEngineFixture(t)
		require.NoError(t, mem.SaveJob(&models.ServiceJob{
			ID:           "job-1",
			Title:        "Orphaned callout",
			AssignedToID: "user-gone",
			Status:       models.JobOpen,
			Priority:     models.PriorityLow,
			DueDate:      sweepAsOf.AddDate(0, 0, -1),
		}))

		_, err := e.Sweep(sweepAsOf)
		require.NoError(t, err)

		notes, err := mem.NotificationsForUser("user-mgr")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Contains(t, notes[0].Message, "assigned to technician")
	})
}
