// Package jobs tracks service jobs and escalates the overdue ones up
// the management chain.
package jobs

import (
	"fmt"
	"time"

	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

// Engine evaluates overdue state for every active job and performs
// level transitions. Overdue comparison is date-only; time of day on
// the due date is ignored.
//
// Level transitions are one-directional (0→1→2) and guarded by a
// compare-and-set in the store, so concurrent sweeps cannot escalate
// a job past its target or fire duplicate notifications.
type Engine struct {
	store      store.Store
	dispatcher *Dispatcher
	now        func() time.Time
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s, dispatcher: NewDispatcher(s), now: time.Now}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Sweep runs one escalation pass as of the given instant and returns
// the number of transitions performed. The level-1 rule is evaluated
// before the level-2 rule against the same snapshot, so a job that is
// already past both thresholds fires manager and admin notifications
// in a single pass on its way to level 2.
func (e *Engine) Sweep(asOf time.Time) (int, error) {
	today := dateOnly(asOf)

	active, err := e.store.ActiveJobs()
	if err != nil {
		return 0, err
	}

	managers, err := e.store.UsersByRoleName(models.RoleManager)
	if err != nil {
		return 0, err
	}
	admins, err := e.store.UsersByRoleName(models.RoleAdministrator)
	if err != nil {
		return 0, err
	}
	managerIDs := userIDs(managers)
	adminIDs := userIDs(admins)

	transitions := 0
	for _, job := range active {
		due := dateOnly(job.DueDate)
		if !due.Before(today) {
			continue
		}
		daysOverdue := int(today.Sub(due).Hours() / 24)

		threadID := ThreadIDForJob(job.ID)
		threadTitle := "Overdue Job: " + job.Title

		if daysOverdue >= 1 && job.EscalationLevel < models.EscalationManager {
			ok, err := e.store.EscalateJob(job.ID, models.EscalationManager)
			if err != nil {
				return transitions, err
			}
			if ok {
				job.EscalationLevel = models.EscalationManager
				transitions++
				msg := fmt.Sprintf("Job '%s' assigned to %s is now %d day(s) overdue.",
					job.Title, e.assigneeName(job.AssignedToID), daysOverdue)
				participants := append([]string{job.AssignedToID}, managerIDs...)
				if err := e.dispatcher.Dispatch(managerIDs, msg, threadID, threadTitle, participants); err != nil {
					return transitions, err
				}
			}
		}

		if daysOverdue > 3 && job.EscalationLevel < models.EscalationAdmin {
			ok, err := e.store.EscalateJob(job.ID, models.EscalationAdmin)
			if err != nil {
				return transitions, err
			}
			if ok {
				transitions++
				msg := fmt.Sprintf("URGENT: Job '%s' is now %d days overdue. Escalated to administrators.",
					job.Title, daysOverdue)
				participants := append([]string{job.AssignedToID}, append(managerIDs, adminIDs...)...)
				if err := e.dispatcher.Dispatch(adminIDs, msg, threadID, threadTitle, participants); err != nil {
					return transitions, err
				}
			}
		}
	}
	return transitions, nil
}

func (e *Engine) assigneeName(userID string) string {
	if u, err := e.store.User(userID); err == nil {
		return u.Name
	}
	return "technician"
}

func userIDs(users []models.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
