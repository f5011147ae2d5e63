package jobs

import (
	"time"

	"github.com/google/uuid"

	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

// Dispatcher creates the durable side effects of an escalation: a
// notification record and a discussion thread. Threads are keyed by
// job identity, so repeat dispatches for the same job reuse the thread
// and only widen its participant set.
type Dispatcher struct {
	store store.Store
	now   func() time.Time
}

func NewDispatcher(s store.Store) *Dispatcher {
	return &Dispatcher{store: s, now: time.Now}
}

// ThreadIDForJob returns the deterministic thread key for a job's
// escalation thread.
func ThreadIDForJob(jobID string) string {
	return "thread-job-" + jobID
}

func (d *Dispatcher) Dispatch(userIDs []string, message, threadID, threadTitle string, participants []string) error {
	if err := d.store.SaveNotification(&models.Notification{
		ID:        uuid.NewString(),
		UserIDs:   userIDs,
		Message:   message,
		Timestamp: d.now(),
		IsRead:    false,
	}); err != nil {
		return err
	}

	thread, err := d.store.Thread(threadID)
	if err != nil {
		// No thread yet for this job.
		return d.store.SaveThread(&models.ChatThread{
			ID:                   threadID,
			Title:                threadTitle,
			Participants:         uniq(participants),
			LastMessageTimestamp: d.now(),
		})
	}

	existing := make(map[string]struct{}, len(thread.Participants))
	for _, p := range thread.Participants {
		existing[p] = struct{}{}
	}
	added := false
	for _, p := range participants {
		if _, ok := existing[p]; !ok {
			thread.Participants = append(thread.Participants, p)
			existing[p] = struct{}{}
			added = true
		}
	}
	if !added {
		return nil
	}
	return d.store.SaveThread(thread)
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
