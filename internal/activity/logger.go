// Package activity records the audit trail of who did what. Recording
// is best-effort: a failed write never blocks or fails the operation
// that caused it.
package activity

import (
	"time"

	"github.com/google/uuid"

	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

type Logger struct {
	store store.Store
	now   func() time.Time
}

func NewLogger(s store.Store) *Logger {
	return &Logger{store: s, now: time.Now}
}

// Record appends an entry for actorID. Errors are dropped.
func (l *Logger) Record(actorID, action string) {
	if l == nil || l.store == nil {
		return
	}
	_ = l.store.AppendActivity(&models.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    actorID,
		Action:    action,
		Timestamp: l.now(),
	})
}

// Recent returns up to limit entries, newest first.
func (l *Logger) Recent(limit int) ([]models.ActivityLog, error) {
	return l.store.Activity(limit)
}
