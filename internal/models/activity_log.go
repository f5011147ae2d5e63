package models

import "time"

// ActivityLog is the append-only audit trail. Entries are never
// mutated or deleted; reads are most-recent-first.
type ActivityLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"userId"`
	Action    string    `gorm:"type:text;not null" json:"action"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
