package models

import "time"

// Notification is a persistent record addressed to a set of users.
// The read flag is per-notification, not per-recipient.
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserIDs   []string  `gorm:"serializer:json" json:"userIds"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}
