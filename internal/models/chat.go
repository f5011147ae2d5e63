package models

import "time"

type ChatThread struct {
	ID                   string        `gorm:"primaryKey;size:64" json:"id"`
	Title                string        `gorm:"size:255;not null" json:"title"`
	Participants         []string      `gorm:"serializer:json" json:"participants"`
	Messages             []ChatMessage `gorm:"foreignKey:ThreadID" json:"messages"`
	LastMessageTimestamp time.Time     `json:"lastMessageTimestamp"`
}

type ChatMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ThreadID  string    `gorm:"size:64;not null;index" json:"-"`
	SenderID  string    `gorm:"size:36;not null" json:"senderId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
