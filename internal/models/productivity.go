package models

import "time"

type Task struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	AssignedTo  string    `gorm:"size:36;index" json:"assignedTo"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
	CreatorID   string    `gorm:"size:36;index" json:"creatorId"`
	CreatedDate time.Time `json:"createdDate"`
}

type Announcement struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	AuthorID  string    `gorm:"size:36;not null" json:"authorId"`
	Timestamp time.Time `json:"timestamp"`
}
