package models

import "time"

type JobStatus string

const (
	JobOpen       JobStatus = "Open"
	JobInProgress JobStatus = "In Progress"
	JobCompleted  JobStatus = "Completed"
	JobCancelled  JobStatus = "Cancelled"
)

// Active reports whether the job is still subject to escalation sweeps.
func (s JobStatus) Active() bool {
	return s == JobOpen || s == JobInProgress
}

type JobPriority string

const (
	PriorityLow    JobPriority = "Low"
	PriorityMedium JobPriority = "Medium"
	PriorityHigh   JobPriority = "High"
	PriorityUrgent JobPriority = "Urgent"
)

// Escalation levels. The level only ever moves up while the job is
// active; terminal statuses freeze it.
const (
	EscalationNone    = 0
	EscalationManager = 1
	EscalationAdmin   = 2
)

type ServiceJob struct {
	ID              string       `gorm:"primaryKey;size:36" json:"id"`
	Title           string       `gorm:"size:255;not null" json:"title"`
	ProjectID       string       `gorm:"size:36;index" json:"projectId"`
	AssignedToID    string       `gorm:"size:36;index" json:"assignedToId"`
	Status          JobStatus    `gorm:"type:varchar(20);not null" json:"status"`
	Priority        JobPriority  `gorm:"type:varchar(10);not null" json:"priority"`
	CreatedDate     time.Time    `json:"createdDate"`
	UpdatedDate     time.Time    `json:"updatedDate"`
	DueDate         time.Time    `json:"dueDate"`
	EscalationLevel int          `json:"escalationLevel"`
	Description     string       `gorm:"type:text" json:"description"`
	Comments        []JobComment `gorm:"foreignKey:JobID" json:"comments"`
}

type JobComment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	JobID     string    `gorm:"size:36;not null;index" json:"-"`
	AuthorID  string    `gorm:"size:36;not null" json:"authorId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
