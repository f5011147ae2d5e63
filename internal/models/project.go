package models

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
)

type Project struct {
	ID               string        `gorm:"primaryKey;size:36" json:"id"`
	Name             string        `gorm:"size:255;not null" json:"name"`
	Client           string        `gorm:"size:255" json:"client"`
	Status           ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedTimestamp time.Time     `json:"createdTimestamp"`
}
