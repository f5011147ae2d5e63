package models

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserDisabled UserStatus = "Disabled"
)

type User struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Email         string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash  string     `gorm:"size:255;not null" json:"-"`
	RoleID        string     `gorm:"size:36;not null;index" json:"roleId"`
	Status        UserStatus `gorm:"type:varchar(20);not null" json:"status"`
	DisableReason string     `gorm:"type:text" json:"disableReason,omitempty"`
}
