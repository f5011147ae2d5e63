package models

// Built-in role names. Escalation routing resolves recipients by role
// name, so the seeded defaults must carry these exact names.
const (
	RoleAdministrator = "Administrator"
	RoleManager       = "Manager"
	RoleTechnician    = "Technician"
	RoleAccountant    = "Accountant"
)

type Role struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Name        string   `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Permissions []string `gorm:"serializer:json" json:"permissions"`
	// IsDefault marks a system role whose permission set is not
	// editable through the role administration surface.
	IsDefault bool `json:"isDefault"`
}
