// Package store encapsulates record access behind a single interface so
// business packages never touch the database handle directly. Two
// implementations exist: Gorm (postgres) and Memory (tests, demo mode).
package store

import "tabdeel-pulse/internal/models"

type Store interface {
	// Users
	User(id string) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	Users() ([]models.User, error)
	UsersByRoleName(name string) ([]models.User, error)
	SaveUser(u *models.User) error

	// Roles
	Role(id string) (*models.Role, error)
	RoleByName(name string) (*models.Role, error)
	Roles() ([]models.Role, error)
	SaveRole(r *models.Role) error

	// Assets
	Asset(id string) (*models.Asset, error)
	Assets() ([]models.Asset, error)
	SaveAsset(a *models.Asset) error
	AddMovement(assetID string, m *models.AssetMovement) error

	// Service jobs
	Job(id string) (*models.ServiceJob, error)
	Jobs() ([]models.ServiceJob, error)
	ActiveJobs() ([]models.ServiceJob, error)
	SaveJob(j *models.ServiceJob) error
	AddJobComment(jobID string, c *models.JobComment) error
	// EscalateJob raises the escalation level iff the stored level is
	// still below the target and the job is active. The compare-and-set
	// form keeps concurrent sweeps from escalating a job twice.
	EscalateJob(jobID string, level int) (bool, error)

	// Projects
	Project(id string) (*models.Project, error)
	Projects() ([]models.Project, error)
	SaveProject(p *models.Project) error

	// Finance
	Payment(id string) (*models.PaymentInstruction, error)
	Payments() ([]models.PaymentInstruction, error)
	SavePayment(p *models.PaymentInstruction) error
	Account(id string) (*models.AccountHead, error)
	Accounts() ([]models.AccountHead, error)
	SaveAccount(a *models.AccountHead) error
	Collections() ([]models.Collection, error)
	Deposits() ([]models.Deposit, error)

	// Tasks and announcements
	Task(id string) (*models.Task, error)
	TasksForUser(userID string) ([]models.Task, error)
	SaveTask(t *models.Task) error
	Announcements() ([]models.Announcement, error)
	SaveAnnouncement(a *models.Announcement) error

	// Messaging
	Thread(id string) (*models.ChatThread, error)
	ThreadsForUser(userID string) ([]models.ChatThread, error)
	SaveThread(t *models.ChatThread) error
	AddMessage(threadID string, m *models.ChatMessage) error

	// Notifications
	NotificationsForUser(userID string) ([]models.Notification, error)
	SaveNotification(n *models.Notification) error
	MarkNotificationsRead(userID string) error

	// Activity log
	AppendActivity(e *models.ActivityLog) error
	Activity(limit int) ([]models.ActivityLog, error)
}
