package store

import (
	"errors"

	"gorm.io/gorm"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
)

// Gorm is the postgres-backed store.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func notFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, id)
	}
	return err
}

// --- Users ---

func (s *Gorm) User(id string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &u, nil
}

func (s *Gorm) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		return nil, notFound(err, "user", email)
	}
	return &u, nil
}

func (s *Gorm) Users() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("name asc").Find(&users).Error
	return users, err
}

func (s *Gorm) UsersByRoleName(name string) ([]models.User, error) {
	role, err := s.RoleByName(name)
	if err != nil {
		if errors.As(err, new(*apperr.NotFoundError)) {
			return nil, nil
		}
		return nil, err
	}
	var users []models.User
	err = s.db.Where("role_id = ?", role.ID).Find(&users).Error
	return users, err
}

func (s *Gorm) SaveUser(u *models.User) error {
	return s.db.Save(u).Error
}

// --- Roles ---

func (s *Gorm) Role(id string) (*models.Role, error) {
	var r models.Role
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "role", id)
	}
	return &r, nil
}

func (s *Gorm) RoleByName(name string) (*models.Role, error) {
	var r models.Role
	if err := s.db.First(&r, "name = ?", name).Error; err != nil {
		return nil, notFound(err, "role", name)
	}
	return &r, nil
}

func (s *Gorm) Roles() ([]models.Role, error) {
	var roles []models.Role
	err := s.db.Order("name asc").Find(&roles).Error
	return roles, err
}

func (s *Gorm) SaveRole(r *models.Role) error {
	return s.db.Save(r).Error
}

// --- Assets ---

func (s *Gorm) Asset(id string) (*models.Asset, error) {
	var a models.Asset
	err := s.db.Preload("Movements", func(db *gorm.DB) *gorm.DB {
		return db.Order("movement_date asc")
	}).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "asset", id)
	}
	return &a, nil
}

func (s *Gorm) Assets() ([]models.Asset, error) {
	var assets []models.Asset
	err := s.db.Preload("Movements").Order("name asc").Find(&assets).Error
	return assets, err
}

func (s *Gorm) SaveAsset(a *models.Asset) error {
	return s.db.Omit("Movements").Save(a).Error
}

func (s *Gorm) AddMovement(assetID string, m *models.AssetMovement) error {
	m.AssetID = assetID
	return s.db.Create(m).Error
}

// --- Service jobs ---

func (s *Gorm) Job(id string) (*models.ServiceJob, error) {
	var j models.ServiceJob
	err := s.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp asc")
	}).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "job", id)
	}
	return &j, nil
}

func (s *Gorm) Jobs() ([]models.ServiceJob, error) {
	var jobs []models.ServiceJob
	err := s.db.Preload("Comments").Order("due_date asc").Find(&jobs).Error
	return jobs, err
}

func (s *Gorm) ActiveJobs() ([]models.ServiceJob, error) {
	var jobs []models.ServiceJob
	err := s.db.Preload("Comments").
		Where("status IN ?", []string{string(models.JobOpen), string(models.JobInProgress)}).
		Find(&jobs).Error
	return jobs, err
}

func (s *Gorm) SaveJob(j *models.ServiceJob) error {
	return s.db.Omit("Comments").Save(j).Error
}

func (s *Gorm) AddJobComment(jobID string, c *models.JobComment) error {
	c.JobID = jobID
	return s.db.Create(c).Error
}

func (s *Gorm) EscalateJob(jobID string, level int) (bool, error) {
	res := s.db.Model(&models.ServiceJob{}).
		Where("id = ? AND escalation_level < ? AND status IN ?",
			jobID, level, []string{string(models.JobOpen), string(models.JobInProgress)}).
		Update("escalation_level", level)
	return res.RowsAffected > 0, res.Error
}

// --- Projects ---

func (s *Gorm) Project(id string) (*models.Project, error) {
	var p models.Project
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "project", id)
	}
	return &p, nil
}

func (s *Gorm) Projects() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Order("name asc").Find(&projects).Error
	return projects, err
}

func (s *Gorm) SaveProject(p *models.Project) error {
	return s.db.Save(p).Error
}

// --- Finance ---

func (s *Gorm) Payment(id string) (*models.PaymentInstruction, error) {
	var p models.PaymentInstruction
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "payment", id)
	}
	return &p, nil
}

func (s *Gorm) Payments() ([]models.PaymentInstruction, error) {
	var payments []models.PaymentInstruction
	err := s.db.Order("created_timestamp desc").Find(&payments).Error
	return payments, err
}

func (s *Gorm) SavePayment(p *models.PaymentInstruction) error {
	return s.db.Save(p).Error
}

func (s *Gorm) Account(id string) (*models.AccountHead, error) {
	var a models.AccountHead
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "account", id)
	}
	return &a, nil
}

func (s *Gorm) Accounts() ([]models.AccountHead, error) {
	var accounts []models.AccountHead
	err := s.db.Order("name asc").Find(&accounts).Error
	return accounts, err
}

func (s *Gorm) SaveAccount(a *models.AccountHead) error {
	return s.db.Save(a).Error
}

func (s *Gorm) Collections() ([]models.Collection, error) {
	var collections []models.Collection
	err := s.db.Order("received_date desc").Find(&collections).Error
	return collections, err
}

func (s *Gorm) Deposits() ([]models.Deposit, error) {
	var deposits []models.Deposit
	err := s.db.Order("deposit_date desc").Find(&deposits).Error
	return deposits, err
}

// --- Tasks and announcements ---

func (s *Gorm) Task(id string) (*models.Task, error) {
	var t models.Task
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "task", id)
	}
	return &t, nil
}

func (s *Gorm) TasksForUser(userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("assigned_to = ? OR creator_id = ?", userID, userID).
		Order("due_date asc").Find(&tasks).Error
	return tasks, err
}

func (s *Gorm) SaveTask(t *models.Task) error {
	return s.db.Save(t).Error
}

func (s *Gorm) Announcements() ([]models.Announcement, error) {
	var anns []models.Announcement
	err := s.db.Order("timestamp desc").Find(&anns).Error
	return anns, err
}

func (s *Gorm) SaveAnnouncement(a *models.Announcement) error {
	return s.db.Save(a).Error
}

// --- Messaging ---

func (s *Gorm) Thread(id string) (*models.ChatThread, error) {
	var t models.ChatThread
	err := s.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp asc")
	}).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "thread", id)
	}
	return &t, nil
}

func (s *Gorm) ThreadsForUser(userID string) ([]models.ChatThread, error) {
	// Participants is serialized JSON, so membership is filtered here
	// rather than in SQL.
	var threads []models.ChatThread
	err := s.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp asc")
	}).Order("last_message_timestamp desc").Find(&threads).Error
	if err != nil {
		return nil, err
	}
	var out []models.ChatThread
	for _, t := range threads {
		for _, p := range t.Participants {
			if p == userID {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (s *Gorm) SaveThread(t *models.ChatThread) error {
	return s.db.Omit("Messages").Save(t).Error
}

func (s *Gorm) AddMessage(threadID string, m *models.ChatMessage) error {
	m.ThreadID = threadID
	if err := s.db.Create(m).Error; err != nil {
		return err
	}
	return s.db.Model(&models.ChatThread{}).
		Where("id = ?", threadID).
		Update("last_message_timestamp", m.Timestamp).Error
}

// --- Notifications ---

func (s *Gorm) NotificationsForUser(userID string) ([]models.Notification, error) {
	var all []models.Notification
	if err := s.db.Order("timestamp desc").Find(&all).Error; err != nil {
		return nil, err
	}
	var out []models.Notification
	for _, n := range all {
		for _, id := range n.UserIDs {
			if id == userID {
				out = append(out, n)
				break
			}
		}
	}
	return out, nil
}

func (s *Gorm) SaveNotification(n *models.Notification) error {
	return s.db.Save(n).Error
}

func (s *Gorm) MarkNotificationsRead(userID string) error {
	targeted, err := s.NotificationsForUser(userID)
	if err != nil {
		return err
	}
	for i := range targeted {
		if targeted[i].IsRead {
			continue
		}
		if err := s.db.Model(&models.Notification{}).
			Where("id = ?", targeted[i].ID).
			Update("is_read", true).Error; err != nil {
			return err
		}
	}
	return nil
}

// --- Activity log ---

func (s *Gorm) AppendActivity(e *models.ActivityLog) error {
	return s.db.Create(e).Error
}

func (s *Gorm) Activity(limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := s.db.Order("timestamp desc").Limit(limit).Find(&entries).Error
	return entries, err
}
