package store

import (
	"sort"
	"sync"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
)

// Memory is a mutex-guarded in-memory store. It backs the tests and
// the demo mode; all methods copy records on the way in and out so
// callers never alias internal state.
type Memory struct {
	mu sync.Mutex

	users         map[string]models.User
	roles         map[string]models.Role
	assets        map[string]models.Asset
	jobs          map[string]models.ServiceJob
	projects      map[string]models.Project
	payments      map[string]models.PaymentInstruction
	accounts      map[string]models.AccountHead
	collections   []models.Collection
	deposits      []models.Deposit
	tasks         map[string]models.Task
	announcements []models.Announcement
	threads       map[string]models.ChatThread
	notifications []models.Notification
	activity      []models.ActivityLog
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		roles:    make(map[string]models.Role),
		assets:   make(map[string]models.Asset),
		jobs:     make(map[string]models.ServiceJob),
		projects: make(map[string]models.Project),
		payments: make(map[string]models.PaymentInstruction),
		accounts: make(map[string]models.AccountHead),
		tasks:    make(map[string]models.Task),
		threads:  make(map[string]models.ChatThread),
	}
}

func copyAsset(a models.Asset) models.Asset {
	a.Movements = append([]models.AssetMovement(nil), a.Movements...)
	return a
}

func copyJob(j models.ServiceJob) models.ServiceJob {
	j.Comments = append([]models.JobComment(nil), j.Comments...)
	return j
}

func copyThread(t models.ChatThread) models.ChatThread {
	t.Participants = append([]string(nil), t.Participants...)
	t.Messages = append([]models.ChatMessage(nil), t.Messages...)
	return t
}

func copyNotification(n models.Notification) models.Notification {
	n.UserIDs = append([]string(nil), n.UserIDs...)
	return n
}

func copyRole(r models.Role) models.Role {
	r.Permissions = append([]string(nil), r.Permissions...)
	return r
}

// --- Users ---

func (s *Memory) User(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}
	return &u, nil
}

func (s *Memory) UserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user", email)
}

func (s *Memory) Users() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Memory) UsersByRoleName(name string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var roleID string
	for _, r := range s.roles {
		if r.Name == name {
			roleID = r.ID
			break
		}
	}
	if roleID == "" {
		return nil, nil
	}
	var out []models.User
	for _, u := range s.users {
		if u.RoleID == roleID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Memory) SaveUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
	return nil
}

// --- Roles ---

func (s *Memory) Role(id string) (*models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.roles[id]
	if !ok {
		return nil, apperr.NotFound("role", id)
	}
	r = copyRole(r)
	return &r, nil
}

func (s *Memory) RoleByName(name string) (*models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r.Name == name {
			r = copyRole(r)
			return &r, nil
		}
	}
	return nil, apperr.NotFound("role", name)
}

func (s *Memory) Roles() ([]models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, copyRole(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Memory) SaveRole(r *models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[r.ID] = copyRole(*r)
	return nil
}

// --- Assets ---

func (s *Memory) Asset(id string) (*models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assets[id]
	if !ok {
		return nil, apperr.NotFound("asset", id)
	}
	a = copyAsset(a)
	return &a, nil
}

func (s *Memory) Assets() ([]models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		out = append(out, copyAsset(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Memory) SaveAsset(a *models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := copyAsset(*a)
	if existing, ok := s.assets[a.ID]; ok {
		// Movements are owned by AddMovement; a save never rewrites them.
		stored.Movements = existing.Movements
	}
	s.assets[a.ID] = stored
	return nil
}

func (s *Memory) AddMovement(assetID string, m *models.AssetMovement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assets[assetID]
	if !ok {
		return apperr.NotFound("asset", assetID)
	}
	m.AssetID = assetID
	a.Movements = append(a.Movements, *m)
	s.assets[assetID] = a
	return nil
}

// --- Service jobs ---

func (s *Memory) Job(id string) (*models.ServiceJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, apperr.NotFound("job", id)
	}
	j = copyJob(j)
	return &j, nil
}

func (s *Memory) Jobs() ([]models.ServiceJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ServiceJob, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, copyJob(j))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (s *Memory) ActiveJobs() ([]models.ServiceJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ServiceJob
	for _, j := range s.jobs {
		if j.Status.Active() {
			out = append(out, copyJob(j))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (s *Memory) SaveJob(j *models.ServiceJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := copyJob(*j)
	if existing, ok := s.jobs[j.ID]; ok {
		stored.Comments = existing.Comments
	}
	s.jobs[j.ID] = stored
	return nil
}

func (s *Memory) AddJobComment(jobID string, c *models.JobComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return apperr.NotFound("job", jobID)
	}
	c.JobID = jobID
	j.Comments = append(j.Comments, *c)
	s.jobs[jobID] = j
	return nil
}

func (s *Memory) EscalateJob(jobID string, level int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return false, apperr.NotFound("job", jobID)
	}
	if !j.Status.Active() || j.EscalationLevel >= level {
		return false, nil
	}
	j.EscalationLevel = level
	s.jobs[jobID] = j
	return true, nil
}

// --- Projects ---

func (s *Memory) Project(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, apperr.NotFound("project", id)
	}
	return &p, nil
}

func (s *Memory) Projects() ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Memory) SaveProject(p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = *p
	return nil
}

// --- Finance ---

func (s *Memory) Payment(id string) (*models.PaymentInstruction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return nil, apperr.NotFound("payment", id)
	}
	return &p, nil
}

func (s *Memory) Payments() ([]models.PaymentInstruction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PaymentInstruction, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedTimestamp.After(out[j].CreatedTimestamp)
	})
	return out, nil
}

func (s *Memory) SavePayment(p *models.PaymentInstruction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID] = *p
	return nil
}

func (s *Memory) Account(id string) (*models.AccountHead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, apperr.NotFound("account", id)
	}
	return &a, nil
}

func (s *Memory) Accounts() ([]models.AccountHead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AccountHead, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Memory) SaveAccount(a *models.AccountHead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = *a
	return nil
}

func (s *Memory) Collections() ([]models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Collection(nil), s.collections...), nil
}

func (s *Memory) Deposits() ([]models.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Deposit(nil), s.deposits...), nil
}

// --- Tasks and announcements ---

func (s *Memory) Task(id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, apperr.NotFound("task", id)
	}
	return &t, nil
}

func (s *Memory) TasksForUser(userID string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Task
	for _, t := range s.tasks {
		if t.AssignedTo == userID || t.CreatorID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (s *Memory) SaveTask(t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = *t
	return nil
}

func (s *Memory) Announcements() ([]models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Announcement(nil), s.announcements...)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *Memory) SaveAnnouncement(a *models.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = append(s.announcements, *a)
	return nil
}

// --- Messaging ---

func (s *Memory) Thread(id string) (*models.ChatThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.threads[id]
	if !ok {
		return nil, apperr.NotFound("thread", id)
	}
	t = copyThread(t)
	return &t, nil
}

func (s *Memory) ThreadsForUser(userID string) ([]models.ChatThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ChatThread
	for _, t := range s.threads {
		for _, p := range t.Participants {
			if p == userID {
				out = append(out, copyThread(t))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageTimestamp.After(out[j].LastMessageTimestamp)
	})
	return out, nil
}

func (s *Memory) SaveThread(t *models.ChatThread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := copyThread(*t)
	if existing, ok := s.threads[t.ID]; ok {
		stored.Messages = existing.Messages
	}
	s.threads[t.ID] = stored
	return nil
}

func (s *Memory) AddMessage(threadID string, m *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.threads[threadID]
	if !ok {
		return apperr.NotFound("thread", threadID)
	}
	m.ThreadID = threadID
	t.Messages = append(t.Messages, *m)
	t.LastMessageTimestamp = m.Timestamp
	s.threads[threadID] = t
	return nil
}

// --- Notifications ---

func (s *Memory) NotificationsForUser(userID string) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Notification
	for _, n := range s.notifications {
		for _, id := range n.UserIDs {
			if id == userID {
				out = append(out, copyNotification(n))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *Memory) SaveNotification(n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == n.ID {
			s.notifications[i] = copyNotification(*n)
			return nil
		}
	}
	s.notifications = append(s.notifications, copyNotification(*n))
	return nil
}

func (s *Memory) MarkNotificationsRead(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		for _, id := range s.notifications[i].UserIDs {
			if id == userID {
				s.notifications[i].IsRead = true
				break
			}
		}
	}
	return nil
}

// --- Activity log ---

func (s *Memory) AppendActivity(e *models.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Most-recent-first, matching the read order of the display.
	s.activity = append([]models.ActivityLog{*e}, s.activity...)
	return nil
}

func (s *Memory) Activity(limit int) ([]models.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.activity)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]models.ActivityLog(nil), s.activity[:n]...), nil
}
