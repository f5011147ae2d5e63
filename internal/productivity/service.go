// Package productivity covers personal tasks and company-wide
// announcements.
package productivity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tabdeel-pulse/internal/activity"
	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

type Service struct {
	store store.Store
	log   *activity.Logger
	now   func() time.Time
}

func NewService(s store.Store, log *activity.Logger) *Service {
	return &Service{store: s, log: log, now: time.Now}
}

func (s *Service) TasksFor(userID string) ([]models.Task, error) {
	return s.store.TasksForUser(userID)
}

func (s *Service) AddTask(t *models.Task, actorID string) (*models.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return nil, apperr.Validation("a task title is required")
	}
	t.ID = uuid.NewString()
	t.CreatorID = actorID
	t.CreatedDate = s.now()
	if err := s.store.SaveTask(t); err != nil {
		return nil, err
	}
	assignee := "a user"
	if u, err := s.store.User(t.AssignedTo); err == nil {
		assignee = u.Name
	}
	s.log.Record(actorID, fmt.Sprintf("created a new task %q and assigned it to %s.", t.Title, assignee))
	return t, nil
}

func (s *Service) UpdateTask(t *models.Task, actorID string) (*models.Task, error) {
	old, err := s.store.Task(t.ID)
	if err != nil {
		return nil, err
	}
	if !old.IsCompleted && t.IsCompleted {
		s.log.Record(actorID, fmt.Sprintf("completed the task: %q.", t.Title))
	}
	t.CreatorID = old.CreatorID
	t.CreatedDate = old.CreatedDate
	if err := s.store.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Announcements() ([]models.Announcement, error) {
	return s.store.Announcements()
}

func (s *Service) AddAnnouncement(a *models.Announcement, actorID string) (*models.Announcement, error) {
	if strings.TrimSpace(a.Title) == "" {
		return nil, apperr.Validation("an announcement title is required")
	}
	a.ID = uuid.NewString()
	a.AuthorID = actorID
	a.Timestamp = s.now()
	if err := s.store.SaveAnnouncement(a); err != nil {
		return nil, err
	}
	s.log.Record(actorID, fmt.Sprintf("posted a new announcement: %q.", a.Title))
	return a, nil
}
