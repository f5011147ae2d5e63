package jobs

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

// Service is the job surface used by the API layer: listing, updates,
// comments. Escalation belongs to Engine; updates here never move the
// escalation level.
type Service struct {
	store store.Store
	log   *activity.Logger
	now   func() time.Time
}

func NewService(s store.Store, log *activity.Logger) *Service {
	return &Service{store: s, log: log, now: time.Now}
}

func (s *Service) List() ([]models.ServiceJob, error) {
	return s.store.Jobs()
}

func (s *Service) Get(id string) (*models.ServiceJob, error) {
	return s.store.Job(id)
}

func (s *Service) Create(j *models.ServiceJob, actorID string) (*models.ServiceJob, error) {
	if strings.TrimSpace(j.Title) == "" {
		return nil, apperr.Validation("a job title is required")
	}
	now := s.now()
	j.ID = uuid.NewString()
	if j.Status == "" {
		j.Status = models.JobOpen
	}
	j.EscalationLevel = models.EscalationNone
	j.CreatedDate = now
	j.UpdatedDate = now
	j.Comments = nil
	if err := s.store.SaveJob(j); err != nil {
		return nil, err
	}
	s.log.Record(actorID, fmt.Sprintf("logged a new service job %q.", j.Title))
	return j, nil
}

// Update replaces the stored job. The escalation level is server-owned
// state and is carried over from the stored record, so a stale client
// payload cannot regress it.
func (s *Service) Update(j *models.ServiceJob, actorID string) (*models.ServiceJob, error) {
	old, err := s.store.Job(j.ID)
	if err != nil {
		return nil, err
	}

	j.EscalationLevel = old.EscalationLevel
	j.CreatedDate = old.CreatedDate
	j.UpdatedDate = s.now()

	if old.Status != j.Status {
		s.log.Record(actorID, fmt.Sprintf("updated the status of job %q to %s.", j.Title, j.Status))
	}
	if old.AssignedToID != j.AssignedToID && j.AssignedToID != actorID {
		err := s.store.SaveNotification(&models.Notification{
			ID:        uuid.NewString(),
			UserIDs:   []string{j.AssignedToID},
			Message:   fmt.Sprintf("The service job '%s' has been reassigned to you.", j.Title),
			Timestamp: s.now(),
			IsRead:    false,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.store.SaveJob(j); err != nil {
		return nil, err
	}
	return s.store.Job(j.ID)
}

func (s *Service) AddComment(jobID, authorID, content string) (*models.ServiceJob, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("comment content is required")
	}
	job, err := s.store.Job(jobID)
	if err != nil {
		return nil, err
	}

	ts := s.now()
	if err := s.store.AddJobComment(jobID, &models.JobComment{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		Timestamp: ts,
	}); err != nil {
		return nil, err
	}

	job.UpdatedDate = ts
	if err := s.store.SaveJob(job); err != nil {
		return nil, err
	}

	s.log.Record(authorID, fmt.Sprintf("added a comment to job %q.", job.Title))
	return s.store.Job(jobID)
}
