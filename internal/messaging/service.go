// Package messaging owns chat threads and their messages.
package messaging

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

func (s *Service) ThreadsFor(userID string) ([]models.ChatThread, error) {
	return s.store.ThreadsForUser(userID)
}

func (s *Service) Post(threadID, senderID, content string) (*models.ChatThread, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("message content is required")
	}
	if _, err := s.store.Thread(threadID); err != nil {
		return nil, err
	}
	if err := s.store.AddMessage(threadID, &models.ChatMessage{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: s.now(),
	}); err != nil {
		return nil, err
	}
	return s.store.Thread(threadID)
}

func (s *Service) CreateThread(title string, participants []string, senderID, initialMessage string) (*models.ChatThread, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.Validation("a thread title is required")
	}
	if len(participants) == 0 {
		return nil, apperr.Validation("a thread needs at least one participant")
	}

	thread := &models.ChatThread{
		ID:                   "thread-" + uuid.NewString(),
		Title:                title,
		Participants:         participants,
		LastMessageTimestamp: s.now(),
	}
	if err := s.store.SaveThread(thread); err != nil {
		return nil, err
	}
	if strings.TrimSpace(initialMessage) != "" {
		return s.Post(thread.ID, senderID, initialMessage)
	}
	return s.store.Thread(thread.ID)
}
