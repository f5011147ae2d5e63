// Package notify is the read surface over notification records.
// Creation happens at the call sites that own the triggering event
// (escalation dispatch, job reassignment).
package notify

import (
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) For(userID string) ([]models.Notification, error) {
	return s.store.NotificationsForUser(userID)
}

// MarkAllRead flips the read flag on every notification targeting the
// user and returns the refreshed list. The flag is shared across the
// notification's whole recipient set.
func (s *Service) MarkAllRead(userID string) ([]models.Notification, error) {
	if err := s.store.MarkNotificationsRead(userID); err != nil {
		return nil, err
	}
	return s.store.NotificationsForUser(userID)
}
