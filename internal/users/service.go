// Package users is the user administration surface: creation, profile
// edits, and disabling with a recorded reason.
package users

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

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

func (s *Service) List() ([]models.User, error) {
	return s.store.Users()
}

func (s *Service) Get(id string) (*models.User, error) {
	return s.store.User(id)
}

func (s *Service) Add(name, email, roleID, password string, actorID string) (*models.User, error) {
	var details []string
	if strings.TrimSpace(name) == "" {
		details = append(details, "name is required")
	}
	if !strings.Contains(email, "@") {
		details = append(details, "a valid email is required")
	}
	if len(password) < 6 {
		details = append(details, "password must be at least 6 characters")
	}
	if len(details) > 0 {
		return nil, apperr.Validation("invalid user", details...)
	}
	if _, err := s.store.Role(roleID); err != nil {
		return nil, err
	}
	if _, err := s.store.UserByEmail(email); err == nil {
		return nil, apperr.Validation("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		Status:       models.UserActive,
	}
	if err := s.store.SaveUser(user); err != nil {
		return nil, err
	}
	s.log.Record(actorID, fmt.Sprintf("created user %q.", user.Name))
	return user, nil
}

// Update replaces the stored profile. Disabling a user requires a
// reason, which goes into the activity trail.
func (s *Service) Update(u *models.User, actorID string) (*models.User, error) {
	old, err := s.store.User(u.ID)
	if err != nil {
		return nil, err
	}

	if old.Status == models.UserActive && u.Status == models.UserDisabled {
		if strings.TrimSpace(u.DisableReason) == "" {
			return nil, apperr.Validation("a reason is required to disable a user")
		}
		s.log.Record(actorID, fmt.Sprintf("disabled user %q. Reason: %s", u.Name, u.DisableReason))
	}

	// Password changes go through a dedicated flow; a profile update
	// never clears the stored hash.
	u.PasswordHash = old.PasswordHash

	if err := s.store.SaveUser(u); err != nil {
		return nil, err
	}
	return u, nil
}
