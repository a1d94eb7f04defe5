package store

import (
	"encoding/json"
	"time"

	"github.com/akgundogan/farmgate-backend/internal/models"
)

// CreateUser appends a new user with the next sequential id. The duplicate-email
// check and the append happen under one lock, so two concurrent signups with the
// same email cannot both succeed.
func (s *Store) CreateUser(name, email, passwordHash, userType string, additionalInfo json.RawMessage) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:             s.nextUserID,
		Name:           name,
		Email:          email,
		PasswordHash:   passwordHash,
		UserType:       userType,
		AdditionalInfo: additionalInfo,
		CreatedAt:      time.Now().UTC(),
	}
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *Store) UserByID(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
