package memory

import (
	"context"
	"time"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// UserRepository keeps users in a Store
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a UserRepository over store
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create stores a user, stamping its timestamps
func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	now := time.Now().UTC()
	user.ID = newID()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
