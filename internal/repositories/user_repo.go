package repositories

import (
	"context"
	"errors"
	"fmt"

	"growe/internal/common"
	"growe/internal/models"
)

// UserRepository is the credential store
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepo struct {
	docs DocumentRepository[*models.User]
}

func NewUserRepository(db Database) UserRepository {
	return &userRepo{docs: NewDocumentRepository[*models.User](db, UsersCollection)}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	// The unique index on email is the real guard; this gives a readable error.
	existing, err := r.docs.FindBy(ctx, "email", user.Email)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("user with email '%s' already exists", user.Email)
	}

	return r.docs.Insert(ctx, user)
}

// GetByEmail returns common.ErrNotFound when no user has the email
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.docs.FindBy(ctx, "email", email)
}
