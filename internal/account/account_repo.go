package account

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	// Delete removes a principal again; used to compensate a failed
	// registration so no orphaned login remains and the email can be
	// retried.
	Delete(ctx context.Context, id uuid.UUID) error
	EnsureRole(ctx context.Context, name string) error
	AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Delete is a hard delete. A soft delete would keep the row in
// uq_user_email and permanently block re-registration of the address.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&User{}, "id = ?", id).Error
}

func (r *repository) EnsureRole(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Where(Role{Name: name}).
		FirstOrCreate(&Role{}).Error
}

func (r *repository) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	var role Role
	if err := r.db.WithContext(ctx).Where("name = ?", roleName).First(&role).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&User{ID: userID}).
		Association("Roles").
		Append(&role)
}
