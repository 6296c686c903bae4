package bootstrap

import (
	"context"
	"errors"

	"github.com/MRigonM/EmployeeManagement/internal/account"
	"github.com/MRigonM/EmployeeManagement/internal/rbac"
	"github.com/MRigonM/EmployeeManagement/internal/shared/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed ensures the two global roles and the bootstrap admin account exist.
// Role bootstrapping lives here, at process startup, so the registration
// path never races on first-time role creation.
func Seed(ctx context.Context, repo account.Repository, cfg config.SeedAdmin) error {
	for _, role := range []string{rbac.RoleAdmin, rbac.RoleEmployee} {
		if err := repo.EnsureRole(ctx, role); err != nil {
			return err
		}
	}

	_, err := repo.GetByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &account.User{
		ID:           uuid.New(),
		FirstName:    "System",
		LastName:     "Admin",
		Email:        cfg.Email,
		PasswordHash: string(hashed),
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	if err := repo.AssignRole(ctx, admin.ID, rbac.RoleAdmin); err != nil {
		return err
	}

	zap.L().Info("seeded admin account", zap.String("email", cfg.Email))
	return nil
}
