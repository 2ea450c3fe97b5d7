package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gashtstore/admin/internal/hash"
	"github.com/gashtstore/admin/internal/models"
)

type ProfileInput struct {
	Username    string `validate:"required"`
	DisplayName string `validate:"required"`
	// AvatarPath is set only when a new avatar was uploaded.
	AvatarPath string
}

func (s *StoreService) Profile(ctx context.Context) (*models.AdminUser, error) {
	admin, err := s.Repo.GetAdmin(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *StoreService) UpdateProfile(ctx context.Context, input ProfileInput) (*models.AdminUser, error) {
	admin, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}

	if err := toValidationError(s.Validate.Struct(input)); err != nil {
		return nil, err
	}

	admin.Username = input.Username
	admin.DisplayName = input.DisplayName
	if input.AvatarPath != "" {
		admin.AvatarPath = input.AvatarPath
	}

	if err := s.Repo.SaveAdmin(ctx, admin); err != nil {
		return nil, err
	}

	if err := s.Repo.LogActivity(ctx, "profile_updated", "Admin profile was updated."); err != nil {
		return nil, err
	}
	return admin, nil
}

// Authenticate checks the password against the stored bcrypt hash.
func (s *StoreService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	admin, err := s.Repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// Seed hashes the admin password and inserts the demo data set if the
// database is empty. Returns true when seeding happened.
func (s *StoreService) Seed(ctx context.Context, adminPassword string) (bool, error) {
	hashed, err := hash.HashPassword(adminPassword)
	if err != nil {
		return false, err
	}
	return s.Repo.Seed(ctx, hashed)
}
