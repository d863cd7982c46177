package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tapaspot/tapaspot-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Sync upserts the profile keyed on the identity provider's own ID.
// Calling it repeatedly with the same payload converges to that payload.
func (s *UserService) Sync(id uuid.UUID, email, name, avatarURL string) (*models.User, error) {
	user := models.User{
		ID:        id,
		Email:     email,
		Name:      name,
		AvatarURL: avatarURL,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "name", "avatar_url", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}
	return &user, nil
}

// ensureUser creates a bare user row on first reference so favorites and
// tickets never point at a missing account. Existing rows are untouched.
func ensureUser(db *gorm.DB, id uuid.UUID) error {
	user := models.User{ID: id}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&user).Error
	if err != nil {
		return fmt.Errorf("failed to ensure user row: %w", err)
	}
	return nil
}

// Update edits name and avatar in place. Email is provider-owned and only
// changes through Sync. Fails when the row does not exist yet.
func (s *UserService) Update(id uuid.UUID, name, avatarURL *string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	fields := map[string]interface{}{}
	if name != nil {
		fields["name"] = *name
	}
	if avatarURL != nil {
		fields["avatar_url"] = *avatarURL
	}
	if len(fields) == 0 {
		return &user, nil
	}

	if err := s.db.Model(&user).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}
