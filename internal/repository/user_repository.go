package repository

import (
	"context"

	"github.com/enroute-travel/itinerary-api/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// Upsert creates the user or replaces its password hash.
func (r *UserRepository) Upsert(ctx context.Context, username, passwordHash string) (*models.User, error) {
	var user models.User
	db := r.db.WithContext(ctx)
	if err := db.Where(models.User{Username: username}).FirstOrInit(&user).Error; err != nil {
		return nil, err
	}
	user.PasswordHash = passwordHash
	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
