package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"gin-bookstore/models"
)

type IAuthRepository interface {
	CreateUser(user models.User) error
	FindUser(username string) (*models.User, error)
	FindAll() (*[]models.User, error)
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(user models.User) error {
	result := r.db.Create(&user)
	if result.Error != nil {
		// postgresとsqliteで一意制約違反のエラーメッセージが異なる
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) ||
			strings.Contains(result.Error.Error(), "duplicate") ||
			strings.Contains(result.Error.Error(), "UNIQUE constraint") {
			return models.ErrUsernameTaken
		}
		return result.Error
	}
	return nil
}

func (r *AuthRepository) FindUser(username string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := r.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}
