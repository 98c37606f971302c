package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gin-bookstore/models"
)

type IMemberRepository interface {
	Create(member models.Member) error
	FindByUserId(userID uint) (*models.Member, error)
	FindAll() (*[]models.Member, error)
}

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) IMemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(member models.Member) error {
	result := r.db.Create(&member)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserId returns (nil, nil) when the user has no member profile.
func (r *MemberRepository) FindByUserId(userID uint) (*models.Member, error) {
	var member models.Member
	result := r.db.First(&member, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &member, nil
}

func (r *MemberRepository) FindAll() (*[]models.Member, error) {
	var members []models.Member
	result := r.db.Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return &members, nil
}
