package services

import (
	"gin-bookstore/dto"
	"gin-bookstore/models"
	"gin-bookstore/repositories"
)

type IMemberService interface {
	Register(userID uint, input dto.RegisterMemberInput) error
	IsMember(userID uint) (bool, error)
	ListMembers() (*[]models.Member, error)
}

type MemberService struct {
	repository repositories.IMemberRepository
}

func NewMemberService(repository repositories.IMemberRepository) IMemberService {
	return &MemberService{repository: repository}
}

// Register creates the member profile once; a second registration is
// rejected so the discount predicate stays a simple existence check.
func (s *MemberService) Register(userID uint, input dto.RegisterMemberInput) error {
	existing, err := s.repository.FindByUserId(userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.ErrAlreadyMember
	}

	member := models.Member{
		UserID:     userID,
		FullName:   input.FullName,
		IdentityNo: input.IdentityNo,
		Email:      input.Email,
	}
	return s.repository.Create(member)
}

func (s *MemberService) IsMember(userID uint) (bool, error) {
	member, err := s.repository.FindByUserId(userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

func (s *MemberService) ListMembers() (*[]models.Member, error) {
	return s.repository.FindAll()
}
