package services

import (
	"golang.org/x/crypto/bcrypt"

	"gin-bookstore/constants"
	"gin-bookstore/models"
	"gin-bookstore/repositories"
)

type IAuthService interface {
	Register(username string, password string) error
	RegisterAdmin(username string, password string) error
	Login(username string, password string) (*models.User, error)
	ListUsers() (*[]models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
}

func NewAuthService(repository repositories.IAuthRepository) IAuthService {
	return &AuthService{repository: repository}
}

func (s *AuthService) Register(username string, password string) error {
	return s.createUser(username, password, constants.RoleUser)
}

// RegisterAdmin is only reachable from the operator CLI; the web surface
// never creates Admin accounts.
func (s *AuthService) RegisterAdmin(username string, password string) error {
	return s.createUser(username, password, constants.RoleAdmin)
}

func (s *AuthService) createUser(username string, password string, role string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	return s.repository.CreateUser(user)
}

func (s *AuthService) Login(username string, password string) (*models.User, error) {
	foundUser, err := s.repository.FindUser(username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return foundUser, nil
}

func (s *AuthService) ListUsers() (*[]models.User, error) {
	return s.repository.FindAll()
}
