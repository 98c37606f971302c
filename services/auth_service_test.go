package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gin-bookstore/constants"
	"gin-bookstore/models"
	"gin-bookstore/repositories"
)

func newAuthService(t *testing.T) IAuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(repositories.NewAuthRepository(db))
}

func TestRegisterHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewAuthRepository(db))

	require.NoError(t, service.Register("alice", "password123"))

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "alice").Error)
	assert.Equal(t, constants.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewAuthRepository(db))

	require.NoError(t, service.Register("alice", "password123"))
	err := service.Register("alice", "different456")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	// 失敗した登録で行が増えていないこと
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterAdminRole(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewAuthRepository(db))

	require.NoError(t, service.RegisterAdmin("admin", "admin-pass-1"))

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "admin").Error)
	assert.Equal(t, constants.RoleAdmin, user.Role)
}

func TestLoginSuccess(t *testing.T) {
	service := newAuthService(t)
	require.NoError(t, service.Register("alice", "password123"))

	user, err := service.Login("alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, constants.RoleUser, user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	service := newAuthService(t)
	require.NoError(t, service.Register("alice", "password123"))

	_, err := service.Login("alice", "wrongpassword")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service := newAuthService(t)

	_, err := service.Login("nobody", "password123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
