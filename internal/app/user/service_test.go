package user_test

import (
	"errors"
	"testing"

	"forum/internal/app/user"
	"forum/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(u *user.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint64) (*user.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*user.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func TestUserService_Register_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := user.NewService(mockRepo)

	mockRepo.On("CreateUser", mock.AnythingOfType("*user.User")).Return(nil)

	u, err := svc.Register("alice", "alice@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := user.NewService(mockRepo)

	mockRepo.On("CreateUser", mock.AnythingOfType("*user.User")).Return(gorm.ErrDuplicatedKey)

	u, err := svc.Register("alice", "alice@example.com")

	assert.Nil(t, u)
	var cerr *utils.ConflictError
	assert.True(t, errors.As(err, &cerr))
	assert.Equal(t, "username", cerr.Field)
}

func TestUserService_Register_EmptyFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := user.NewService(mockRepo)

	u, err := svc.Register("", "")

	assert.Nil(t, u)
	var verr *utils.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "email")
	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := user.NewService(mockRepo)

	mockRepo.On("GetUserByID", uint64(42)).Return(nil, gorm.ErrRecordNotFound)

	u, err := svc.GetUserByID(42)

	assert.Nil(t, u)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUser_AvatarURL_NormalizesEmail(t *testing.T) {
	a := &user.User{Email: "  Alice@Example.COM "}
	b := &user.User{Email: "alice@example.com"}

	assert.Equal(t, b.AvatarURL(), a.AvatarURL())
	assert.Contains(t, a.AvatarURL(), "https://www.gravatar.com/avatar/")
}
