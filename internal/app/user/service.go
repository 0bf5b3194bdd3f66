package user

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"forum/internal/utils"

	"gorm.io/gorm"
)

type Service interface {
	Register(username, email string) (*User, error)
	GetUserByID(id uint64) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(username, email string) (*User, error) {
	verr := utils.NewValidationError()
	if username == "" {
		verr.Add("username", "username is required")
	} else if utf8.RuneCountInString(username) > 150 {
		verr.Add("username", "username must be at most 150 characters")
	}
	if email == "" {
		verr.Add("email", "email is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	user := &User{
		Username: username,
		Email:    email,
	}
	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Field: "username", Message: "username already taken"}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *service) GetUserByID(id uint64) (*User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
