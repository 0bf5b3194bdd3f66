package board

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"forum/internal/utils"

	"gorm.io/gorm"
)

type Service interface {
	GetAllBoards() ([]*BoardSummary, error)
	GetBoardByID(id uint64) (*Board, error)
	CreateBoard(name, description string) (*Board, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAllBoards() ([]*BoardSummary, error) {
	return s.repo.GetAllBoards()
}

func (s *service) GetBoardByID(id uint64) (*Board, error) {
	board, err := s.repo.GetBoardByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return board, nil
}

func (s *service) CreateBoard(name, description string) (*Board, error) {
	verr := utils.NewValidationError()
	if name == "" {
		verr.Add("name", "name is required")
	} else if utf8.RuneCountInString(name) > 30 {
		verr.Add("name", "name must be at most 30 characters")
	}
	if utf8.RuneCountInString(description) > 100 {
		verr.Add("description", "description must be at most 100 characters")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	board := &Board{
		Name:        name,
		Description: description,
	}
	if err := s.repo.CreateBoard(board); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Field: "name", Message: "board name already taken"}
		}
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}
