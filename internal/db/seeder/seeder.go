package seeder

import (
	"forum/internal/app/board"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedBoards(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedBoards() error {
	var count int64
	s.db.Model(&board.Board{}).Count(&count)
	if count > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	boards := []board.Board{
		{Name: "General", Description: "General discussion."},
		{Name: "Django", Description: "Django board."},
		{Name: "Go", Description: "Everything about Go."},
		{Name: "Random", Description: "Off-topic conversations."},
	}

	if err := s.db.Create(&boards).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded boards", zap.Int("count", len(boards)))
	return nil
}
