package db

import (
	"forum/internal/app/board"
	"forum/internal/app/post"
	"forum/internal/app/topic"
	"forum/internal/app/user"
	"forum/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.PostgresDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return db, nil
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&user.User{},
		&board.Board{},
		&topic.Topic{},
		&post.Post{},
		&post.TopicView{},
	); err != nil {
		return err
	}

	logger.Info("Database migrations applied")
	return nil
}
