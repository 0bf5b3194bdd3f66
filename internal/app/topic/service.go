package topic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"forum/internal/app/board"
	"forum/internal/providers/redis"
	"forum/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	ListTopics(ctx context.Context, boardID uint64, page, limit int) ([]*TopicSummary, int64, error)
	CreateTopic(ctx context.Context, boardID uint64, actorID uint64, subject, message string) (*Topic, error)
	GetTopicByBoardAndID(ctx context.Context, boardID uint64, topicID uint64) (*Topic, error)
	InvalidateTopicsCache(boardID uint64)
}

type service struct {
	repo        Repository
	boardSvc    board.Service
	dbConn      *gorm.DB
	redisP      *redis.RedisProvider
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
	cachePrefix string
}

func NewService(
	repo Repository,
	boardSvc board.Service,
	dbConn *gorm.DB,
	redisP *redis.RedisProvider,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:        repo,
		boardSvc:    boardSvc,
		dbConn:      dbConn,
		redisP:      redisP,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
		cachePrefix: "topics:board",
	}
}

func (s *service) ListTopics(ctx context.Context, boardID uint64, page, limit int) ([]*TopicSummary, int64, error) {
	if _, err := s.boardSvc.GetBoardByID(boardID); err != nil {
		return nil, 0, err
	}

	cacheKey := fmt.Sprintf("%s:%d:page:%d:limit:%d", s.cachePrefix, boardID, page, limit)

	var cached struct {
		Topics []*TopicSummary `json:"topics"`
		Total  int64           `json:"total"`
	}
	if s.redisP != nil {
		if data, err := s.redisP.Get(ctx, cacheKey).Result(); err == nil && data != "" {
			if json.Unmarshal([]byte(data), &cached) == nil {
				return cached.Topics, cached.Total, nil
			}
		}
	}

	topics, total, err := s.repo.GetTopicsByBoardID(boardID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get topics: %w", err)
	}

	if s.redisP != nil {
		cached.Topics = topics
		cached.Total = total
		if data, err := json.Marshal(cached); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, cacheKey, data, 0)
		}
	}

	return topics, total, nil
}

func (s *service) CreateTopic(ctx context.Context, boardID uint64, actorID uint64, subject, message string) (*Topic, error) {
	if _, err := s.boardSvc.GetBoardByID(boardID); err != nil {
		return nil, err
	}

	verr := utils.NewValidationError()
	if subject == "" {
		verr.Add("subject", "subject is required")
	} else if utf8.RuneCountInString(subject) > 500 {
		verr.Add("subject", "subject must be at most 500 characters")
	}
	if message == "" {
		verr.Add("message", "message is required")
	} else if utf8.RuneCountInString(message) > 4000 {
		verr.Add("message", "message must be at most 4000 characters")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	now := time.Now().UTC()
	topic := &Topic{
		BoardID:    boardID,
		StarterID:  actorID,
		Subject:    subject,
		LastUpdate: now,
		CreatedAt:  now,
	}

	// The topic and its opening post either both exist or neither does.
	err := s.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(topic).Error; err != nil {
			return err
		}

		return tx.Exec(`
            INSERT INTO posts (topic_id, created_by, message, created_at)
            VALUES (?, ?, ?, ?)
        `, topic.ID, actorID, message, now).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	s.InvalidateTopicsCache(boardID)

	s.eventBus.Publish("topic_created", map[string]interface{}{
		"topic_id":   topic.ID,
		"board_id":   topic.BoardID,
		"subject":    topic.Subject,
		"starter_id": topic.StarterID,
		"created_at": topic.CreatedAt,
	})

	return topic, nil
}

func (s *service) GetTopicByBoardAndID(ctx context.Context, boardID uint64, topicID uint64) (*Topic, error) {
	topic, err := s.repo.GetTopicByBoardAndID(boardID, topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return topic, nil
}

func (s *service) InvalidateTopicsCache(boardID uint64) {
	if s.redisP == nil {
		return
	}
	pattern := fmt.Sprintf("%s:%d:*", s.cachePrefix, boardID)
	s.redisP.DelByPattern(context.Background(), pattern)
}
