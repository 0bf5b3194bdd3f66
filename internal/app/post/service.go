package post

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"forum/internal/app/topic"
	"forum/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	ListTopicPosts(ctx context.Context, boardID, topicID uint64, actorID uint64, page, limit int) (*Post, []*Post, int64, error)
	CreateReply(ctx context.Context, boardID, topicID uint64, actorID uint64, message string) (*Post, error)
	UpdatePost(ctx context.Context, boardID, topicID, postID uint64, actorID uint64, message string) (*Post, error)
}

type service struct {
	repo     Repository
	topicSvc topic.Service
	dbConn   *gorm.DB
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(
	repo Repository,
	topicSvc topic.Service,
	dbConn *gorm.DB,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		topicSvc: topicSvc,
		dbConn:   dbConn,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

// ListTopicPosts splits a topic into its opening post and the ordered replies.
// An authenticated actor is recorded as a viewer of the topic; the record is
// created at most once per (topic, user).
func (s *service) ListTopicPosts(ctx context.Context, boardID, topicID uint64, actorID uint64, page, limit int) (*Post, []*Post, int64, error) {
	t, err := s.topicSvc.GetTopicByBoardAndID(ctx, boardID, topicID)
	if err != nil {
		return nil, nil, 0, err
	}

	opening, err := s.repo.GetOpeningPost(t.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, fmt.Errorf("topic %d has no posts", t.ID)
		}
		return nil, nil, 0, fmt.Errorf("failed to get opening post: %w", err)
	}

	replies, total, err := s.repo.GetReplies(t.ID, opening.ID, page, limit)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to get replies: %w", err)
	}

	if actorID > 0 {
		if err := s.repo.MarkViewed(t.ID, actorID); err != nil {
			s.logger.Warnw("Failed to record topic view",
				"topic_id", t.ID,
				"user_id", actorID,
				"error", err,
			)
		}
	}

	return opening, replies, total, nil
}

func (s *service) CreateReply(ctx context.Context, boardID, topicID uint64, actorID uint64, message string) (*Post, error) {
	t, err := s.topicSvc.GetTopicByBoardAndID(ctx, boardID, topicID)
	if err != nil {
		return nil, err
	}

	if verr := validateMessage(message); verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	reply := &Post{
		TopicID:   t.ID,
		CreatedBy: actorID,
		Message:   message,
		CreatedAt: now,
	}

	// Adding a post advances the topic's last_update to the post's creation time.
	err = s.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		return tx.Table("topics").
			Where("id = ?", t.ID).
			Update("last_update", now).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	s.topicSvc.InvalidateTopicsCache(boardID)

	s.eventBus.Publish("post_created", map[string]interface{}{
		"post_id":    reply.ID,
		"topic_id":   reply.TopicID,
		"board_id":   boardID,
		"created_by": reply.CreatedBy,
		"created_at": reply.CreatedAt,
	})

	return reply, nil
}

// UpdatePost edits a post on behalf of its original author. A post that exists
// but belongs to someone else reads as not found.
func (s *service) UpdatePost(ctx context.Context, boardID, topicID, postID uint64, actorID uint64, message string) (*Post, error) {
	if _, err := s.topicSvc.GetTopicByBoardAndID(ctx, boardID, topicID); err != nil {
		return nil, err
	}

	if verr := validateMessage(message); verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	rows, err := s.repo.UpdatePostByAuthor(postID, topicID, actorID, message, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if rows == 0 {
		return nil, utils.ErrNotFound
	}

	s.eventBus.Publish("post_updated", map[string]interface{}{
		"post_id":    postID,
		"topic_id":   topicID,
		"board_id":   boardID,
		"updated_by": actorID,
		"updated_at": now,
	})

	updated, err := s.repo.GetPostByID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated post: %w", err)
	}
	return updated, nil
}

func validateMessage(message string) *utils.ValidationError {
	verr := utils.NewValidationError()
	if message == "" {
		verr.Add("message", "message is required")
	} else if utf8.RuneCountInString(message) > 4000 {
		verr.Add("message", "message must be at most 4000 characters")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
