package post

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetOpeningPost(topicID uint64) (*Post, error)
	GetReplies(topicID uint64, openingPostID uint64, page int, limit int) ([]*Post, int64, error)
	GetPostByID(id uint64) (*Post, error)
	MarkViewed(topicID uint64, userID uint64) error
	UpdatePostByAuthor(postID, topicID, actorID uint64, message string, updatedAt time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetOpeningPost returns the earliest-created post of the topic; insertion
// order (id) breaks creation-time ties.
func (r *repository) GetOpeningPost(topicID uint64) (*Post, error) {
	var post Post
	err := r.db.Table("posts").
		Select("posts.*, users.username as author_name").
		Joins("JOIN users ON users.id = posts.created_by").
		Where("posts.topic_id = ?", topicID).
		Order("posts.created_at ASC, posts.id ASC").
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *repository) GetReplies(topicID uint64, openingPostID uint64, page int, limit int) ([]*Post, int64, error) {
	var total int64
	err := r.db.Model(&Post{}).
		Where("topic_id = ? AND id <> ?", topicID, openingPostID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var replies []*Post
	offset := (page - 1) * limit

	err = r.db.Table("posts").
		Select("posts.*, users.username as author_name").
		Joins("JOIN users ON users.id = posts.created_by").
		Where("posts.topic_id = ? AND posts.id <> ?", topicID, openingPostID).
		Order("posts.updated_at DESC NULLS LAST, posts.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&replies).Error
	if err != nil {
		return nil, 0, err
	}

	return replies, total, nil
}

func (r *repository) GetPostByID(id uint64) (*Post, error) {
	var post Post
	err := r.db.Table("posts").
		Select("posts.*, users.username as author_name").
		Joins("JOIN users ON users.id = posts.created_by").
		Where("posts.id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// MarkViewed records the first view of a topic by a user. The conflict-ignoring
// insert keeps concurrent first views from producing two records.
func (r *repository) MarkViewed(topicID uint64, userID uint64) error {
	return r.db.Exec(`
        INSERT INTO topic_views (topic_id, user_id, viewed_at)
        VALUES (?, ?, NOW())
        ON CONFLICT (topic_id, user_id) DO NOTHING
    `, topicID, userID).Error
}

// UpdatePostByAuthor applies the edit only when actorID is the post's creator.
// The caller turns zero affected rows into a not-found result, so a non-owner
// cannot tell the post exists.
func (r *repository) UpdatePostByAuthor(postID, topicID, actorID uint64, message string, updatedAt time.Time) (int64, error) {
	result := r.db.Model(&Post{}).
		Where("id = ? AND topic_id = ? AND created_by = ?", postID, topicID, actorID).
		Updates(map[string]interface{}{
			"message":    message,
			"updated_at": updatedAt,
			"updated_by": actorID,
		})
	return result.RowsAffected, result.Error
}
