package post

import "time"

type Post struct {
	ID         uint64     `json:"id" gorm:"primaryKey"`
	TopicID    uint64     `json:"topic_id" gorm:"not null;index"`
	CreatedBy  uint64     `json:"created_by" gorm:"not null"`
	Message    string     `json:"message" gorm:"size:5000;not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
	UpdatedBy  *uint64    `json:"updated_by,omitempty"`
	AuthorName string     `json:"author_name,omitempty" gorm:"->;-:migration"`
}

// TopicView marks that a user has opened a topic's post listing at least once.
// The composite primary key keeps the record unique per (topic, user).
type TopicView struct {
	TopicID  uint64    `json:"topic_id" gorm:"primaryKey;autoIncrement:false"`
	UserID   uint64    `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ViewedAt time.Time `json:"viewed_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (TopicView) TableName() string {
	return "topic_views"
}

type CreatePostRequest struct {
	Message string `json:"message"`
}

type UpdatePostRequest struct {
	Message string `json:"message"`
}

type PostListResponse struct {
	OpeningPost *Post      `json:"opening_post"`
	Replies     []*Post    `json:"replies"`
	Pagination  Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
