package topic

import "time"

type Topic struct {
	ID         uint64    `json:"id" gorm:"primaryKey"`
	BoardID    uint64    `json:"board_id" gorm:"not null;index"`
	StarterID  uint64    `json:"starter_id" gorm:"not null"`
	Subject    string    `json:"subject" gorm:"size:500;not null"`
	LastUpdate time.Time `json:"last_update" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// TopicSummary is one row of a board's topic listing. Replies excludes the
// opening post and never goes negative; Views counts distinct users who have
// opened the topic.
type TopicSummary struct {
	ID          uint64    `json:"id"`
	BoardID     uint64    `json:"board_id"`
	Subject     string    `json:"subject"`
	StarterID   uint64    `json:"starter_id"`
	StarterName string    `json:"starter_name"`
	Replies     int64     `json:"replies"`
	Views       int64     `json:"views"`
	LastUpdate  time.Time `json:"last_update"`
}

type CreateTopicRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type TopicListResponse struct {
	Topics     []*TopicSummary `json:"topics"`
	Pagination Pagination      `json:"pagination"`
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
