package board

import "time"

type Board struct {
	ID          uint64    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:30;unique;not null"`
	Description string    `json:"description" gorm:"size:100;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoardSummary is a Board annotated with activity counters for the board index.
type BoardSummary struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TopicsCount int64      `json:"topics_count"`
	PostsCount  int64      `json:"posts_count"`
	LastPostAt  *time.Time `json:"last_post_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type BoardListResponse struct {
	Boards []*BoardSummary `json:"boards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
