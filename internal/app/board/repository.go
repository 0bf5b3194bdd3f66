package board

import "gorm.io/gorm"

type Repository interface {
	GetAllBoards() ([]*BoardSummary, error)
	GetBoardByID(id uint64) (*Board, error)
	CreateBoard(board *Board) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAllBoards() ([]*BoardSummary, error) {
	var boards []*BoardSummary
	err := r.db.Table("boards").
		Select(`
			boards.id,
			boards.name,
			boards.description,
			boards.created_at,
			COUNT(DISTINCT topics.id) as topics_count,
			COUNT(posts.id) as posts_count,
			MAX(posts.created_at) as last_post_at
		`).
		Joins("LEFT JOIN topics ON topics.board_id = boards.id").
		Joins("LEFT JOIN posts ON posts.topic_id = topics.id").
		Group("boards.id").
		Order("boards.created_at ASC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) GetBoardByID(id uint64) (*Board, error) {
	var board Board
	err := r.db.Where("id = ?", id).First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) CreateBoard(board *Board) error {
	return r.db.Create(board).Error
}
