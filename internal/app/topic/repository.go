package topic

import "gorm.io/gorm"

type Repository interface {
	GetTopicsByBoardID(boardID uint64, page int, limit int) ([]*TopicSummary, int64, error)
	GetTopicByBoardAndID(boardID uint64, topicID uint64) (*Topic, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetTopicsByBoardID(boardID uint64, page int, limit int) ([]*TopicSummary, int64, error) {
	var total int64
	if err := r.db.Model(&Topic{}).Where("board_id = ?", boardID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []*TopicSummary
	offset := (page - 1) * limit

	err := r.db.Table("topics").
		Select(`
			topics.id,
			topics.board_id,
			topics.subject,
			topics.starter_id,
			users.username as starter_name,
			GREATEST(COUNT(DISTINCT posts.id) - 1, 0) as replies,
			COUNT(DISTINCT topic_views.user_id) as views,
			topics.last_update
		`).
		Joins("JOIN users ON users.id = topics.starter_id").
		Joins("LEFT JOIN posts ON posts.topic_id = topics.id").
		Joins("LEFT JOIN topic_views ON topic_views.topic_id = topics.id").
		Where("topics.board_id = ?", boardID).
		Group("topics.id, users.username").
		Order("topics.last_update DESC").
		Offset(offset).
		Limit(limit).
		Find(&topics).Error
	if err != nil {
		return nil, 0, err
	}

	return topics, total, nil
}

func (r *repository) GetTopicByBoardAndID(boardID uint64, topicID uint64) (*Topic, error) {
	var topic Topic
	err := r.db.Where("board_id = ? AND id = ?", boardID, topicID).First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}
