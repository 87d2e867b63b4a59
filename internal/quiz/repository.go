package quiz

import (
	"gorm.io/gorm"
)

type QuizRepository interface {
	CreateResult(result *QuizResult) error
	ListResultsByUser(userID string) ([]*QuizResult, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateResult(result *QuizResult) error {
	return r.db.Create(result).Error
}

func (r *quizRepository) ListResultsByUser(userID string) ([]*QuizResult, error) {
	var results []*QuizResult
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
