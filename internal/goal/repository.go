package goal

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(goal *CareerGoal) error
	FindAllByUserID(userID uuid.UUID) ([]CareerGoal, error)
	FindByID(id uuid.UUID) (*CareerGoal, error)
	Update(goal *CareerGoal) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(goal *CareerGoal) error {
	return r.db.Create(goal).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]CareerGoal, error) {
	var goals []CareerGoal
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByID(id uuid.UUID) (*CareerGoal, error) {
	var goal CareerGoal
	if err := r.db.First(&goal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *repository) Update(goal *CareerGoal) error {
	return r.db.Save(goal).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&CareerGoal{}, "id = ?", id).Error
}
