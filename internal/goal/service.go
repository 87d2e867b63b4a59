package goal

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrForbidden  = errors.New("goal does not belong to user")
	ErrEmptyTitle = errors.New("title is required")
)

type Service interface {
	Create(userID uuid.UUID, dto CreateCareerGoalDTO) (*CareerGoalResponse, error)
	List(userID uuid.UUID) ([]CareerGoalResponse, error)
	Update(id uuid.UUID, userID uuid.UUID, dto UpdateCareerGoalDTO) (*CareerGoalResponse, error)
	Delete(id uuid.UUID, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(userID uuid.UUID, dto CreateCareerGoalDTO) (*CareerGoalResponse, error) {
	if dto.Title == "" {
		return nil, ErrEmptyTitle
	}

	goal := CareerGoal{
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		TargetDate:  dto.TargetDate,
		Status:      CareerGoalStatusActive,
	}

	if err := s.repo.Create(&goal); err != nil {
		return nil, err
	}

	return s.toResponse(&goal), nil
}

func (s *service) List(userID uuid.UUID) ([]CareerGoalResponse, error) {
	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	var responses []CareerGoalResponse
	for _, goal := range goals {
		responses = append(responses, *s.toResponse(&goal))
	}
	return responses, nil
}

func (s *service) Update(id uuid.UUID, userID uuid.UUID, dto UpdateCareerGoalDTO) (*CareerGoalResponse, error) {
	goal, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if goal.UserID != userID {
		return nil, ErrForbidden
	}

	if dto.Title != nil {
		goal.Title = *dto.Title
	}
	if dto.Description != nil {
		goal.Description = *dto.Description
	}
	if dto.TargetDate != nil {
		goal.TargetDate = dto.TargetDate
	}
	if dto.Status != nil {
		goal.Status = *dto.Status
	}

	if err := s.repo.Update(goal); err != nil {
		return nil, err
	}

	return s.toResponse(goal), nil
}

func (s *service) Delete(id uuid.UUID, userID uuid.UUID) error {
	goal, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if goal.UserID != userID {
		return ErrForbidden
	}

	return s.repo.Delete(id)
}

func (s *service) toResponse(goal *CareerGoal) *CareerGoalResponse {
	return &CareerGoalResponse{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		TargetDate:  goal.TargetDate,
		Status:      goal.Status,
		UserID:      goal.UserID,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}
