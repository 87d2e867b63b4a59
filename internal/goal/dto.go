package goal

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/skillbridge-lambda/internal/utils"
)

type CreateCareerGoalDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	TargetDate  *util.LocalDateTime `json:"target_date"`
}

type UpdateCareerGoalDTO struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	TargetDate  *util.LocalDateTime `json:"target_date"`
	Status      *CareerGoalStatus   `json:"status"`
}

type CareerGoalResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	TargetDate  *util.LocalDateTime `json:"target_date,omitempty"`
	Status      CareerGoalStatus    `json:"status"`
	UserID      uuid.UUID           `json:"user_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
