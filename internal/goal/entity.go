package goal

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/skillbridge-lambda/internal/utils"
	"github.com/saulo-duarte/skillbridge-lambda/internal/user"
)

type CareerGoal struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	TargetDate  *util.LocalDateTime `gorm:"column:target_date" json:"target_date,omitempty"`
	Status      CareerGoalStatus    `json:"status"`
	UserID      uuid.UUID           `gorm:"column:user_id;not null" json:"user_id"`
	User        user.User           `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
