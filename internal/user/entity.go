package user

import (
	"time"

	"github.com/google/uuid"
)

type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

type User struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string       `gorm:"type:text;not null" json:"name"`
	Email        string       `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"type:text" json:"-"`
	Provider     AuthProvider `gorm:"type:text;not null;default:'LOCAL'" json:"provider"`

	EncryptedGoogleAccessToken  string `gorm:"type:text" json:"-"`
	EncryptedGoogleRefreshToken string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
