package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	Phone                 string    `gorm:"size:20;not null;unique" json:"phone"`
	RequirePasswordChange bool      `gorm:"not null;default:true" json:"require_password_change"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
