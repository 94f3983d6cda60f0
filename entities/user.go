package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string     `json:"name"`
	Email           string     `gorm:"uniqueIndex" json:"email"`
	Password        string     `json:"-"`
	Role            string     `gorm:"default:user" json:"role"` // "user" or "admin"
	ImageURL        string     `json:"image_url,omitempty"`
	EmailVerifiedAt *time.Time `gorm:"type:timestamp" json:"email_verified_at,omitempty"`

	Recipes     []*Recipe     `gorm:"foreignKey:AuthorID"`
	Reviews     []*Review     `gorm:"foreignKey:UserID"`
	Comments    []*Comment    `gorm:"foreignKey:UserID"`
	Collections []*Collection `gorm:"foreignKey:UserID"`
	Timestamp
}
