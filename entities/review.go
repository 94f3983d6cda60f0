package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"index" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Rating   int       `json:"rating"` // 1-5
	Comment  string    `gorm:"type:text" json:"comment,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
