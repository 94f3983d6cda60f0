package entities

import (
	"github.com/google/uuid"
)

type Comment struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID  `gorm:"index" json:"recipe_id"`
	UserID   uuid.UUID  `gorm:"index" json:"user_id"`
	Content  string     `gorm:"type:text" json:"content"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"` // threading, validated in service

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
