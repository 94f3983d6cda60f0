package entities

import (
	"time"

	"github.com/google/uuid"
)

type Collection struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsPublic    bool      `gorm:"default:true" json:"is_public"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type SavedRecipe struct {
	UserID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CollectionID *uuid.UUID `gorm:"type:uuid" json:"collection_id,omitempty"`
	SavedAt      time.Time  `gorm:"type:timestamp;autoCreateTime" json:"saved_at"`

	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Collection *Collection `gorm:"foreignKey:CollectionID;constraint:OnDelete:SET NULL"`
}
