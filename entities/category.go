package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`

	Timestamp
}
