package entities

import (
	"github.com/google/uuid"
)

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
	Slug string    `gorm:"uniqueIndex" json:"slug"`

	Timestamp
}
