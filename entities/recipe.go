package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recipe struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID         uuid.UUID      `gorm:"index" json:"author_id"`
	Title            string         `json:"title"`
	Slug             string         `gorm:"uniqueIndex" json:"slug"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	PrepTimeMinutes  int            `json:"prep_time_minutes"`
	CookTimeMinutes  int            `json:"cook_time_minutes"`
	TotalTimeMinutes int            `json:"total_time_minutes"`
	Servings         int            `json:"servings"`
	DifficultyLevel  string         `json:"difficulty_level,omitempty"`
	Featured         bool           `gorm:"default:false" json:"featured"`
	Trending         bool           `gorm:"default:false" json:"trending"`
	Published        bool           `gorm:"default:false" json:"published"`
	PublishedAt      *time.Time     `gorm:"type:timestamp" json:"published_at,omitempty"`
	Images           datatypes.JSON `json:"images,omitempty"`      // []string, ordered
	Ingredients      datatypes.JSON `json:"ingredients,omitempty"` // []{name, quantity, unit?, note?}
	Steps            datatypes.JSON `json:"steps,omitempty"`       // []{order, description, image_url?}
	Instructions     string         `gorm:"type:text" json:"instructions,omitempty"`
	Notes            string         `gorm:"type:text" json:"notes,omitempty"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type RecipeCategory struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type RecipeTag struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	TagID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"tag_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Tag    *Tag    `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
