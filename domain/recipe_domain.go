package domain

import (
	"errors"
	"time"
)

// Status filter values accepted by the recipe listing.
const (
	RecipeFilterAll       = "all"
	RecipeFilterPublished = "published"
	RecipeFilterDraft     = "draft"
	RecipeFilterFeatured  = "featured"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessGetRecipe     = "success get recipe detail"
	MessageSuccessCreateRecipe  = "recipe created successfully"
	MessageSuccessUpdateRecipe  = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessSearchRecipes = "success search recipes"

	MessageFailedGetRecipes    = "failed to get recipes"
	MessageFailedGetRecipe     = "failed to get recipe detail"
	MessageFailedCreateRecipe  = "failed to create recipe"
	MessageFailedUpdateRecipe  = "failed to update recipe"
	MessageFailedDeleteRecipe  = "failed to delete recipe"
	MessageFailedSearchRecipes = "failed to search recipes"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeSlugTaken     = errors.New("recipe slug already in use")
	ErrRecipeInvalidFilter = errors.New("invalid recipe filter")
)

type (
	IngredientRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
		Unit     string `json:"unit,omitempty"`
		Note     string `json:"note,omitempty"`
	}

	StepRequest struct {
		Order       int    `json:"order" validate:"gte=0"`
		Description string `json:"description" validate:"required"`
		ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	}

	CreateRecipeRequest struct {
		Title            string              `json:"title" validate:"required"`
		Slug             string              `json:"slug" validate:"required,slug"`
		Description      string              `json:"description"`
		PrepTimeMinutes  int                 `json:"prep_time_minutes" validate:"gte=0"`
		CookTimeMinutes  int                 `json:"cook_time_minutes" validate:"gte=0"`
		TotalTimeMinutes int                 `json:"total_time_minutes" validate:"gte=0"`
		Servings         int                 `json:"servings" validate:"omitempty,gt=0"`
		DifficultyLevel  string              `json:"difficulty_level"`
		Images           []string            `json:"images" validate:"omitempty,dive,url"`
		Ingredients      []IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
		Steps            []StepRequest       `json:"steps" validate:"omitempty,dive"`
		Instructions     string              `json:"instructions"`
		Notes            string              `json:"notes"`
		CategoryIDs      []string            `json:"category_ids" validate:"omitempty,dive,uuid"`
		TagIDs           []string            `json:"tag_ids" validate:"omitempty,dive,uuid"`
	}

	// UpdateRecipeRequest is the partial-update variant: every field optional,
	// same rules when present. The recipe id comes from the URL, never the body.
	UpdateRecipeRequest struct {
		Title            *string             `json:"title" validate:"omitempty,min=1"`
		Slug             *string             `json:"slug" validate:"omitempty,slug"`
		Description      *string             `json:"description"`
		PrepTimeMinutes  *int                `json:"prep_time_minutes" validate:"omitempty,gte=0"`
		CookTimeMinutes  *int                `json:"cook_time_minutes" validate:"omitempty,gte=0"`
		TotalTimeMinutes *int                `json:"total_time_minutes" validate:"omitempty,gte=0"`
		Servings         *int                `json:"servings" validate:"omitempty,gt=0"`
		DifficultyLevel  *string             `json:"difficulty_level"`
		Images           []string            `json:"images" validate:"omitempty,dive,url"`
		Ingredients      []IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
		Steps            []StepRequest       `json:"steps" validate:"omitempty,dive"`
		Instructions     *string             `json:"instructions"`
		Notes            *string             `json:"notes"`
		CategoryIDs      []string            `json:"category_ids" validate:"omitempty,dive,uuid"`
		TagIDs           []string            `json:"tag_ids" validate:"omitempty,dive,uuid"`
	}

	SetPublishedRequest struct {
		Published bool `json:"published"`
	}

	SetFeaturedRequest struct {
		Featured bool `json:"featured"`
	}

	SetTrendingRequest struct {
		Trending bool `json:"trending"`
	}

	ListRecipesRequest struct {
		Page     int    `json:"page"`
		PageSize int    `json:"page_size"`
		Search   string `json:"search"`
		Sort     string `json:"sort"`
		SortDir  string `json:"sort_dir"`
		Filter   string `json:"filter"`
	}

	RecipeResponse struct {
		ID               string              `json:"id"`
		AuthorID         string              `json:"author_id,omitempty"`
		Title            string              `json:"title"`
		Slug             string              `json:"slug"`
		Description      string              `json:"description,omitempty"`
		PrepTimeMinutes  int                 `json:"prep_time_minutes"`
		CookTimeMinutes  int                 `json:"cook_time_minutes"`
		TotalTimeMinutes int                 `json:"total_time_minutes"`
		Servings         int                 `json:"servings"`
		DifficultyLevel  string              `json:"difficulty_level,omitempty"`
		Featured         bool                `json:"featured"`
		Trending         bool                `json:"trending"`
		Published        bool                `json:"published"`
		PublishedAt      *time.Time          `json:"published_at,omitempty"`
		Images           []string            `json:"images"`
		Ingredients      []IngredientRequest `json:"ingredients"`
		Steps            []StepRequest       `json:"steps"`
		Instructions     string              `json:"instructions,omitempty"`
		Notes            string              `json:"notes,omitempty"`
		CategoryIDs      []string            `json:"category_ids"`
		TagIDs           []string            `json:"tag_ids"`
		CreatedAt        time.Time           `json:"created_at"`
		UpdatedAt        time.Time           `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes  []RecipeResponse `json:"recipes"`
		Total    int64            `json:"total"`
		Page     int              `json:"page"`
		PageSize int              `json:"page_size"`
	}

	// RecipeSummary is the trimmed shape returned by the homepage search.
	RecipeSummary struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description,omitempty"`
	}
)
