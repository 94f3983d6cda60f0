package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCollections   = "success get collections"
	MessageSuccessCreateCollection = "collection created successfully"
	MessageSuccessUpdateCollection = "collection updated successfully"
	MessageSuccessDeleteCollection = "collection deleted successfully"
	MessageSuccessSaveRecipe       = "recipe saved successfully"
	MessageSuccessUnsaveRecipe     = "recipe removed from saved"
	MessageSuccessGetSavedRecipes  = "success get saved recipes"

	MessageFailedGetCollections   = "failed to get collections"
	MessageFailedCreateCollection = "failed to create collection"
	MessageFailedUpdateCollection = "failed to update collection"
	MessageFailedDeleteCollection = "failed to delete collection"
	MessageFailedSaveRecipe       = "failed to save recipe"
	MessageFailedUnsaveRecipe     = "failed to remove saved recipe"
	MessageFailedGetSavedRecipes  = "failed to get saved recipes"

	ErrCollectionNotFound = errors.New("collection not found")
)

type (
	CreateCollectionRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		IsPublic    *bool  `json:"is_public"`
	}

	UpdateCollectionRequest struct {
		Name        *string `json:"name" validate:"omitempty,min=1"`
		Description *string `json:"description"`
		IsPublic    *bool   `json:"is_public"`
	}

	CollectionResponse struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		IsPublic    bool      `json:"is_public"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	SaveRecipeRequest struct {
		RecipeID     string `json:"recipe_id" validate:"required,uuid"`
		CollectionID string `json:"collection_id" validate:"omitempty,uuid"`
	}

	SavedRecipeResponse struct {
		RecipeID     string    `json:"recipe_id"`
		CollectionID string    `json:"collection_id,omitempty"`
		SavedAt      time.Time `json:"saved_at"`
		Recipe       *RecipeResponse `json:"recipe,omitempty"`
	}
)
