package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetReviews   = "success get reviews"
	MessageSuccessCreateReview = "review created successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"

	MessageFailedGetReviews   = "failed to get reviews"
	MessageFailedCreateReview = "failed to create review"
	MessageFailedUpdateReview = "failed to update review"
	MessageFailedDeleteReview = "failed to delete review"

	ErrReviewNotFound = errors.New("review not found")
)

type (
	CreateReviewRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment"`
	}

	UpdateReviewRequest struct {
		Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
		Comment *string `json:"comment"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserID    string    `json:"user_id"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	RecipeReviewsResponse struct {
		Reviews       []ReviewResponse `json:"reviews"`
		Total         int              `json:"total"`
		AverageRating float64          `json:"average_rating"`
	}
)
