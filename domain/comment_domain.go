package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessCreateComment = "comment created successfully"
	MessageSuccessUpdateComment = "comment updated successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"

	MessageFailedGetComments   = "failed to get comments"
	MessageFailedCreateComment = "failed to create comment"
	MessageFailedUpdateComment = "failed to update comment"
	MessageFailedDeleteComment = "failed to delete comment"

	ErrCommentNotFound      = errors.New("comment not found")
	ErrCommentParentInvalid = errors.New("parent comment does not belong to this recipe")
)

type (
	CreateCommentRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Content  string `json:"content" validate:"required"`
		ParentID string `json:"parent_id" validate:"omitempty,uuid"`
	}

	UpdateCommentRequest struct {
		Content *string `json:"content" validate:"omitempty,min=1"`
	}

	CommentResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserID    string    `json:"user_id"`
		Content   string    `json:"content"`
		ParentID  string    `json:"parent_id,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
