package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessGetTag    = "success get tag detail"
	MessageSuccessCreateTag = "tag created successfully"
	MessageSuccessUpdateTag = "tag updated successfully"
	MessageSuccessDeleteTag = "tag deleted successfully"

	MessageFailedGetTags   = "failed to get tags"
	MessageFailedGetTag    = "failed to get tag detail"
	MessageFailedCreateTag = "failed to create tag"
	MessageFailedUpdateTag = "failed to update tag"
	MessageFailedDeleteTag = "failed to delete tag"

	ErrTagNotFound  = errors.New("tag not found")
	ErrTagNameTaken = errors.New("tag name already in use")
	ErrTagSlugTaken = errors.New("tag slug already in use")
)

type (
	CreateTagRequest struct {
		Name string `json:"name" validate:"required"`
		Slug string `json:"slug" validate:"omitempty,slug"`
	}

	UpdateTagRequest struct {
		Name *string `json:"name" validate:"omitempty,min=1"`
		Slug *string `json:"slug" validate:"omitempty,slug"`
	}

	TagResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Slug      string    `json:"slug"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	TagListResponse struct {
		Tags     []TagResponse `json:"tags"`
		Total    int64         `json:"total"`
		Page     int           `json:"page"`
		PageSize int           `json:"page_size"`
	}
)
