package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessGetCategory     = "success get category detail"
	MessageSuccessCreateCategory  = "category created successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedGetCategory    = "failed to get category detail"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already in use")
	ErrCategorySlugTaken = errors.New("category slug already in use")
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Slug        string `json:"slug" validate:"omitempty,slug"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url" validate:"omitempty,url"`
	}

	UpdateCategoryRequest struct {
		Name        *string `json:"name" validate:"omitempty,min=1"`
		Slug        *string `json:"slug" validate:"omitempty,slug"`
		Description *string `json:"description"`
		ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	}

	CategoryResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Slug        string    `json:"slug"`
		Description string    `json:"description,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	CategoryListResponse struct {
		Categories []CategoryResponse `json:"categories"`
		Total      int64              `json:"total"`
		Page       int                `json:"page"`
		PageSize   int                `json:"page_size"`
	}
)
