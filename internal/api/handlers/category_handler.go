package handlers

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/presenters"
	"Recipe-Hub/pkg/category"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetAllCategories(c *fiber.Ctx) error
		GetCategoryBySlug(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.Create(c.Context(), *req)
	if err != nil {
		if err == domain.ErrCategoryNameTaken || err == domain.ErrCategorySlugTaken {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateCategory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	res, err := h.categoryService.ListPaginated(
		c.Context(),
		page,
		limit,
		c.Query("search", ""),
		c.Query("sort", ""),
		c.Query("sort_dir", ""),
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"categories": res.Categories,
		"pagination": fiber.Map{
			"page":        res.Page,
			"limit":       res.PageSize,
			"total":       res.Total,
			"total_pages": (res.Total + int64(res.PageSize) - 1) / int64(res.PageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetAllCategories(c *fiber.Ctx) error {
	res, err := h.categoryService.GetAll(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategory, domain.ErrCategoryNotFound)
	}

	res, err := h.categoryService.GetBySlug(c.Context(), slug)
	if err != nil {
		if err == domain.ErrCategoryNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCategory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategory)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.categoryService.Update(c.Context(), categoryID, *req)
	if err != nil {
		switch err {
		case domain.ErrCategoryNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateCategory, err)
		case domain.ErrCategoryNameTaken, domain.ErrCategorySlugTaken:
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUpdateCategory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.categoryService.Delete(c.Context(), categoryID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
