package handlers

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/presenters"
	"Recipe-Hub/pkg/tag"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TagHandler interface {
		CreateTag(c *fiber.Ctx) error
		GetTags(c *fiber.Ctx) error
		GetAllTags(c *fiber.Ctx) error
		UpdateTag(c *fiber.Ctx) error
		DeleteTag(c *fiber.Ctx) error
	}

	tagHandler struct {
		tagService tag.TagService
		validator  *validator.Validate
	}
)

func NewTagHandler(tagService tag.TagService, validator *validator.Validate) TagHandler {
	return &tagHandler{
		tagService: tagService,
		validator:  validator,
	}
}

func (h *tagHandler) CreateTag(c *fiber.Ctx) error {
	req := new(domain.CreateTagRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTag, err)
	}

	res, err := h.tagService.Create(c.Context(), *req)
	if err != nil {
		if err == domain.ErrTagNameTaken || err == domain.ErrTagSlugTaken {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateTag, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTag)
}

func (h *tagHandler) GetTags(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	res, err := h.tagService.ListPaginated(
		c.Context(),
		page,
		limit,
		c.Query("search", ""),
		c.Query("sort", ""),
		c.Query("sort_dir", ""),
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTags, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"tags": res.Tags,
		"pagination": fiber.Map{
			"page":        res.Page,
			"limit":       res.PageSize,
			"total":       res.Total,
			"total_pages": (res.Total + int64(res.PageSize) - 1) / int64(res.PageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetTags)
}

func (h *tagHandler) GetAllTags(c *fiber.Ctx) error {
	res, err := h.tagService.GetAll(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTags, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTags)
}

func (h *tagHandler) UpdateTag(c *fiber.Ctx) error {
	tagID := c.Params("id")
	req := new(domain.UpdateTagRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTag, err)
	}

	res, err := h.tagService.Update(c.Context(), tagID, *req)
	if err != nil {
		switch err {
		case domain.ErrTagNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateTag, err)
		case domain.ErrTagNameTaken, domain.ErrTagSlugTaken:
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUpdateTag, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTag)
}

func (h *tagHandler) DeleteTag(c *fiber.Ctx) error {
	tagID := c.Params("id")

	if err := h.tagService.Delete(c.Context(), tagID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTag, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTag)
}
