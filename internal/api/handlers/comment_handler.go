package handlers

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/presenters"
	"Recipe-Hub/pkg/comment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		CreateComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
		GetRecipeComments(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *commentHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	res, err := h.commentService.Create(c.Context(), *req, userID)
	if err != nil {
		switch err {
		case domain.ErrRecipeNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateComment, err)
		case domain.ErrCommentNotFound, domain.ErrCommentParentInvalid:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}

func (h *commentHandler) UpdateComment(c *fiber.Ctx) error {
	commentID := c.Params("id")
	req := new(domain.UpdateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	res, err := h.commentService.Update(c.Context(), commentID, *req)
	if err != nil {
		if err == domain.ErrCommentNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	commentID := c.Params("id")

	if err := h.commentService.Delete(c.Context(), commentID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *commentHandler) GetRecipeComments(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, domain.ErrRecipeNotFound)
	}

	res, err := h.commentService.ListByRecipe(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"comments": res,
		"total":    len(res),
	}, fiber.StatusOK, domain.MessageSuccessGetComments)
}
