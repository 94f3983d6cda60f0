package handlers

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/presenters"
	"Recipe-Hub/pkg/collection"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		CreateCollection(c *fiber.Ctx) error
		UpdateCollection(c *fiber.Ctx) error
		DeleteCollection(c *fiber.Ctx) error
		GetMyCollections(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
		validator         *validator.Validate
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, validator *validator.Validate) CollectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
		validator:         validator,
	}
}

func (h *collectionHandler) CreateCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCollectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	res, err := h.collectionService.Create(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCollection)
}

func (h *collectionHandler) UpdateCollection(c *fiber.Ctx) error {
	collectionID := c.Params("id")
	req := new(domain.UpdateCollectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCollection, err)
	}

	res, err := h.collectionService.Update(c.Context(), collectionID, *req)
	if err != nil {
		if err == domain.ErrCollectionNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateCollection, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}

func (h *collectionHandler) DeleteCollection(c *fiber.Ctx) error {
	collectionID := c.Params("id")

	if err := h.collectionService.Delete(c.Context(), collectionID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCollection)
}

func (h *collectionHandler) GetMyCollections(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.collectionService.ListByUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	if err := h.collectionService.SaveRecipe(c.Context(), *req, userID); err != nil {
		switch err {
		case domain.ErrRecipeNotFound, domain.ErrCollectionNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSaveRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveRecipe)
}

func (h *collectionHandler) UnsaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.collectionService.UnsaveRecipe(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}

func (h *collectionHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.collectionService.GetSavedRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSavedRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSavedRecipes)
}
