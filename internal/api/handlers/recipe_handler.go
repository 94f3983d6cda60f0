package handlers

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/presenters"
	"Recipe-Hub/pkg/recipe"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipeDetailAdmin(c *fiber.Ctx) error
		GetRecipeBySlug(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		GetFeaturedRecipes(c *fiber.Ctx) error
		GetTrendingRecipes(c *fiber.Ctx) error
		SetPublished(c *fiber.Ctx) error
		SetFeatured(c *fiber.Ctx) error
		SetTrending(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	authorID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.Create(c.Context(), *req, authorID)
	if err != nil {
		if err == domain.ErrRecipeSlugTaken {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

// GetRecipes is the public catalog listing; it only ever shows published
// recipes, whatever filter the query string asks for.
func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ListPublished(c.Context(), h.parseListRequest(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}
	return listResponse(c, res)
}

// GetAllRecipes is the back-office listing: drafts included, status filter
// honored. Routes mount it behind the admin gate.
func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ListPaginated(c.Context(), h.parseListRequest(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}
	return listResponse(c, res)
}

func (h *recipeHandler) parseListRequest(c *fiber.Ctx) domain.ListRecipesRequest {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	return domain.ListRecipesRequest{
		Page:     page,
		PageSize: limit,
		Search:   c.Query("search", ""),
		Sort:     c.Query("sort", ""),
		SortDir:  c.Query("sort_dir", ""),
		Filter:   c.Query("filter", domain.RecipeFilterAll),
	}
}

func listResponse(c *fiber.Ctx, res domain.RecipeListResponse) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": res.Recipes,
		"pagination": fiber.Map{
			"page":        res.Page,
			"limit":       res.PageSize,
			"total":       res.Total,
			"total_pages": (res.Total + int64(res.PageSize) - 1) / int64(res.PageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetPublishedByID(c.Context(), recipeID)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

// GetRecipeDetailAdmin serves drafts too; routes mount it behind the admin
// gate.
func (h *recipeHandler) GetRecipeDetailAdmin(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetByID(c.Context(), recipeID)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) GetRecipeBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetPublishedBySlug(c.Context(), slug)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.Update(c.Context(), recipeID, *req)
	if err != nil {
		switch err {
		case domain.ErrRecipeNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, err)
		case domain.ErrRecipeSlugTaken:
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUpdateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.Delete(c.Context(), recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	q := c.Query("q", "")

	res, err := h.recipeService.Search(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": res,
		"total":   len(res),
	}, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) GetFeaturedRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetFeatured(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetTrendingRecipes(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	res, err := h.recipeService.GetTrending(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) SetPublished(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.SetPublishedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.SetPublished(c.Context(), recipeID, req.Published)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) SetFeatured(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.SetFeaturedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.SetFeatured(c.Context(), recipeID, req.Featured)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) SetTrending(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.SetTrendingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.SetTrending(c.Context(), recipeID, req.Trending)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}
