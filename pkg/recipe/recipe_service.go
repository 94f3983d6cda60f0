package recipe

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/query"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	searchResultLimit = 8
	featuredLimit     = 6
)

// listSpec holds the recipe listing defaults and sort allow-list.
var listSpec = query.Spec{
	DefaultPageSize: 12,
	DefaultSort:     "created_at",
	DefaultDir:      query.SortDesc,
	SortColumns:     []string{"created_at", "title"},
}

type (
	RecipeService interface {
		Create(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error)
		GetByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		GetBySlug(ctx context.Context, slug string) (domain.RecipeResponse, error)
		GetPublishedByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		GetPublishedBySlug(ctx context.Context, slug string) (domain.RecipeResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		Delete(ctx context.Context, id string) error
		ListPaginated(ctx context.Context, req domain.ListRecipesRequest) (domain.RecipeListResponse, error)
		ListPublished(ctx context.Context, req domain.ListRecipesRequest) (domain.RecipeListResponse, error)
		Search(ctx context.Context, q string) ([]domain.RecipeSummary, error)
		GetFeatured(ctx context.Context) ([]domain.RecipeResponse, error)
		GetTrending(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		SetPublished(ctx context.Context, id string, published bool) (domain.RecipeResponse, error)
		SetFeatured(ctx context.Context, id string, featured bool) (domain.RecipeResponse, error)
		SetTrending(ctx context.Context, id string, trending bool) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) Create(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	author, err := uuid.Parse(authorID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetBySlug(ctx, req.Slug); err == nil {
		return domain.RecipeResponse{}, domain.ErrRecipeSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecipeResponse{}, err
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	tagIDs, err := parseUUIDs(req.TagIDs)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := entities.Recipe{
		ID:               uuid.New(),
		AuthorID:         author,
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		PrepTimeMinutes:  req.PrepTimeMinutes,
		CookTimeMinutes:  req.CookTimeMinutes,
		TotalTimeMinutes: req.TotalTimeMinutes,
		Servings:         req.Servings,
		DifficultyLevel:  req.DifficultyLevel,
		Images:           mustJSON(req.Images),
		Ingredients:      mustJSON(req.Ingredients),
		Steps:            mustJSON(req.Steps),
		Instructions:     req.Instructions,
		Notes:            req.Notes,
	}

	if err := s.recipeRepository.Create(ctx, &recipe, categoryIDs, tagIDs); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toDetailResponse(ctx, &recipe)
}

func (s *recipeService) GetByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.toDetailResponse(ctx, recipe)
}

func (s *recipeService) GetBySlug(ctx context.Context, slug string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.toDetailResponse(ctx, recipe)
}

// GetPublishedByID is the catalog-facing lookup: drafts are indistinguishable
// from missing recipes.
func (s *recipeService) GetPublishedByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	res, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if !res.Published {
		return domain.RecipeResponse{}, domain.ErrRecipeNotFound
	}
	return res, nil
}

func (s *recipeService) GetPublishedBySlug(ctx context.Context, slug string) (domain.RecipeResponse, error) {
	res, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if !res.Published {
		return domain.RecipeResponse{}, domain.ErrRecipeNotFound
	}
	return res, nil
}

func (s *recipeService) Update(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	if req.Slug != nil {
		existing, err := s.recipeRepository.GetBySlug(ctx, *req.Slug)
		if err == nil && existing.ID != recipeID {
			return domain.RecipeResponse{}, domain.ErrRecipeSlugTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, err
		}
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.PrepTimeMinutes != nil {
		fields["prep_time_minutes"] = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		fields["cook_time_minutes"] = *req.CookTimeMinutes
	}
	if req.TotalTimeMinutes != nil {
		fields["total_time_minutes"] = *req.TotalTimeMinutes
	}
	if req.Servings != nil {
		fields["servings"] = *req.Servings
	}
	if req.DifficultyLevel != nil {
		fields["difficulty_level"] = *req.DifficultyLevel
	}
	if req.Images != nil {
		fields["images"] = mustJSON(req.Images)
	}
	if req.Ingredients != nil {
		fields["ingredients"] = mustJSON(req.Ingredients)
	}
	if req.Steps != nil {
		fields["steps"] = mustJSON(req.Steps)
	}
	if req.Instructions != nil {
		fields["instructions"] = *req.Instructions
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	touchCategories := req.CategoryIDs != nil
	touchTags := req.TagIDs != nil
	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	tagIDs, err := parseUUIDs(req.TagIDs)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	updated, err := s.recipeRepository.Update(ctx, recipeID, fields, categoryIDs, tagIDs, touchCategories, touchTags)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return s.toDetailResponse(ctx, updated)
}

func (s *recipeService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.recipeRepository.Delete(ctx, id)
}

func (s *recipeService) ListPaginated(ctx context.Context, req domain.ListRecipesRequest) (domain.RecipeListResponse, error) {
	pageReq := listSpec.Normalize(query.PageRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Sort:     req.Sort,
		SortDir:  req.SortDir,
	})

	filter := buildListFilter(req.Search, req.Filter)
	recipes, total, err := s.recipeRepository.ListPaginated(ctx, filter, pageReq)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toResponse(r))
	}
	return domain.RecipeListResponse{
		Recipes:  result,
		Total:    total,
		Page:     pageReq.Page,
		PageSize: pageReq.PageSize,
	}, nil
}

// ListPublished serves the public catalog: whatever status filter the request
// carries, only published recipes come back.
func (s *recipeService) ListPublished(ctx context.Context, req domain.ListRecipesRequest) (domain.RecipeListResponse, error) {
	req.Filter = domain.RecipeFilterPublished
	return s.ListPaginated(ctx, req)
}

// buildListFilter translates the search term and status filter into the
// closed predicate set understood by the query layer. Unknown filter values
// behave like "all".
func buildListFilter(search, filter string) query.Filter {
	parts := query.And{
		query.TextContains{Columns: []string{"title", "slug"}, Term: search},
	}
	switch filter {
	case domain.RecipeFilterPublished:
		parts = append(parts, query.BoolEquals{Column: "published", Value: true})
	case domain.RecipeFilterDraft:
		parts = append(parts, query.BoolEquals{Column: "published", Value: false})
	case domain.RecipeFilterFeatured:
		parts = append(parts, query.BoolEquals{Column: "featured", Value: true})
	}
	return parts
}

func (s *recipeService) Search(ctx context.Context, q string) ([]domain.RecipeSummary, error) {
	if q == "" {
		return []domain.RecipeSummary{}, nil
	}
	recipes, err := s.recipeRepository.Search(ctx, q, searchResultLimit)
	if err != nil {
		return nil, err
	}
	result := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, domain.RecipeSummary{
			ID:          r.ID.String(),
			Title:       r.Title,
			Slug:        r.Slug,
			Description: r.Description,
		})
	}
	return result, nil
}

func (s *recipeService) GetFeatured(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	return toResponses(recipes), nil
}

// GetTrending falls back to the most-saved published recipes when nothing is
// flagged trending, so the homepage grid never renders empty.
func (s *recipeService) GetTrending(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetTrending(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		recipes, err = s.recipeRepository.GetMostSaved(ctx, limit)
		if err != nil {
			return nil, err
		}
	}
	return toResponses(recipes), nil
}

func (s *recipeService) SetPublished(ctx context.Context, id string, published bool) (domain.RecipeResponse, error) {
	fields := map[string]interface{}{"published": published}
	if published {
		fields["published_at"] = time.Now()
	} else {
		fields["published_at"] = nil
	}
	return s.setFlag(ctx, id, fields)
}

func (s *recipeService) SetFeatured(ctx context.Context, id string, featured bool) (domain.RecipeResponse, error) {
	return s.setFlag(ctx, id, map[string]interface{}{"featured": featured})
}

func (s *recipeService) SetTrending(ctx context.Context, id string, trending bool) (domain.RecipeResponse, error) {
	return s.setFlag(ctx, id, map[string]interface{}{"trending": trending})
}

func (s *recipeService) setFlag(ctx context.Context, id string, fields map[string]interface{}) (domain.RecipeResponse, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}
	recipe, err := s.recipeRepository.SetFlag(ctx, recipeID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toResponse(recipe), nil
}

// toDetailResponse includes the category/tag links; list mappings skip them.
func (s *recipeService) toDetailResponse(ctx context.Context, recipe *entities.Recipe) (domain.RecipeResponse, error) {
	res := toResponse(recipe)

	categoryIDs, err := s.recipeRepository.GetCategoryIDs(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	tagIDs, err := s.recipeRepository.GetTagIDs(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	res.CategoryIDs = formatUUIDs(categoryIDs)
	res.TagIDs = formatUUIDs(tagIDs)
	return res, nil
}

func toResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toResponse(r))
	}
	return result
}

func toResponse(recipe *entities.Recipe) domain.RecipeResponse {
	var images []string
	_ = json.Unmarshal(recipe.Images, &images)
	var ingredients []domain.IngredientRequest
	_ = json.Unmarshal(recipe.Ingredients, &ingredients)
	var steps []domain.StepRequest
	_ = json.Unmarshal(recipe.Steps, &steps)

	// Steps render in ascending order regardless of stored order.
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		AuthorID:         recipe.AuthorID.String(),
		Title:            recipe.Title,
		Slug:             recipe.Slug,
		Description:      recipe.Description,
		PrepTimeMinutes:  recipe.PrepTimeMinutes,
		CookTimeMinutes:  recipe.CookTimeMinutes,
		TotalTimeMinutes: recipe.TotalTimeMinutes,
		Servings:         recipe.Servings,
		DifficultyLevel:  recipe.DifficultyLevel,
		Featured:         recipe.Featured,
		Trending:         recipe.Trending,
		Published:        recipe.Published,
		PublishedAt:      recipe.PublishedAt,
		Images:           images,
		Ingredients:      ingredients,
		Steps:            steps,
		Instructions:     recipe.Instructions,
		Notes:            recipe.Notes,
		CreatedAt:        recipe.CreatedAt,
		UpdatedAt:        recipe.UpdatedAt,
	}
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		// Absent lists default to empty, matching the input normalization.
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func parseUUIDs(ids []string) ([]uuid.UUID, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		parsed = append(parsed, u)
	}
	return parsed, nil
}

func formatUUIDs(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
