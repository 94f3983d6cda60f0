package collection

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionService interface {
		Create(ctx context.Context, req domain.CreateCollectionRequest, userID string) (domain.CollectionResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateCollectionRequest) (domain.CollectionResponse, error)
		Delete(ctx context.Context, id string) error
		ListByUser(ctx context.Context, userID string) ([]domain.CollectionResponse, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error
		UnsaveRecipe(ctx context.Context, recipeID, userID string) error
		GetSavedRecipes(ctx context.Context, userID string) ([]domain.SavedRecipeResponse, error)
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *collectionService) Create(ctx context.Context, req domain.CreateCollectionRequest, userID string) (domain.CollectionResponse, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return domain.CollectionResponse{}, domain.ErrParseUUID
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	collection := entities.Collection{
		ID:          uuid.New(),
		UserID:      user,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    isPublic,
	}
	if err := s.collectionRepository.Create(ctx, &collection); err != nil {
		return domain.CollectionResponse{}, err
	}
	return toResponse(&collection), nil
}

func (s *collectionService) Update(ctx context.Context, id string, req domain.UpdateCollectionRequest) (domain.CollectionResponse, error) {
	collectionID, err := uuid.Parse(id)
	if err != nil {
		return domain.CollectionResponse{}, domain.ErrParseUUID
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}

	collection, err := s.collectionRepository.Update(ctx, collectionID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CollectionResponse{}, domain.ErrCollectionNotFound
		}
		return domain.CollectionResponse{}, err
	}
	return toResponse(collection), nil
}

func (s *collectionService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.collectionRepository.Delete(ctx, id)
}

func (s *collectionService) ListByUser(ctx context.Context, userID string) ([]domain.CollectionResponse, error) {
	collections, err := s.collectionRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.CollectionResponse, 0, len(collections))
	for _, c := range collections {
		result = append(result, toResponse(c))
	}
	return result, nil
}

func (s *collectionService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) error {
	user, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	var collectionID *uuid.UUID
	if req.CollectionID != "" {
		collection, err := s.collectionRepository.GetByID(ctx, req.CollectionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCollectionNotFound
			}
			return err
		}
		collectionID = &collection.ID
	}

	saved := entities.SavedRecipe{
		UserID:       user,
		RecipeID:     uuid.MustParse(req.RecipeID),
		CollectionID: collectionID,
	}
	return s.collectionRepository.SaveRecipe(ctx, &saved)
}

func (s *collectionService) UnsaveRecipe(ctx context.Context, recipeID, userID string) error {
	return s.collectionRepository.UnsaveRecipe(ctx, userID, recipeID)
}

func (s *collectionService) GetSavedRecipes(ctx context.Context, userID string) ([]domain.SavedRecipeResponse, error) {
	saved, err := s.collectionRepository.GetSavedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SavedRecipeResponse, 0, len(saved))
	for _, sr := range saved {
		res := domain.SavedRecipeResponse{
			RecipeID: sr.RecipeID.String(),
			SavedAt:  sr.SavedAt,
		}
		if sr.CollectionID != nil {
			res.CollectionID = sr.CollectionID.String()
		}
		result = append(result, res)
	}
	return result, nil
}

func toResponse(collection *entities.Collection) domain.CollectionResponse {
	return domain.CollectionResponse{
		ID:          collection.ID.String(),
		UserID:      collection.UserID.String(),
		Name:        collection.Name,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		CreatedAt:   collection.CreatedAt,
		UpdatedAt:   collection.UpdatedAt,
	}
}
