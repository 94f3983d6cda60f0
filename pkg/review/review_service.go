package review

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
	ReviewService interface {
		Create(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateReviewRequest) (domain.ReviewResponse, error)
		Delete(ctx context.Context, id string) error
		ListByRecipe(ctx context.Context, recipeID string) (domain.RecipeReviewsResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *reviewService) Create(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ReviewResponse{}, err
	}

	review := entities.Review{
		ID:       uuid.New(),
		RecipeID: uuid.MustParse(req.RecipeID),
		UserID:   user,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.reviewRepository.Create(ctx, &review); err != nil {
		return domain.ReviewResponse{}, err
	}
	return toResponse(&review), nil
}

func (s *reviewService) Update(ctx context.Context, id string, req domain.UpdateReviewRequest) (domain.ReviewResponse, error) {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	fields := map[string]interface{}{}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Comment != nil {
		fields["comment"] = *req.Comment
	}

	review, err := s.reviewRepository.Update(ctx, reviewID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrReviewNotFound
		}
		return domain.ReviewResponse{}, err
	}
	return toResponse(review), nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.reviewRepository.Delete(ctx, id)
}

func (s *reviewService) ListByRecipe(ctx context.Context, recipeID string) (domain.RecipeReviewsResponse, error) {
	reviews, err := s.reviewRepository.ListByRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeReviewsResponse{}, err
	}
	avg, err := s.reviewRepository.AverageRating(ctx, recipeID)
	if err != nil {
		return domain.RecipeReviewsResponse{}, err
	}

	result := make([]domain.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, toResponse(r))
	}
	return domain.RecipeReviewsResponse{
		Reviews:       result,
		Total:         len(result),
		AverageRating: avg,
	}, nil
}

func toResponse(review *entities.Review) domain.ReviewResponse {
	return domain.ReviewResponse{
		ID:        review.ID.String(),
		RecipeID:  review.RecipeID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
