package comment

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
	CommentService interface {
		Create(ctx context.Context, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateCommentRequest) (domain.CommentResponse, error)
		Delete(ctx context.Context, id string) error
		ListByRecipe(ctx context.Context, recipeID string) ([]domain.CommentResponse, error)
	}

	commentService struct {
		commentRepository CommentRepository
		recipeRepository  recipe.RecipeRepository
	}
)

func NewCommentService(commentRepository CommentRepository, recipeRepository recipe.RecipeRepository) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		recipeRepository:  recipeRepository,
	}
}

func (s *commentService) Create(ctx context.Context, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentResponse{}, err
	}

	// Threading: the parent must exist and belong to the same recipe. Depth
	// is unbounded; a fresh comment can never introduce a cycle because it
	// has no children yet.
	var parentID *uuid.UUID
	if req.ParentID != "" {
		parent, err := s.commentRepository.GetByID(ctx, req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CommentResponse{}, domain.ErrCommentNotFound
			}
			return domain.CommentResponse{}, err
		}
		if parent.RecipeID.String() != req.RecipeID {
			return domain.CommentResponse{}, domain.ErrCommentParentInvalid
		}
		parentID = &parent.ID
	}

	comment := entities.Comment{
		ID:       uuid.New(),
		RecipeID: uuid.MustParse(req.RecipeID),
		UserID:   user,
		Content:  req.Content,
		ParentID: parentID,
	}
	if err := s.commentRepository.Create(ctx, &comment); err != nil {
		return domain.CommentResponse{}, err
	}
	return toResponse(&comment), nil
}

func (s *commentService) Update(ctx context.Context, id string, req domain.UpdateCommentRequest) (domain.CommentResponse, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	fields := map[string]interface{}{}
	if req.Content != nil {
		fields["content"] = *req.Content
	}

	comment, err := s.commentRepository.Update(ctx, commentID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrCommentNotFound
		}
		return domain.CommentResponse{}, err
	}
	return toResponse(comment), nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.commentRepository.Delete(ctx, id)
}

func (s *commentService) ListByRecipe(ctx context.Context, recipeID string) ([]domain.CommentResponse, error) {
	comments, err := s.commentRepository.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, toResponse(c))
	}
	return result, nil
}

func toResponse(comment *entities.Comment) domain.CommentResponse {
	res := domain.CommentResponse{
		ID:        comment.ID.String(),
		RecipeID:  comment.RecipeID.String(),
		UserID:    comment.UserID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.ParentID != nil {
		res.ParentID = comment.ParentID.String()
	}
	return res
}
