package comment

import (
	"Recipe-Hub/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		Create(ctx context.Context, comment *entities.Comment) error
		GetByID(ctx context.Context, id string) (*entities.Comment, error)
		Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Comment, error)
		Delete(ctx context.Context, id string) error
		ListByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error)
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Comment, error) {
	res := r.db.WithContext(ctx).Model(&entities.Comment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Comment{}).Error
}

func (r *commentRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at asc, id asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
