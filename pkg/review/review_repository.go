package review

import (
	"Recipe-Hub/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		Create(ctx context.Context, review *entities.Review) error
		GetByID(ctx context.Context, id string) (*entities.Review, error)
		Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Review, error)
		Delete(ctx context.Context, id string) error
		ListByRecipe(ctx context.Context, recipeID string) ([]*entities.Review, error)
		AverageRating(ctx context.Context, recipeID string) (float64, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Review, error) {
	res := r.db.WithContext(ctx).Model(&entities.Review{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Review{}).Error
}

func (r *reviewRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at desc, id desc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, recipeID string) (float64, error) {
	var avg *float64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("recipe_id = ?", recipeID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
