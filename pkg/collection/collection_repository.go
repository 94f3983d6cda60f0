package collection

import (
	"Recipe-Hub/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		Create(ctx context.Context, collection *entities.Collection) error
		GetByID(ctx context.Context, id string) (*entities.Collection, error)
		Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Collection, error)
		Delete(ctx context.Context, id string) error
		ListByUser(ctx context.Context, userID string) ([]*entities.Collection, error)

		SaveRecipe(ctx context.Context, saved *entities.SavedRecipe) error
		UnsaveRecipe(ctx context.Context, userID, recipeID string) error
		GetSavedRecipes(ctx context.Context, userID string) ([]*entities.SavedRecipe, error)
		IsSaved(ctx context.Context, userID, recipeID string) (bool, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) GetByID(ctx context.Context, id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Collection, error) {
	res := r.db.WithContext(ctx).Model(&entities.Collection{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var collection entities.Collection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Collection{}).Error
}

func (r *collectionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// SaveRecipe upserts on the (user, recipe) composite key: saving twice just
// moves the save between collections.
func (r *collectionRepository) SaveRecipe(ctx context.Context, saved *entities.SavedRecipe) error {
	var existing entities.SavedRecipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", saved.UserID, saved.RecipeID).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).
			Model(&entities.SavedRecipe{}).
			Where("user_id = ? AND recipe_id = ?", saved.UserID, saved.RecipeID).
			Update("collection_id", saved.CollectionID).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *collectionRepository) UnsaveRecipe(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.SavedRecipe{}).Error
}

func (r *collectionRepository) GetSavedRecipes(ctx context.Context, userID string) ([]*entities.SavedRecipe, error) {
	var saved []*entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at desc").
		Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *collectionRepository) IsSaved(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
