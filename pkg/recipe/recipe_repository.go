package recipe

import (
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/query"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		Create(ctx context.Context, recipe *entities.Recipe, categoryIDs, tagIDs []uuid.UUID) error
		GetByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, categoryIDs, tagIDs []uuid.UUID, touchCategories, touchTags bool) (*entities.Recipe, error)
		Delete(ctx context.Context, id string) error
		ListPaginated(ctx context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Recipe, int64, error)
		Search(ctx context.Context, term string, limit int) ([]*entities.Recipe, error)
		GetFeatured(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetTrending(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetMostSaved(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetCategoryIDs(ctx context.Context, recipeID uuid.UUID) ([]uuid.UUID, error)
		GetTagIDs(ctx context.Context, recipeID uuid.UUID) ([]uuid.UUID, error)
		SetFlag(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts the recipe row and its category/tag join rows in one
// transaction, so a failure mid-way leaves nothing behind.
func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe, categoryIDs, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return insertJoins(tx, recipe.ID, categoryIDs, tagIDs)
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update merges only the provided fields and, when asked, reconciles the
// category/tag join rows to the supplied id lists (delete then reinsert).
// Row update and reconciliation share one transaction.
func (r *recipeRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, categoryIDs, tagIDs []uuid.UUID, touchCategories, touchTags bool) (*entities.Recipe, error) {
	var updated entities.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			res := tx.Model(&entities.Recipe{}).Where("id = ?", id).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if touchCategories {
			if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeCategory{}).Error; err != nil {
				return err
			}
		}
		if touchTags {
			if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeTag{}).Error; err != nil {
				return err
			}
		}
		if err := insertJoins(tx, id, categoryIDs, tagIDs); err != nil {
			return err
		}

		return tx.Where("id = ?", id).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete is idempotent; dependent rows go away through the declared cascades.
func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) ListPaginated(ctx context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	total, err := query.Run(r.db.WithContext(ctx), &entities.Recipe{}, filter, req, &recipes)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *recipeRepository) Search(ctx context.Context, term string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	pattern := "%" + term + "%"
	match := r.db.Session(&gorm.Session{NewDB: true}).
		Where("title ILIKE ?", pattern).
		Or("description ILIKE ?", pattern)
	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Where(match).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetFeatured(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	return r.flagged(ctx, "featured", limit)
}

func (r *recipeRepository) GetTrending(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	return r.flagged(ctx, "trending", limit)
}

func (r *recipeRepository) flagged(ctx context.Context, column string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where(column+" = ? AND published = ?", true, true).
		Order("published_at desc, id desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetMostSaved(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN saved_recipes ON recipes.id = saved_recipes.recipe_id").
		Where("recipes.published = ?", true).
		Group("recipes.id").
		Order("COUNT(saved_recipes.recipe_id) DESC, recipes.id DESC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetCategoryIDs(ctx context.Context, recipeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCategory{}).
		Where("recipe_id = ?", recipeID).
		Pluck("category_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *recipeRepository) GetTagIDs(ctx context.Context, recipeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeTag{}).
		Where("recipe_id = ?", recipeID).
		Pluck("tag_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// SetFlag updates curation/publication flags and returns the fresh row.
func (r *recipeRepository) SetFlag(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Recipe, error) {
	res := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func insertJoins(tx *gorm.DB, recipeID uuid.UUID, categoryIDs, tagIDs []uuid.UUID) error {
	for _, cid := range categoryIDs {
		if err := tx.Create(&entities.RecipeCategory{RecipeID: recipeID, CategoryID: cid}).Error; err != nil {
			return err
		}
	}
	for _, tid := range tagIDs {
		if err := tx.Create(&entities.RecipeTag{RecipeID: recipeID, TagID: tid}).Error; err != nil {
			return err
		}
	}
	return nil
}
