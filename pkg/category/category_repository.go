package category

import (
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/query"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		Create(ctx context.Context, category *entities.Category) error
		GetByID(ctx context.Context, id string) (*entities.Category, error)
		GetBySlug(ctx context.Context, slug string) (*entities.Category, error)
		GetByName(ctx context.Context, name string) (*entities.Category, error)
		Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Category, error)
		Delete(ctx context.Context, id string) error
		ListPaginated(ctx context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Category, int64, error)
		GetAll(ctx context.Context) ([]*entities.Category, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Category, error) {
	res := r.db.WithContext(ctx).Model(&entities.Category{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete is idempotent. Join rows referencing the category cascade away; the
// recipes themselves stay.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Category{}).Error
}

func (r *categoryRepository) ListPaginated(ctx context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Category, int64, error) {
	var categories []*entities.Category
	total, err := query.Run(r.db.WithContext(ctx), &entities.Category{}, filter, req, &categories)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
