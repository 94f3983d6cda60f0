package tag

import (
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/query"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TagRepository interface {
		Create(ctx context.Context, tag *entities.Tag) error
		GetByID(ctx context.Context, id string) (*entities.Tag, error)
		GetBySlug(ctx context.Context, slug string) (*entities.Tag, error)
		GetByName(ctx context.Context, name string) (*entities.Tag, error)
		Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Tag, error)
		Delete(ctx context.Context, id string) error
		ListPaginated(ctx context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Tag, int64, error)
		GetAll(ctx context.Context) ([]*entities.Tag, error)
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Tag, error) {
	res := r.db.WithContext(ctx).Model(&entities.Tag{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var tag entities.Tag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Tag{}).Error
}

func (r *tagRepository) ListPaginated(ctx context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Tag, int64, error) {
	var tags []*entities.Tag
	total, err := query.Run(r.db.WithContext(ctx), &entities.Tag{}, filter, req, &tags)
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Order("name asc, id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
