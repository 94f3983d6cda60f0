package category

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/query"
	"Recipe-Hub/internal/utils"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var listSpec = query.Spec{
	DefaultPageSize: 24,
	DefaultSort:     "name",
	DefaultDir:      query.SortAsc,
	SortColumns:     []string{"name", "slug", "created_at"},
}

type (
	CategoryService interface {
		Create(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		GetByID(ctx context.Context, id string) (domain.CategoryResponse, error)
		GetBySlug(ctx context.Context, slug string) (domain.CategoryResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error)
		Delete(ctx context.Context, id string) error
		ListPaginated(ctx context.Context, page, pageSize int, search, sortCol, sortDir string) (domain.CategoryListResponse, error)
		GetAll(ctx context.Context) ([]domain.CategoryResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) Create(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	if req.Slug == "" {
		req.Slug = utils.Slugify(req.Name)
	}
	if err := s.checkUnique(ctx, req.Name, req.Slug, uuid.Nil); err != nil {
		return domain.CategoryResponse{}, err
	}

	category := entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.categoryRepository.Create(ctx, &category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return toResponse(&category), nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toResponse(category), nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return domain.CategoryResponse{}, domain.ErrParseUUID
	}

	name, slug := "", ""
	if req.Name != nil {
		name = *req.Name
	}
	if req.Slug != nil {
		slug = *req.Slug
	}
	if err := s.checkUnique(ctx, name, slug, categoryID); err != nil {
		return domain.CategoryResponse{}, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}

	category, err := s.categoryRepository.Update(ctx, categoryID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.categoryRepository.Delete(ctx, id)
}

func (s *categoryService) ListPaginated(ctx context.Context, page, pageSize int, search, sortCol, sortDir string) (domain.CategoryListResponse, error) {
	req := listSpec.Normalize(query.PageRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
		Sort:     sortCol,
		SortDir:  sortDir,
	})
	filter := query.And{
		query.TextContains{Columns: []string{"name", "slug"}, Term: search},
	}

	categories, total, err := s.categoryRepository.ListPaginated(ctx, filter, req)
	if err != nil {
		return domain.CategoryListResponse{}, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toResponse(c))
	}
	return domain.CategoryListResponse{
		Categories: result,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toResponse(c))
	}
	return result, nil
}

// checkUnique rejects a name or slug already held by another category.
// Empty strings are skipped so partial updates only check what they change.
func (s *categoryService) checkUnique(ctx context.Context, name, slug string, self uuid.UUID) error {
	if name != "" {
		existing, err := s.categoryRepository.GetByName(ctx, name)
		if err == nil && existing.ID != self {
			return domain.ErrCategoryNameTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if slug != "" {
		existing, err := s.categoryRepository.GetBySlug(ctx, slug)
		if err == nil && existing.ID != self {
			return domain.ErrCategorySlugTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

func toResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ImageURL:    category.ImageURL,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
