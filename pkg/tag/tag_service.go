package tag

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
	TagService interface {
		Create(ctx context.Context, req domain.CreateTagRequest) (domain.TagResponse, error)
		GetByID(ctx context.Context, id string) (domain.TagResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateTagRequest) (domain.TagResponse, error)
		Delete(ctx context.Context, id string) error
		ListPaginated(ctx context.Context, page, pageSize int, search, sortCol, sortDir string) (domain.TagListResponse, error)
		GetAll(ctx context.Context) ([]domain.TagResponse, error)
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) Create(ctx context.Context, req domain.CreateTagRequest) (domain.TagResponse, error) {
	if req.Slug == "" {
		req.Slug = utils.Slugify(req.Name)
	}
	if err := s.checkUnique(ctx, req.Name, req.Slug, uuid.Nil); err != nil {
		return domain.TagResponse{}, err
	}

	tag := entities.Tag{
		ID:   uuid.New(),
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.tagRepository.Create(ctx, &tag); err != nil {
		return domain.TagResponse{}, err
	}
	return toResponse(&tag), nil
}

func (s *tagService) GetByID(ctx context.Context, id string) (domain.TagResponse, error) {
	tag, err := s.tagRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}
	return toResponse(tag), nil
}

func (s *tagService) Update(ctx context.Context, id string, req domain.UpdateTagRequest) (domain.TagResponse, error) {
	tagID, err := uuid.Parse(id)
	if err != nil {
		return domain.TagResponse{}, domain.ErrParseUUID
	}

	name, slug := "", ""
	if req.Name != nil {
		name = *req.Name
	}
	if req.Slug != nil {
		slug = *req.Slug
	}
	if err := s.checkUnique(ctx, name, slug, tagID); err != nil {
		return domain.TagResponse{}, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}

	tag, err := s.tagRepository.Update(ctx, tagID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}
	return toResponse(tag), nil
}

func (s *tagService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.tagRepository.Delete(ctx, id)
}

func (s *tagService) ListPaginated(ctx context.Context, page, pageSize int, search, sortCol, sortDir string) (domain.TagListResponse, error) {
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

	tags, total, err := s.tagRepository.ListPaginated(ctx, filter, req)
	if err != nil {
		return domain.TagListResponse{}, err
	}

	result := make([]domain.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, toResponse(t))
	}
	return domain.TagListResponse{
		Tags:     result,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (s *tagService) GetAll(ctx context.Context) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, toResponse(t))
	}
	return result, nil
}

func (s *tagService) checkUnique(ctx context.Context, name, slug string, self uuid.UUID) error {
	if name != "" {
		existing, err := s.tagRepository.GetByName(ctx, name)
		if err == nil && existing.ID != self {
			return domain.ErrTagNameTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if slug != "" {
		existing, err := s.tagRepository.GetBySlug(ctx, slug)
		if err == nil && existing.ID != self {
			return domain.ErrTagSlugTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

func toResponse(tag *entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:        tag.ID.String(),
		Name:      tag.Name,
		Slug:      tag.Slug,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
