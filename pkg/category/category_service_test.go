package category

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/query"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entities.Category

	lastFilter query.Filter
	lastPage   query.PageRequest
}

func newFakeRepo() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: map[uuid.UUID]*entities.Category{}}
}

func (f *fakeCategoryRepository) Create(_ context.Context, category *entities.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepository) GetByID(_ context.Context, id string) (*entities.Category, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	c, ok := f.categories[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepository) GetBySlug(_ context.Context, slug string) (*entities.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepository) GetByName(_ context.Context, name string) (*entities.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepository) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "slug":
			c.Slug = v.(string)
		case "description":
			c.Description = v.(string)
		case "image_url":
			c.ImageURL = v.(string)
		}
	}
	return c, nil
}

func (f *fakeCategoryRepository) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(f.categories, parsed)
	return nil
}

func (f *fakeCategoryRepository) ListPaginated(_ context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Category, int64, error) {
	f.lastFilter = filter
	f.lastPage = req
	out := make([]*entities.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCategoryRepository) GetAll(_ context.Context) ([]*entities.Category, error) {
	out := make([]*entities.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func TestCreateAndGet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	res, err := svc.Create(context.Background(), domain.CreateCategoryRequest{
		Name: "Desserts",
		Slug: "desserts",
	})
	require.NoError(t, err)
	assert.Equal(t, "Desserts", res.Name)

	got, err := svc.GetBySlug(context.Background(), "desserts")
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
}

func TestCreateDerivesSlugFromName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	res, err := svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Quick Dinners"})
	require.NoError(t, err)
	assert.Equal(t, "quick-dinners", res.Slug)

	got, err := svc.GetBySlug(context.Background(), "quick-dinners")
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)

	// the derived slug still goes through the uniqueness check
	_, err = svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Quick dinners"})
	assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)
}

func TestCreateRejectsDuplicates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Desserts", Slug: "desserts"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Desserts", Slug: "other"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)

	_, err = svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Other", Slug: "desserts"})
	assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)
}

func TestUpdateKeepsOwnNameAndSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Desserts", Slug: "desserts"})
	require.NoError(t, err)

	name, slug := "Desserts", "desserts"
	_, err = svc.Update(context.Background(), created.ID, domain.UpdateCategoryRequest{Name: &name, Slug: &slug})
	assert.NoError(t, err)
}

func TestUpdateConflictsWithOtherCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Desserts", Slug: "desserts"})
	require.NoError(t, err)
	other, err := svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "Mains", Slug: "mains"})
	require.NoError(t, err)

	name := "Desserts"
	_, err = svc.Update(context.Background(), other.ID, domain.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewCategoryService(newFakeRepo())
	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestListPaginatedDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	res, err := svc.ListPaginated(context.Background(), 0, 0, "", "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastPage.Page)
	assert.Equal(t, 24, repo.lastPage.PageSize)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 24, res.PageSize)
	assert.Equal(t, "name", repo.lastPage.Sort)
	assert.Equal(t, query.SortAsc, repo.lastPage.SortDir)

	_, err = svc.ListPaginated(context.Background(), 2, 10, "cake", "created_at", query.SortDesc)
	require.NoError(t, err)
	assert.Equal(t, "created_at", repo.lastPage.Sort)
	assert.Equal(t, query.SortDesc, repo.lastPage.SortDir)
	assert.Equal(t, query.And{
		query.TextContains{Columns: []string{"name", "slug"}, Term: "cake"},
	}, repo.lastFilter)
}

func TestDeleteBadID(t *testing.T) {
	svc := NewCategoryService(newFakeRepo())
	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), domain.ErrParseUUID)
}
