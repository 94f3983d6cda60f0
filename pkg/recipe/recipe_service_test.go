package recipe

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/query"
	"context"
	"time"

	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRecipeRepository keeps everything in memory so service behavior can be
// exercised without a database. Listing records the filter and page request it
// was called with instead of evaluating them.
type fakeRecipeRepository struct {
	recipes    map[uuid.UUID]*entities.Recipe
	categories map[uuid.UUID][]uuid.UUID
	tags       map[uuid.UUID][]uuid.UUID

	lastFilter query.Filter
	lastPage   query.PageRequest

	trending  []*entities.Recipe
	mostSaved []*entities.Recipe
}

func newFakeRepo() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes:    map[uuid.UUID]*entities.Recipe{},
		categories: map[uuid.UUID][]uuid.UUID{},
		tags:       map[uuid.UUID][]uuid.UUID{},
	}
}

func (f *fakeRecipeRepository) Create(_ context.Context, recipe *entities.Recipe, categoryIDs, tagIDs []uuid.UUID) error {
	f.recipes[recipe.ID] = recipe
	f.categories[recipe.ID] = categoryIDs
	f.tags[recipe.ID] = tagIDs
	return nil
}

func (f *fakeRecipeRepository) GetByID(_ context.Context, id string) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := f.recipes[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecipeRepository) GetBySlug(_ context.Context, slug string) (*entities.Recipe, error) {
	for _, r := range f.recipes {
		if r.Slug == slug {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepository) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}, categoryIDs, tagIDs []uuid.UUID, touchCategories, touchTags bool) (*entities.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	applyFields(r, fields)
	if touchCategories {
		f.categories[id] = categoryIDs
	}
	if touchTags {
		f.tags[id] = tagIDs
	}
	return r, nil
}

func (f *fakeRecipeRepository) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(f.recipes, parsed)
	return nil
}

func (f *fakeRecipeRepository) ListPaginated(_ context.Context, filter query.Filter, req query.PageRequest) ([]*entities.Recipe, int64, error) {
	f.lastFilter = filter
	f.lastPage = req
	out := make([]*entities.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecipeRepository) Search(_ context.Context, term string, limit int) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.Published && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetFeatured(_ context.Context, limit int) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.Featured && r.Published && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetTrending(_ context.Context, _ int) ([]*entities.Recipe, error) {
	return f.trending, nil
}

func (f *fakeRecipeRepository) GetMostSaved(_ context.Context, _ int) ([]*entities.Recipe, error) {
	return f.mostSaved, nil
}

func (f *fakeRecipeRepository) GetCategoryIDs(_ context.Context, recipeID uuid.UUID) ([]uuid.UUID, error) {
	return f.categories[recipeID], nil
}

func (f *fakeRecipeRepository) GetTagIDs(_ context.Context, recipeID uuid.UUID) ([]uuid.UUID, error) {
	return f.tags[recipeID], nil
}

func (f *fakeRecipeRepository) SetFlag(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	applyFields(r, fields)
	return r, nil
}

func applyFields(r *entities.Recipe, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "title":
			r.Title = v.(string)
		case "slug":
			r.Slug = v.(string)
		case "description":
			r.Description = v.(string)
		case "published":
			r.Published = v.(bool)
		case "featured":
			r.Featured = v.(bool)
		case "trending":
			r.Trending = v.(bool)
		case "published_at":
			if v == nil {
				r.PublishedAt = nil
			} else {
				ts := v.(time.Time)
				r.PublishedAt = &ts
			}
		}
	}
}

func newServiceWithRepo() (RecipeService, *fakeRecipeRepository) {
	repo := newFakeRepo()
	return NewRecipeService(repo), repo
}

func TestCreateRoundTrip(t *testing.T) {
	svc, _ := newServiceWithRepo()
	author := uuid.New().String()
	categoryID := uuid.New().String()

	req := domain.CreateRecipeRequest{
		Title:       "Chicken Curry",
		Slug:        "chicken-curry",
		Description: "weeknight staple",
		Servings:    4,
		Images:      []string{"https://cdn.example.com/curry.jpg"},
		Ingredients: []domain.IngredientRequest{
			{Name: "chicken thighs", Quantity: "500", Unit: "g"},
		},
		Steps: []domain.StepRequest{
			{Order: 2, Description: "simmer"},
			{Order: 1, Description: "brown the chicken"},
		},
		CategoryIDs: []string{categoryID},
	}

	res, err := svc.Create(context.Background(), req, author)
	require.NoError(t, err)

	assert.Equal(t, "Chicken Curry", res.Title)
	assert.Equal(t, "chicken-curry", res.Slug)
	assert.Equal(t, author, res.AuthorID)
	assert.Equal(t, []string{"https://cdn.example.com/curry.jpg"}, res.Images)
	assert.Equal(t, []string{categoryID}, res.CategoryIDs)
	assert.Empty(t, res.TagIDs)
	assert.False(t, res.Published)
	assert.Nil(t, res.PublishedAt)

	// steps come back sorted by order regardless of input order
	require.Len(t, res.Steps, 2)
	assert.Equal(t, "brown the chicken", res.Steps[0].Description)
	assert.Equal(t, "simmer", res.Steps[1].Description)

	got, err := svc.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Slug, got.Slug)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newServiceWithRepo()
	author := uuid.New().String()

	_, err := svc.Create(context.Background(), domain.CreateRecipeRequest{Title: "A", Slug: "same-slug"}, author)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateRecipeRequest{Title: "B", Slug: "same-slug"}, author)
	assert.ErrorIs(t, err, domain.ErrRecipeSlugTaken)
}

func TestCreateRejectsBadAuthorID(t *testing.T) {
	svc, _ := newServiceWithRepo()
	_, err := svc.Create(context.Background(), domain.CreateRecipeRequest{Title: "A", Slug: "a"}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newServiceWithRepo()
	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateSlugConflict(t *testing.T) {
	svc, _ := newServiceWithRepo()
	author := uuid.New().String()

	first, err := svc.Create(context.Background(), domain.CreateRecipeRequest{Title: "A", Slug: "slug-a"}, author)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), domain.CreateRecipeRequest{Title: "B", Slug: "slug-b"}, author)
	require.NoError(t, err)

	taken := "slug-a"
	_, err = svc.Update(context.Background(), second.ID, domain.UpdateRecipeRequest{Slug: &taken})
	assert.ErrorIs(t, err, domain.ErrRecipeSlugTaken)

	// re-submitting a recipe's own slug is not a conflict
	own := "slug-a"
	_, err = svc.Update(context.Background(), first.ID, domain.UpdateRecipeRequest{Slug: &own})
	assert.NoError(t, err)
}

func TestUpdateLeavesAbsentListsUntouched(t *testing.T) {
	svc, repo := newServiceWithRepo()
	author := uuid.New().String()
	categoryID := uuid.New().String()

	created, err := svc.Create(context.Background(), domain.CreateRecipeRequest{
		Title:       "A",
		Slug:        "slug-a",
		CategoryIDs: []string{categoryID},
	}, author)
	require.NoError(t, err)

	title := "Renamed"
	res, err := svc.Update(context.Background(), created.ID, domain.UpdateRecipeRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", res.Title)
	assert.Equal(t, []string{categoryID}, res.CategoryIDs)

	// an explicit empty list clears the links
	res, err = svc.Update(context.Background(), created.ID, domain.UpdateRecipeRequest{CategoryIDs: []string{}})
	require.NoError(t, err)
	assert.Empty(t, res.CategoryIDs)
	assert.Empty(t, repo.categories[uuid.MustParse(created.ID)])
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newServiceWithRepo()
	title := "x"
	_, err := svc.Update(context.Background(), uuid.New().String(), domain.UpdateRecipeRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestListPaginatedNormalizesRequest(t *testing.T) {
	svc, repo := newServiceWithRepo()

	_, err := svc.ListPaginated(context.Background(), domain.ListRecipesRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastPage.Page)
	assert.Equal(t, 12, repo.lastPage.PageSize)
	assert.Equal(t, "created_at", repo.lastPage.Sort)
	assert.Equal(t, query.SortDesc, repo.lastPage.SortDir)

	_, err = svc.ListPaginated(context.Background(), domain.ListRecipesRequest{Sort: "password", SortDir: "up"})
	require.NoError(t, err)
	assert.Equal(t, "created_at", repo.lastPage.Sort)
	assert.Equal(t, query.SortDesc, repo.lastPage.SortDir)
}

func TestListPaginatedEchoesNormalizedPage(t *testing.T) {
	svc, _ := newServiceWithRepo()

	res, err := svc.ListPaginated(context.Background(), domain.ListRecipesRequest{Page: -3, PageSize: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 12, res.PageSize)
}

func TestListPublishedForcesPublishedPredicate(t *testing.T) {
	svc, repo := newServiceWithRepo()

	// the caller-supplied filter must not widen the listing
	for _, filter := range []string{domain.RecipeFilterAll, domain.RecipeFilterDraft, ""} {
		_, err := svc.ListPublished(context.Background(), domain.ListRecipesRequest{Filter: filter})
		require.NoError(t, err)

		and, ok := repo.lastFilter.(query.And)
		require.True(t, ok)
		assert.Contains(t, and, query.BoolEquals{Column: "published", Value: true})
		assert.NotContains(t, and, query.BoolEquals{Column: "published", Value: false})
	}
}

func TestGetPublishedHidesDrafts(t *testing.T) {
	svc, _ := newServiceWithRepo()
	author := uuid.New().String()

	created, err := svc.Create(context.Background(), domain.CreateRecipeRequest{Title: "A", Slug: "slug-a"}, author)
	require.NoError(t, err)

	_, err = svc.GetPublishedByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	_, err = svc.GetPublishedBySlug(context.Background(), created.Slug)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = svc.SetPublished(context.Background(), created.ID, true)
	require.NoError(t, err)

	got, err := svc.GetPublishedByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	got, err = svc.GetPublishedBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.Slug, got.Slug)
}

func TestBuildListFilter(t *testing.T) {
	tests := []struct {
		name   string
		search string
		filter string
		want   query.Filter
	}{
		{
			name:   "all has only the text predicate",
			filter: domain.RecipeFilterAll,
			want: query.And{
				query.TextContains{Columns: []string{"title", "slug"}, Term: ""},
			},
		},
		{
			name:   "published adds bool predicate",
			search: "curry",
			filter: domain.RecipeFilterPublished,
			want: query.And{
				query.TextContains{Columns: []string{"title", "slug"}, Term: "curry"},
				query.BoolEquals{Column: "published", Value: true},
			},
		},
		{
			name:   "draft matches unpublished",
			filter: domain.RecipeFilterDraft,
			want: query.And{
				query.TextContains{Columns: []string{"title", "slug"}, Term: ""},
				query.BoolEquals{Column: "published", Value: false},
			},
		},
		{
			name:   "featured filters the flag",
			filter: domain.RecipeFilterFeatured,
			want: query.And{
				query.TextContains{Columns: []string{"title", "slug"}, Term: ""},
				query.BoolEquals{Column: "featured", Value: true},
			},
		},
		{
			name:   "unknown value behaves like all",
			filter: "bogus",
			want: query.And{
				query.TextContains{Columns: []string{"title", "slug"}, Term: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildListFilter(tt.search, tt.filter))
		})
	}
}

func TestSearchEmptyTermShortCircuits(t *testing.T) {
	svc, _ := newServiceWithRepo()
	res, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestGetTrendingFallsBackToMostSaved(t *testing.T) {
	svc, repo := newServiceWithRepo()

	saved := &entities.Recipe{ID: uuid.New(), Title: "Most Saved", Slug: "most-saved", Published: true}
	repo.mostSaved = []*entities.Recipe{saved}

	res, err := svc.GetTrending(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Most Saved", res[0].Title)

	flagged := &entities.Recipe{ID: uuid.New(), Title: "Flagged", Slug: "flagged", Trending: true, Published: true}
	repo.trending = []*entities.Recipe{flagged}

	res, err = svc.GetTrending(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Flagged", res[0].Title)
}

func TestSetPublishedManagesTimestamp(t *testing.T) {
	svc, _ := newServiceWithRepo()
	author := uuid.New().String()

	created, err := svc.Create(context.Background(), domain.CreateRecipeRequest{Title: "A", Slug: "slug-a"}, author)
	require.NoError(t, err)

	res, err := svc.SetPublished(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, res.Published)
	require.NotNil(t, res.PublishedAt)

	res, err = svc.SetPublished(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, res.Published)
	assert.Nil(t, res.PublishedAt)
}

func TestSetFlagNotFound(t *testing.T) {
	svc, _ := newServiceWithRepo()
	_, err := svc.SetFeatured(context.Background(), uuid.New().String(), true)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
