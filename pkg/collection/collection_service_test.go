package collection

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/pkg/recipe"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type savedKey struct {
	user   uuid.UUID
	recipe uuid.UUID
}

type fakeCollectionRepository struct {
	collections map[uuid.UUID]*entities.Collection
	saved       map[savedKey]*entities.SavedRecipe
}

func newFakeCollectionRepo() *fakeCollectionRepository {
	return &fakeCollectionRepository{
		collections: map[uuid.UUID]*entities.Collection{},
		saved:       map[savedKey]*entities.SavedRecipe{},
	}
}

func (f *fakeCollectionRepository) Create(_ context.Context, collection *entities.Collection) error {
	f.collections[collection.ID] = collection
	return nil
}

func (f *fakeCollectionRepository) GetByID(_ context.Context, id string) (*entities.Collection, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	c, ok := f.collections[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCollectionRepository) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*entities.Collection, error) {
	c, ok := f.collections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "description":
			c.Description = v.(string)
		case "is_public":
			c.IsPublic = v.(bool)
		}
	}
	return c, nil
}

func (f *fakeCollectionRepository) Delete(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(f.collections, parsed)
	return nil
}

func (f *fakeCollectionRepository) ListByUser(_ context.Context, userID string) ([]*entities.Collection, error) {
	var out []*entities.Collection
	for _, c := range f.collections {
		if c.UserID.String() == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCollectionRepository) SaveRecipe(_ context.Context, saved *entities.SavedRecipe) error {
	key := savedKey{user: saved.UserID, recipe: saved.RecipeID}
	if existing, ok := f.saved[key]; ok {
		existing.CollectionID = saved.CollectionID
		return nil
	}
	saved.SavedAt = time.Now()
	f.saved[key] = saved
	return nil
}

func (f *fakeCollectionRepository) UnsaveRecipe(_ context.Context, userID, recipeID string) error {
	user, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	rec, err := uuid.Parse(recipeID)
	if err != nil {
		return nil
	}
	delete(f.saved, savedKey{user: user, recipe: rec})
	return nil
}

func (f *fakeCollectionRepository) GetSavedRecipes(_ context.Context, userID string) ([]*entities.SavedRecipe, error) {
	var out []*entities.SavedRecipe
	for _, s := range f.saved {
		if s.UserID.String() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCollectionRepository) IsSaved(_ context.Context, userID, recipeID string) (bool, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return false, nil
	}
	rec, err := uuid.Parse(recipeID)
	if err != nil {
		return false, nil
	}
	_, ok := f.saved[savedKey{user: user, recipe: rec}]
	return ok, nil
}

type stubRecipeRepository struct {
	recipe.RecipeRepository
	known map[uuid.UUID]bool
}

func (s *stubRecipeRepository) GetByID(_ context.Context, id string) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(id)
	if err != nil || !s.known[parsed] {
		return nil, gorm.ErrRecordNotFound
	}
	return &entities.Recipe{ID: parsed}, nil
}

func newCollectionService(recipeIDs ...uuid.UUID) (CollectionService, *fakeCollectionRepository) {
	known := map[uuid.UUID]bool{}
	for _, id := range recipeIDs {
		known[id] = true
	}
	repo := newFakeCollectionRepo()
	return NewCollectionService(repo, &stubRecipeRepository{known: known}), repo
}

func TestCreateCollectionDefaultsPublic(t *testing.T) {
	svc, _ := newCollectionService()

	res, err := svc.Create(context.Background(), domain.CreateCollectionRequest{Name: "Weeknight"}, uuid.New().String())
	require.NoError(t, err)
	assert.True(t, res.IsPublic)

	private := false
	res, err = svc.Create(context.Background(), domain.CreateCollectionRequest{Name: "Secret", IsPublic: &private}, uuid.New().String())
	require.NoError(t, err)
	assert.False(t, res.IsPublic)
}

func TestSaveRecipeRequiresExistingRecipe(t *testing.T) {
	svc, _ := newCollectionService()

	err := svc.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		RecipeID: uuid.New().String(),
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSaveRecipeRequiresExistingCollection(t *testing.T) {
	recipeID := uuid.New()
	svc, _ := newCollectionService(recipeID)

	err := svc.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		RecipeID:     recipeID.String(),
		CollectionID: uuid.New().String(),
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestSaveIsIdempotentPerUserAndRecipe(t *testing.T) {
	recipeID := uuid.New()
	svc, repo := newCollectionService(recipeID)
	userID := uuid.New().String()

	collection, err := svc.Create(context.Background(), domain.CreateCollectionRequest{Name: "Faves"}, userID)
	require.NoError(t, err)

	err = svc.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: recipeID.String()}, userID)
	require.NoError(t, err)
	assert.Len(t, repo.saved, 1)

	// saving again just moves the save into the collection
	err = svc.SaveRecipe(context.Background(), domain.SaveRecipeRequest{
		RecipeID:     recipeID.String(),
		CollectionID: collection.ID,
	}, userID)
	require.NoError(t, err)
	assert.Len(t, repo.saved, 1)

	saved, err := svc.GetSavedRecipes(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, collection.ID, saved[0].CollectionID)
}

func TestUnsaveRecipe(t *testing.T) {
	recipeID := uuid.New()
	svc, repo := newCollectionService(recipeID)
	userID := uuid.New().String()

	err := svc.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: recipeID.String()}, userID)
	require.NoError(t, err)

	require.NoError(t, svc.UnsaveRecipe(context.Background(), recipeID.String(), userID))
	assert.Empty(t, repo.saved)

	// unsaving twice is fine
	assert.NoError(t, svc.UnsaveRecipe(context.Background(), recipeID.String(), userID))
}
