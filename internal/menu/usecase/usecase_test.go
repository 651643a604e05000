package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-restaurant-service/internal/menu"
	"github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type fakeRepo struct {
	nextID int64
	items  map[int64]model.MenuItem
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, items: map[int64]model.MenuItem{}}
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	out := []model.MenuItem{}
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *fakeRepo) Create(ctx context.Context, item *model.MenuItem) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *item
	stored.ID = id
	r.items[id] = stored
	return id, nil
}

func (r *fakeRepo) Update(ctx context.Context, item *model.MenuItem) (int64, error) {
	if _, ok := r.items[item.ID]; !ok {
		return 0, nil
	}
	r.items[item.ID] = *item
	return 1, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func newMenuUC(repo menu.Repository) menu.UseCase {
	return NewMenuUseCase(repo, nil, logger.NewNop())
}

func TestCreateItem_MapsCategoryAndDefaultsAvailable(t *testing.T) {
	repo := newFakeRepo()
	uc := newMenuUC(repo)

	item, err := uc.CreateItem(context.Background(), &dto.CreateMenuItemInput{
		Name:     "Margherita",
		Price:    10.00,
		Category: "Main Course",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), item.CategoryID)
	assert.True(t, item.IsAvailable)
	assert.Equal(t, item.ID, repo.items[item.ID].ID)
}

func TestCreateItem_UnknownCategory(t *testing.T) {
	uc := newMenuUC(newFakeRepo())

	_, err := uc.CreateItem(context.Background(), &dto.CreateMenuItemInput{
		Name:     "Mystery Dish",
		Price:    5.00,
		Category: "Cryptids",
	})
	assert.ErrorIs(t, err, menu.ErrUnknownCategory)
}

func TestCreateItem_MissingFields(t *testing.T) {
	uc := newMenuUC(newFakeRepo())

	_, err := uc.CreateItem(context.Background(), &dto.CreateMenuItemInput{Name: "Soup"})
	assert.Error(t, err)
}

func TestUpdateItem_NotFound(t *testing.T) {
	uc := newMenuUC(newFakeRepo())

	_, err := uc.UpdateItem(context.Background(), &dto.UpdateMenuItemInput{
		ID:       42,
		Name:     "Soup",
		Price:    4.00,
		Category: "Appetizer",
	})
	assert.ErrorIs(t, err, menu.ErrItemNotFound)
}

func TestUpdateItem_PreservesAvailabilityWhenOmitted(t *testing.T) {
	repo := newFakeRepo()
	uc := newMenuUC(repo)

	unavailable := false
	item, err := uc.CreateItem(context.Background(), &dto.CreateMenuItemInput{
		Name:        "Tiramisu",
		Price:       6.00,
		Category:    "Dessert",
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateItem(context.Background(), &dto.UpdateMenuItemInput{
		ID:       item.ID,
		Name:     "Tiramisu",
		Price:    6.50,
		Category: "Dessert",
	})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, 6.50, updated.Price)
}

func TestDeleteItem_NotFound(t *testing.T) {
	uc := newMenuUC(newFakeRepo())

	err := uc.DeleteItem(context.Background(), 42)
	assert.ErrorIs(t, err, menu.ErrItemNotFound)
}

func TestListItems_NilCacheFallsThrough(t *testing.T) {
	repo := newFakeRepo()
	uc := newMenuUC(repo)

	_, err := uc.CreateItem(context.Background(), &dto.CreateMenuItemInput{
		Name:     "Lemonade",
		Price:    3.00,
		Category: "Beverage",
	})
	require.NoError(t, err)

	items, err := uc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
