package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/menu"
	"github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/pkg/cache"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

const (
	menuListCacheKey = "menu:items:list"
	menuListCacheTTL = 5 * time.Minute
)

// categoryIDs maps the category names the UI sends to the ids seeded by
// the initial migration.
// TODO: read these from the categories table instead of hardcoding.
var categoryIDs = map[string]int64{
	"Appetizer":   1,
	"Main Course": 2,
	"Dessert":     3,
	"Beverage":    4,
}

type menuUseCase struct {
	repo   menu.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

// NewMenuUseCase builds the menu item use case. cache may be nil; the list
// then always hits the database.
func NewMenuUseCase(repo menu.Repository, cache *cache.RedisClient, log logger.ZapLogger) menu.UseCase {
	return &menuUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *menuUseCase) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	if uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, menuListCacheKey).Result()
		if err == nil {
			var items []model.MenuItem
			if err := json.Unmarshal([]byte(val), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			uc.cache.Client.Set(ctx, menuListCacheKey, data, menuListCacheTTL)
		}
	}
	return items, nil
}

func (uc *menuUseCase) CreateItem(ctx context.Context, input *dto.CreateMenuItemInput) (*model.MenuItem, error) {
	if input.Name == "" || input.Price <= 0 || input.Category == "" {
		return nil, errors.New("name, price and category are required")
	}

	categoryID, ok := categoryIDs[input.Category]
	if !ok {
		return nil, menu.ErrUnknownCategory
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	item := &model.MenuItem{
		Name:        input.Name,
		Price:       input.Price,
		CategoryID:  categoryID,
		IsAvailable: available,
	}

	id, err := uc.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	uc.invalidateListCache(ctx)
	return item, nil
}

func (uc *menuUseCase) UpdateItem(ctx context.Context, input *dto.UpdateMenuItemInput) (*model.MenuItem, error) {
	if input.Name == "" || input.Price <= 0 || input.Category == "" {
		return nil, errors.New("name, price and category are required")
	}

	categoryID, ok := categoryIDs[input.Category]
	if !ok {
		return nil, menu.ErrUnknownCategory
	}

	item, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, menu.ErrItemNotFound
	}

	item.Name = input.Name
	item.Price = input.Price
	item.CategoryID = categoryID
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	affected, err := uc.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, menu.ErrItemNotFound
	}

	uc.invalidateListCache(ctx)
	return item, nil
}

func (uc *menuUseCase) DeleteItem(ctx context.Context, id int64) error {
	affected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return menu.ErrItemNotFound
	}

	uc.invalidateListCache(ctx)
	return nil
}

func (uc *menuUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, menuListCacheKey).Err(); err != nil {
		uc.logger.Warn("failed to invalidate menu list cache", zap.Error(err))
	}
}
