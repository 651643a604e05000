package menu

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrUnknownCategory = errors.New("unknown category name")
)

type UseCase interface {
	ListItems(ctx context.Context) ([]model.MenuItem, error)
	CreateItem(ctx context.Context, input *dto.CreateMenuItemInput) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, input *dto.UpdateMenuItemInput) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id int64) error
}
