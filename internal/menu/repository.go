package menu

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) (int64, error)
	Update(ctx context.Context, item *model.MenuItem) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
