package table

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Table, error)
	FindByID(ctx context.Context, id int64) (*model.Table, error)
	FindByName(ctx context.Context, name string) (*model.Table, error)
	Create(ctx context.Context, t *model.Table) (int64, error)
	Update(ctx context.Context, t *model.Table) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
