package table

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/table/dto"
)

var (
	ErrTableNotFound  = errors.New("table not found")
	ErrTableNameTaken = errors.New("table name already exists")
)

type UseCase interface {
	ListTables(ctx context.Context) ([]model.Table, error)
	GetTable(ctx context.Context, id int64) (*model.Table, error)
	CreateTable(ctx context.Context, input *dto.CreateTableInput) (*model.Table, error)
	UpdateTable(ctx context.Context, input *dto.UpdateTableInput) (*model.Table, error)
	DeleteTable(ctx context.Context, id int64) error
}
