package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/table"
	"github.com/fekuna/omnipos-restaurant-service/internal/table/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type tableUseCase struct {
	repo   table.Repository
	logger logger.ZapLogger
}

func NewTableUseCase(repo table.Repository, log logger.ZapLogger) table.UseCase {
	return &tableUseCase{repo: repo, logger: log}
}

func (u *tableUseCase) ListTables(ctx context.Context) ([]model.Table, error) {
	return u.repo.FindAll(ctx)
}

func (u *tableUseCase) GetTable(ctx context.Context, id int64) (*model.Table, error) {
	t, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, table.ErrTableNotFound
	}
	return t, nil
}

func (u *tableUseCase) CreateTable(ctx context.Context, input *dto.CreateTableInput) (*model.Table, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("table name is required")
	}

	status, err := resolveStatus(input.Status)
	if err != nil {
		return nil, err
	}

	existing, err := u.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, table.ErrTableNameTaken
	}

	t := &model.Table{Name: input.Name, Status: status}
	id, err := u.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id

	u.logger.Info("table created", zap.Int64("table_id", id), zap.String("name", t.Name))
	return t, nil
}

func (u *tableUseCase) UpdateTable(ctx context.Context, input *dto.UpdateTableInput) (*model.Table, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("table name is required")
	}

	status, err := resolveStatus(input.Status)
	if err != nil {
		return nil, err
	}

	existing, err := u.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != input.ID {
		return nil, table.ErrTableNameTaken
	}

	t := &model.Table{ID: input.ID, Name: input.Name, Status: status}
	affected, err := u.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, table.ErrTableNotFound
	}
	return t, nil
}

func (u *tableUseCase) DeleteTable(ctx context.Context, id int64) error {
	affected, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return table.ErrTableNotFound
	}
	u.logger.Info("table deleted", zap.Int64("table_id", id))
	return nil
}

func resolveStatus(s string) (model.TableStatus, error) {
	switch s {
	case "":
		return model.TableStatusFree, nil
	case string(model.TableStatusFree):
		return model.TableStatusFree, nil
	case string(model.TableStatusOccupied):
		return model.TableStatusOccupied, nil
	default:
		return "", fmt.Errorf("unknown table status %q", s)
	}
}
