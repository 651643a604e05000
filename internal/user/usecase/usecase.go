package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/user"
	"github.com/fekuna/omnipos-restaurant-service/internal/user/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

const bcryptCost = 10

type userUseCase struct {
	repo   user.Repository
	logger logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, log logger.ZapLogger) user.UseCase {
	return &userUseCase{repo: repo, logger: log}
}

func (u *userUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.repo.FindAll(ctx)
}

func (u *userUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	found, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, user.ErrUserNotFound
	}
	return found, nil
}

func (u *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	if input.Username == "" || input.Password == "" || input.Role == "" {
		return nil, fmt.Errorf("username, password and role are required")
	}

	existing, err := u.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &model.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		PasswordHash: string(hash),
	}
	id, err := u.repo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id

	u.logger.Info("user created", zap.Int64("user_id", id), zap.String("username", newUser.Username))
	return newUser, nil
}

func (u *userUseCase) UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error) {
	if input.Username == "" || input.Role == "" {
		return nil, fmt.Errorf("username and role are required")
	}

	current, err := u.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, user.ErrUserNotFound
	}

	byName, err := u.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if byName != nil && byName.ID != input.ID {
		return nil, user.ErrUsernameTaken
	}

	hash := current.PasswordHash
	if input.Password != "" {
		rehashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = string(rehashed)
	}

	updated := &model.User{
		ID:           input.ID,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		PasswordHash: hash,
	}
	affected, err := u.repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, user.ErrUserNotFound
	}
	return updated, nil
}

func (u *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	affected, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrUserNotFound
	}
	u.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}
