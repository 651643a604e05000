package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/user"
	"github.com/fekuna/omnipos-restaurant-service/internal/user/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type fakeRepo struct {
	nextID int64
	users  map[int64]model.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, users: map[int64]model.User{}}
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Create(ctx context.Context, u *model.User) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *u
	stored.ID = id
	r.users[id] = stored
	return id, nil
}

func (r *fakeRepo) Update(ctx context.Context, u *model.User) (int64, error) {
	if _, ok := r.users[u.ID]; !ok {
		return 0, nil
	}
	r.users[u.ID] = *u
	return 1, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

func newUserUC(repo user.Repository) user.UseCase {
	return NewUserUseCase(repo, logger.NewNop())
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newFakeRepo()
	uc := newUserUC(repo)

	created, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "alice",
		Role:     "Waiter",
		Password: "s3cret",
	})
	require.NoError(t, err)

	stored := repo.users[created.ID]
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	uc := newUserUC(newFakeRepo())

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "alice", Role: "Waiter", Password: "pw",
	})
	require.NoError(t, err)

	_, err = uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "alice", Role: "Manager", Password: "pw2",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestCreateUser_MissingFields(t *testing.T) {
	uc := newUserUC(newFakeRepo())

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{Username: "bob"})
	assert.Error(t, err)
}

func TestUpdateUser_KeepsHashWhenPasswordOmitted(t *testing.T) {
	repo := newFakeRepo()
	uc := newUserUC(repo)

	created, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "alice", Role: "Waiter", Password: "s3cret",
	})
	require.NoError(t, err)
	originalHash := repo.users[created.ID].PasswordHash

	updated, err := uc.UpdateUser(context.Background(), &dto.UpdateUserInput{
		ID:       created.ID,
		Username: "alice",
		Role:     "Manager",
	})
	require.NoError(t, err)
	assert.Equal(t, originalHash, updated.PasswordHash)
	assert.Equal(t, "Manager", updated.Role)
}

func TestUpdateUser_RehashesWhenPasswordSupplied(t *testing.T) {
	repo := newFakeRepo()
	uc := newUserUC(repo)

	created, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "alice", Role: "Waiter", Password: "old",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateUser(context.Background(), &dto.UpdateUserInput{
		ID:       created.ID,
		Username: "alice",
		Role:     "Waiter",
		Password: "new",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("old")))
}

func TestUpdateUser_UsernameTakenByOther(t *testing.T) {
	uc := newUserUC(newFakeRepo())

	_, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "alice", Role: "Waiter", Password: "pw",
	})
	require.NoError(t, err)
	bob, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "bob", Role: "Waiter", Password: "pw",
	})
	require.NoError(t, err)

	_, err = uc.UpdateUser(context.Background(), &dto.UpdateUserInput{
		ID: bob.ID, Username: "alice", Role: "Waiter",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestDeleteUser_NotFound(t *testing.T) {
	uc := newUserUC(newFakeRepo())

	err := uc.DeleteUser(context.Background(), 42)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
