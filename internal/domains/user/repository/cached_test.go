package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"songblog-backend/internal/domains/user"
	"songblog-backend/internal/domains/user/mocks"
	"songblog-backend/internal/domains/user/repository"
	cachemocks "songblog-backend/pkg/cache/mocks"
)

func TestCachedFindByID_Hit(t *testing.T) {
	next := new(mocks.Repository)
	c := new(cachemocks.Cache)
	c.On("Get", mock.Anything, "user:5", mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*user.User).Username = "cached"
		}).
		Return(true, nil).Once()

	repo := repository.NewCachedRepository(next, c, time.Minute)
	u, err := repo.FindByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "cached", u.Username)
	next.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	c.AssertExpectations(t)
}

func TestCachedFindByID_MissPopulates(t *testing.T) {
	next := new(mocks.Repository)
	c := new(cachemocks.Cache)
	stored := &user.User{ID: 5, Username: "mila"}

	c.On("Get", mock.Anything, "user:5", mock.Anything).Return(false, nil).Once()
	next.On("FindByID", mock.Anything, int64(5)).Return(stored, nil).Once()
	c.On("Set", mock.Anything, "user:5", stored, 15*time.Minute).Return(nil).Once()

	repo := repository.NewCachedRepository(next, c, 15*time.Minute)
	u, err := repo.FindByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "mila", u.Username)
	next.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestCachedFindByID_CacheErrorFallsThrough(t *testing.T) {
	next := new(mocks.Repository)
	c := new(cachemocks.Cache)
	stored := &user.User{ID: 5, Username: "mila"}

	c.On("Get", mock.Anything, "user:5", mock.Anything).Return(false, errors.New("redis down")).Once()
	next.On("FindByID", mock.Anything, int64(5)).Return(stored, nil).Once()
	c.On("Set", mock.Anything, "user:5", stored, time.Minute).Return(errors.New("redis down")).Once()

	repo := repository.NewCachedRepository(next, c, time.Minute)
	u, err := repo.FindByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "mila", u.Username)
}

func TestCachedFindByID_NotFoundNotCached(t *testing.T) {
	next := new(mocks.Repository)
	c := new(cachemocks.Cache)

	c.On("Get", mock.Anything, "user:9", mock.Anything).Return(false, nil).Once()
	next.On("FindByID", mock.Anything, int64(9)).Return(nil, user.ErrUserNotFound).Once()

	repo := repository.NewCachedRepository(next, c, time.Minute)
	_, err := repo.FindByID(context.Background(), 9)

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedFindByUsername_Bypasses(t *testing.T) {
	next := new(mocks.Repository)
	c := new(cachemocks.Cache)
	next.On("FindByUsername", mock.Anything, "mila").Return(&user.User{ID: 1}, nil).Once()

	repo := repository.NewCachedRepository(next, c, time.Minute)
	_, err := repo.FindByUsername(context.Background(), "mila")

	require.NoError(t, err)
	c.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
