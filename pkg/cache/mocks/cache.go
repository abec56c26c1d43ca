package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Cache is a testify mock of cache.Cache.
type Cache struct {
	mock.Mock
}

func (m *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *Cache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
