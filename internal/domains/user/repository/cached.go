package repository

import (
	"context"
	"fmt"
	"time"

	"songblog-backend/internal/domains/user"
	"songblog-backend/pkg/cache"
	"songblog-backend/pkg/logger"
)

// cachedRepository bọc một user.Repository với Redis cache-aside cho FindByID.
// Cached record không chứa PasswordHash (json:"-"), nên FindByUsername (dùng cho Verify)
// luôn đi thẳng xuống store.
type cachedRepository struct {
	next  user.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next user.Repository, c cache.Cache, ttl time.Duration) user.Repository {
	return &cachedRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (r *cachedRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	return r.next.Create(ctx, u)
}

// FindByID implement "Cache-Aside Pattern": cache hit trả về ngay,
// miss thì query store rồi populate cache. Lỗi cache được coi như miss.
func (r *cachedRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	// STEP 1: CHECK CACHE FIRST
	var u user.User
	found, err := r.cache.Get(ctx, cacheKey(id), &u)
	if err == nil && found {
		return &u, nil
	}
	if err != nil {
		logger.Warn("User cache read failed", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
	}

	// STEP 2: CACHE MISS - QUERY STORE
	dbUser, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// STEP 3: POPULATE CACHE
	if err := r.cache.Set(ctx, cacheKey(id), dbUser, r.ttl); err != nil {
		logger.Warn("User cache write failed", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
	}

	return dbUser, nil
}

func (r *cachedRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.next.FindByUsername(ctx, username)
}
