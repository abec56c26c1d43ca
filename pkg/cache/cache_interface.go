package cache

import (
	"context"
	"time"
)

// Cache là lớp cache key/value dùng cho author lookups (user:<id>).
// Mọi lỗi trả về đều được caller coi như cache miss, nên implementation
// không cần retry hay fallback riêng.
type Cache interface {
	// Get decode value vào dest. found=false nghĩa là miss và dest giữ nguyên.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set ghi value kèm TTL, ttl = 0 nghĩa là không hết hạn
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Ping dùng cho /health
	Ping(ctx context.Context) error
}
