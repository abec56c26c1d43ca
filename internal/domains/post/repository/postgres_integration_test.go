package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songblog-backend/internal/domains/post/model"
	"songblog-backend/internal/domains/post/repository"
	"songblog-backend/internal/infrastructure/database"
)

// openTestPool chạy migrations và xoá sạch dữ liệu. Skip khi TEST_DATABASE_URL trống.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, database.Migrate(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE posts, songs, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func TestPostgres_ArchiveIsNewestFirst(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := repository.NewPostgresRepository(pool)

	var authorID int64
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash) VALUES ('mila', 'x') RETURNING id`).Scan(&authorID))

	day := func(d int) time.Time { return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC) }

	// chèn lệch thứ tự; hai post cuối trùng created_at
	for _, p := range []*model.Post{
		{Title: "middle", Text: "b", UserID: authorID, CreatedAt: day(2)},
		{Title: "oldest", Text: "a", UserID: authorID, CreatedAt: day(1)},
		{Title: "newest-a", Text: "c", UserID: authorID, CreatedAt: day(3)},
		{Title: "newest-b", Text: "d", UserID: authorID, CreatedAt: day(3)},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO posts (title, text, user_id, created_at) VALUES ('orphan', 'e', NULL, $1)`, day(2).Add(time.Hour))
	require.NoError(t, err)

	posts, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)

	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"newest-b", "newest-a", "orphan", "middle", "oldest"}, titles)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}
	assert.Zero(t, posts[2].UserID)

	latest, err := repo.FindLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "newest-b", latest.Title)
}
