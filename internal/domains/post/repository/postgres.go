package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"songblog-backend/internal/domains/post/model"
	"songblog-backend/internal/infrastructure/database"
)

const selectPost = `
	SELECT id, title, text, COALESCE(user_id, 0), created_at
	FROM posts
`

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

// Create - một INSERT duy nhất, lỗi constraint trả về nguyên dạng (internal error)
func (r *postgresRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (title, text, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, p.Title, p.Text, p.UserID, p.CreatedAt).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, selectPost+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("query post %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresRepository) FindLatest(ctx context.Context) (*model.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, selectPost+` ORDER BY created_at DESC, id DESC LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest post: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) ListNewestFirst(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, selectPost+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Text, &p.UserID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
