package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"songblog-backend/internal/domains/song/model"
	"songblog-backend/internal/infrastructure/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

// Create - CreatedAt zero thì dùng DEFAULT now() của database
func (r *postgresRepository) Create(ctx context.Context, s *model.SongEntry) error {
	query := `
		INSERT INTO songs (title, group_name, image_url, user_id, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()))
		RETURNING id, created_at
	`

	var createdAt interface{}
	if !s.CreatedAt.IsZero() {
		createdAt = s.CreatedAt
	}

	err := r.db.QueryRow(ctx, query,
		s.Title,
		s.Group,
		s.ImageURL,
		s.UserID,
		createdAt,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindLatest(ctx context.Context) (*model.SongEntry, error) {
	query := `
		SELECT id, title, group_name, image_url, COALESCE(user_id, 0), created_at
		FROM songs
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var s model.SongEntry
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.Title,
		&s.Group,
		&s.ImageURL,
		&s.UserID,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest song: %w", err)
	}
	return &s, nil
}
