package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"photoblog/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (title, content)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, post.Title, post.Content)
	if err := row.Scan(&post.ID, &post.CreatedAt); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// List returns one page of posts, most recent first. The id tiebreak keeps
// pages stable when several posts share a created_at tick.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = $1,
			content = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, post.Title, post.Content, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
