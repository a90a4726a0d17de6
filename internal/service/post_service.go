package service

import (
	"context"
	"io"

	"photoblog/internal/models"
	"photoblog/internal/repository"
	"photoblog/internal/storage"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

type PostService interface {
	List(ctx context.Context, page, limit int) ([]models.Post, error)
	Create(ctx context.Context, title, content string) (*models.Post, error)
	CreateWithImage(ctx context.Context, caption, fileName string, file io.Reader, size int64) (*models.Post, error)
	Update(ctx context.Context, postID int64, title, content string) (*models.Post, error)
	Delete(ctx context.Context, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
	}
}

// List is stateless pagination: each call computes its own offset, and a page
// past the end comes back as an empty slice rather than an error.
func (p *postService) List(ctx context.Context, page, limit int) ([]models.Post, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	offset := (page - 1) * limit

	return p.postRepo.List(ctx, limit, offset)
}

func (p *postService) Create(ctx context.Context, title, content string) (*models.Post, error) {
	post := &models.Post{
		Title:   title,
		Content: content,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// CreateWithImage stores the upload first and then inserts the post row.
// If the insert fails the stored file stays behind; there is no cleanup.
func (p *postService) CreateWithImage(ctx context.Context, caption, fileName string, file io.Reader, size int64) (*models.Post, error) {
	imageURL, err := p.storage.SaveImage(ctx, fileName, file, size)
	if err != nil {
		return nil, err
	}

	return p.Create(ctx, caption, imageURL)
}

func (p *postService) Update(ctx context.Context, postID int64, title, content string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) Delete(ctx context.Context, postID int64) error {
	return p.postRepo.Delete(ctx, postID)
}
