package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoblog/internal/models"
	"photoblog/internal/repository"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) SaveImage(_ context.Context, _ string, _ io.Reader, _ int64) (string, error) {
	return f.url, f.err
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("computes the offset from page and limit", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{})

		postRepo.On("List", ctx, 10, 20).Return([]models.Post{}, nil)

		_, err := svc.List(ctx, 3, 10)

		require.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("invalid page and limit fall back to defaults", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{})

		postRepo.On("List", ctx, DefaultLimit, 0).Return([]models.Post{}, nil)

		_, err := svc.List(ctx, 0, -3)

		require.NoError(t, err)
		postRepo.AssertExpectations(t)
	})
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored row", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{})

		postRepo.On("Create", ctx, mock.AnythingOfType("*models.Post")).
			Run(func(args mock.Arguments) {
				post := args.Get(1).(*models.Post)
				post.ID = 1
				post.CreatedAt = time.Now()
			}).
			Return(nil)

		post, err := svc.Create(ctx, "Hi", "World")

		require.NoError(t, err)
		assert.Equal(t, int64(1), post.ID)
		assert.Equal(t, "Hi", post.Title)
		assert.Equal(t, "World", post.Content)
	})
}

func TestPostService_CreateWithImage(t *testing.T) {
	ctx := context.Background()

	t.Run("content becomes the stored image URL", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{url: "/uploads/1700000000000-cat.jpg"})

		postRepo.On("Create", ctx, mock.AnythingOfType("*models.Post")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Post).ID = 5
			}).
			Return(nil)

		post, err := svc.CreateWithImage(ctx, "my cat", "cat.jpg", nil, 0)

		require.NoError(t, err)
		assert.Equal(t, "my cat", post.Title)
		assert.Equal(t, "/uploads/1700000000000-cat.jpg", post.Content)
	})

	t.Run("storage failure skips the insert", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{err: errors.New("disk full")})

		post, err := svc.CreateWithImage(ctx, "my cat", "cat.jpg", nil, 0)

		assert.Nil(t, post)
		assert.Error(t, err)
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("replaces fields but preserves id and created_at", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{})

		postRepo.On("GetByID", ctx, int64(1)).
			Return(&models.Post{ID: 1, Title: "old", Content: "old", CreatedAt: createdAt}, nil)
		postRepo.On("Update", ctx, mock.AnythingOfType("*models.Post")).Return(nil)

		post, err := svc.Update(ctx, 1, "new title", "new content")

		require.NoError(t, err)
		assert.Equal(t, int64(1), post.ID)
		assert.Equal(t, createdAt, post.CreatedAt)
		assert.Equal(t, "new title", post.Title)
		assert.Equal(t, "new content", post.Content)
	})

	t.Run("unknown id propagates ErrPostNotFound", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{})

		postRepo.On("GetByID", ctx, int64(99)).Return(nil, repository.ErrPostNotFound)

		post, err := svc.Update(ctx, 99, "new title", "new content")

		assert.Nil(t, post)
		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id propagates ErrPostNotFound", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, &fakeStorage{})

		postRepo.On("Delete", ctx, int64(99)).Return(repository.ErrPostNotFound)

		err := svc.Delete(ctx, 99)

		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})
}
