package service

import (
	"photoblog/internal/config"
	"photoblog/internal/repository"
	"photoblog/internal/storage"
)

type Service struct {
	Auth AuthService
	Post PostService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, cfg),
		Post: NewPostService(repo.Post, storage),
	}
}
