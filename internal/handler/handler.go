package handlers

import (
	"github.com/go-playground/validator/v10"

	"photoblog/internal/config"
	"photoblog/internal/database"
	"photoblog/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		PostService: services.Post,
		DB:          db,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}
