package app

import (
	"log"

	"photoblog/internal/config"
	"photoblog/internal/database"
	"photoblog/internal/repository"
	"photoblog/internal/service"
	"photoblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// upload storage (local disk or MinIO)
	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, services
}
