package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"photoblog/cmd/app"
	"photoblog/internal/config"
	handlers "photoblog/internal/handler"
	"photoblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	// public routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)

	// uploaded images are served straight off the upload directory
	if cfg.StorageBackend == "disk" {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))),
		).Methods(http.MethodGet)
	}

	// token-gated routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(services.Auth)))
	protected.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	protected.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)
	protected.HandleFunc("/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)
	protected.HandleFunc("/me", handler.Me).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server is running on http://localhost%s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
