package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"photoblog/internal/repository"
)

type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.PostService.List(r.Context(), page, limit)
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

// CreatePost accepts either a JSON body {title, content} or a multipart
// form with an image file and a caption, depending on how the client
// publishes.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		h.createImagePost(w, r)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) createImagePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Image and caption are required", http.StatusBadRequest)
		return
	}

	caption := r.FormValue("caption")

	file, header, err := r.FormFile("image")
	if err != nil || caption == "" {
		WriteError(w, "Image and caption are required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	post, err := h.PostService.CreateWithImage(r.Context(), caption, header.Filename, file, header.Size)
	if err != nil {
		WriteError(w, "Server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Update(r.Context(), postID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.Delete(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
		} else {
			WriteError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}
