package api

import (
	"log/slog"
	"net/http"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/service"
)

const (
	msgPostsNotFound      = "Error. Posts were not found"
	msgPostNotFound       = "Error. Post with such id does not exist"
	msgPostDeleteNotFound = "post with such id does not exist"
)

// PostHandler serves the /api/post routes.
type PostHandler struct {
	posts  service.PostService
	logger *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(posts service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		posts:  posts,
		logger: logger.With("handler", "post"),
	}
}

// Create handles POST /api/post/new.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req PostRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	post, err := h.posts.Create(r.Context(), req.Fields())
	if err != nil {
		respondWithServiceError(w, r, err, msgPostNotFound)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("created", "post_id", post.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: post.ID})
}

// Update handles PUT /api/post/update/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}

	var req PostRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, false)
	if !ok {
		return
	}

	if err := h.posts.UpdateByID(r.Context(), id, req.Fields()); err != nil {
		respondWithServiceError(w, r, err, msgPostNotFound)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, msgUpdated)
}

// List handles GET /api/post/list. An empty collection is a 404.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	posts, err := h.posts.GetAll(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, msgPostsNotFound)
		return
	}
	if len(posts) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, msgPostsNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// Get handles GET /api/post/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := pathID(w, r, true)
	if !ok {
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err, msgPostNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// Delete handles DELETE /api/post/delete/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := pathID(w, r, false)
	if !ok {
		return
	}

	if _, err := h.posts.DeleteByID(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err, msgPostDeleteNotFound)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, msgDeleted)
}
