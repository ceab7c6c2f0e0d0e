package api

import (
	"log/slog"
	"net/http"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/service"
)

const (
	msgProjectsNotFound = "Projects were not found"
	msgProjectNotFound  = "Project with such id does not exist"
)

// ProjectHandler serves the /api/project routes.
type ProjectHandler struct {
	projects service.ProjectService
	logger   *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projects service.ProjectService, logger *slog.Logger) *ProjectHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectHandler{
		projects: projects,
		logger:   logger.With("handler", "project"),
	}
}

// Create handles POST /api/project/new.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req ProjectRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	project, err := h.projects.Create(r.Context(), req.Fields())
	if err != nil {
		respondWithServiceError(w, r, err, msgProjectNotFound)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("created", "project_id", project.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: project.ID})
}

// Update handles PUT /api/project/update/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}

	var req ProjectRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, false)
	if !ok {
		return
	}

	if err := h.projects.UpdateByID(r.Context(), id, req.Fields()); err != nil {
		respondWithServiceError(w, r, err, msgProjectNotFound)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, msgUpdated)
}

// List handles GET /api/project/list. An empty collection is a 404.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	projects, err := h.projects.GetAll(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, msgProjectsNotFound)
		return
	}
	if len(projects) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, msgProjectsNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projects)
}

// Get handles GET /api/project/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := pathID(w, r, true)
	if !ok {
		return
	}

	project, err := h.projects.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err, msgProjectNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, project)
}

// Delete handles DELETE /api/project/delete/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := pathID(w, r, false)
	if !ok {
		return
	}

	if _, err := h.projects.DeleteByID(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err, msgProjectNotFound)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, msgDeleted)
}
