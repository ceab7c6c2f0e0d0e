package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/service"
)

const (
	msgTechnologiesNotFound = "Technologies were not found"
	msgTechnologyNotFound   = "Technology with such id does not exist"
	msgGroupNotFound        = "Technologies with such group does not exist"
)

// TechnologyHandler serves the /api/technology routes.
type TechnologyHandler struct {
	techs  service.TechnologyService
	logger *slog.Logger
}

// NewTechnologyHandler creates a TechnologyHandler.
func NewTechnologyHandler(techs service.TechnologyService, logger *slog.Logger) *TechnologyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TechnologyHandler{
		techs:  techs,
		logger: logger.With("handler", "technology"),
	}
}

// Create handles POST /api/technology/new.
func (h *TechnologyHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req TechnologyRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tech, err := h.techs.Create(r.Context(), req.Fields())
	if err != nil {
		respondWithServiceError(w, r, err, msgTechnologyNotFound)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("created", "technology_id", tech.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: tech.ID})
}

// Update handles PUT /api/technology/update/{id}.
func (h *TechnologyHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}

	var req TechnologyRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	id, ok := pathID(w, r, false)
	if !ok {
		return
	}

	if err := h.techs.UpdateByID(r.Context(), id, req.Fields()); err != nil {
		respondWithServiceError(w, r, err, msgTechnologyNotFound)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, msgUpdated)
}

// List handles GET /api/technology/list. An empty collection is a 404.
func (h *TechnologyHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	techs, err := h.techs.GetAll(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, msgTechnologiesNotFound)
		return
	}
	if len(techs) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, msgTechnologiesNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, techs)
}

// Get handles GET /api/technology/{id}.
func (h *TechnologyHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id, ok := pathID(w, r, true)
	if !ok {
		return
	}

	tech, err := h.techs.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err, msgTechnologyNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tech)
}

// Delete handles DELETE /api/technology/delete/{id}.
func (h *TechnologyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}

	id, ok := pathID(w, r, false)
	if !ok {
		return
	}

	if _, err := h.techs.DeleteByID(r.Context(), id); err != nil {
		respondWithServiceError(w, r, err, msgTechnologyNotFound)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, msgDeleted)
}

// ListByGroup handles GET /api/technology/list/{group}. The group must match
// exactly; no matches is a 404.
func (h *TechnologyHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	group := chi.URLParam(r, "group")
	techs, err := h.techs.GetByGroup(r.Context(), group)
	if err != nil {
		respondWithServiceError(w, r, err, msgGroupNotFound)
		return
	}
	if len(techs) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, msgGroupNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, techs)
}
