package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/domain"
)

// Response messages shared by the resource handlers.
const (
	msgMethodNotAllowed = "Error. Method not allowed"
	msgNoData           = "Error. No data provided"
	msgInvalidBody      = "Error. Invalid request body"
	msgMissingFields    = "Error. Missing required fields: "
	msgInvalidID        = "Error. Invalid id"
	msgUpdated          = "Record was successfully updated"
	msgDeleted          = "Record was successfully deleted"
)

// requireMethod writes a 405 when r was routed here with the wrong method.
// The router already enforces methods; this keeps handlers safe when they
// are mounted elsewhere.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if !strings.EqualFold(r.Method, method) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return false
	}
	return true
}

// decodeRequest reads the body into dst and reports every required field
// that is absent. It writes a 400 and returns false when the body is empty,
// unparseable or incomplete.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	fields, err := shared.ReadFields(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if len(fields) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoData)
		return false
	}

	missing, err := shared.BindFields(fields, dst)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if len(missing) > 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMissingFields+strings.Join(missing, ", "))
		return false
	}
	return true
}

// pathID extracts and validates the {id} path parameter. When echo is set
// the rejected id is included in the 400 body.
func pathID(w http.ResponseWriter, r *http.Request, echo bool) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}

	if err := domain.ValidateID(id); err != nil {
		if echo && errors.Is(err, domain.ErrInvalidID) {
			shared.RespondWithJSON(w, r, http.StatusBadRequest, shared.InvalidIDResponse{Message: msgInvalidID, ID: id})
		} else {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		}
		return 0, false
	}
	return id, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
