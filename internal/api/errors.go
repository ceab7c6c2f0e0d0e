package api

import (
	"errors"
	"net/http"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/domain"
	"github.com/ccrayp/portfolio-api/internal/service"
	"github.com/ccrayp/portfolio-api/internal/service/auth"
	"github.com/ccrayp/portfolio-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Anything
// it does not recognise is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, shared.ErrMalformedBody):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes the response for a failed service call.
// notFound is the resource-specific 404 message.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch status := MapErrorToStatusCode(err); status {
	case http.StatusNotFound:
		shared.RespondWithError(w, r, status, notFound)
	case http.StatusInternalServerError:
		shared.RespondWithInternalError(w, r, err)
	default:
		shared.RespondWithError(w, r, status, err.Error())
	}
}
