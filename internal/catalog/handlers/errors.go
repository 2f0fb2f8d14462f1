// Package handlers exposes the catalog service over HTTP.
package handlers

import (
	"errors"
	"net/http"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/service"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/api"
)

// writeServiceError maps the service error taxonomy to HTTP statuses.
func writeServiceError(w http.ResponseWriter, rid string, err error) {
	var (
		notFound   *service.NotFoundError
		conflict   *service.ConflictError
		validation *service.ValidationError
		transport  *service.TransportError
	)
	switch {
	case errors.As(err, &notFound):
		api.NotFound(w, "NOT_FOUND", notFound.Error(), rid)
	case errors.As(err, &conflict):
		api.Conflict(w, "SLUG_TAKEN", conflict.Error(), rid, nil)
	case errors.As(err, &validation):
		api.BadRequest(w, "VALIDATION", validation.Error(), rid, nil)
	case errors.As(err, &transport):
		api.BadGateway(w, "NOTIFICATION_FAILED", transport.Error(), rid)
	default:
		api.Internal(w, rid)
	}
}
