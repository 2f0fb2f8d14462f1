package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/service"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/api"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/httpserver"
)

// ListActors handles GET /v1/actors?search=
func ListActors(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		cards, err := svc.ActorListing(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"actors": cards})
	}
}

// GetActorBySlug handles GET /v1/actors/{slug}
func GetActorBySlug(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			api.BadRequest(w, "MISSING_SLUG", "slug is required", rid, nil)
			return
		}
		a, err := svc.ActorBySlug(r.Context(), slug)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, a)
	}
}

// GetActorByID handles GET /v1/admin/actors/{id}
func GetActorByID(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		a, err := svc.ActorByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, a)
	}
}

// CreateActor handles POST /v1/admin/actors; inserts a blank record and
// returns its id.
func CreateActor(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id, err := svc.CreateActor(r.Context())
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// UpdateActor handles PUT /v1/admin/actors/{id}
func UpdateActor(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		var in store.ActorInput
		if !api.ReadJSON(w, r, rid, &in) {
			return
		}
		a, err := svc.UpdateActor(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, a)
	}
}

// DeleteActor handles DELETE /v1/admin/actors/{id}
func DeleteActor(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		a, err := svc.DeleteActor(r.Context(), id)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, a)
	}
}
