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

// ListGenres handles GET /v1/genres?search=
func ListGenres(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		genres, err := svc.Genres(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		if genres == nil {
			genres = []store.Genre{}
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"genres": genres})
	}
}

// GetGenreBySlug handles GET /v1/genres/{slug}
func GetGenreBySlug(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			api.BadRequest(w, "MISSING_SLUG", "slug is required", rid, nil)
			return
		}
		g, err := svc.GenreBySlug(r.Context(), slug)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, g)
	}
}

// GetCollections handles GET /v1/genres/collections
func GetCollections(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		collections, err := svc.GenreCollections(r.Context())
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"collections": collections})
	}
}

// GetGenreByID handles GET /v1/admin/genres/{id}
func GetGenreByID(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		g, err := svc.GenreByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, g)
	}
}

// CreateGenre handles POST /v1/admin/genres
func CreateGenre(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id, err := svc.CreateGenre(r.Context())
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// UpdateGenre handles PUT /v1/admin/genres/{id}
func UpdateGenre(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		var in store.GenreInput
		if !api.ReadJSON(w, r, rid, &in) {
			return
		}
		g, err := svc.UpdateGenre(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, g)
	}
}

// DeleteGenre handles DELETE /v1/admin/genres/{id}
func DeleteGenre(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		g, err := svc.DeleteGenre(r.Context(), id)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, g)
	}
}
