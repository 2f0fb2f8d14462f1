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

// ListMovies handles GET /v1/movies?search=
func ListMovies(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		movies, err := svc.Movies(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		if movies == nil {
			movies = []service.MovieView{}
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"movies": movies})
	}
}

// GetMovieBySlug handles GET /v1/movies/{slug}
func GetMovieBySlug(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			api.BadRequest(w, "MISSING_SLUG", "slug is required", rid, nil)
			return
		}
		m, err := svc.MovieBySlug(r.Context(), slug)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}

// GetMostPopular handles GET /v1/movies/popular
func GetMostPopular(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		movies, err := svc.MostPopular(r.Context())
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		if movies == nil {
			movies = []store.Movie{}
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"movies": movies})
	}
}

// GetMoviesByActor handles GET /v1/movies/by-actor/{actor_id}
func GetMoviesByActor(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		actorID := strings.TrimSpace(chi.URLParam(r, "actor_id"))
		if actorID == "" {
			api.BadRequest(w, "MISSING_ID", "actor_id is required", rid, nil)
			return
		}
		movies, err := svc.MoviesByActor(r.Context(), actorID)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		if movies == nil {
			movies = []store.Movie{}
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"movies": movies})
	}
}

// GetMoviesByGenres handles POST /v1/movies/by-genres. The body is a
// genre id list; an empty list yields an empty result.
func GetMoviesByGenres(svc *service.Service) http.HandlerFunc {
	type request struct {
		GenreIDs []string `json:"genreIds"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		var in request
		if !api.ReadJSON(w, r, rid, &in) {
			return
		}
		movies, err := svc.MoviesByGenres(r.Context(), in.GenreIDs)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		if movies == nil {
			movies = []store.Movie{}
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"movies": movies})
	}
}

// RecordOpen handles POST /v1/movies/{slug}/open
func RecordOpen(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			api.BadRequest(w, "MISSING_SLUG", "slug is required", rid, nil)
			return
		}
		m, err := svc.RecordOpen(r.Context(), slug)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}

// GetMovieByID handles GET /v1/admin/movies/{id}
func GetMovieByID(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		m, err := svc.MovieByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}

// CreateMovie handles POST /v1/admin/movies
func CreateMovie(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id, err := svc.CreateMovie(r.Context())
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// UpdateMovie handles PUT /v1/admin/movies/{id}
func UpdateMovie(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		var in store.MovieInput
		if !api.ReadJSON(w, r, rid, &in) {
			return
		}
		m, err := svc.UpdateMovie(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}

// SetRating handles PUT /v1/admin/movies/{id}/rating
func SetRating(svc *service.Service) http.HandlerFunc {
	type request struct {
		Rating float64 `json:"rating"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		var in request
		if !api.ReadJSON(w, r, rid, &in) {
			return
		}
		m, err := svc.SetRating(r.Context(), id, in.Rating)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}

// DeleteMovie handles DELETE /v1/admin/movies/{id}
func DeleteMovie(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "id is required", rid, nil)
			return
		}
		m, err := svc.DeleteMovie(r.Context(), id)
		if err != nil {
			writeServiceError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, m)
	}
}
