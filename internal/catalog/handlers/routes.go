package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/service"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/files"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/auth"
)

// Mount attaches the public and admin catalog routes to the router.
// Admin routes require a valid bearer token with the admin role.
func Mount(r chi.Router, svc *service.Service, storage files.Storage, verifier auth.Verifier) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/actors", ListActors(svc))
		r.Get("/actors/{slug}", GetActorBySlug(svc))

		r.Get("/genres", ListGenres(svc))
		r.Get("/genres/collections", GetCollections(svc))
		r.Get("/genres/{slug}", GetGenreBySlug(svc))

		r.Get("/movies", ListMovies(svc))
		r.Get("/movies/popular", GetMostPopular(svc))
		r.Get("/movies/by-actor/{actor_id}", GetMoviesByActor(svc))
		r.Post("/movies/by-genres", GetMoviesByGenres(svc))
		r.Get("/movies/{slug}", GetMovieBySlug(svc))
		r.Post("/movies/{slug}/open", RecordOpen(svc))

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireUser(verifier))
			r.Use(auth.RequireAdmin)

			r.Post("/actors", CreateActor(svc))
			r.Get("/actors/{id}", GetActorByID(svc))
			r.Put("/actors/{id}", UpdateActor(svc))
			r.Delete("/actors/{id}", DeleteActor(svc))

			r.Post("/genres", CreateGenre(svc))
			r.Get("/genres/{id}", GetGenreByID(svc))
			r.Put("/genres/{id}", UpdateGenre(svc))
			r.Delete("/genres/{id}", DeleteGenre(svc))

			r.Post("/movies", CreateMovie(svc))
			r.Get("/movies/{id}", GetMovieByID(svc))
			r.Put("/movies/{id}", UpdateMovie(svc))
			r.Put("/movies/{id}/rating", SetRating(svc))
			r.Delete("/movies/{id}", DeleteMovie(svc))

			r.Post("/files", UploadFiles(storage))
		})
	})
}
