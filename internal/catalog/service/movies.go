package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

// MovieView is a movie with its performer and genre references
// resolved. Missing references (deleted entities) are simply absent.
type MovieView struct {
	store.Movie
	Actors []store.Actor `json:"actors"`
	Genres []store.Genre `json:"genres"`
}

func (s *Service) resolveMovie(ctx context.Context, m store.Movie) (MovieView, error) {
	actors, err := s.store.ActorsByIDs(ctx, m.ActorIDs)
	if err != nil {
		return MovieView{}, err
	}
	genres, err := s.store.GenresByIDs(ctx, m.GenreIDs)
	if err != nil {
		return MovieView{}, err
	}
	if actors == nil {
		actors = []store.Actor{}
	}
	if genres == nil {
		genres = []store.Genre{}
	}
	return MovieView{Movie: m, Actors: actors, Genres: genres}, nil
}

// Movies returns movies matching the optional search term, newest
// first, with references resolved.
func (s *Service) Movies(ctx context.Context, search string) ([]MovieView, error) {
	movies, err := s.store.Movies(ctx, search)
	if err != nil {
		return nil, err
	}
	views := make([]MovieView, len(movies))
	for i, m := range movies {
		if views[i], err = s.resolveMovie(ctx, m); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (s *Service) MovieBySlug(ctx context.Context, slug string) (MovieView, error) {
	m, err := s.store.MovieBySlug(ctx, slug)
	if err != nil {
		return MovieView{}, entityErr(err, entityMovie, slug, "")
	}
	return s.resolveMovie(ctx, m)
}

func (s *Service) MoviesByActor(ctx context.Context, actorID string) ([]store.Movie, error) {
	return s.index.TitlesByActor(ctx, actorID)
}

func (s *Service) MoviesByGenres(ctx context.Context, genreIDs []string) ([]store.Movie, error) {
	return s.index.TitlesByGenres(ctx, genreIDs)
}

func (s *Service) MostPopular(ctx context.Context) ([]store.Movie, error) {
	return s.store.MostPopular(ctx)
}

// RecordOpen atomically increments the movie's open counter by exactly
// one. On a missing slug nothing is mutated.
func (s *Service) RecordOpen(ctx context.Context, slug string) (store.Movie, error) {
	m, err := s.store.IncrementCountOpened(ctx, slug)
	return m, entityErr(err, entityMovie, slug, "")
}

// SetRating overwrites the movie's rating after validating the [0, 10]
// domain.
func (s *Service) SetRating(ctx context.Context, id string, rating float64) (store.Movie, error) {
	if rating < 0 || rating > 10 {
		return store.Movie{}, &ValidationError{Field: "rating", Reason: "must be between 0 and 10"}
	}
	m, err := s.store.SetMovieRating(ctx, id, rating)
	return m, entityErr(err, entityMovie, id, "")
}

func (s *Service) MovieByID(ctx context.Context, id string) (store.Movie, error) {
	m, err := s.store.MovieByID(ctx, id)
	return m, entityErr(err, entityMovie, id, "")
}

func (s *Service) CreateMovie(ctx context.Context) (string, error) {
	return s.store.CreateMovie(ctx)
}

// UpdateMovie persists the patch. On the first update of an
// unannounced movie it dispatches the publish notification before
// persisting; the announced flag flips false->true at most once and
// never reverts. Transport failure aborts the whole update, so the flag
// stays consistent with the notification, at the cost of a full retry.
func (s *Service) UpdateMovie(ctx context.Context, id string, in store.MovieInput) (store.Movie, error) {
	if !in.Announced {
		cur, err := s.store.MovieByID(ctx, id)
		if err != nil {
			return store.Movie{}, entityErr(err, entityMovie, id, "")
		}
		if !cur.Announced {
			return s.announceAndPersist(ctx, id, in)
		}
		// Already announced: keep the flag regardless of what the
		// patch says.
		in.Announced = true
	}

	m, err := s.store.UpdateMovie(ctx, id, in)
	return m, entityErr(err, entityMovie, id, in.Slug)
}

func (s *Service) announceAndPersist(ctx context.Context, id string, in store.MovieInput) (store.Movie, error) {
	if err := s.dispatcher.Announce(ctx, in.Title, in.Description, in.Poster); err != nil {
		return store.Movie{}, &TransportError{Op: "announce", Err: err}
	}

	m, transitioned, err := s.store.UpdateMovieIfUnannounced(ctx, id, in)
	if err != nil {
		return store.Movie{}, entityErr(err, entityMovie, id, in.Slug)
	}
	if transitioned && s.events != nil {
		if err := s.events.MovieAnnounced(ctx, m.ID, m.Title, m.Slug); err != nil {
			s.log.Warn("announce event publish failed", zap.String("movie_id", m.ID), zap.Error(err))
		}
	}
	return m, nil
}

func (s *Service) DeleteMovie(ctx context.Context, id string) (store.Movie, error) {
	m, err := s.store.DeleteMovie(ctx, id)
	return m, entityErr(err, entityMovie, id, "")
}
