// Package store defines the catalog persistence contract and its
// in-memory and Postgres implementations.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by any lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ErrSlugTaken is returned when an update would give an entity a slug
// already held by another entity of the same type.
var ErrSlugTaken = errors.New("slug already taken")

// Actor is a catalog performer.
type Actor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
}

// Genre is a catalog genre.
type Genre struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

// Movie is a catalog title. ActorIDs and GenreIDs are ordered reference
// sets; the referenced side holds no back-pointer.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Poster      string    `json:"poster"`
	BigPoster   string    `json:"big_poster"`
	VideoURL    string    `json:"video_url"`
	Rating      float64   `json:"rating"`
	CountOpened int64     `json:"count_opened"`
	Announced   bool      `json:"announced"`
	ActorIDs    []string  `json:"actor_ids"`
	GenreIDs    []string  `json:"genre_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActorInput is the full writable state of an actor. Updates are
// last-write-wins: the input replaces every writable field.
type ActorInput struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Photo string `json:"photo"`
}

type GenreInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MovieInput struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Poster      string   `json:"poster"`
	BigPoster   string   `json:"big_poster"`
	VideoURL    string   `json:"video_url"`
	Rating      float64  `json:"rating"`
	Announced   bool     `json:"announced"`
	ActorIDs    []string `json:"actor_ids"`
	GenreIDs    []string `json:"genre_ids"`
}

// Store defines all persistence operations for the catalog.
//
// Search arguments are case-insensitive substring matches over a fixed
// field set per entity (actor: name, slug; genre: name, slug,
// description; movie: title). An empty search returns everything,
// newest first.
type Store interface {
	// actors
	ActorBySlug(ctx context.Context, slug string) (Actor, error)
	ActorByID(ctx context.Context, id string) (Actor, error)
	ActorsByIDs(ctx context.Context, ids []string) ([]Actor, error)
	Actors(ctx context.Context, search string) ([]Actor, error)
	CreateActor(ctx context.Context) (string, error)
	UpdateActor(ctx context.Context, id string, in ActorInput) (Actor, error)
	DeleteActor(ctx context.Context, id string) (Actor, error)

	// genres
	GenreBySlug(ctx context.Context, slug string) (Genre, error)
	GenreByID(ctx context.Context, id string) (Genre, error)
	GenresByIDs(ctx context.Context, ids []string) ([]Genre, error)
	Genres(ctx context.Context, search string) ([]Genre, error)
	CreateGenre(ctx context.Context) (string, error)
	UpdateGenre(ctx context.Context, id string, in GenreInput) (Genre, error)
	DeleteGenre(ctx context.Context, id string) (Genre, error)

	// movies
	MovieBySlug(ctx context.Context, slug string) (Movie, error)
	MovieByID(ctx context.Context, id string) (Movie, error)
	Movies(ctx context.Context, search string) ([]Movie, error)
	MostPopular(ctx context.Context) ([]Movie, error)
	CreateMovie(ctx context.Context) (string, error)
	UpdateMovie(ctx context.Context, id string, in MovieInput) (Movie, error)
	DeleteMovie(ctx context.Context, id string) (Movie, error)

	// IncrementCountOpened adds exactly 1 to count_opened as a single
	// atomic operation and returns the updated movie.
	IncrementCountOpened(ctx context.Context, slug string) (Movie, error)

	// SetMovieRating overwrites the rating unconditionally.
	SetMovieRating(ctx context.Context, id string, rating float64) (Movie, error)

	// UpdateMovieIfUnannounced persists the patch with announced forced
	// to true and reports whether this call performed the false->true
	// transition. Exactly one of the concurrent callers observes
	// transitioned=true; the flag never reverts.
	UpdateMovieIfUnannounced(ctx context.Context, id string, in MovieInput) (m Movie, transitioned bool, err error)
}
