package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is a mutex-guarded in-memory Store for development and tests.
type Memory struct {
	mu      sync.RWMutex
	actors  map[string]Actor
	genres  map[string]Genre
	movies  map[string]Movie
	ord     map[string]uint64 // id -> insertion order, tiebreak for equal timestamps
	nextOrd uint64
}

func NewMemory() *Memory {
	return &Memory{
		actors: make(map[string]Actor),
		genres: make(map[string]Genre),
		movies: make(map[string]Movie),
		ord:    make(map[string]uint64),
	}
}

func (s *Memory) newID() string {
	id := uuid.NewString()
	s.nextOrd++
	s.ord[id] = s.nextOrd
	return id
}

// newestFirst orders by creation time descending, insertion order breaking ties.
func (s *Memory) newestFirst(ids []string, createdAt func(id string) time.Time) {
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := createdAt(ids[i]), createdAt(ids[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return s.ord[ids[i]] > s.ord[ids[j]]
	})
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// ── actors ─────────────────────────────────────────────────────────────────

func (s *Memory) ActorBySlug(_ context.Context, slug string) (Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.actors {
		if a.Slug == slug {
			return a, nil
		}
	}
	return Actor{}, ErrNotFound
}

func (s *Memory) ActorByID(_ context.Context, id string) (Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.actors[id]
	if !ok {
		return Actor{}, ErrNotFound
	}
	return a, nil
}

func (s *Memory) ActorsByIDs(_ context.Context, ids []string) ([]Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Actor, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.actors[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Memory) Actors(_ context.Context, search string) ([]Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.actors))
	for id, a := range s.actors {
		if matches(search, a.Name, a.Slug) {
			ids = append(ids, id)
		}
	}
	s.newestFirst(ids, func(id string) time.Time { return s.actors[id].CreatedAt })
	out := make([]Actor, len(ids))
	for i, id := range ids {
		out[i] = s.actors[id]
	}
	return out, nil
}

func (s *Memory) CreateActor(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.actors[id] = Actor{ID: id, CreatedAt: time.Now().UTC()}
	return id, nil
}

func (s *Memory) UpdateActor(_ context.Context, id string, in ActorInput) (Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[id]
	if !ok {
		return Actor{}, ErrNotFound
	}
	if in.Slug != "" {
		for otherID, other := range s.actors {
			if otherID != id && other.Slug == in.Slug {
				return Actor{}, ErrSlugTaken
			}
		}
	}
	a.Name, a.Slug, a.Photo = in.Name, in.Slug, in.Photo
	s.actors[id] = a
	return a, nil
}

func (s *Memory) DeleteActor(_ context.Context, id string) (Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[id]
	if !ok {
		return Actor{}, ErrNotFound
	}
	delete(s.actors, id)
	// Movie reference sets are left untouched: deletes do not cascade.
	return a, nil
}

// ── genres ─────────────────────────────────────────────────────────────────

func (s *Memory) GenreBySlug(_ context.Context, slug string) (Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.genres {
		if g.Slug == slug {
			return g, nil
		}
	}
	return Genre{}, ErrNotFound
}

func (s *Memory) GenreByID(_ context.Context, id string) (Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.genres[id]
	if !ok {
		return Genre{}, ErrNotFound
	}
	return g, nil
}

func (s *Memory) GenresByIDs(_ context.Context, ids []string) ([]Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Genre, 0, len(ids))
	for _, id := range ids {
		if g, ok := s.genres[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *Memory) Genres(_ context.Context, search string) ([]Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.genres))
	for id, g := range s.genres {
		if matches(search, g.Name, g.Slug, g.Description) {
			ids = append(ids, id)
		}
	}
	s.newestFirst(ids, func(id string) time.Time { return s.genres[id].CreatedAt })
	out := make([]Genre, len(ids))
	for i, id := range ids {
		out[i] = s.genres[id]
	}
	return out, nil
}

func (s *Memory) CreateGenre(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.genres[id] = Genre{ID: id, CreatedAt: time.Now().UTC()}
	return id, nil
}

func (s *Memory) UpdateGenre(_ context.Context, id string, in GenreInput) (Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.genres[id]
	if !ok {
		return Genre{}, ErrNotFound
	}
	if in.Slug != "" {
		for otherID, other := range s.genres {
			if otherID != id && other.Slug == in.Slug {
				return Genre{}, ErrSlugTaken
			}
		}
	}
	g.Name, g.Slug, g.Description, g.Icon = in.Name, in.Slug, in.Description, in.Icon
	s.genres[id] = g
	return g, nil
}

func (s *Memory) DeleteGenre(_ context.Context, id string) (Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.genres[id]
	if !ok {
		return Genre{}, ErrNotFound
	}
	delete(s.genres, id)
	return g, nil
}

// ── movies ─────────────────────────────────────────────────────────────────

func (s *Memory) MovieBySlug(_ context.Context, slug string) (Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.movies {
		if m.Slug == slug {
			return cloneMovie(m), nil
		}
	}
	return Movie{}, ErrNotFound
}

func (s *Memory) MovieByID(_ context.Context, id string) (Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	if !ok {
		return Movie{}, ErrNotFound
	}
	return cloneMovie(m), nil
}

func (s *Memory) Movies(_ context.Context, search string) ([]Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.movies))
	for id, m := range s.movies {
		if matches(search, m.Title) {
			ids = append(ids, id)
		}
	}
	s.newestFirst(ids, func(id string) time.Time { return s.movies[id].CreatedAt })
	out := make([]Movie, len(ids))
	for i, id := range ids {
		out[i] = cloneMovie(s.movies[id])
	}
	return out, nil
}

func (s *Memory) MostPopular(_ context.Context) ([]Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Movie
	for _, m := range s.movies {
		if m.CountOpened > 0 {
			out = append(out, cloneMovie(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CountOpened > out[j].CountOpened })
	return out, nil
}

func (s *Memory) CreateMovie(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.movies[id] = Movie{ID: id, ActorIDs: []string{}, GenreIDs: []string{}, CreatedAt: time.Now().UTC()}
	return id, nil
}

func (s *Memory) UpdateMovie(_ context.Context, id string, in MovieInput) (Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyMovie(id, in, in.Announced)
}

func (s *Memory) DeleteMovie(_ context.Context, id string) (Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return Movie{}, ErrNotFound
	}
	delete(s.movies, id)
	return cloneMovie(m), nil
}

func (s *Memory) IncrementCountOpened(_ context.Context, slug string) (Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, m := range s.movies {
		if m.Slug == slug {
			m.CountOpened++
			s.movies[id] = m
			return cloneMovie(m), nil
		}
	}
	return Movie{}, ErrNotFound
}

func (s *Memory) SetMovieRating(_ context.Context, id string, rating float64) (Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return Movie{}, ErrNotFound
	}
	m.Rating = rating
	s.movies[id] = m
	return cloneMovie(m), nil
}

func (s *Memory) UpdateMovieIfUnannounced(_ context.Context, id string, in MovieInput) (Movie, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.movies[id]
	if !ok {
		return Movie{}, false, ErrNotFound
	}
	m, err := s.applyMovie(id, in, true)
	if err != nil {
		return Movie{}, false, err
	}
	return m, !prev.Announced, nil
}

// applyMovie replaces the writable fields of a movie under s.mu.
func (s *Memory) applyMovie(id string, in MovieInput, announced bool) (Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return Movie{}, ErrNotFound
	}
	if in.Slug != "" {
		for otherID, other := range s.movies {
			if otherID != id && other.Slug == in.Slug {
				return Movie{}, ErrSlugTaken
			}
		}
	}
	m.Title = in.Title
	m.Slug = in.Slug
	m.Description = in.Description
	m.Poster = in.Poster
	m.BigPoster = in.BigPoster
	m.VideoURL = in.VideoURL
	m.Rating = in.Rating
	m.Announced = announced
	m.ActorIDs = append([]string(nil), in.ActorIDs...)
	m.GenreIDs = append([]string(nil), in.GenreIDs...)
	s.movies[id] = m
	return cloneMovie(m), nil
}

// cloneMovie copies the reference slices so callers cannot alias store state.
func cloneMovie(m Movie) Movie {
	m.ActorIDs = append([]string(nil), m.ActorIDs...)
	m.GenreIDs = append([]string(nil), m.GenreIDs...)
	return m
}
