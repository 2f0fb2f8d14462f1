// Package relation answers "which titles reference this performer or
// genre". Back-references are never stored; every answer is computed
// from a scan of the movie collection at read time, so it is always
// consistent with the current store state.
package relation

import (
	"context"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

// MovieScanner is the slice of the store the index needs.
type MovieScanner interface {
	Movies(ctx context.Context, search string) ([]store.Movie, error)
}

type Index struct {
	movies MovieScanner
}

func New(movies MovieScanner) Index {
	return Index{movies: movies}
}

// TitlesByActor returns every movie whose actor reference set contains
// actorID, in the store's natural scan order.
func (ix Index) TitlesByActor(ctx context.Context, actorID string) ([]store.Movie, error) {
	all, err := ix.movies.Movies(ctx, "")
	if err != nil {
		return nil, err
	}
	var out []store.Movie
	for _, m := range all {
		if contains(m.ActorIDs, actorID) {
			out = append(out, m)
		}
	}
	return out, nil
}

// TitlesByGenres returns every movie whose genre reference set
// intersects genreIDs.
func (ix Index) TitlesByGenres(ctx context.Context, genreIDs []string) ([]store.Movie, error) {
	all, err := ix.movies.Movies(ctx, "")
	if err != nil {
		return nil, err
	}
	want := make(map[string]struct{}, len(genreIDs))
	for _, id := range genreIDs {
		want[id] = struct{}{}
	}
	var out []store.Movie
	for _, m := range all {
		for _, id := range m.GenreIDs {
			if _, ok := want[id]; ok {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

// ActorAppearanceCounts computes, in one scan, how many movies reference
// each actor id.
func (ix Index) ActorAppearanceCounts(ctx context.Context) (map[string]int, error) {
	all, err := ix.movies.Movies(ctx, "")
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, m := range all {
		for _, id := range m.ActorIDs {
			counts[id]++
		}
	}
	return counts, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
