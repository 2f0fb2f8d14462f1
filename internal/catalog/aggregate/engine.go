// Package aggregate builds the derived read-models: the actor listing
// with appearance counts and the genre collection cards.
package aggregate

import (
	"context"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/relation"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

// Catalog is the slice of the store the engine reads from.
type Catalog interface {
	Actors(ctx context.Context, search string) ([]store.Actor, error)
	Genres(ctx context.Context, search string) ([]store.Genre, error)
}

// ActorCard is an actor with its derived movie count attached. The
// count is computed at read time and never stored.
type ActorCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Photo      string `json:"photo"`
	MovieCount int    `json:"movie_count"`
}

// Collection summarises a genre through the cover image of one of its
// titles.
type Collection struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type Engine struct {
	catalog Catalog
	index   relation.Index
}

func New(catalog Catalog, index relation.Index) *Engine {
	return &Engine{catalog: catalog, index: index}
}

// ActorListing returns actors matching search, newest first, each with
// movie_count equal to the number of titles referencing the actor.
func (e *Engine) ActorListing(ctx context.Context, search string) ([]ActorCard, error) {
	counts, err := e.index.ActorAppearanceCounts(ctx)
	if err != nil {
		return nil, err
	}
	actors, err := e.catalog.Actors(ctx, search)
	if err != nil {
		return nil, err
	}
	cards := make([]ActorCard, len(actors))
	for i, a := range actors {
		cards[i] = ActorCard{
			ID:         a.ID,
			Name:       a.Name,
			Slug:       a.Slug,
			Photo:      a.Photo,
			MovieCount: counts[a.ID],
		}
	}
	return cards, nil
}

// GenreCollections builds one card per genre from the first title
// referencing it. Genres with no titles are omitted: there is no cover
// image to show.
func (e *Engine) GenreCollections(ctx context.Context) ([]Collection, error) {
	genres, err := e.catalog.Genres(ctx, "")
	if err != nil {
		return nil, err
	}
	collections := make([]Collection, 0, len(genres))
	for _, g := range genres {
		titles, err := e.index.TitlesByGenres(ctx, []string{g.ID})
		if err != nil {
			return nil, err
		}
		if len(titles) == 0 {
			continue
		}
		collections = append(collections, Collection{
			ID:    g.ID,
			Slug:  g.Slug,
			Title: g.Name,
			Image: titles[0].BigPoster,
		})
	}
	return collections, nil
}
