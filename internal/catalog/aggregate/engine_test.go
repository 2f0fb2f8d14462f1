package aggregate

import (
	"context"
	"testing"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/relation"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

func newEngine(s *store.Memory) *Engine {
	return New(s, relation.New(s))
}

func TestActorListing_Counts(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	lead, _ := s.CreateActor(ctx)
	_, _ = s.UpdateActor(ctx, lead, store.ActorInput{Name: "Lead", Slug: "lead"})
	cameo, _ := s.CreateActor(ctx)
	_, _ = s.UpdateActor(ctx, cameo, store.ActorInput{Name: "Cameo", Slug: "cameo"})
	unused, _ := s.CreateActor(ctx)
	_, _ = s.UpdateActor(ctx, unused, store.ActorInput{Name: "Unused", Slug: "unused"})

	for i, slug := range []string{"one", "two"} {
		id, _ := s.CreateMovie(ctx)
		actorIDs := []string{lead}
		if i == 0 {
			actorIDs = append(actorIDs, cameo)
		}
		if _, err := s.UpdateMovie(ctx, id, store.MovieInput{Title: slug, Slug: slug, ActorIDs: actorIDs}); err != nil {
			t.Fatalf("update movie: %v", err)
		}
	}

	cards, err := newEngine(s).ActorListing(ctx, "")
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}

	byID := map[string]ActorCard{}
	for _, c := range cards {
		byID[c.ID] = c
	}
	if byID[lead].MovieCount != 2 {
		t.Fatalf("expected lead count 2, got %d", byID[lead].MovieCount)
	}
	if byID[cameo].MovieCount != 1 {
		t.Fatalf("expected cameo count 1, got %d", byID[cameo].MovieCount)
	}
	if byID[unused].MovieCount != 0 {
		t.Fatalf("expected unused count 0, got %d", byID[unused].MovieCount)
	}
}

func TestActorListing_SearchAndOrder(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	older, _ := s.CreateActor(ctx)
	_, _ = s.UpdateActor(ctx, older, store.ActorInput{Name: "Ryan Gosling", Slug: "ryan-gosling"})
	newer, _ := s.CreateActor(ctx)
	_, _ = s.UpdateActor(ctx, newer, store.ActorInput{Name: "Ryan Reynolds", Slug: "ryan-reynolds"})
	other, _ := s.CreateActor(ctx)
	_, _ = s.UpdateActor(ctx, other, store.ActorInput{Name: "Jodie Comer", Slug: "jodie-comer"})

	cards, err := newEngine(s).ActorListing(ctx, "ryan")
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 matches for 'ryan', got %d", len(cards))
	}
	if cards[0].ID != newer || cards[1].ID != older {
		t.Fatalf("expected newest first, got [%s %s]", cards[0].Slug, cards[1].Slug)
	}
}

func TestGenreCollections(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	action, _ := s.CreateGenre(ctx)
	_, _ = s.UpdateGenre(ctx, action, store.GenreInput{Name: "Action", Slug: "action"})

	movieID, _ := s.CreateMovie(ctx)
	_, _ = s.UpdateMovie(ctx, movieID, store.MovieInput{
		Title: "Free Guy", Slug: "free-guy", BigPoster: "/big/free-guy.jpg", GenreIDs: []string{action},
	})

	collections, err := newEngine(s).GenreCollections(ctx)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if len(collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(collections))
	}
	c := collections[0]
	if c.ID != action || c.Slug != "action" || c.Title != "Action" {
		t.Fatalf("unexpected card: %+v", c)
	}
	if c.Image != "/big/free-guy.jpg" {
		t.Fatalf("expected big poster as image, got %q", c.Image)
	}
}

func TestGenreCollections_EmptyGenreOmitted(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	empty, _ := s.CreateGenre(ctx)
	_, _ = s.UpdateGenre(ctx, empty, store.GenreInput{Name: "Documentary", Slug: "documentary"})

	horror, _ := s.CreateGenre(ctx)
	_, _ = s.UpdateGenre(ctx, horror, store.GenreInput{Name: "Horror", Slug: "horror"})
	movieID, _ := s.CreateMovie(ctx)
	_, _ = s.UpdateMovie(ctx, movieID, store.MovieInput{
		Title: "It", Slug: "it", BigPoster: "/big/it.jpg", GenreIDs: []string{horror},
	})

	collections, err := newEngine(s).GenreCollections(ctx)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if len(collections) != 1 {
		t.Fatalf("expected the empty genre to be omitted, got %d cards", len(collections))
	}
	if collections[0].Slug != "horror" {
		t.Fatalf("expected horror card, got %q", collections[0].Slug)
	}
}

func TestGenreCollections_NoGenres(t *testing.T) {
	s := store.NewMemory()
	collections, err := newEngine(s).GenreCollections(context.Background())
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if len(collections) != 0 {
		t.Fatalf("expected empty result, got %d", len(collections))
	}
}
