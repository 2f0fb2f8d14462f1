package store

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemory_CreateBlankThenUpdate(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	id, err := s.CreateActor(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	blank, err := s.ActorByID(ctx, id)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if blank.Name != "" || blank.Slug != "" {
		t.Fatalf("expected blank actor, got %+v", blank)
	}

	updated, err := s.UpdateActor(ctx, id, ActorInput{Name: "Ryan Reynolds", Slug: "ryan-reynolds", Photo: "/p.jpg"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Ryan Reynolds" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}

	bySlug, err := s.ActorBySlug(ctx, "ryan-reynolds")
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	if bySlug.ID != id {
		t.Fatalf("expected same actor, got %q vs %q", bySlug.ID, id)
	}
}

func TestMemory_LookupMissing(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if _, err := s.ActorBySlug(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.MovieByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.UpdateGenre(ctx, "nope", GenreInput{Name: "Action"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.DeleteMovie(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_SlugConflictRejected(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	first, _ := s.CreateGenre(ctx)
	second, _ := s.CreateGenre(ctx)

	if _, err := s.UpdateGenre(ctx, first, GenreInput{Name: "Action", Slug: "action"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := s.UpdateGenre(ctx, second, GenreInput{Name: "Also Action", Slug: "action"}); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}

	// The first owner keeps its slug.
	g, err := s.GenreBySlug(ctx, "action")
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	if g.ID != first {
		t.Fatalf("slug overwritten: got %q, want %q", g.ID, first)
	}
}

func TestMemory_SearchCaseInsensitive(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	id, _ := s.CreateMovie(ctx)
	if _, err := s.UpdateMovie(ctx, id, MovieInput{Title: "Free Guy", Slug: "free-guy"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.Movies(ctx, "fReE")
	if err != nil {
		t.Fatalf("movies: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "free-guy" {
		t.Fatalf("expected one match for 'fReE', got %+v", got)
	}

	none, _ := s.Movies(ctx, "matrix")
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestMemory_MoviesNewestFirst(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	a, _ := s.CreateMovie(ctx)
	b, _ := s.CreateMovie(ctx)
	c, _ := s.CreateMovie(ctx)

	got, err := s.Movies(ctx, "")
	if err != nil {
		t.Fatalf("movies: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(got))
	}
	if got[0].ID != c || got[1].ID != b || got[2].ID != a {
		t.Fatalf("expected newest-first order [c b a], got [%s %s %s]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestMemory_IncrementCountOpened(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	id, _ := s.CreateMovie(ctx)
	_, _ = s.UpdateMovie(ctx, id, MovieInput{Title: "Free Guy", Slug: "free-guy"})

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = s.IncrementCountOpened(ctx, "free-guy")
		}()
	}
	wg.Wait()

	m, err := s.MovieBySlug(ctx, "free-guy")
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	if m.CountOpened != n {
		t.Fatalf("expected count %d, got %d", n, m.CountOpened)
	}

	if _, err := s.IncrementCountOpened(ctx, "non-existent-slug"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_UpdateMovieIfUnannounced(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	id, _ := s.CreateMovie(ctx)
	in := MovieInput{Title: "Free Guy", Slug: "free-guy", Description: "d"}

	m, transitioned, err := s.UpdateMovieIfUnannounced(ctx, id, in)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if !transitioned || !m.Announced {
		t.Fatalf("expected first call to transition, got transitioned=%v announced=%v", transitioned, m.Announced)
	}

	m, transitioned, err = s.UpdateMovieIfUnannounced(ctx, id, in)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if transitioned {
		t.Fatal("expected second call to report no transition")
	}
	if !m.Announced {
		t.Fatal("announced must never revert")
	}
}

func TestMemory_DeleteActorKeepsMovieReferences(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	actorID, _ := s.CreateActor(ctx)
	movieID, _ := s.CreateMovie(ctx)
	_, _ = s.UpdateMovie(ctx, movieID, MovieInput{Title: "M", Slug: "m", ActorIDs: []string{actorID}})

	deleted, err := s.DeleteActor(ctx, actorID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != actorID {
		t.Fatalf("expected deleted actor returned, got %q", deleted.ID)
	}

	// Dangling reference is accepted behaviour: no cascade.
	m, _ := s.MovieByID(ctx, movieID)
	if len(m.ActorIDs) != 1 || m.ActorIDs[0] != actorID {
		t.Fatalf("expected dangling actor id to remain, got %v", m.ActorIDs)
	}
}

func TestMemory_MostPopular(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	quiet, _ := s.CreateMovie(ctx)
	_, _ = s.UpdateMovie(ctx, quiet, MovieInput{Title: "Quiet", Slug: "quiet"})

	warm, _ := s.CreateMovie(ctx)
	_, _ = s.UpdateMovie(ctx, warm, MovieInput{Title: "Warm", Slug: "warm"})
	_, _ = s.IncrementCountOpened(ctx, "warm")

	hot, _ := s.CreateMovie(ctx)
	_, _ = s.UpdateMovie(ctx, hot, MovieInput{Title: "Hot", Slug: "hot"})
	for i := 0; i < 3; i++ {
		_, _ = s.IncrementCountOpened(ctx, "hot")
	}

	got, err := s.MostPopular(ctx)
	if err != nil {
		t.Fatalf("most popular: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 movies with opens, got %d", len(got))
	}
	if got[0].Slug != "hot" || got[1].Slug != "warm" {
		t.Fatalf("expected [hot warm], got [%s %s]", got[0].Slug, got[1].Slug)
	}
}

func TestMemory_ByIDsPreservesRequestOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	a, _ := s.CreateActor(ctx)
	b, _ := s.CreateActor(ctx)

	got, err := s.ActorsByIDs(ctx, []string{b, "missing", a})
	if err != nil {
		t.Fatalf("by ids: %v", err)
	}
	if len(got) != 2 || got[0].ID != b || got[1].ID != a {
		t.Fatalf("expected [b a], got %+v", got)
	}
}
