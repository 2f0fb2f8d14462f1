package relation

import (
	"context"
	"testing"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

// fixture builds a store with two actors, two genres and three movies:
// m1 references (a1, g1), m2 references (a1+a2, g2), m3 references nothing.
func fixture(t *testing.T) (*store.Memory, map[string]string) {
	t.Helper()
	s := store.NewMemory()
	ctx := context.Background()

	ids := map[string]string{}
	for _, k := range []string{"a1", "a2"} {
		id, _ := s.CreateActor(ctx)
		ids[k] = id
	}
	for _, k := range []string{"g1", "g2"} {
		id, _ := s.CreateGenre(ctx)
		ids[k] = id
	}

	m1, _ := s.CreateMovie(ctx)
	ids["m1"] = m1
	if _, err := s.UpdateMovie(ctx, m1, store.MovieInput{
		Title: "One", Slug: "one", ActorIDs: []string{ids["a1"]}, GenreIDs: []string{ids["g1"]},
	}); err != nil {
		t.Fatalf("update m1: %v", err)
	}

	m2, _ := s.CreateMovie(ctx)
	ids["m2"] = m2
	if _, err := s.UpdateMovie(ctx, m2, store.MovieInput{
		Title: "Two", Slug: "two", ActorIDs: []string{ids["a1"], ids["a2"]}, GenreIDs: []string{ids["g2"]},
	}); err != nil {
		t.Fatalf("update m2: %v", err)
	}

	m3, _ := s.CreateMovie(ctx)
	ids["m3"] = m3
	if _, err := s.UpdateMovie(ctx, m3, store.MovieInput{Title: "Three", Slug: "three"}); err != nil {
		t.Fatalf("update m3: %v", err)
	}

	return s, ids
}

func slugs(movies []store.Movie) map[string]bool {
	out := make(map[string]bool, len(movies))
	for _, m := range movies {
		out[m.Slug] = true
	}
	return out
}

func TestTitlesByActor(t *testing.T) {
	s, ids := fixture(t)
	ix := New(s)

	got, err := ix.TitlesByActor(context.Background(), ids["a1"])
	if err != nil {
		t.Fatalf("titles by actor: %v", err)
	}
	if len(got) != 2 || !slugs(got)["one"] || !slugs(got)["two"] {
		t.Fatalf("expected movies one and two for a1, got %v", slugs(got))
	}

	got, _ = ix.TitlesByActor(context.Background(), ids["a2"])
	if len(got) != 1 || got[0].Slug != "two" {
		t.Fatalf("expected only movie two for a2, got %v", slugs(got))
	}

	got, _ = ix.TitlesByActor(context.Background(), "unknown")
	if len(got) != 0 {
		t.Fatalf("expected no movies for unknown actor, got %v", slugs(got))
	}
}

func TestTitlesByGenres(t *testing.T) {
	s, ids := fixture(t)
	ix := New(s)

	got, err := ix.TitlesByGenres(context.Background(), []string{ids["g1"], ids["g2"]})
	if err != nil {
		t.Fatalf("titles by genres: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 movies for union of g1,g2, got %d", len(got))
	}

	got, _ = ix.TitlesByGenres(context.Background(), []string{ids["g2"]})
	if len(got) != 1 || got[0].Slug != "two" {
		t.Fatalf("expected only movie two for g2, got %v", slugs(got))
	}

	got, _ = ix.TitlesByGenres(context.Background(), nil)
	if len(got) != 0 {
		t.Fatalf("expected no movies for empty genre set, got %d", len(got))
	}
}

func TestActorAppearanceCounts(t *testing.T) {
	s, ids := fixture(t)
	ix := New(s)

	counts, err := ix.ActorAppearanceCounts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[ids["a1"]] != 2 {
		t.Fatalf("expected a1 count 2, got %d", counts[ids["a1"]])
	}
	if counts[ids["a2"]] != 1 {
		t.Fatalf("expected a2 count 1, got %d", counts[ids["a2"]])
	}
}

// Counts must follow the store: after deleting an actor the dangling
// reference still counts, after deleting a movie the count drops.
func TestActorAppearanceCounts_TrackStore(t *testing.T) {
	s, ids := fixture(t)
	ix := New(s)
	ctx := context.Background()

	if _, err := s.DeleteMovie(ctx, ids["m2"]); err != nil {
		t.Fatalf("delete movie: %v", err)
	}
	counts, _ := ix.ActorAppearanceCounts(ctx)
	if counts[ids["a1"]] != 1 {
		t.Fatalf("expected a1 count to drop to 1, got %d", counts[ids["a1"]])
	}
	if counts[ids["a2"]] != 0 {
		t.Fatalf("expected a2 count 0, got %d", counts[ids["a2"]])
	}

	if _, err := s.DeleteActor(ctx, ids["a1"]); err != nil {
		t.Fatalf("delete actor: %v", err)
	}
	counts, _ = ix.ActorAppearanceCounts(ctx)
	if counts[ids["a1"]] != 1 {
		t.Fatalf("expected dangling reference to keep counting, got %d", counts[ids["a1"]])
	}
}
